package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pure11/pscpp/internal/config"
	"github.com/pure11/pscpp/internal/cpp"
)

func writeModuleFile(t *testing.T, dir, module string, body []cpp.Node) string {
	t.Helper()
	maps := make([]map[string]interface{}, len(body))
	for i, node := range body {
		maps[i] = cpp.NodeToMap(node)
	}
	encoded, err := json.Marshal(map[string]interface{}{
		"module": module,
		"body":   maps,
	})
	if err != nil {
		t.Fatalf("marshal module: %v", err)
	}
	path := filepath.Join(dir, module+".json")
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		t.Fatalf("write module: %v", err)
	}
	return path
}

func TestGenerateFile(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	path := writeModuleFile(t, inDir, "Main", []cpp.Node{
		&cpp.IfElse{
			Condition: &cpp.NumericLiteral{Int: 1},
			Then:      &cpp.Block{Statements: []cpp.Node{&cpp.Return{Value: &cpp.StringLiteral{Value: "ok"}}}},
			Else:      &cpp.Block{Statements: []cpp.Node{&cpp.Throw{Value: &cpp.StringLiteral{Value: "fail"}}}},
		},
	})

	if err := generateFile(path, outDir, false); err != nil {
		t.Fatalf("generateFile: %v", err)
	}

	generated, err := os.ReadFile(filepath.Join(outDir, "Main.cpp"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(generated)
	if !strings.Contains(text, `#include "purescript.hh"`) {
		t.Errorf("output is missing the runtime include:\n%s", text)
	}
	if !strings.Contains(text, "if (1) {\n  return \"ok\";\n} else {\n  throw \"fail\";\n};") {
		t.Errorf("output is missing the rendered statement:\n%s", text)
	}
}

func TestGenerateDirWithoutModules(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	err := generateDir(inDir, outDir, false)
	if err == nil {
		t.Fatalf("expected an error for an empty input directory")
	}
	var noFiles *noFilesError
	if !errors.As(err, &noFiles) {
		t.Fatalf("expected noFilesError, got %T", err)
	}
}

func TestWriteRuntime(t *testing.T) {
	outDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Codegen.Memory = config.MemoryGC

	if err := writeRuntime(outDir, cfg); err != nil {
		t.Fatalf("writeRuntime: %v", err)
	}

	header, err := os.ReadFile(filepath.Join(outDir, "purescript.hh"))
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	for _, want := range []string{"managed", "make_managed", "make_managed_and_finalized", "USE_GC"} {
		if !strings.Contains(string(header), want) {
			t.Errorf("header is missing %q", want)
		}
	}

	makefile, err := os.ReadFile(filepath.Join(outDir, "Makefile"))
	if err != nil {
		t.Fatalf("read Makefile: %v", err)
	}
	if !strings.Contains(string(makefile), "-DUSE_GC") {
		t.Errorf("gc Makefile should define USE_GC:\n%s", makefile)
	}

	// arc 策略不定义 USE_GC
	cfg.Codegen.Memory = config.MemoryARC
	if err := writeRuntime(outDir, cfg); err != nil {
		t.Fatalf("writeRuntime: %v", err)
	}
	makefile, err = os.ReadFile(filepath.Join(outDir, "Makefile"))
	if err != nil {
		t.Fatalf("read Makefile: %v", err)
	}
	if strings.Contains(string(makefile), "-DUSE_GC") {
		t.Errorf("arc Makefile should not define USE_GC:\n%s", makefile)
	}
}

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "externs.json")

	externs := `{
  "constructors": [
    {
      "module": "Data.Maybe", "name": "Nothing", "typeName": "Maybe", "kind": "data",
      "type": {"tag": "Con", "name": "Maybe"}
    },
    {
      "module": "Data.Maybe", "name": "Just", "typeName": "Maybe", "kind": "data",
      "type": {
        "tag": "ForAll", "var": "a",
        "body": {
          "tag": "Fun",
          "arg": {"tag": "TypeVar", "name": "a"},
          "ret": {"tag": "TypeApp", "fn": {"tag": "Con", "name": "Maybe"}, "arg": {"tag": "TypeVar", "name": "a"}}
        }
      }
    }
  ]
}`
	if err := os.WriteFile(path, []byte(externs), 0644); err != nil {
		t.Fatalf("write externs: %v", err)
	}

	if err := checkInput(path); err != nil {
		t.Fatalf("checkInput: %v", err)
	}
}

func TestCheckInputBadType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "externs.json")
	externs := `{"constructors": [{"module": "M", "name": "Mk", "typeName": "T", "kind": "data", "type": {"tag": "Nope"}}]}`
	if err := os.WriteFile(path, []byte(externs), 0644); err != nil {
		t.Fatalf("write externs: %v", err)
	}

	err := checkInput(path)
	if err == nil {
		t.Fatalf("expected an error for a bad type tag")
	}
	var decode *decodeError
	if !errors.As(err, &decode) {
		t.Fatalf("expected decodeError, got %T", err)
	}
}
