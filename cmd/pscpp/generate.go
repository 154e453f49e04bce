package main

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pure11/pscpp/internal/config"
	"github.com/pure11/pscpp/internal/cpp"
	"github.com/pure11/pscpp/internal/i18n"
	"github.com/pure11/pscpp/internal/printer"
)

// moduleFile 前端输出的模块文件: 模块名加语句节点序列
type moduleFile struct {
	Module string                   `json:"module"`
	Body   []map[string]interface{} `json:"body"`
}

// generateInput 处理输入文件或目录，返回实际使用的输出目录
func generateInput(input, outputFlag string, verbose bool) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", &accessError{err: err}
	}

	// 查找并加载 pscpp.toml 配置
	startDir := input
	if !info.IsDir() {
		startDir = filepath.Dir(input)
	}

	cfg, configPath, err := config.FindAndLoad(startDir)
	if err != nil {
		return "", &configError{err: err}
	}

	output := outputFlag
	if output == "" {
		output = cfg.Codegen.Output
	}

	if verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath, cfg.Project.Module))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig, cfg.Project.Module))
		}
		printInfo(i18n.T(i18n.MsgMemoryStrategy, cfg.Codegen.Memory))
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return "", &createDirError{path: output, err: err}
	}

	if info.IsDir() {
		err = generateDir(input, output, verbose)
	} else {
		err = generateFile(input, output, verbose)
	}
	if err != nil {
		return "", err
	}

	// 生成的代码依赖运行时头文件和构建脚本
	if err := writeRuntime(output, cfg); err != nil {
		return "", err
	}

	return output, nil
}

// generateDir 处理目录下的所有模块文件
func generateDir(inputDir, outputDir string, verbose bool) error {
	count := 0
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}
		count++
		return generateFile(path, outputDir, verbose)
	})
	if err != nil {
		return err
	}
	if count == 0 {
		return &noFilesError{dir: inputDir}
	}
	return nil
}

// generateFile 处理单个模块文件
func generateFile(path, outputDir string, verbose bool) error {
	if verbose {
		printInfo(i18n.T(i18n.MsgDecoding, path))
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return &readFileError{path: path, err: err}
	}

	// UseNumber 让整数字面量不经过 float64，超过 2^53 也不丢精度
	dec := json.NewDecoder(bytes.NewReader(source))
	dec.UseNumber()
	var mod moduleFile
	if err := dec.Decode(&mod); err != nil {
		return &decodeError{path: path, err: err}
	}

	statements := make([]cpp.Node, 0, len(mod.Body))
	for _, data := range mod.Body {
		node, err := cpp.NodeFromMap(data)
		if err != nil {
			return &decodeError{path: path, err: err}
		}
		statements = append(statements, node)
	}

	text, err := printer.New().RenderProgram(statements)
	if err != nil {
		return &renderError{module: mod.Module, err: err}
	}

	name := mod.Module
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	outPath := filepath.Join(outputDir, name+".cpp")

	if verbose {
		printInfo(i18n.T(i18n.MsgRendering, name, outPath))
	}

	content := "#include \"purescript.hh\"\n\nusing namespace PureScript;\n\n" + text + "\n"
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return &writeFileError{path: outPath, err: err}
	}
	return nil
}

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return i18n.T(i18n.ErrCannotAccessInput, e.err)
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return i18n.T(i18n.ErrCannotLoadConfig, e.err)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return i18n.T(i18n.ErrCannotReadFile, e.path, e.err)
}

type decodeError struct {
	path string
	err  error
}

func (e *decodeError) Error() string {
	return i18n.T(i18n.ErrDecodeError, e.path, e.err)
}

type renderError struct {
	module string
	err    error
}

func (e *renderError) Error() string {
	return i18n.T(i18n.ErrRenderError, e.module, e.err)
}

type noFilesError struct {
	dir string
}

func (e *noFilesError) Error() string {
	return i18n.T(i18n.ErrNoModuleFiles, e.dir)
}

type createDirError struct {
	path string
	err  error
}

func (e *createDirError) Error() string {
	return i18n.T(i18n.ErrCannotCreateDir, e.path, e.err)
}

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return i18n.T(i18n.ErrCannotWriteFile, e.path, e.err)
}
