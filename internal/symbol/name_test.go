package symbol

import (
	"strings"
	"testing"
	"unicode"
)

func TestToCppNameIdempotent(t *testing.T) {
	inputs := []string{
		"foo", "bar'", "<>", "+", "unsafeIndex", "$dollar", "a.b.c",
		"while", "map", "_", "x_1", "λ", "compose'", ">>=", "<$>",
	}
	for _, input := range inputs {
		once := ToCppName(input)
		twice := ToCppName(once)
		if once != twice {
			t.Errorf("ToCppName(%q): first pass %q, second pass %q", input, once, twice)
		}
	}
}

func TestNeedsEscapingAgreesWithToCppName(t *testing.T) {
	inputs := []string{
		"foo", "bar'", "<>", "while", "x", "_", "a1", "$", "plainName",
		"instance_of", "any", "not_reserved_at_all",
	}
	for _, input := range inputs {
		got := NeedsEscaping(input)
		want := ToCppName(input) != input
		if got != want {
			t.Errorf("NeedsEscaping(%q) = %v, but ToCppName changed it: %v", input, got, want)
		}
	}
}

func TestReservedWordsGetSuffix(t *testing.T) {
	for word := range cppReserved {
		mangled := ToCppName(word)
		if mangled == word {
			t.Errorf("reserved word %q was left unchanged", word)
		}
		if !strings.HasSuffix(mangled, reservedSuffix) {
			t.Errorf("ToCppName(%q) = %q, expected %q suffix", word, mangled, reservedSuffix)
		}
	}
}

func TestSymbolWordsEndAlphanumeric(t *testing.T) {
	for c, word := range symbolWords {
		if word == "" {
			t.Fatalf("symbol %q maps to an empty word", c)
		}
		last := rune(word[len(word)-1])
		if !unicode.IsLetter(last) && !unicode.IsDigit(last) {
			t.Errorf("symbol %q maps to %q, which does not end alphanumeric", c, word)
		}
	}
}

func TestSymbolMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{">>=", "greater_greater_eq_"},
		{"<$>", "less_dollar_greater_"},
		{"f'", "f_"},
		{"a.b", "adot_b"},
		{"x@y", "xat_y"},
		{"/\\", "div_bslash_"},
	}
	for _, tt := range tests {
		if got := ToCppName(tt.input); got != tt.want {
			t.Errorf("ToCppName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCodePointFallback(t *testing.T) {
	// 不在符号表里的字符回退到十进制码点加双下划线
	got := ToCppName("a;b")
	want := "a59__b"
	if got != want {
		t.Errorf("ToCppName(%q) = %q, want %q", "a;b", got, want)
	}
}

func TestUnderscorePassesThrough(t *testing.T) {
	for _, input := range []string{"_", "__", "_foo_", "snake_case"} {
		if got := ToCppName(input); got != input {
			t.Errorf("ToCppName(%q) = %q, expected unchanged", input, got)
		}
	}
}

func TestIsValidCppName(t *testing.T) {
	valid := []string{"foo", "_x", "a1", "CamelCase", "_"}
	invalid := []string{"", "1x", "a-b", "a.b", "f'", "a b"}
	for _, name := range valid {
		if !IsValidCppName(name) {
			t.Errorf("IsValidCppName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidCppName(name) {
			t.Errorf("IsValidCppName(%q) = true, want false", name)
		}
	}
}
