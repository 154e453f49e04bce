package symbol

import (
	"strconv"
	"strings"
	"unicode"
)

// cppReserved C++ 关键字以及生成代码不能安全占用的全局名
var cppReserved = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true,
	"asm": true, "auto": true, "bitand": true, "bitor": true,
	"bool": true, "break": true, "case": true, "catch": true,
	"char": true, "char16_t": true, "char32_t": true, "class": true,
	"compl": true, "const": true, "constexpr": true, "const_cast": true,
	"continue": true, "decltype": true, "default": true, "delete": true,
	"do": true, "double": true, "dynamic_cast": true, "else": true,
	"enum": true, "explicit": true, "export": true, "extern": true,
	"false": true, "float": true, "for": true, "friend": true,
	"goto": true, "if": true, "inline": true, "int": true,
	"long": true, "mutable": true, "namespace": true, "new": true,
	"noexcept": true, "not": true, "not_eq": true, "nullptr": true,
	"operator": true, "or": true, "or_eq": true, "private": true,
	"protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true,
	"try": true, "typedef": true, "typeid": true, "typename": true,
	"union": true, "unsigned": true, "using": true, "virtual": true,
	"void": true, "volatile": true, "wchar_t": true, "while": true,
	"xor": true, "xor_eq": true,

	// 运行时头文件和 C 标准库占用的名字
	"NULL": true, "EOF": true, "errno": true, "assert": true,
	"stdin": true, "stdout": true, "stderr": true,
	"any": true, "managed": true, "make_managed": true,
	"make_managed_and_finalized": true, "cast": true, "instance_of": true,
}

// reservedSuffix 保留字冲突时附加的固定两字符后缀
const reservedSuffix = "__"

// symbolWords 符号字符到描述性单词的映射（输出时追加一个下划线）
var symbolWords = map[rune]string{
	'.':  "dot",
	'$':  "dollar",
	'~':  "tilde",
	'=':  "eq",
	'<':  "less",
	'>':  "greater",
	'!':  "bang",
	'#':  "hash",
	'%':  "percent",
	'^':  "up",
	'&':  "amp",
	'|':  "bar",
	'*':  "times",
	'/':  "div",
	'+':  "plus",
	'-':  "minus",
	':':  "colon",
	'\\': "bslash",
	'?':  "qmark",
	'@':  "at",
}

// ToCppName 将源标识符转换为合法且不冲突的 C++ 标识符
// 纯函数，对任意输入都有确定结果，永不失败
func ToCppName(name string) string {
	if IsValidCppName(name) {
		if cppReserved[name] {
			return name + reservedSuffix
		}
		return name
	}
	var sb strings.Builder
	for _, c := range name {
		sb.WriteString(identCharToString(c))
	}
	return sb.String()
}

// NeedsEscaping 判断标识符是否需要转义
// 直接检查 ToCppName 是否是不动点，保证谓词与转换函数永不冲突
func NeedsEscaping(name string) bool {
	return ToCppName(name) != name
}

// IsValidCppName 判断名称是否已经是合法的裸标识符
func IsValidCppName(name string) bool {
	for i, c := range name {
		if c == '_' || unicode.IsLetter(c) {
			continue
		}
		if i > 0 && unicode.IsDigit(c) {
			continue
		}
		return false
	}
	return name != ""
}

// identCharToString 逐字符映射
// 字母数字和下划线原样通过，上撇号映射为下划线，
// 符号表中的字符映射为单词加下划线，其余字符回退到码点加双下划线
func identCharToString(c rune) string {
	if c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
		return string(c)
	}
	if c == '\'' {
		return "_"
	}
	if word, ok := symbolWords[c]; ok {
		return word + "_"
	}
	return strconv.Itoa(int(c)) + "__"
}
