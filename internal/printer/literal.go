package printer

import (
	"strconv"
	"strings"

	"github.com/pure11/pscpp/internal/cpp"
	"github.com/pure11/pscpp/internal/symbol"
)

// formatNumeric 数字字面量文本
func formatNumeric(n *cpp.NumericLiteral) string {
	if n.IsFloat {
		return formatFloat(n.Float)
	}
	return strconv.FormatInt(n.Int, 10)
}

// formatFloat 浮点字面量文本
// 没有小数点和指数时补 .0，避免被目标语言当成整数
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString 带引号的字符串字面量文本
func quoteString(s string) string {
	return "\"" + escapeString(s) + "\""
}

// escapeString 按固定转义表转义字符串内容
// 控制字符、引号和反斜杠用两字符转义，
// 0xFF 以上的码点用 \u 十六进制转义（0x1000 以下补零）
func escapeString(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			switch {
			case c > 0xFFF:
				b.WriteString(`\u` + strconv.FormatInt(int64(c), 16))
			case c > 0xFF:
				b.WriteString(`\u0` + strconv.FormatInt(int64(c), 16))
			default:
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

// objectKey 对象字面量的键
// 本身是合法标识符时原样输出，否则按字符串字面量加引号
func objectKey(key string) string {
	if symbol.IsValidCppName(key) {
		return key
	}
	return quoteString(key)
}
