package printer

import (
	"strings"

	"github.com/pure11/pscpp/internal/cpp"
	"github.com/pure11/pscpp/internal/i18n"
)

// Printer C++ 代码打印器
// 每次顶层渲染使用一个新的 Printer，内部只有一个缩进计数器
type Printer struct {
	indent int
}

// New 创建一个新的打印器
func New() *Printer {
	return &Printer{}
}

// UnsupportedNodeError 规则表中没有任何规则能渲染该节点
// 说明前端产生了畸形 AST 或打印器缺少规则，整个编译单元的生成必须中止
type UnsupportedNodeError struct {
	NodeKind string
}

func (e *UnsupportedNodeError) Error() string {
	return i18n.T(i18n.ErrUnsupportedNode, e.NodeKind)
}

// RenderProgram 渲染顶层语句序列
func (p *Printer) RenderProgram(statements []cpp.Node) (string, error) {
	p.indent = 0
	return p.renderStatements(statements)
}

// RenderExpression 渲染单个表达式
func (p *Printer) RenderExpression(node cpp.Node) (string, error) {
	return p.render(node)
}

// renderStatements 渲染语句序列
// 过滤 no-op 节点和以 no-op 初始化的变量声明，
// 每条语句加缩进前缀和分号后缀，用换行连接
func (p *Printer) renderStatements(statements []cpp.Node) (string, error) {
	var lines []string
	for _, stmt := range statements {
		if cpp.IsNoOp(stmt) {
			continue
		}
		if vi, ok := stmt.(*cpp.VariableIntroduction); ok && vi.Value != nil && cpp.IsNoOp(vi.Value) {
			continue
		}
		text, err := p.render(stmt)
		if err != nil {
			return "", err
		}
		lines = append(lines, p.indentStr()+text+";")
	}
	return strings.Join(lines, "\n"), nil
}

// render 按规则表顺序渲染一个节点
// 规则从绑定最紧到最松依次尝试，第一条匹配的规则负责渲染
func (p *Printer) render(node cpp.Node) (string, error) {
	for _, r := range rules {
		if r.match(node) {
			return r.emit(p, node)
		}
	}
	return "", &UnsupportedNodeError{NodeKind: node.Kind()}
}

// renderOperand 渲染运算符的操作数
// 操作数绑定强度比上限松时加括号
func (p *Printer) renderOperand(node cpp.Node, limit int) (string, error) {
	text, err := p.render(node)
	if err != nil {
		return "", err
	}
	if nodePrec(node) > limit {
		return "(" + text + ")", nil
	}
	return text, nil
}

// indentStr 返回当前缩进前缀
func (p *Printer) indentStr() string {
	return strings.Repeat(indentUnit, p.indent)
}

// 缩进单位为两个空格
const indentUnit = "  "

// emitBase 基础规则: 字面量、语句和特殊形式
func (p *Printer) emitBase(node cpp.Node) (string, error) {
	switch n := node.(type) {
	case *cpp.NumericLiteral:
		return formatNumeric(n), nil
	case *cpp.StringLiteral:
		return quoteString(n.Value), nil
	case *cpp.BoolLiteral:
		if n.Value {
			return "true", nil
		}
		return "false", nil
	case *cpp.ArrayLiteral:
		return p.emitArray(n)
	case *cpp.ObjectLiteral:
		return p.emitObject(n)
	case *cpp.Block:
		return p.emitBlock(n.Statements)
	case *cpp.Namespace:
		return p.emitNamespace(n)
	case *cpp.Var:
		return varName(n.Name), nil
	case *cpp.VariableIntroduction:
		return p.emitVariableIntroduction(n)
	case *cpp.Assignment:
		return p.emitAssignment(n)
	case *cpp.While:
		return p.emitWhile(n)
	case *cpp.For:
		return p.emitFor(n)
	case *cpp.ForIn:
		return p.emitForIn(n)
	case *cpp.IfElse:
		return p.emitIfElse(n)
	case *cpp.Return:
		if n.Value == nil {
			return "return", nil
		}
		value, err := p.render(n.Value)
		if err != nil {
			return "", err
		}
		return "return " + value, nil
	case *cpp.Throw:
		value, err := p.render(n.Value)
		if err != nil {
			return "", err
		}
		return "throw " + value, nil
	case *cpp.Break:
		if n.Label != "" {
			return "break " + n.Label, nil
		}
		return "break", nil
	case *cpp.Continue:
		if n.Label != "" {
			return "continue " + n.Label, nil
		}
		return "continue", nil
	case *cpp.Label:
		inner, err := p.render(n.Node)
		if err != nil {
			return "", err
		}
		return n.Name + ": " + inner, nil
	case *cpp.Function:
		return p.emitFunction(n)
	case *cpp.Struct:
		return p.emitStruct(n)
	case *cpp.Raw:
		return n.Text, nil
	case *cpp.Comment:
		return p.emitComment(n)
	}
	return "", &UnsupportedNodeError{NodeKind: node.Kind()}
}

// varName 截断变量引用中第一个 @ 之后的消歧后缀
func varName(name string) string {
	if i := strings.IndexByte(name, '@'); i >= 0 {
		return name[:i]
	}
	return name
}

// emitArray 数组字面量
func (p *Printer) emitArray(n *cpp.ArrayLiteral) (string, error) {
	if len(n.Elements) == 0 {
		return "{}", nil
	}
	parts := make([]string, 0, len(n.Elements))
	for _, el := range n.Elements {
		text, err := p.render(el)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}

// emitObject 对象字面量
// 空对象单行输出 {}，非空对象每个键值对占一行
func (p *Printer) emitObject(n *cpp.ObjectLiteral) (string, error) {
	if len(n.Pairs) == 0 {
		return "{}", nil
	}
	p.indent++
	lines := make([]string, 0, len(n.Pairs))
	for _, pair := range n.Pairs {
		value, err := p.render(pair.Value)
		if err != nil {
			p.indent--
			return "", err
		}
		lines = append(lines, p.indentStr()+objectKey(pair.Key)+": "+value)
	}
	p.indent--
	return "{\n" + strings.Join(lines, ",\n") + "\n" + p.indentStr() + "}", nil
}

// emitBlock 语句块
// 进入块时缩进加一，退出时恢复，保证兄弟块之间不泄漏缩进状态
func (p *Printer) emitBlock(statements []cpp.Node) (string, error) {
	p.indent++
	inner, err := p.renderStatements(statements)
	p.indent--
	if err != nil {
		return "", err
	}
	if inner == "" {
		return "{\n" + p.indentStr() + "}", nil
	}
	return "{\n" + inner + "\n" + p.indentStr() + "}", nil
}

// emitNamespace 命名空间
func (p *Printer) emitNamespace(n *cpp.Namespace) (string, error) {
	body, err := p.emitBlock(n.Statements)
	if err != nil {
		return "", err
	}
	return "namespace " + n.Name + " " + body, nil
}

// emitVariableIntroduction 变量声明
func (p *Printer) emitVariableIntroduction(n *cpp.VariableIntroduction) (string, error) {
	if n.Value == nil || cpp.IsNoOp(n.Value) {
		return "any " + n.Name, nil
	}
	value, err := p.render(n.Value)
	if err != nil {
		return "", err
	}
	return "auto " + n.Name + " = " + value, nil
}

// emitAssignment 赋值
func (p *Printer) emitAssignment(n *cpp.Assignment) (string, error) {
	target, err := p.render(n.Target)
	if err != nil {
		return "", err
	}
	value, err := p.render(n.Value)
	if err != nil {
		return "", err
	}
	return target + " = " + value, nil
}

// emitWhile while 循环
func (p *Printer) emitWhile(n *cpp.While) (string, error) {
	cond, err := p.render(n.Condition)
	if err != nil {
		return "", err
	}
	body, err := p.render(n.Body)
	if err != nil {
		return "", err
	}
	return "while (" + cond + ") " + body, nil
}

// emitFor 计数 for 循环，End 为排他上界
func (p *Printer) emitFor(n *cpp.For) (string, error) {
	start, err := p.render(n.Start)
	if err != nil {
		return "", err
	}
	end, err := p.render(n.End)
	if err != nil {
		return "", err
	}
	body, err := p.render(n.Body)
	if err != nil {
		return "", err
	}
	return "for (auto " + n.Name + " = " + start + "; " +
		n.Name + " < " + end + "; " + n.Name + "++) " + body, nil
}

// emitForIn 集合遍历循环
func (p *Printer) emitForIn(n *cpp.ForIn) (string, error) {
	collection, err := p.render(n.Collection)
	if err != nil {
		return "", err
	}
	body, err := p.render(n.Body)
	if err != nil {
		return "", err
	}
	return "for (const auto& " + n.Name + " : " + collection + ") " + body, nil
}

// emitIfElse 条件语句，Else 可为 nil
func (p *Printer) emitIfElse(n *cpp.IfElse) (string, error) {
	cond, err := p.render(n.Condition)
	if err != nil {
		return "", err
	}
	then, err := p.render(n.Then)
	if err != nil {
		return "", err
	}
	text := "if (" + cond + ") " + then
	if n.Else != nil {
		elseText, err := p.render(n.Else)
		if err != nil {
			return "", err
		}
		text += " else " + elseText
	}
	return text, nil
}

// emitFunction 函数或 lambda
// 有名字的函数输出为 auto name(...) -> Ret 形式，
// 模板参数另起一行；无名函数输出为 [=] 捕获的 lambda
func (p *Printer) emitFunction(n *cpp.Function) (string, error) {
	body, err := p.render(n.Body)
	if err != nil {
		return "", err
	}

	params := make([]string, 0, len(n.Params))
	for _, param := range n.Params {
		params = append(params, "const any& "+param)
	}
	paramList := "(" + strings.Join(params, ", ") + ")"

	returnAnno := ""
	if n.ReturnType != "" {
		returnAnno = " -> " + n.ReturnType
	}

	if n.Name == "" {
		return "[=]" + paramList + returnAnno + " " + body, nil
	}

	text := ""
	if len(n.TemplateParams) > 0 {
		text = templateLine(n.TemplateParams) + "\n" + p.indentStr()
	}
	return text + "auto " + n.Name + paramList + returnAnno + " " + body, nil
}

// emitStruct 代数数据类型构造器声明
// 输出为继承所属类型的结构体: 字段、按位置初始化的构造函数、静态 create 函数
func (p *Printer) emitStruct(n *cpp.Struct) (string, error) {
	head := "struct " + n.Name
	if n.Parent != "" {
		head += " : public " + n.Parent
	}

	p.indent++
	var lines []string
	for _, field := range n.Fields {
		lines = append(lines, p.indentStr()+field.Type+" "+field.Name+";")
	}
	if len(n.Fields) > 0 {
		params := make([]string, 0, len(n.Fields))
		inits := make([]string, 0, len(n.Fields))
		for _, field := range n.Fields {
			params = append(params, "const "+field.Type+"& "+field.Name)
			inits = append(inits, field.Name+"("+field.Name+")")
		}
		lines = append(lines, p.indentStr()+n.Name+"("+strings.Join(params, ", ")+") : "+
			strings.Join(inits, ", ")+" {}")
	}
	if n.Create != nil {
		create, err := p.emitFunction(n.Create)
		if err != nil {
			p.indent--
			return "", err
		}
		lines = append(lines, p.indentStr()+"static "+create)
	}
	p.indent--

	text := ""
	if len(n.TemplateParams) > 0 {
		text = templateLine(n.TemplateParams) + "\n" + p.indentStr()
	}
	if len(lines) == 0 {
		return text + head + " {\n" + p.indentStr() + "}", nil
	}
	return text + head + " {\n" + strings.Join(lines, "\n") + "\n" + p.indentStr() + "}", nil
}

// templateLine 模板参数声明行
func templateLine(names []string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, "typename "+name)
	}
	return "template <" + strings.Join(parts, ", ") + ">"
}

// emitComment 注释节点，注释输出在内部节点上方
func (p *Printer) emitComment(n *cpp.Comment) (string, error) {
	inner, err := p.render(n.Node)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, c := range n.Comments {
		if c.Block {
			lines = append(lines, "/* "+c.Text+" */")
		} else {
			lines = append(lines, "// "+c.Text)
		}
	}
	if len(lines) == 0 {
		return inner, nil
	}
	return strings.Join(lines, "\n"+p.indentStr()) + "\n" + p.indentStr() + inner, nil
}
