package printer

import (
	"strings"

	"github.com/pure11/pscpp/internal/cpp"
)

// 绑定强度，数值越小绑定越紧
const (
	precAtom = iota
	precPostfix
	precUnary
	precMultiplicative
	precAdditive
	precShift
	precRelational
	precEquality
	precBitAnd
	precBitXor
	precBitOr
	precLogicalAnd
	precLogicalOr
	precConditional
)

// binaryPrec 二元运算符的绑定强度
var binaryPrec = map[cpp.BinaryOp]int{
	cpp.BinaryMultiply:           precMultiplicative,
	cpp.BinaryDivide:             precMultiplicative,
	cpp.BinaryModulus:            precMultiplicative,
	cpp.BinaryAdd:                precAdditive,
	cpp.BinarySubtract:           precAdditive,
	cpp.BinaryShiftLeft:          precShift,
	cpp.BinaryShiftRight:         precShift,
	cpp.BinaryLessThan:           precRelational,
	cpp.BinaryLessThanOrEqual:    precRelational,
	cpp.BinaryGreaterThan:        precRelational,
	cpp.BinaryGreaterThanOrEqual: precRelational,
	cpp.BinaryEqualTo:            precEquality,
	cpp.BinaryNotEqualTo:         precEquality,
	cpp.BinaryBitwiseAnd:         precBitAnd,
	cpp.BinaryBitwiseXor:         precBitXor,
	cpp.BinaryBitwiseOr:          precBitOr,
	cpp.BinaryAnd:                precLogicalAnd,
	cpp.BinaryOr:                 precLogicalOr,
}

// nodePrec 返回节点自身的绑定强度
func nodePrec(node cpp.Node) int {
	switch n := node.(type) {
	case *cpp.Accessor, *cpp.Indexer, *cpp.App:
		return precPostfix
	case *cpp.Unary:
		return precUnary
	case *cpp.Binary:
		return binaryPrec[n.Op]
	case *cpp.Conditional:
		return precConditional
	default:
		return precAtom
	}
}

// rule 规则表中的一条规则: 匹配谓词加渲染处理器
type rule struct {
	match func(cpp.Node) bool
	emit  func(p *Printer, node cpp.Node) (string, error)
}

// rules 运算符规则表
// 从绑定最紧的后缀形式到最松的三目运算符依次排列，基础规则殿后
// 渲染时按顺序尝试，全部不匹配即为不支持的节点
// 处理器会经 render 回到 rules 自身，静态初始化会形成环，故放在 init 里填充
var rules []rule

func init() {
	rules = []rule{
		// 后缀形式
		{matchKind("Accessor"), (*Printer).emitAccessor},
		{matchKind("Indexer"), (*Printer).emitIndexer},
		{matchKind("App"), (*Printer).emitApp},
		{matchKind("Cast"), (*Printer).emitCast},
		{matchKind("TypeOf"), (*Printer).emitTypeOf},
		{matchKind("InstanceOf"), (*Printer).emitInstanceOf},
		{matchKind("Construct"), (*Printer).emitConstruct},
		// 一元前缀
		{matchKind("Unary"), (*Printer).emitUnary},
		// 二元运算，强度查 binaryPrec，全部左结合
		{matchKind("Binary"), (*Printer).emitBinary},
		// 三目条件，右结合
		{matchKind("Conditional"), (*Printer).emitConditional},
		// 基础规则: 字面量、语句和特殊形式
		{matchBase, (*Printer).emitBase},
	}
}

// matchKind 按节点种类名匹配
func matchKind(kind string) func(cpp.Node) bool {
	return func(node cpp.Node) bool {
		return node.Kind() == kind
	}
}

// matchBase 基础规则匹配所有非运算符节点
func matchBase(node cpp.Node) bool {
	switch node.(type) {
	case *cpp.Accessor, *cpp.Indexer, *cpp.App, *cpp.Cast, *cpp.TypeOf,
		*cpp.InstanceOf, *cpp.Construct, *cpp.Unary, *cpp.Binary, *cpp.Conditional:
		return false
	}
	return true
}

// emitAccessor 成员访问
// 目标是托管指针，用箭头访问字段
func (p *Printer) emitAccessor(node cpp.Node) (string, error) {
	n := node.(*cpp.Accessor)
	target, err := p.renderOperand(n.Target, precPostfix)
	if err != nil {
		return "", err
	}
	return target + "->" + n.Name, nil
}

// emitIndexer 下标访问
func (p *Printer) emitIndexer(node cpp.Node) (string, error) {
	n := node.(*cpp.Indexer)
	target, err := p.renderOperand(n.Target, precPostfix)
	if err != nil {
		return "", err
	}
	index, err := p.render(n.Index)
	if err != nil {
		return "", err
	}
	return target + "[" + index + "]", nil
}

// emitApp 函数调用
func (p *Printer) emitApp(node cpp.Node) (string, error) {
	n := node.(*cpp.App)
	callee, err := p.renderOperand(n.Callee, precPostfix)
	if err != nil {
		return "", err
	}
	args, err := p.renderArgs(n.Args)
	if err != nil {
		return "", err
	}
	return callee + "(" + args + ")", nil
}

// emitCast 类型转换
func (p *Printer) emitCast(node cpp.Node) (string, error) {
	n := node.(*cpp.Cast)
	value, err := p.render(n.Value)
	if err != nil {
		return "", err
	}
	return "cast<" + n.Type + ">(" + value + ")", nil
}

// emitTypeOf 类型自省
func (p *Printer) emitTypeOf(node cpp.Node) (string, error) {
	n := node.(*cpp.TypeOf)
	value, err := p.render(n.Value)
	if err != nil {
		return "", err
	}
	return "type_of(" + value + ")", nil
}

// emitInstanceOf 类型判定
func (p *Printer) emitInstanceOf(node cpp.Node) (string, error) {
	n := node.(*cpp.InstanceOf)
	value, err := p.render(n.Value)
	if err != nil {
		return "", err
	}
	return "instance_of<" + n.Type + ">(" + value + ")", nil
}

// emitConstruct 托管值构造
func (p *Printer) emitConstruct(node cpp.Node) (string, error) {
	n := node.(*cpp.Construct)
	args, err := p.renderArgs(n.Args)
	if err != nil {
		return "", err
	}
	entry := cpp.RuntimeMakeManaged
	if n.Finalized {
		entry = cpp.RuntimeMakeManagedFinalized
	}
	return entry + "<" + n.Type + ">(" + args + ")", nil
}

// emitUnary 一元运算
// 操作数同为一元运算时必须加括号，否则 --x / ++x 会被解析成自減自增
func (p *Printer) emitUnary(node cpp.Node) (string, error) {
	n := node.(*cpp.Unary)
	operand, err := p.renderOperand(n.Operand, precUnary-1)
	if err != nil {
		return "", err
	}
	// 负数字面量等原子操作数也可能以同一符号开头
	if strings.HasPrefix(operand, string(n.Op)) {
		operand = "(" + operand + ")"
	}
	return string(n.Op) + operand, nil
}

// emitBinary 二元运算，左结合: 右操作数同强度时加括号
func (p *Printer) emitBinary(node cpp.Node) (string, error) {
	n := node.(*cpp.Binary)
	prec := binaryPrec[n.Op]
	left, err := p.renderOperand(n.Left, prec)
	if err != nil {
		return "", err
	}
	right, err := p.renderOperand(n.Right, prec-1)
	if err != nil {
		return "", err
	}
	return left + " " + string(n.Op) + " " + right, nil
}

// emitConditional 三目条件，右结合: 条件同强度时加括号
func (p *Printer) emitConditional(node cpp.Node) (string, error) {
	n := node.(*cpp.Conditional)
	cond, err := p.renderOperand(n.Condition, precConditional-1)
	if err != nil {
		return "", err
	}
	then, err := p.renderOperand(n.Then, precConditional)
	if err != nil {
		return "", err
	}
	elseValue, err := p.renderOperand(n.Else, precConditional)
	if err != nil {
		return "", err
	}
	return cond + " ? " + then + " : " + elseValue, nil
}

// renderArgs 渲染调用实参列表
func (p *Printer) renderArgs(args []cpp.Node) (string, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		text, err := p.render(arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", "), nil
}
