package cpp

// Node C++ AST 节点接口
// 所有节点由前端构建，构建完成后不可变，打印期间独占遍历
type Node interface {
	// Kind 返回节点种类名（用于诊断和 JSON 序列化）
	Kind() string
}

// UnaryOp 一元运算符
type UnaryOp string

const (
	UnaryNegate     UnaryOp = "-"
	UnaryPositive   UnaryOp = "+"
	UnaryNot        UnaryOp = "!"
	UnaryBitwiseNot UnaryOp = "~"
)

// BinaryOp 二元运算符
type BinaryOp string

const (
	BinaryMultiply           BinaryOp = "*"
	BinaryDivide             BinaryOp = "/"
	BinaryModulus            BinaryOp = "%"
	BinaryAdd                BinaryOp = "+"
	BinarySubtract           BinaryOp = "-"
	BinaryShiftLeft          BinaryOp = "<<"
	BinaryShiftRight         BinaryOp = ">>"
	BinaryLessThan           BinaryOp = "<"
	BinaryLessThanOrEqual    BinaryOp = "<="
	BinaryGreaterThan        BinaryOp = ">"
	BinaryGreaterThanOrEqual BinaryOp = ">="
	BinaryEqualTo            BinaryOp = "=="
	BinaryNotEqualTo         BinaryOp = "!="
	BinaryBitwiseAnd         BinaryOp = "&"
	BinaryBitwiseXor         BinaryOp = "^"
	BinaryBitwiseOr          BinaryOp = "|"
	BinaryAnd                BinaryOp = "&&"
	BinaryOr                 BinaryOp = "||"
)

// NumericLiteral 数字字面量（整数或浮点，由 IsFloat 标记区分）
type NumericLiteral struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// StringLiteral 字符串字面量
type StringLiteral struct {
	Value string
}

// BoolLiteral 布尔字面量
type BoolLiteral struct {
	Value bool
}

// ArrayLiteral 数组字面量
type ArrayLiteral struct {
	Elements []Node
}

// KeyValue 对象字面量中的一个键值对
type KeyValue struct {
	Key   string
	Value Node
}

// ObjectLiteral 对象字面量
// Pairs 为空时是独立的空对象情形，单行输出 {}
type ObjectLiteral struct {
	Pairs []KeyValue
}

// Block 语句块
type Block struct {
	Statements []Node
}

// Namespace 命名空间（名称 + 语句序列）
type Namespace struct {
	Name       string
	Statements []Node
}

// Var 变量引用
// 名称中第一个 @ 之后的内容是前端的消歧后缀，输出时截断
type Var struct {
	Name string
}

// VariableIntroduction 变量声明（可选初始化表达式）
// Value 为 nil 表示无初始化；Value 为空 Raw（no-op）时整条声明被丢弃
type VariableIntroduction struct {
	Name  string
	Value Node
}

// Assignment 赋值
type Assignment struct {
	Target Node
	Value  Node
}

// While while 循环
type While struct {
	Condition Node
	Body      Node
}

// For 计数 for 循环（End 为排他上界）
type For struct {
	Name  string
	Start Node
	End   Node
	Body  Node
}

// ForIn 集合遍历循环
type ForIn struct {
	Name       string
	Collection Node
	Body       Node
}

// IfElse 条件语句（Else 可为 nil）
type IfElse struct {
	Condition Node
	Then      Node
	Else      Node
}

// Return return 语句（Value 可为 nil）
type Return struct {
	Value Node
}

// Throw throw 语句
type Throw struct {
	Value Node
}

// Break break 语句（Label 可为空）
type Break struct {
	Label string
}

// Continue continue 语句（Label 可为空）
type Continue struct {
	Label string
}

// Label 带标签语句
type Label struct {
	Name string
	Node Node
}

// Function 函数或 lambda
// Name 为空时输出为 [=] 捕获的 C++ lambda
// TemplateParams 与 ReturnType 是结构化字段，不再打包进名称字符串
type Function struct {
	Name           string
	TemplateParams []string
	Params         []string
	ReturnType     string
	Body           Node
}

// StructField 数据构造器结构体的字段
type StructField struct {
	Name string
	Type string
}

// Struct 代数数据类型构造器声明
// 输出为继承自所属类型的结构体，附带按字段位置初始化的构造函数
// 以及一个静态 create 函数（由 Create 经普通函数规则输出）
type Struct struct {
	Name           string
	Parent         string
	TemplateParams []string
	Fields         []StructField
	Create         *Function
}

// Accessor 成员访问
type Accessor struct {
	Name   string
	Target Node
}

// Indexer 下标访问
type Indexer struct {
	Index  Node
	Target Node
}

// App 函数调用
type App struct {
	Callee Node
	Args   []Node
}

// Unary 一元运算
type Unary struct {
	Op      UnaryOp
	Operand Node
}

// Binary 二元运算
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

// Conditional 三目条件运算
type Conditional struct {
	Condition Node
	Then      Node
	Else      Node
}

// Cast 类型转换，输出为 cast<T>(value)
type Cast struct {
	Type  string
	Value Node
}

// TypeOf 类型自省
type TypeOf struct {
	Value Node
}

// InstanceOf 类型判定，输出为 instance_of<T>(value)
type InstanceOf struct {
	Value Node
	Type  string
}

// Construct 托管值构造
// 输出为 make_managed<T>(args...)，Finalized 时改用带终结器的分配入口
type Construct struct {
	Type      string
	Args      []Node
	Finalized bool
}

// Raw 原样输出的文本节点
// Text 为空时是指定的 no-op 标记，会从语句序列中被过滤
type Raw struct {
	Text string
}

// CommentText 单条注释（行注释或块注释）
type CommentText struct {
	Block bool
	Text  string
}

// Comment 注释节点，包裹内部节点，注释输出在其上方
type Comment struct {
	Comments []CommentText
	Node     Node
}

func (*NumericLiteral) Kind() string       { return "NumericLiteral" }
func (*StringLiteral) Kind() string        { return "StringLiteral" }
func (*BoolLiteral) Kind() string          { return "BoolLiteral" }
func (*ArrayLiteral) Kind() string         { return "ArrayLiteral" }
func (*ObjectLiteral) Kind() string        { return "ObjectLiteral" }
func (*Block) Kind() string                { return "Block" }
func (*Namespace) Kind() string            { return "Namespace" }
func (*Var) Kind() string                  { return "Var" }
func (*VariableIntroduction) Kind() string { return "VariableIntroduction" }
func (*Assignment) Kind() string           { return "Assignment" }
func (*While) Kind() string                { return "While" }
func (*For) Kind() string                  { return "For" }
func (*ForIn) Kind() string                { return "ForIn" }
func (*IfElse) Kind() string               { return "IfElse" }
func (*Return) Kind() string               { return "Return" }
func (*Throw) Kind() string                { return "Throw" }
func (*Break) Kind() string                { return "Break" }
func (*Continue) Kind() string             { return "Continue" }
func (*Label) Kind() string                { return "Label" }
func (*Function) Kind() string             { return "Function" }
func (*Struct) Kind() string               { return "Struct" }
func (*Accessor) Kind() string             { return "Accessor" }
func (*Indexer) Kind() string              { return "Indexer" }
func (*App) Kind() string                  { return "App" }
func (*Unary) Kind() string                { return "Unary" }
func (*Binary) Kind() string               { return "Binary" }
func (*Conditional) Kind() string          { return "Conditional" }
func (*Cast) Kind() string                 { return "Cast" }
func (*TypeOf) Kind() string               { return "TypeOf" }
func (*InstanceOf) Kind() string           { return "InstanceOf" }
func (*Construct) Kind() string            { return "Construct" }
func (*Raw) Kind() string                  { return "Raw" }
func (*Comment) Kind() string              { return "Comment" }

// NoOp 返回 no-op 标记节点
func NoOp() *Raw {
	return &Raw{}
}

// IsNoOp 判断节点是否为 no-op 标记（空 Raw）
func IsNoOp(node Node) bool {
	raw, ok := node.(*Raw)
	return ok && raw.Text == ""
}
