package symbol

import (
	"github.com/pure11/pscpp/internal/i18n"
)

// DeclKind 构造器所属数据声明的种类
type DeclKind int

const (
	KindData DeclKind = iota
	KindNewtype
)

// String 返回种类的文本形式
func (k DeclKind) String() string {
	if k == KindNewtype {
		return "newtype"
	}
	return "data"
}

// Type 构造器函数类型的树表示
type Type interface {
	typeNode()
}

// ForAll 带量词的类型
type ForAll struct {
	Var  string // 量词引入的类型变量
	Body Type
}

// Fun 柯里化的函数类型
type Fun struct {
	Arg Type
	Ret Type
}

// Con 具名类型构造器
type Con struct {
	Name string
}

// TypeVar 类型变量
type TypeVar struct {
	Name string
}

// TypeApp 类型应用
type TypeApp struct {
	Fn  Type
	Arg Type
}

func (*ForAll) typeNode()  {}
func (*Fun) typeNode()     {}
func (*Con) typeNode()     {}
func (*TypeVar) typeNode() {}
func (*TypeApp) typeNode() {}

// Qualified 带模块限定的构造器引用
type Qualified struct {
	Module string // 定义模块名
	Name   string // 构造器名
}

// String 返回 Module.Name 形式的引用文本
func (q Qualified) String() string {
	if q.Module == "" {
		return q.Name
	}
	return q.Module + "." + q.Name
}

// Constructor 构造器的元数据，由前端编译环境提供
type Constructor struct {
	Module   string   // 定义模块名
	Name     string   // 构造器名
	TypeName string   // 所属类型名
	Kind     DeclKind // 所属声明的种类
	Type     Type     // 构造器的函数类型
}

// MissingConstructorError 环境中查不到构造器元数据
// 属于内部错误，类型检查阶段应当保证元数据存在
type MissingConstructorError struct {
	Ref Qualified
}

func (e *MissingConstructorError) Error() string {
	return i18n.T(i18n.ErrMissingConstructor, e.Ref.String())
}

// Table 构造器环境，构建完成后只读
type Table struct {
	ctors map[string]*Constructor // key: module.name
}

// New 创建一个新的构造器环境
func New() *Table {
	return &Table{
		ctors: make(map[string]*Constructor),
	}
}

// key 生成构造器的键
func key(module, name string) string {
	return module + "." + name
}

// Add 添加一个构造器
func (t *Table) Add(ctor *Constructor) {
	t.ctors[key(ctor.Module, ctor.Name)] = ctor
}

// Lookup 查找构造器元数据，找不到时返回 MissingConstructorError
func (t *Table) Lookup(ref Qualified) (*Constructor, error) {
	ctor := t.ctors[key(ref.Module, ref.Name)]
	if ctor == nil {
		return nil, &MissingConstructorError{Ref: ref}
	}
	return ctor, nil
}

// IsOnlyConstructor 判断构造器是否是所属类型唯一的构造器
// 只统计同一模块中同一所属类型的构造器
func (t *Table) IsOnlyConstructor(ref Qualified) (bool, error) {
	ctor, err := t.Lookup(ref)
	if err != nil {
		return false, err
	}
	count := 0
	for _, other := range t.ctors {
		if other.Module == ctor.Module && other.TypeName == ctor.TypeName {
			count++
		}
	}
	return count == 1, nil
}

// IsNewtypeConstructor 判断构造器是否属于 newtype 声明
func (t *Table) IsNewtypeConstructor(ref Qualified) (bool, error) {
	ctor, err := t.Lookup(ref)
	if err != nil {
		return false, err
	}
	return ctor.Kind == KindNewtype, nil
}

// Arity 计算构造器的参数个数
// 先剥掉头部量词，再统计柯里化函数类型的嵌套深度
func (t *Table) Arity(ref Qualified) (int, error) {
	ctor, err := t.Lookup(ref)
	if err != nil {
		return 0, err
	}
	return typeArity(ctor.Type), nil
}

// IsNullary 判断构造器是否没有参数
func (t *Table) IsNullary(ref Qualified) (bool, error) {
	n, err := t.Arity(ref)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// All 返回环境中的所有构造器
func (t *Table) All() []*Constructor {
	result := make([]*Constructor, 0, len(t.ctors))
	for _, ctor := range t.ctors {
		result = append(result, ctor)
	}
	return result
}

// typeArity 统计柯里化函数类型接受的参数个数
func typeArity(ty Type) int {
	ty = stripForAll(ty)
	n := 0
	for {
		fn, ok := ty.(*Fun)
		if !ok {
			return n
		}
		n++
		ty = fn.Ret
	}
}

// stripForAll 剥掉类型头部的所有量词
func stripForAll(ty Type) Type {
	for {
		fa, ok := ty.(*ForAll)
		if !ok {
			return ty
		}
		ty = fa.Body
	}
}
