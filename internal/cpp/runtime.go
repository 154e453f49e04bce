package cpp

// 运行时分配契约（见 purescript.hh）
// 打印器只输出这三个名字，不关心 GC / 引用计数的具体实现
const (
	RuntimeManaged              = "managed"
	RuntimeMakeManaged          = "make_managed"
	RuntimeMakeManagedFinalized = "make_managed_and_finalized"
)

// ManagedType 返回类型 T 的托管句柄别名 managed<T>
func ManagedType(name string) string {
	return RuntimeManaged + "<" + name + ">"
}
