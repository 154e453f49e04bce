package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Pretty printer errors
	ErrUnsupportedNode: "代码生成不支持的结构: %s",

	// Constructor environment errors
	ErrMissingConstructor: "内部错误: 找不到构造器 %s 的元数据",

	// AST interchange codec errors
	ErrUnknownNodeKind: "未知的节点类型 '%s'",
	ErrBadNodeField:    "节点 '%s': 字段 '%s' 缺失或格式错误",
	ErrBadTypeNode:     "类型节点 '%s' 格式错误",

	// Configuration errors
	ErrBadMemoryStrategy: "无效的内存策略 '%s', 只支持 'arc' 或 'gc'",

	// CLI usage and help
	MsgUsage:          "用法: pscpp <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdBuild:       "  build     从编译后的模块文件生成 C++ 源代码",
	MsgCmdCheck:       "  check     打印模块文件中的构造器元数据",
	MsgCmdVersion:     "  version   打印版本信息",
	MsgCmdHelp:        "  help      显示帮助信息",
	MsgUseHelp:        "使用 'pscpp help' 查看用法。",
	MsgUnknownCommand: "未知命令: %s",

	// Build command
	MsgBuildUsage:       "用法: pscpp build [选项] <输入>",
	MsgBuildDescription: "从编译后的模块文件生成 C++ 源代码。",
	MsgBuildArgInput:    "  <输入>    模块 JSON 文件或包含模块文件的目录",
	MsgBuildOptOutput:   "生成代码的输出目录",
	MsgBuildOptVerbose:  "打印每个生成的模块",
	MsgBuildCompleted:   "构建完成: %s",
	MsgBuildCompletedV:  "构建完成, 输出已写入 %s",

	// Check command
	MsgCheckUsage:       "用法: pscpp check <输入>",
	MsgCheckDescription: "打印模块文件中的构造器元数据。",
	MsgCheckArgInput:    "  <输入>    模块 JSON 文件",
	MsgCheckCtor:        "%s: %s 构造器, 所属类型 %s, 参数个数 %d, nullary=%v, only=%v",

	// Common errors
	ErrInputRequired:     "必须指定输入文件或目录",
	ErrCannotAccessInput: "无法访问输入: %v",
	ErrCannotLoadConfig:  "无法加载配置: %v",
	ErrCannotReadFile:    "无法读取 %s: %v",
	ErrDecodeError:       "无法解码 %s: %v",
	ErrRenderError:       "无法生成模块 %s: %v",
	ErrNoModuleFiles:     "在 %s 中没有找到模块文件",
	ErrCannotCreateDir:   "无法创建目录 %s: %v",
	ErrCannotWriteFile:   "无法写入 %s: %v",

	// Info messages
	MsgUsingConfig:    "使用配置 %s (模块 %s)",
	MsgNoConfig:       "未找到配置文件, 使用默认值 (模块 %s)",
	MsgDecoding:       "解码 %s",
	MsgRendering:      "生成 %s -> %s",
	MsgMemoryStrategy: "内存策略: %s",
}
