package i18n

// Message keys for the core code generator
const (
	// Pretty printer errors
	ErrUnsupportedNode = "printer.unsupported_node" // args: nodeKind

	// Constructor environment errors
	ErrMissingConstructor = "symbol.missing_constructor" // args: ctorRef
)

// Message keys for the AST interchange codec
const (
	ErrUnknownNodeKind = "cpp.unknown_node_kind" // args: kind
	ErrBadNodeField    = "cpp.bad_node_field"    // args: kind, field
	ErrBadTypeNode     = "cpp.bad_type_node"     // args: tag
)

// Message keys for configuration
const (
	ErrBadMemoryStrategy = "config.bad_memory" // args: value
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdBuild       = "cli.cmd_build"
	MsgCmdCheck       = "cli.cmd_check"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Build command
	MsgBuildUsage       = "cli.build_usage"
	MsgBuildDescription = "cli.build_description"
	MsgBuildArgInput    = "cli.build_arg_input"
	MsgBuildOptOutput   = "cli.build_opt_output"
	MsgBuildOptVerbose  = "cli.build_opt_verbose"
	MsgBuildCompleted   = "cli.build_completed"         // args: outputDir
	MsgBuildCompletedV  = "cli.build_completed_verbose" // args: outputDir

	// Check command
	MsgCheckUsage       = "cli.check_usage"
	MsgCheckDescription = "cli.check_description"
	MsgCheckArgInput    = "cli.check_arg_input"
	MsgCheckCtor        = "cli.check_ctor" // args: ref, kind, owner, arity, nullary, only

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotAccessInput = "cli.cannot_access_input" // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"    // args: path, error
	ErrDecodeError       = "cli.decode_error"        // args: path, error
	ErrRenderError       = "cli.render_error"        // args: module, error
	ErrNoModuleFiles     = "cli.no_module_files"     // args: dir
	ErrCannotCreateDir   = "cli.cannot_create_dir"   // args: path, error
	ErrCannotWriteFile   = "cli.cannot_write_file"   // args: path, error

	// Info messages
	MsgUsingConfig    = "cli.using_config" // args: configPath, module
	MsgNoConfig       = "cli.no_config"    // args: module
	MsgDecoding       = "cli.decoding"     // args: path
	MsgRendering      = "cli.rendering"    // args: module, output
	MsgMemoryStrategy = "cli.memory"       // args: strategy
)
