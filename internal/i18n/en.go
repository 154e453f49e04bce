package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Pretty printer errors
	ErrUnsupportedNode: "unsupported construct in code generation: %s",

	// Constructor environment errors
	ErrMissingConstructor: "internal error: no constructor metadata for %s",

	// AST interchange codec errors
	ErrUnknownNodeKind: "unknown node kind '%s'",
	ErrBadNodeField:    "node '%s': bad or missing field '%s'",
	ErrBadTypeNode:     "bad type node '%s'",

	// Configuration errors
	ErrBadMemoryStrategy: "invalid memory strategy '%s', expected 'arc' or 'gc'",

	// CLI usage and help
	MsgUsage:          "Usage: pscpp <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdBuild:       "  build     Generate C++ sources from compiled module files",
	MsgCmdCheck:       "  check     Print constructor metadata from a module file",
	MsgCmdVersion:     "  version   Print version information",
	MsgCmdHelp:        "  help      Show this help message",
	MsgUseHelp:        "Use 'pscpp help' for usage.",
	MsgUnknownCommand: "unknown command: %s",

	// Build command
	MsgBuildUsage:       "Usage: pscpp build [options] <input>",
	MsgBuildDescription: "Generate C++ sources from compiled module files.",
	MsgBuildArgInput:    "  <input>   A module JSON file or a directory of module files",
	MsgBuildOptOutput:   "output directory for generated sources",
	MsgBuildOptVerbose:  "print each module as it is generated",
	MsgBuildCompleted:   "Build completed: %s",
	MsgBuildCompletedV:  "Build completed, output written to %s",

	// Check command
	MsgCheckUsage:       "Usage: pscpp check <input>",
	MsgCheckDescription: "Print constructor metadata from a module file.",
	MsgCheckArgInput:    "  <input>   A module JSON file",
	MsgCheckCtor:        "%s: %s constructor of %s, arity %d, nullary=%v, only=%v",

	// Common errors
	ErrInputRequired:     "input file or directory is required",
	ErrCannotAccessInput: "cannot access input: %v",
	ErrCannotLoadConfig:  "cannot load config: %v",
	ErrCannotReadFile:    "cannot read %s: %v",
	ErrDecodeError:       "cannot decode %s: %v",
	ErrRenderError:       "cannot generate module %s: %v",
	ErrNoModuleFiles:     "no module files found in %s",
	ErrCannotCreateDir:   "cannot create directory %s: %v",
	ErrCannotWriteFile:   "cannot write %s: %v",

	// Info messages
	MsgUsingConfig:    "Using config %s (module %s)",
	MsgNoConfig:       "No config file found, using defaults (module %s)",
	MsgDecoding:       "Decoding %s",
	MsgRendering:      "Generating %s -> %s",
	MsgMemoryStrategy: "Memory strategy: %s",
}
