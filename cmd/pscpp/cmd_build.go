package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pure11/pscpp/internal/i18n"
)

// buildCmd 从编译后的模块文件生成 C++ 源码
func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outputDir := fs.String("o", "", i18n.T(i18n.MsgBuildOptOutput))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgBuildUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgBuildDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgBuildArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	output, err := generateInput(input, *outputDir, *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	if *verbose {
		fmt.Println(i18n.T(i18n.MsgBuildCompletedV, output))
	} else {
		fmt.Println(i18n.T(i18n.MsgBuildCompleted, output))
	}
}
