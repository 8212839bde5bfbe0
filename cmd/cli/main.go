package main

import (
	"fmt"
	"os"

	"github.com/csconnell/hipchat-plugin/pkg/commands/build"
	"github.com/csconnell/hipchat-plugin/pkg/commands/jobconfig"
	"github.com/csconnell/hipchat-plugin/pkg/commands/preview"
	"github.com/csconnell/hipchat-plugin/pkg/version"
	"github.com/enescakir/emoji"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                 "hipchat-notify",
		Version:              version.String(),
		Usage:                "chat notifications of build results",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			&jobconfig.Command,
			&build.Command,
			&preview.Command,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.CrossMark, err.Error())
		os.Exit(1)
	}
}
