package jobconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/csconnell/hipchat-plugin/pkg/commands"
	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "config",
	Usage: "Manages the notification preferences of projects",
	Subcommands: []*cli.Command{
		&configGetCmd,
		&configSetCmd,
		&configListCmd,
	},
}

var configGetCmd = cli.Command{
	Name:  "get",
	Usage: "Shows the notification preferences of a project",
	UsageText: `hipchat-notify config get \
     --project backend \
     --server http://hipchat-notify.mycompany.com \
     --token c012367f6e6f71de17ae4c6a7baac2e9`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "project",
			Usage:    "the project to show",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format, eg.: json",
		},
	}, commands.ServerFlags...),
	Action: get,
}

var configListCmd = cli.Command{
	Name:  "list",
	Usage: "Lists the projects that have notification preferences",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format, eg.: json",
		},
	}, commands.ServerFlags...),
	Action: list,
}

func get(c *cli.Context) error {
	config, err := commands.Client(c).JobConfigGet(c.String("project"))
	if err != nil {
		return err
	}

	if c.String("output") == "json" {
		return printJSON(config)
	}
	fmt.Print(Describe(config))
	return nil
}

func list(c *cli.Context) error {
	configs, err := commands.Client(c).JobConfigsGet()
	if err != nil {
		return err
	}

	if c.String("output") == "json" {
		return printJSON(configs)
	}
	for _, config := range configs {
		fmt.Println(Describe(config))
	}
	return nil
}

// Describe renders the preferences of a project for the terminal
func Describe(config *model.JobNotificationConfig) string {
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\n", blue(config.Project))
	for _, flag := range []struct {
		name  string
		value bool
	}{
		{"notify aborted", config.NotifyAborted},
		{"notify failure", config.NotifyFailure},
		{"notify not built", config.NotifyNotBuilt},
		{"notify back to normal", config.NotifyBackToNormal},
		{"notify success", config.NotifySuccess},
		{"notify unstable", config.NotifyUnstable},
		{"mention committers", config.MentionCommitters},
		{"mention builders", config.MentionBuilders},
	} {
		fmt.Fprintf(&b, "  %-22s %s\n", flag.name, onOff(flag.value))
	}

	room := config.Room
	if room == "" {
		room = gray("default")
	}
	fmt.Fprintf(&b, "  %-22s %s\n", "room", room)
	return b.String()
}

func onOff(value bool) string {
	if value {
		return color.New(color.FgGreen).Sprint("on")
	}
	return color.New(color.FgHiBlack).Sprint("off")
}

func printJSON(v interface{}) error {
	out := bytes.NewBufferString("")
	e := json.NewEncoder(out)
	e.SetIndent("", "  ")
	err := e.Encode(v)
	if err != nil {
		return fmt.Errorf("cannot serialize config %s", err)
	}
	fmt.Print(out)
	return nil
}
