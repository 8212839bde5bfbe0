package build

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/csconnell/hipchat-plugin/pkg/commands"
	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/rvflash/elapsed"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "build",
	Usage: "Sends build events and lists recorded builds",
	Subcommands: []*cli.Command{
		&buildNotifyCmd,
		&buildListCmd,
	},
}

var buildNotifyCmd = cli.Command{
	Name:  "notify",
	Usage: "Sends a build lifecycle event to the notifier, the way the build orchestrator does",
	UsageText: `hipchat-notify build notify \
     --event completed \
     -f event.json \
     --server http://hipchat-notify.mycompany.com \
     --token c012367f6e6f71de17ae4c6a7baac2e9`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "event",
			Usage: "started, completed, deleted or finalized",
			Value: model.CompletedEvent,
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "build event json file, - for stdin",
			Required: true,
		},
	}, commands.ServerFlags...),
	Action: notify,
}

var buildListCmd = cli.Command{
	Name:  "list",
	Usage: "Lists the recorded builds of a project",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "project",
			Usage:    "the project to list",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "limit the number of returned builds",
		},
	}, commands.ServerFlags...),
	Action: list,
}

func notify(c *cli.Context) error {
	contents, err := commands.InputFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("cannot read event file: %s", err)
	}

	var event model.BuildEvent
	err = json.Unmarshal(contents, &event)
	if err != nil {
		return fmt.Errorf("cannot parse event: %s", err)
	}

	err = commands.Client(c).EventPost(c.String("event"), &event)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%v %s event of %s #%d sent\n", emoji.CheckMark, c.String("event"), event.Project.Name, event.Build.Number)
	return nil
}

func list(c *cli.Context) error {
	builds, err := commands.Client(c).BuildsGet(c.String("project"), c.Int("limit"))
	if err != nil {
		return err
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	for _, build := range builds {
		created := time.Unix(build.Created, 0)
		fmt.Fprintf(c.App.Writer, "%s %s %s\n",
			yellow(fmt.Sprintf("#%d", build.Number)),
			colorOf(model.Result(build.Result)),
			gray(fmt.Sprintf("(%s)", elapsed.Time(created))),
		)
	}
	return nil
}

func colorOf(result model.Result) string {
	switch result {
	case model.Success:
		return color.New(color.FgGreen).Sprint(result)
	case model.Failure:
		return color.New(color.FgRed).Sprint(result)
	default:
		return color.New(color.FgYellow).Sprint(result)
	}
}
