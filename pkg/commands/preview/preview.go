package preview

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/csconnell/hipchat-plugin/pkg/commands"
	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/notifications"
	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "preview",
	Usage: "Renders the chat messages of a build event locally, without sending them",
	UsageText: `hipchat-notify preview \
     --event completed \
     -f event.json \
     --config backend.json \
     --build-server-url https://ci.mycompany.com/`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "event",
			Usage: "started or completed",
			Value: model.CompletedEvent,
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "build event json file, - for stdin",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "notification preferences json file, as returned by config get -o json",
		},
		&cli.StringFlag{
			Name:    "build-server-url",
			Usage:   "base url of the build server, BUILD_SERVER_URL environment variable alternatively",
			EnvVars: []string{"BUILD_SERVER_URL"},
		},
	},
	Action: preview,
}

func preview(c *cli.Context) error {
	contents, err := commands.InputFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("cannot read event file: %s", err)
	}
	var event model.BuildEvent
	err = json.Unmarshal(contents, &event)
	if err != nil {
		return fmt.Errorf("cannot parse event: %s", err)
	}

	var config *model.JobNotificationConfig
	if c.String("config") != "" {
		contents, err := commands.InputFile(c.String("config"))
		if err != nil {
			return fmt.Errorf("cannot read config file: %s", err)
		}
		config = new(model.JobNotificationConfig)
		err = json.Unmarshal(contents, config)
		if err != nil {
			return fmt.Errorf("cannot parse config: %s", err)
		}
	}

	rendered, sent, err := Render(c.String("event"), c.String("build-server-url"), &event, config)
	if err != nil {
		return err
	}

	printNotifications(c.App.Writer, rendered, sent)
	return nil
}

// Render composes the messages of an event the way the notifier would.
// The returned bool tells if the notifier would send them under the given preferences.
func Render(
	eventType string,
	buildServerURL string,
	event *model.BuildEvent,
	config *model.JobNotificationConfig,
) ([]notifications.Notification, bool, error) {
	switch eventType {
	case model.StartedEvent:
		return []notifications.Notification{
			notifications.ComposeStarted(buildServerURL, event.Project, &event.Build),
		}, true, nil
	case model.CompletedEvent:
		previousResult := model.Success
		if event.PreviousResult != nil {
			previousResult = *event.PreviousResult
		}

		primary, secondary := notifications.ComposeCompleted(buildServerURL, event.Project, &event.Build, previousResult, config)
		rendered := []notifications.Notification{primary}
		if secondary != nil {
			rendered = append(rendered, *secondary)
		}
		return rendered, notifications.ShouldNotify(event.Build.Result, previousResult, config), nil
	case model.DeletedEvent, model.FinalizedEvent:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("unknown event %s", eventType)
	}
}

func printNotifications(w io.Writer, rendered []notifications.Notification, sent bool) {
	if len(rendered) == 0 {
		fmt.Fprintf(w, "%v No message for this event\n", emoji.CheckMark)
		return
	}
	if !sent {
		fmt.Fprintf(w, "%v These messages are not sent under the given preferences\n\n", emoji.Warning)
	}

	for _, n := range rendered {
		fmt.Fprintf(w, "%v %s\n", emoji.BackhandIndexPointingRight, colorize(n.Color)(fmt.Sprintf("[%s]", n.Color)))
		fmt.Fprintln(w, n.Text)
		fmt.Fprintln(w)
	}
}

func colorize(c model.Color) func(a ...interface{}) string {
	switch c {
	case model.Green:
		return color.New(color.FgGreen).SprintFunc()
	case model.Red:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgYellow).SprintFunc()
	}
}
