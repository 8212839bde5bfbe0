package jobconfig

import (
	"fmt"

	"github.com/csconnell/hipchat-plugin/pkg/commands"
	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/enescakir/emoji"
	"github.com/urfave/cli/v2"
)

var configSetCmd = cli.Command{
	Name:  "set",
	Usage: "Changes the notification preferences of a project, flags not given are left as they are",
	UsageText: `hipchat-notify config set \
     --project backend \
     --notify-failure \
     --notify-back-to-normal \
     --mention-committers \
     --room "backend team" \
     --server http://hipchat-notify.mycompany.com \
     --token c012367f6e6f71de17ae4c6a7baac2e9`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "project",
			Usage:    "the project to configure",
			Required: true,
		},
		&cli.BoolFlag{Name: "notify-aborted", Usage: "notify when a build is aborted"},
		&cli.BoolFlag{Name: "notify-failure", Usage: "notify when a build fails"},
		&cli.BoolFlag{Name: "notify-not-built", Usage: "notify when a build is not built"},
		&cli.BoolFlag{Name: "notify-back-to-normal", Usage: "notify when a build succeeds after a failure"},
		&cli.BoolFlag{Name: "notify-success", Usage: "notify when a build succeeds"},
		&cli.BoolFlag{Name: "notify-unstable", Usage: "notify when a build is unstable"},
		&cli.BoolFlag{Name: "mention-committers", Usage: "mention the commit authors of a notified build"},
		&cli.BoolFlag{Name: "mention-builders", Usage: "mention the user who launched a notified build"},
		&cli.StringFlag{Name: "room", Usage: "room to notify instead of the default, empty string resets it"},
	}, commands.ServerFlags...),
	Action: set,
}

func set(c *cli.Context) error {
	client := commands.Client(c)

	config, err := client.JobConfigGet(c.String("project"))
	if err != nil {
		return err
	}

	apply(c, config)

	saved, err := client.JobConfigPost(config)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%v Preferences of %s saved\n\n", emoji.CheckMark, saved.Project)
	fmt.Fprint(c.App.Writer, Describe(saved))
	return nil
}

// apply overwrites the preferences that were given on the command line
func apply(c *cli.Context, config *model.JobNotificationConfig) {
	flags := map[string]*bool{
		"notify-aborted":        &config.NotifyAborted,
		"notify-failure":        &config.NotifyFailure,
		"notify-not-built":      &config.NotifyNotBuilt,
		"notify-back-to-normal": &config.NotifyBackToNormal,
		"notify-success":        &config.NotifySuccess,
		"notify-unstable":       &config.NotifyUnstable,
		"mention-committers":    &config.MentionCommitters,
		"mention-builders":      &config.MentionBuilders,
	}
	for name, field := range flags {
		if c.IsSet(name) {
			*field = c.Bool(name)
		}
	}
	if c.IsSet("room") {
		config.Room = c.String("room")
	}
	config.Project = c.String("project")
}
