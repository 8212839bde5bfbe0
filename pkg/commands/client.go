package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/csconnell/hipchat-plugin/pkg/client"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"
)

// ServerFlags are the connection flags of every command talking to the notifier server
var ServerFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "server",
		Usage:    "notifier server URL, HIPCHAT_NOTIFY_SERVER environment variable alternatively",
		EnvVars:  []string{"HIPCHAT_NOTIFY_SERVER"},
		Required: true,
	},
	&cli.StringFlag{
		Name:     "token",
		Usage:    "notifier server api token, HIPCHAT_NOTIFY_TOKEN environment variable alternatively",
		EnvVars:  []string{"HIPCHAT_NOTIFY_TOKEN"},
		Required: true,
	},
}

// Client returns an API client authenticated with the --token flag
func Client(c *cli.Context) client.Client {
	config := new(oauth2.Config)
	auth := config.Client(
		context.Background(),
		&oauth2.Token{
			AccessToken: c.String("token"),
		},
	)

	return client.NewClient(c.String("server"), auth)
}

// InputFile reads the named file, or stdin for "-"
func InputFile(file string) ([]byte, error) {
	if strings.TrimSpace(file) == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
