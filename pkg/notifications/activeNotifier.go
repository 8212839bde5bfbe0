package notifications

import (
	"context"
	"fmt"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/sirupsen/logrus"
)

// JobConfigs looks up the notification preferences of a project.
// A nil config without error means the project has none.
type JobConfigs interface {
	JobConfig(project string) (*model.JobNotificationConfig, error)
}

// ActiveNotifier reacts to build lifecycle events with chat messages.
// It is safe for concurrent use, all state is set at construction.
type ActiveNotifier struct {
	chat           Manager
	configs        JobConfigs
	statuses       CommitStatusPoster
	buildServerURL string
}

func NewActiveNotifier(
	chat Manager,
	configs JobConfigs,
	statuses CommitStatusPoster,
	buildServerURL string,
) *ActiveNotifier {
	return &ActiveNotifier{
		chat:           chat,
		configs:        configs,
		statuses:       statuses,
		buildServerURL: buildServerURL,
	}
}

// Started publishes the start notification of a build
func (n *ActiveNotifier) Started(ctx context.Context, project model.Project, build *model.Build) error {
	config, err := n.jobConfig(project)
	if err != nil {
		return err
	}

	n.postStatus(ctx, project, build)

	notification := ComposeStarted(n.buildServerURL, project, build)
	return n.chatService(project, config).Publish(ctx, notification.Text, notification.Color)
}

// Completed publishes the status of a finished build if the project asked for it,
// followed by the mention message when mentions are enabled
func (n *ActiveNotifier) Completed(ctx context.Context, project model.Project, build *model.Build, previousResult model.Result) error {
	config, err := n.jobConfig(project)
	if err != nil {
		return err
	}

	n.postStatus(ctx, project, build)

	logger := logrus.WithFields(logrus.Fields{
		"project":        project.Name,
		"build":          build.Number,
		"result":         build.Result,
		"previousResult": previousResult,
	})
	if !ShouldNotify(build.Result, previousResult, config) {
		logger.Debug("notification not requested")
		return nil
	}

	primary, secondary := ComposeCompleted(n.buildServerURL, project, build, previousResult, config)

	chat := n.chatService(project, config)
	err = chat.Publish(ctx, primary.Text, primary.Color)
	if err != nil {
		return err
	}
	logger.Info("build notification sent")

	if secondary != nil {
		return chat.PublishText(ctx, secondary.Text, secondary.Color)
	}
	return nil
}

func (n *ActiveNotifier) Deleted(ctx context.Context, project model.Project, build *model.Build) error {
	return nil
}

func (n *ActiveNotifier) Finalized(ctx context.Context, project model.Project, build *model.Build) error {
	return nil
}

// BuildServerURL is the base of the links in the messages
func (n *ActiveNotifier) BuildServerURL() string {
	return n.buildServerURL
}

func (n *ActiveNotifier) jobConfig(project model.Project) (*model.JobNotificationConfig, error) {
	if n.configs == nil {
		return nil, nil
	}
	config, err := n.configs.JobConfig(project.Name)
	if err != nil {
		return nil, fmt.Errorf("cannot load notification config of %s: %s", project.Name, err)
	}
	return config, nil
}

func (n *ActiveNotifier) chatService(project model.Project, config *model.JobNotificationConfig) ChatService {
	room := ""
	if config != nil {
		room = config.Room
	}
	return n.chat.ChatService(project.Name, room)
}

// commit statuses are a side channel, their failures never stop the chat message
func (n *ActiveNotifier) postStatus(ctx context.Context, project model.Project, build *model.Build) {
	if n.statuses == nil {
		return
	}
	err := n.statuses.PostStatus(ctx, n.buildServerURL, project, build)
	if err != nil {
		logrus.Warnf("cannot post commit status: %s", err)
	}
}
