package notifications

import (
	"fmt"
	"strings"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

// The orchestrator describes manual builds as "started by user <username>"
const startedByUserPrefix = "started by user "

const anonymous = "anonymous"

// Notification is a composed chat message with its color
type Notification struct {
	Text  string      `json:"text"`
	Color model.Color `json:"color"`
}

// ComposeStarted builds the message announcing a started build.
// Start messages are always green.
func ComposeStarted(buildServerURL string, project model.Project, build *model.Build) Notification {
	message := NewMessageBuilder(buildServerURL, project, build)

	if changes, ok := ChangeSummary(build); ok {
		message.Append(changes).AppendOpenLink()
	} else if build.Cause != nil {
		message.Append(build.Cause.ShortDescription).AppendOpenLink()
	} else {
		message.AppendStatusMessage(model.Success).
			AppendDuration().
			AppendOpenLink().
			AppendDetails()
	}

	return Notification{Text: message.String(), Color: model.Green}
}

// ComposeCompleted builds the status message of a finished build, and the optional
// mention message directed at the committers or at the user who launched the build.
// Whether they should be sent at all is decided by ShouldNotify.
func ComposeCompleted(
	buildServerURL string,
	project model.Project,
	build *model.Build,
	previousResult model.Result,
	config *model.JobNotificationConfig,
) (Notification, *Notification) {
	color := ColorFor(build.Result)
	primary := Notification{
		Text: NewMessageBuilder(buildServerURL, project, build).
			AppendStatusMessage(previousResult).
			AppendDuration().
			AppendOpenLink().
			AppendDetails().
			String(),
		Color: color,
	}

	if config == nil {
		return primary, nil
	}

	text, ok := mentionText(buildServerURL, build, config)
	if !ok {
		return primary, nil
	}
	return primary, &Notification{Text: text, Color: color}
}

// committers take priority over the builder
func mentionText(buildServerURL string, build *model.Build, config *model.JobNotificationConfig) (string, bool) {
	url := BuildURL(buildServerURL, build)

	if committers, ok := CommitAuthorsMentionList(build); ok && config.MentionCommitters {
		return fmt.Sprintf("%s - Your commits were included in build for %s, which had a status of %s. Go to %s to check out the details",
			committers,
			build.FullDisplayName,
			build.Result,
			url,
		), true
	}

	if config.MentionBuilders {
		builder := Initiator(build.Cause)
		if !strings.EqualFold(builder, anonymous) {
			return fmt.Sprintf("@%s - You launched a build for %s with a result of %s. Go to %s to check out the details",
				builder,
				build.FullDisplayName,
				build.Result,
				url,
			), true
		}
		return "A build was started by anonymous - it would be better if you log in next time!!", true
	}

	return "", false
}

// Initiator returns the user who launched the build. It prefers the user the orchestrator
// reported explicitly and falls back to parsing the cause description.
// Anything unparseable is treated as anonymous.
func Initiator(cause *model.Cause) string {
	if cause == nil {
		return anonymous
	}
	if cause.UserName != "" {
		return cause.UserName
	}
	if cause.UserID != "" {
		return cause.UserID
	}

	// TODO: drop the description parsing once every orchestrator sends userName
	if len(cause.ShortDescription) <= len(startedByUserPrefix) {
		return anonymous
	}
	builder := strings.TrimSpace(cause.ShortDescription[len(startedByUserPrefix):])
	if builder == "" {
		return anonymous
	}
	return builder
}
