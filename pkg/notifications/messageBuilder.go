package notifications

import (
	"strings"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

// MessageBuilder assembles a message in the fixed order fragments are appended.
// Every message starts with the project and build name.
type MessageBuilder struct {
	message        strings.Builder
	project        model.Project
	build          *model.Build
	buildServerURL string
}

func NewMessageBuilder(buildServerURL string, project model.Project, build *model.Build) *MessageBuilder {
	m := &MessageBuilder{
		project:        project,
		build:          build,
		buildServerURL: buildServerURL,
	}
	return m.startMessage()
}

func (m *MessageBuilder) startMessage() *MessageBuilder {
	m.message.WriteString(m.project.DisplayName)
	m.message.WriteString(" - ")
	m.message.WriteString(m.build.DisplayName)
	m.message.WriteString(" ")
	return m
}

func (m *MessageBuilder) Append(text string) *MessageBuilder {
	m.message.WriteString(text)
	return m
}

func (m *MessageBuilder) AppendStatusMessage(previousResult model.Result) *MessageBuilder {
	return m.Append(StatusPhrase(m.build.Building, m.build.Result, previousResult))
}

func (m *MessageBuilder) AppendDuration() *MessageBuilder {
	m.message.WriteString(" after ")
	m.message.WriteString(m.build.HumanDuration())
	return m
}

func (m *MessageBuilder) AppendOpenLink() *MessageBuilder {
	m.message.WriteString(" (<a href='")
	m.message.WriteString(BuildURL(m.buildServerURL, m.build))
	m.message.WriteString("'>Open</a>)")
	return m
}

// AppendDetails adds the build cause and the change summary, each on a new line
func (m *MessageBuilder) AppendDetails() *MessageBuilder {
	m.message.WriteString("<br/>")
	if m.build.Cause != nil {
		m.message.WriteString(m.build.Cause.ShortDescription)
	}

	if changes, ok := ChangeSummary(m.build); ok {
		m.message.WriteString("<br/>")
		m.message.WriteString(changes)
	}
	return m
}

func (m *MessageBuilder) String() string {
	return m.message.String()
}

// BuildURL is the absolute link of a build
func BuildURL(buildServerURL string, build *model.Build) string {
	return buildServerURL + build.URL
}
