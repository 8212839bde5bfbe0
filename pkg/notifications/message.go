package notifications

import (
	"context"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

const formatHTML = "html"
const formatText = "text"

type Message interface {
	AsHipChatMessage() (*hipChatMessage, error)
	AsSlackMessage() (*slackMessage, error)
	AsDiscordMessage() (*discordMessage, error)
	Project() string
	CustomChannel() string
}

// ChatService publishes messages to a single room
type ChatService interface {
	// Publish sends an html formatted message
	Publish(ctx context.Context, message string, color model.Color) error
	// PublishText sends a plain text message, chat servers resolve @mentions in those
	PublishText(ctx context.Context, message string, color model.Color) error
}

type buildMessage struct {
	project string
	room    string
	text    string
	color   model.Color
	format  string
}

func (bm *buildMessage) Project() string {
	return bm.project
}

func (bm *buildMessage) CustomChannel() string {
	return bm.room
}
