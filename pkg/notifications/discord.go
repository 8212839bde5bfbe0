package notifications

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/csconnell/hipchat-plugin/pkg/model"
)

type DiscordProvider struct {
	Token          string
	ChannelID      string
	ChannelMapping map[string]string
}

type discordMessage struct {
	Text  string                  `json:"text"`
	Embed *discordgo.MessageEmbed `json:"embed"`
}

var discordColors = map[model.Color]int{
	model.Green:  3066993,
	model.Red:    15158332,
	model.Yellow: 16776960,
}

// Html messages go out as a colored embed, plain text ones as a regular message
func (bm *buildMessage) AsDiscordMessage() (*discordMessage, error) {
	if bm.format == formatText {
		return &discordMessage{Text: bm.text}, nil
	}

	color, ok := discordColors[bm.color]
	if !ok {
		return nil, fmt.Errorf("unknown color: %s", bm.color)
	}

	return &discordMessage{
		Embed: &discordgo.MessageEmbed{
			Type:        "article",
			Description: discordMarkup(bm.text),
			Color:       color,
		},
	}, nil
}

func (s *DiscordProvider) send(ctx context.Context, msg Message) error {
	discordBot, err := discordgo.New("Bot " + s.Token)
	if err != nil {
		return fmt.Errorf("error creating Discord session, %s", err)
	}

	discordMessage, err := msg.AsDiscordMessage()
	if err != nil {
		return fmt.Errorf("cannot create discord message: %s", err)
	}

	return s.post(ctx, discordBot, s.channel(msg), discordMessage)
}

func (s *DiscordProvider) channel(msg Message) string {
	if msg.CustomChannel() != "" {
		return msg.CustomChannel()
	}

	if ch, ok := s.ChannelMapping[msg.Project()]; ok {
		return ch
	}

	return s.ChannelID
}

func (s *DiscordProvider) post(ctx context.Context, d *discordgo.Session, channel string, msg *discordMessage) error {
	if msg.Text != "" {
		_, err := d.ChannelMessageSend(channel, msg.Text, discordgo.WithContext(ctx))
		if err != nil {
			return err
		}
	}

	if msg.Embed != nil {
		_, err := d.ChannelMessageSendEmbed(channel, msg.Embed, discordgo.WithContext(ctx))
		if err != nil {
			return err
		}
	}

	return nil
}
