package notifications

import (
	"strings"
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
)

func TestDiscordMessage(t *testing.T) {
	msg := &buildMessage{
		text:   "Backend - #42 <b>FAILURE </b> after 1 min (<a href='https://ci/job/42/'>Open</a>)<br/>started by user jdoe",
		color:  model.Red,
		format: formatHTML,
	}

	discordMessage, err := msg.AsDiscordMessage()
	if err != nil {
		t.Errorf("Failed to create Discord message!")
	}

	if discordMessage.Text != "" {
		t.Errorf("Html messages must be sent as embeds")
	}
	if discordMessage.Embed.Color != 15158332 {
		t.Errorf("Failed builds must be red")
	}
	if !strings.Contains(discordMessage.Embed.Description, "**FAILURE** after") {
		t.Errorf("Failure marker must be bold, got %s", discordMessage.Embed.Description)
	}
	if !strings.Contains(discordMessage.Embed.Description, "([Open](https://ci/job/42/))") {
		t.Errorf("Open link must be a markdown link, got %s", discordMessage.Embed.Description)
	}
	if !strings.Contains(discordMessage.Embed.Description, "\nstarted by user jdoe") {
		t.Errorf("Line breaks must be translated, got %s", discordMessage.Embed.Description)
	}

	mention := &buildMessage{text: "@alice - Your commits", color: model.Green, format: formatText}
	discordMessage, err = mention.AsDiscordMessage()
	if err != nil {
		t.Errorf("Failed to create Discord message!")
	}
	if discordMessage.Text != "@alice - Your commits" || discordMessage.Embed != nil {
		t.Errorf("Text messages must be sent as is")
	}
}

func TestDiscordChannel(t *testing.T) {
	d := &DiscordProvider{
		ChannelID:      "123",
		ChannelMapping: map[string]string{"backend": "456"},
	}

	if ch := d.channel(&buildMessage{project: "frontend"}); ch != "123" {
		t.Errorf("Default channel expected, got %s", ch)
	}
	if ch := d.channel(&buildMessage{project: "backend"}); ch != "456" {
		t.Errorf("Mapped channel expected, got %s", ch)
	}
	if ch := d.channel(&buildMessage{project: "backend", room: "789"}); ch != "789" {
		t.Errorf("Room override expected, got %s", ch)
	}
}
