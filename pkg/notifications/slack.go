package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/sirupsen/logrus"
)

const markdown = "mrkdwn"
const section = "section"

const slackPostMessageURL = "https://slack.com/api/chat.postMessage"

type SlackProvider struct {
	Token          string
	DefaultChannel string
	ChannelMapping map[string]string
	// APIURL overrides the chat.postMessage endpoint
	APIURL string
}

type slackMessage struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text"`
	Blocks      []Block      `json:"blocks,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	Elements []Text `json:"elements,omitempty"`
}

type Attachment struct {
	Color  string  `json:"color"`
	Blocks []Block `json:"blocks,omitempty"`
}

type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

var slackColors = map[model.Color]string{
	model.Green:  "good",
	model.Red:    "danger",
	model.Yellow: "warning",
}

func (bm *buildMessage) AsSlackMessage() (*slackMessage, error) {
	text := bm.text
	if bm.format == formatHTML {
		text = slackMarkup(text)
	}

	color, ok := slackColors[bm.color]
	if !ok {
		return nil, fmt.Errorf("unknown color: %s", bm.color)
	}

	return &slackMessage{
		Text: text,
		Attachments: []Attachment{
			{
				Color: color,
				Blocks: []Block{
					{
						Type: section,
						Text: &Text{
							Type: markdown,
							Text: text,
						},
					},
				},
			},
		},
	}, nil
}

func (s *SlackProvider) send(ctx context.Context, msg Message) error {
	slackMessage, err := msg.AsSlackMessage()
	if err != nil {
		return fmt.Errorf("cannot create slack message: %s", err)
	}

	if slackMessage == nil {
		return nil
	}

	slackMessage.Channel = s.channel(msg)

	return s.post(ctx, slackMessage)
}

func (s *SlackProvider) channel(msg Message) string {
	if msg.CustomChannel() != "" {
		return msg.CustomChannel()
	}

	if ch, ok := s.ChannelMapping[msg.Project()]; ok {
		return ch
	}

	return s.DefaultChannel
}

func (s *SlackProvider) post(ctx context.Context, msg *slackMessage) error {
	b := new(bytes.Buffer)
	err := json.NewEncoder(b).Encode(msg)
	if err != nil {
		logrus.Printf("Could encode message to slack: %v", err)
		return err
	}

	apiURL := s.APIURL
	if apiURL == "" {
		apiURL = slackPostMessageURL
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.Token))

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		logrus.Printf("could not post to slack: %v", err)
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("cannot read slack response: %s", err)
	}
	var parsed map[string]interface{}
	err = json.Unmarshal(body, &parsed)
	if err != nil {
		return fmt.Errorf("cannot parse slack response: %s", err)
	}
	if val, ok := parsed["ok"]; ok {
		if val != true {
			logrus.Infof("Slack response: %s", string(body))
		}
	} else {
		logrus.Infof("Slack response: %s", string(body))
	}

	if res.StatusCode != 200 {
		return fmt.Errorf("could not post to slack, status: %d", res.StatusCode)
	}

	return nil
}
