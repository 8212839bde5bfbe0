package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultHipChatServer = "https://api.hipchat.com"

type HipChatProvider struct {
	Server         string
	Token          string
	DefaultRoom    string
	ChannelMapping map[string]string
	Client         *http.Client
}

type hipChatMessage struct {
	Message       string `json:"message"`
	Color         string `json:"color"`
	Notify        bool   `json:"notify"`
	MessageFormat string `json:"message_format"`
}

// HipChat speaks the html subset and the color palette the composer produces, nothing to translate
func (bm *buildMessage) AsHipChatMessage() (*hipChatMessage, error) {
	return &hipChatMessage{
		Message:       bm.text,
		Color:         string(bm.color),
		Notify:        true,
		MessageFormat: bm.format,
	}, nil
}

func (h *HipChatProvider) send(ctx context.Context, msg Message) error {
	hipChatMessage, err := msg.AsHipChatMessage()
	if err != nil {
		return fmt.Errorf("cannot create hipchat message: %s", err)
	}

	if hipChatMessage == nil {
		return nil
	}

	room := h.room(msg)
	if room == "" {
		return fmt.Errorf("no hipchat room configured for %s", msg.Project())
	}

	return h.post(ctx, room, hipChatMessage)
}

func (h *HipChatProvider) room(msg Message) string {
	if msg.CustomChannel() != "" {
		return msg.CustomChannel()
	}

	if room, ok := h.ChannelMapping[msg.Project()]; ok {
		return room
	}

	return h.DefaultRoom
}

func (h *HipChatProvider) post(ctx context.Context, room string, msg *hipChatMessage) error {
	b := new(bytes.Buffer)
	err := json.NewEncoder(b).Encode(msg)
	if err != nil {
		logrus.Printf("could not encode message to hipchat: %v", err)
		return err
	}

	server := strings.TrimSuffix(h.Server, "/")
	if server == "" {
		server = defaultHipChatServer
	}
	endpoint := fmt.Sprintf("%s/v2/room/%s/notification", server, url.PathEscape(room))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.Token))

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		logrus.Printf("could not post to hipchat: %v", err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		logrus.Infof("HipChat response: %s", string(body))
		return fmt.Errorf("could not post to hipchat, status: %d", res.StatusCode)
	}

	return nil
}
