package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func failedEvent() *model.BuildEvent {
	return &model.BuildEvent{
		Project: model.Project{Name: "backend", DisplayName: "Backend"},
		Build: model.Build{
			Number:          42,
			DisplayName:     "#42",
			FullDisplayName: "Backend #42",
			URL:             "job/backend/42/",
			Result:          model.Failure,
			DurationString:  "1 min 3 sec",
			Cause:           &model.Cause{ShortDescription: "started by user jdoe"},
		},
	}
}

func Test_renderCompleted(t *testing.T) {
	config := &model.JobNotificationConfig{NotifyFailure: true, MentionBuilders: true}

	rendered, sent, err := Render(model.CompletedEvent, "https://ci.example.com/", failedEvent(), config)
	assert.Nil(t, err)
	assert.True(t, sent)
	if assert.Equal(t, 2, len(rendered)) {
		assert.Equal(t, model.Red, rendered[0].Color)
		assert.True(t, strings.HasPrefix(rendered[0].Text, "Backend - #42 <b>FAILURE </b> after 1 min 3 sec"))
		assert.True(t, strings.HasPrefix(rendered[1].Text, "@jdoe - You launched a build"))
	}

	rendered, sent, err = Render(model.CompletedEvent, "https://ci.example.com/", failedEvent(), nil)
	assert.Nil(t, err)
	assert.False(t, sent, "nothing is sent without preferences")
	assert.Equal(t, 1, len(rendered))
}

func Test_renderOtherEvents(t *testing.T) {
	event := failedEvent()
	event.Build.Building = true
	event.Build.Result = model.InProgress

	rendered, sent, err := Render(model.StartedEvent, "https://ci.example.com/", event, nil)
	assert.Nil(t, err)
	assert.True(t, sent)
	if assert.Equal(t, 1, len(rendered)) {
		assert.Equal(t, model.Green, rendered[0].Color)
	}

	rendered, _, err = Render(model.FinalizedEvent, "", event, nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(rendered))

	_, _, err = Render("exploded", "", event, nil)
	assert.NotNil(t, err)
}

func Test_previewCommand(t *testing.T) {
	dir := t.TempDir()
	eventFile := filepath.Join(dir, "event.json")
	err := os.WriteFile(eventFile, []byte(`{
  "project": {"name": "backend", "displayName": "Backend"},
  "build": {"number": 3, "fullDisplayName": "Backend #3", "url": "job/backend/3/", "result": "SUCCESS"},
  "previousResult": "FAILURE"
}`), 0644)
	assert.Nil(t, err)
	configFile := filepath.Join(dir, "config.json")
	err = os.WriteFile(configFile, []byte(`{"project": "backend", "notifyBackToNormal": true}`), 0644)
	assert.Nil(t, err)

	var out bytes.Buffer
	app := &cli.App{
		Name:     "hipchat-notify",
		Writer:   &out,
		Commands: []*cli.Command{&Command},
	}
	err = app.Run([]string{"hipchat-notify", "preview",
		"-f", eventFile,
		"--config", configFile,
		"--build-server-url", "https://ci.example.com/",
	})
	assert.Nil(t, err)
	assert.Contains(t, out.String(), "Back to normal")
	assert.Contains(t, out.String(), "<a href='https://ci.example.com/job/backend/3/'>Open</a>")
	assert.NotContains(t, out.String(), "not sent")
}
