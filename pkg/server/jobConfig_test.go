package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/stretchr/testify/assert"
)

func TestJobConfigAPI(t *testing.T) {
	s := store.NewTest()
	defer s.Close()
	chat, _ := fakeHipChat(t)
	defer chat.Close()
	server := setupTestServer(t, s, chat.URL)
	defer server.Close()
	tokenStr := createUser(t, s, "jenkins", false)

	resp, err := http.Get(server.URL + "/api/projects/backend/config?access_token=" + tokenStr)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var config model.JobNotificationConfig
	err = json.NewDecoder(resp.Body).Decode(&config)
	assert.Nil(t, err)
	assert.Equal(t, "backend", config.Project)
	assert.False(t, config.NotifyFailure, "everything is off by default")

	resp = post(t, server.URL+"/api/projects/backend/config", tokenStr, model.JobNotificationConfig{
		Project:         "ignored",
		NotifyFailure:   true,
		MentionBuilders: true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/projects/backend/config?access_token=" + tokenStr)
	assert.Nil(t, err)
	err = json.NewDecoder(resp.Body).Decode(&config)
	assert.Nil(t, err)
	assert.Equal(t, "backend", config.Project, "the project comes from the path")
	assert.True(t, config.NotifyFailure)
	assert.True(t, config.MentionBuilders)

	resp, err = http.Get(server.URL + "/api/configs?access_token=" + tokenStr)
	assert.Nil(t, err)
	var configs []*model.JobNotificationConfig
	err = json.NewDecoder(resp.Body).Decode(&configs)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(configs))

	resp = post(t, server.URL+"/api/projects/backend/config", tokenStr, "notAConfig")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
