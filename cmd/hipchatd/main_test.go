package main

import (
	"testing"

	"github.com/csconnell/hipchat-plugin/cmd/hipchatd/config"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"gotest.tools/assert"
)

func TestParseChannelMapping(t *testing.T) {
	config := &config.Config{
		Notifications: config.Notifications{
			ChannelMapping: "backend=backend-team, frontend = web team,broken",
		},
	}

	testChannelMap := parseChannelMap(config)

	assert.Equal(t, 2, len(testChannelMap))
	assert.Equal(t, "backend-team", testChannelMap["backend"])
	assert.Equal(t, "web team", testChannelMap["frontend"])
}

func TestSetupAdminUser(t *testing.T) {
	s := store.NewTest()
	defer s.Close()

	err := setupAdminUser(&config.Config{AdminToken: "aSecret"}, s)
	assert.NilError(t, err)

	admin, err := s.User("admin")
	assert.NilError(t, err)
	assert.Equal(t, true, admin.Admin)
	assert.Equal(t, "aSecret", admin.Secret)

	err = setupAdminUser(&config.Config{AdminToken: "anotherSecret", PrintAdminToken: true}, s)
	assert.NilError(t, err)
	admin, err = s.User("admin")
	assert.NilError(t, err)
	assert.Equal(t, "aSecret", admin.Secret, "an existing admin is kept")
}

func TestProviders(t *testing.T) {
	config := &config.Config{
		Notifications: config.Notifications{
			Token:          "aToken",
			DefaultChannel: "builds",
			ChannelMapping: "backend=backend-team",
			Server:         "https://hipchat.example.com",
		},
	}

	hipChat := hipChatNotificationProvider(config)
	assert.Equal(t, "https://hipchat.example.com", hipChat.Server)
	assert.Equal(t, "builds", hipChat.DefaultRoom)
	assert.Equal(t, "backend-team", hipChat.ChannelMapping["backend"])

	slack := slackNotificationProvider(config)
	assert.Equal(t, "builds", slack.DefaultChannel)

	discord := discordNotificationProvider(config)
	assert.Equal(t, "builds", discord.ChannelID)
}
