package store

import (
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestJobConfigCreateAndRead(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	config, err := s.JobConfig("backend")
	assert.Nil(t, err)
	assert.Nil(t, config, "a project without preferences has no config")

	err = s.SaveJobConfig(&model.JobNotificationConfig{
		Project:           "backend",
		NotifyFailure:     true,
		MentionCommitters: true,
		Room:              "backend-team",
	})
	assert.Nil(t, err)

	config, err = s.JobConfig("backend")
	assert.Nil(t, err)
	assert.True(t, config.NotifyFailure)
	assert.True(t, config.MentionCommitters)
	assert.False(t, config.NotifySuccess)
	assert.Equal(t, "backend-team", config.Room)

	err = s.SaveJobConfig(&model.JobNotificationConfig{
		Project:       "backend",
		NotifySuccess: true,
	})
	assert.Nil(t, err)

	config, err = s.JobConfig("backend")
	assert.Nil(t, err)
	assert.False(t, config.NotifyFailure, "saving replaces the whole config")
	assert.True(t, config.NotifySuccess)
	assert.Equal(t, "", config.Room)

	err = s.SaveJobConfig(&model.JobNotificationConfig{Project: "frontend", NotifyUnstable: true})
	assert.Nil(t, err)

	configs, err := s.JobConfigs()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(configs))
	assert.Equal(t, "backend", configs[0].Project)
	assert.Equal(t, "frontend", configs[1].Project)
}
