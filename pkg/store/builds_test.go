package store

import (
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestPreviousResult(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	_, found, err := s.PreviousResult("backend", 1)
	assert.Nil(t, err)
	assert.False(t, found, "first build has no predecessor")

	_, err = s.SaveBuild("backend", 1, model.Success)
	assert.Nil(t, err)
	_, err = s.SaveBuild("backend", 2, model.Failure)
	assert.Nil(t, err)
	_, err = s.SaveBuild("frontend", 7, model.Unstable)
	assert.Nil(t, err)

	previous, found, err := s.PreviousResult("backend", 3)
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, model.Failure, previous)

	previous, found, err = s.PreviousResult("backend", 2)
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, model.Success, previous, "only builds before the given number count")

	_, found, err = s.PreviousResult("frontend", 7)
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestSaveBuildTwice(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	first, err := s.SaveBuild("backend", 1, model.Failure)
	assert.Nil(t, err)
	second, err := s.SaveBuild("backend", 1, model.Success)
	assert.Nil(t, err)
	assert.Equal(t, first.ID, second.ID)

	builds, err := s.Builds("backend", 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(builds))
	assert.Equal(t, "SUCCESS", builds[0].Result)
}

func TestBuilds(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	for i := 1; i <= 12; i++ {
		_, err := s.SaveBuild("backend", i, model.Success)
		assert.Nil(t, err)
	}

	builds, err := s.Builds("backend", 0)
	assert.Nil(t, err)
	assert.Equal(t, 10, len(builds))
	assert.Equal(t, 12, builds[0].Number, "newest first")

	builds, err = s.Builds("backend", 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(builds))
}
