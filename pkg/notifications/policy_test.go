package notifications

import (
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
)

var allResults = []model.Result{
	model.Success,
	model.Failure,
	model.Unstable,
	model.Aborted,
	model.NotBuilt,
	model.InProgress,
}

func TestShouldNotify(t *testing.T) {
	// every combination of the six notify flags
	for mask := 0; mask < 64; mask++ {
		config := &model.JobNotificationConfig{
			NotifyAborted:      mask&1 != 0,
			NotifyFailure:      mask&2 != 0,
			NotifyNotBuilt:     mask&4 != 0,
			NotifyBackToNormal: mask&8 != 0,
			NotifySuccess:      mask&16 != 0,
			NotifyUnstable:     mask&32 != 0,
		}

		for _, result := range allResults {
			for _, previous := range allResults {
				var expected bool
				switch result {
				case model.Aborted:
					expected = config.NotifyAborted
				case model.Failure:
					expected = config.NotifyFailure
				case model.NotBuilt:
					expected = config.NotifyNotBuilt
				case model.Success:
					expected = config.NotifySuccess ||
						(previous == model.Failure && config.NotifyBackToNormal)
				case model.Unstable:
					expected = config.NotifyUnstable
				default:
					expected = false
				}

				assert.Equal(t, expected, ShouldNotify(result, previous, config),
					"result: %s, previous: %s, config: %+v", result, previous, config)
			}
		}
	}
}

func TestShouldNotifyWithoutConfig(t *testing.T) {
	for _, result := range allResults {
		assert.False(t, ShouldNotify(result, model.Failure, nil))
	}
}

func TestShouldNotifyBackToNormal(t *testing.T) {
	config := &model.JobNotificationConfig{NotifyBackToNormal: true}
	assert.True(t, ShouldNotify(model.Success, model.Failure, config))
	assert.False(t, ShouldNotify(model.Success, model.Success, config))
	assert.False(t, ShouldNotify(model.Success, model.Unstable, config), "only a failure counts as broken")
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, model.Green, ColorFor(model.Success))
	assert.Equal(t, model.Red, ColorFor(model.Failure))
	assert.Equal(t, model.Yellow, ColorFor(model.Unstable))
	assert.Equal(t, model.Yellow, ColorFor(model.Aborted))
	assert.Equal(t, model.Yellow, ColorFor(model.NotBuilt))
	assert.Equal(t, model.Yellow, ColorFor(model.InProgress))
	assert.Equal(t, model.Yellow, ColorFor(model.Result("SOMETHING_NEW")))

	for _, result := range allResults {
		assert.Contains(t, []model.Color{model.Green, model.Red, model.Yellow}, ColorFor(result))
	}
}

func TestStatusPhrase(t *testing.T) {
	for _, result := range allResults {
		for _, previous := range allResults {
			assert.Equal(t, "Starting...", StatusPhrase(true, result, previous))
		}
	}

	assert.Equal(t, "Back to normal", StatusPhrase(false, model.Success, model.Failure))
	assert.Equal(t, "Success - ", StatusPhrase(false, model.Success, model.Success))
	assert.Equal(t, "Success - ", StatusPhrase(false, model.Success, model.Unstable))
	assert.Equal(t, "<b>FAILURE </b>", StatusPhrase(false, model.Failure, model.Success))
	assert.Equal(t, "ABORTED", StatusPhrase(false, model.Aborted, model.Success))
	assert.Equal(t, "Not built", StatusPhrase(false, model.NotBuilt, model.Success))
	assert.Equal(t, "Unstable", StatusPhrase(false, model.Unstable, model.Success))
	assert.Equal(t, "Unknown", StatusPhrase(false, model.InProgress, model.Success))
}
