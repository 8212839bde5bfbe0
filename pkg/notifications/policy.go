package notifications

import "github.com/csconnell/hipchat-plugin/pkg/model"

// ShouldNotify decides if a completed build is worth a message under the project's preferences.
// A missing config means no notifications.
func ShouldNotify(result, previousResult model.Result, config *model.JobNotificationConfig) bool {
	if config == nil {
		return false
	}

	return (result == model.Aborted && config.NotifyAborted) ||
		(result == model.Failure && config.NotifyFailure) ||
		(result == model.NotBuilt && config.NotifyNotBuilt) ||
		(result == model.Success && previousResult == model.Failure && config.NotifyBackToNormal) ||
		(result == model.Success && config.NotifySuccess) ||
		(result == model.Unstable && config.NotifyUnstable)
}

func ColorFor(result model.Result) model.Color {
	switch result {
	case model.Success:
		return model.Green
	case model.Failure:
		return model.Red
	default:
		return model.Yellow
	}
}

// StatusPhrase is the status text of a build.
// Back to normal must be checked before plain success.
func StatusPhrase(building bool, result, previousResult model.Result) string {
	if building {
		return "Starting..."
	}

	switch {
	case result == model.Success && previousResult == model.Failure:
		return "Back to normal"
	case result == model.Success:
		return "Success - "
	case result == model.Failure:
		return "<b>FAILURE </b>"
	case result == model.Aborted:
		return "ABORTED"
	case result == model.NotBuilt:
		return "Not built"
	case result == model.Unstable:
		return "Unstable"
	default:
		return "Unknown"
	}
}
