package model

// JobNotificationConfig holds the notification preferences of a project
type JobNotificationConfig struct {
	ID int64 `json:"-" meddler:"id,pk"`

	// Project is the name of the project these preferences belong to
	// required: true
	Project string `json:"project" meddler:"project"`

	NotifyAborted      bool `json:"notifyAborted" meddler:"notify_aborted"`
	NotifyFailure      bool `json:"notifyFailure" meddler:"notify_failure"`
	NotifyNotBuilt     bool `json:"notifyNotBuilt" meddler:"notify_not_built"`
	NotifyBackToNormal bool `json:"notifyBackToNormal" meddler:"notify_back_to_normal"`
	NotifySuccess      bool `json:"notifySuccess" meddler:"notify_success"`
	NotifyUnstable     bool `json:"notifyUnstable" meddler:"notify_unstable"`

	MentionCommitters bool `json:"mentionCommitters" meddler:"mention_committers"`
	MentionBuilders   bool `json:"mentionBuilders" meddler:"mention_builders"`

	// Room overrides the default chat room, empty means the default room
	Room string `json:"room" meddler:"room"`
}
