package model

import (
	"fmt"
	"time"
)

type Result string

const (
	Success  Result = "SUCCESS"
	Failure  Result = "FAILURE"
	Unstable Result = "UNSTABLE"
	Aborted  Result = "ABORTED"
	NotBuilt Result = "NOT_BUILT"
	// InProgress is the result of a build that has not finished yet
	InProgress Result = ""
)

func (r Result) String() string {
	if r == InProgress {
		return "IN_PROGRESS"
	}
	return string(r)
}

type Color string

const (
	Green  Color = "green"
	Red    Color = "red"
	Yellow Color = "yellow"
)

const StartedEvent = "started"
const CompletedEvent = "completed"
const DeletedEvent = "deleted"
const FinalizedEvent = "finalized"

// Project is the pipeline or job a build belongs to
type Project struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Cause describes what triggered a build
type Cause struct {
	ShortDescription string `json:"shortDescription"`

	// UserID and UserName identify the user who launched the build, if the orchestrator knows it
	UserID   string `json:"userId,omitempty"`
	UserName string `json:"userName,omitempty"`
}

// Entry is one commit in a change set
type Entry struct {
	Author        string   `json:"author"`
	AffectedFiles []string `json:"affectedFiles"`
}

// ChangeSet holds the commits that went into a build.
// Computed is false until the orchestrator has calculated the changes.
type ChangeSet struct {
	Computed bool    `json:"computed"`
	Entries  []Entry `json:"entries"`
}

// Build is a single execution of a Project
type Build struct {
	Number          int    `json:"number"`
	DisplayName     string `json:"displayName"`
	FullDisplayName string `json:"fullDisplayName"`
	// URL is relative to the build server's base url
	URL            string     `json:"url"`
	Result         Result     `json:"result"`
	Building       bool       `json:"building"`
	Duration       int64      `json:"duration"`
	DurationString string     `json:"durationString,omitempty"`
	Cause          *Cause     `json:"cause,omitempty"`
	ChangeSet      *ChangeSet `json:"changeSet,omitempty"`

	Repository string `json:"repository,omitempty"`
	SHA        string `json:"sha,omitempty"`
}

// BuildEvent is the payload the orchestrator posts on every lifecycle transition
type BuildEvent struct {
	Project Project `json:"project"`
	Build   Build   `json:"build"`

	// PreviousResult is the result of the preceding build of the project.
	// When not set, the last recorded build is used.
	PreviousResult *Result `json:"previousResult,omitempty"`
}

// HumanDuration returns the orchestrator supplied duration text,
// or formats the duration in milliseconds if that is missing
func (b *Build) HumanDuration() string {
	if b.DurationString != "" {
		return b.DurationString
	}
	return timeSpanString(time.Duration(b.Duration) * time.Millisecond)
}

func timeSpanString(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second

	switch {
	case hours > 0:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%d min %d sec", minutes, seconds)
	case seconds >= 10:
		return fmt.Sprintf("%d sec", seconds)
	case seconds > 0:
		tenths := (d % time.Second) / (100 * time.Millisecond)
		return fmt.Sprintf("%d.%d sec", seconds, tenths)
	default:
		return fmt.Sprintf("%d ms", d/time.Millisecond)
	}
}
