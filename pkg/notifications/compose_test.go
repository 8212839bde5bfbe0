package notifications

import (
	"strings"
	"testing"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/stretchr/testify/assert"
)

const buildServer = "https://ci.example.com/"

var project = model.Project{Name: "backend", DisplayName: "Backend"}

func failedBuild() *model.Build {
	return &model.Build{
		Number:          42,
		DisplayName:     "#42",
		FullDisplayName: "Backend #42",
		URL:             "job/backend/42/",
		Result:          model.Failure,
		DurationString:  "1 min 3 sec",
		Cause:           &model.Cause{ShortDescription: "started by user jdoe"},
		ChangeSet: &model.ChangeSet{
			Computed: true,
			Entries: []model.Entry{
				{Author: "alice", AffectedFiles: []string{"main.go", "go.mod"}},
			},
		},
	}
}

func TestChangeSummary(t *testing.T) {
	build := &model.Build{FullDisplayName: "Backend #1"}
	_, ok := ChangeSummary(build)
	assert.False(t, ok, "no change set")

	build.ChangeSet = &model.ChangeSet{
		Computed: false,
		Entries:  []model.Entry{{Author: "alice", AffectedFiles: []string{"a"}}},
	}
	_, ok = ChangeSummary(build)
	assert.False(t, ok, "entries of an uncomputed change set must not be touched")

	build.ChangeSet = &model.ChangeSet{Computed: true}
	_, ok = ChangeSummary(build)
	assert.False(t, ok, "computed but empty")

	build.ChangeSet = &model.ChangeSet{
		Computed: true,
		Entries: []model.Entry{
			{Author: "bob", AffectedFiles: []string{"a.go", "b.go"}},
			{Author: "alice", AffectedFiles: []string{"b.go", "c.go"}},
			{Author: "bob", AffectedFiles: []string{"a.go"}},
		},
	}
	summary, ok := ChangeSummary(build)
	assert.True(t, ok)
	assert.Equal(t, "- changes from alice, bob (3 file(s) changed)", summary)
	assert.Equal(t, 1, strings.Count(summary, "alice"))
	assert.Equal(t, 1, strings.Count(summary, "bob"))
}

func TestCommitAuthorsMentionList(t *testing.T) {
	build := &model.Build{
		ChangeSet: &model.ChangeSet{
			Computed: true,
			Entries: []model.Entry{
				{Author: "bob"},
				{Author: "alice"},
				{Author: "bob"},
			},
		},
	}
	mentions, ok := CommitAuthorsMentionList(build)
	assert.True(t, ok)
	assert.Equal(t, "@alice, @bob", mentions)

	build.ChangeSet.Entries = nil
	_, ok = CommitAuthorsMentionList(build)
	assert.False(t, ok)
}

func TestInitiator(t *testing.T) {
	assert.Equal(t, "jdoe", Initiator(&model.Cause{ShortDescription: "started by user jdoe"}))
	assert.Equal(t, "anonymous", Initiator(&model.Cause{ShortDescription: "started by user anonymous"}))
	assert.Equal(t, "anonymous", Initiator(&model.Cause{ShortDescription: "started by user "}))
	assert.Equal(t, "anonymous", Initiator(&model.Cause{ShortDescription: "SCM"}), "short causes must not panic")
	assert.Equal(t, "anonymous", Initiator(nil))
	assert.Equal(t, "Jane Doe", Initiator(&model.Cause{ShortDescription: "started by user jdoe", UserName: "Jane Doe"}))
	assert.Equal(t, "jdoe", Initiator(&model.Cause{ShortDescription: "Started by timer", UserID: "jdoe"}))
}

func TestComposeStarted(t *testing.T) {
	build := failedBuild()
	build.Building = true
	build.Result = model.InProgress

	n := ComposeStarted(buildServer, project, build)
	assert.Equal(t, model.Green, n.Color)
	assert.Equal(t,
		"Backend - #42 - changes from alice (2 file(s) changed) (<a href='https://ci.example.com/job/backend/42/'>Open</a>)",
		n.Text,
	)

	build.ChangeSet = &model.ChangeSet{Computed: false}
	n = ComposeStarted(buildServer, project, build)
	assert.Equal(t,
		"Backend - #42 started by user jdoe (<a href='https://ci.example.com/job/backend/42/'>Open</a>)",
		n.Text,
	)

	build.Cause = nil
	build.DurationString = "0 ms"
	n = ComposeStarted(buildServer, project, build)
	assert.Equal(t, model.Green, n.Color)
	assert.Equal(t,
		"Backend - #42 Starting... after 0 ms (<a href='https://ci.example.com/job/backend/42/'>Open</a>)<br/>",
		n.Text,
	)
}

func TestComposeCompletedFailureWithCommitters(t *testing.T) {
	build := failedBuild()
	config := &model.JobNotificationConfig{NotifyFailure: true, MentionCommitters: true}

	assert.True(t, ShouldNotify(build.Result, model.Success, config))
	primary, secondary := ComposeCompleted(buildServer, project, build, model.Success, config)

	assert.Equal(t, model.Red, primary.Color)
	assert.Contains(t, primary.Text, "<b>FAILURE </b>")
	assert.Contains(t, primary.Text, "(2 file(s) changed)")
	assert.Equal(t,
		"Backend - #42 <b>FAILURE </b> after 1 min 3 sec (<a href='https://ci.example.com/job/backend/42/'>Open</a>)"+
			"<br/>started by user jdoe<br/>- changes from alice (2 file(s) changed)",
		primary.Text,
	)

	if assert.NotNil(t, secondary) {
		assert.Equal(t, model.Red, secondary.Color)
		assert.True(t, strings.HasPrefix(secondary.Text, "@alice -"))
		assert.Contains(t, secondary.Text, "status of FAILURE")
		assert.Equal(t,
			"@alice - Your commits were included in build for Backend #42, which had a status of FAILURE. "+
				"Go to https://ci.example.com/job/backend/42/ to check out the details",
			secondary.Text,
		)
	}
}

func TestComposeCompletedBackToNormal(t *testing.T) {
	build := failedBuild()
	build.Result = model.Success
	config := &model.JobNotificationConfig{NotifyBackToNormal: true, NotifySuccess: false}

	assert.True(t, ShouldNotify(build.Result, model.Failure, config))
	primary, secondary := ComposeCompleted(buildServer, project, build, model.Failure, config)
	assert.Equal(t, model.Green, primary.Color)
	assert.True(t, strings.HasPrefix(primary.Text, "Backend - #42 Back to normal after 1 min 3 sec"))
	assert.Nil(t, secondary)
}

func TestComposeCompletedMentionsBuilder(t *testing.T) {
	build := failedBuild()
	build.Result = model.Unstable
	build.ChangeSet = nil
	config := &model.JobNotificationConfig{NotifyUnstable: true, MentionCommitters: true, MentionBuilders: true}

	primary, secondary := ComposeCompleted(buildServer, project, build, model.Success, config)
	assert.Equal(t, model.Yellow, primary.Color)
	if assert.NotNil(t, secondary) {
		assert.Equal(t,
			"@jdoe - You launched a build for Backend #42 with a result of UNSTABLE. "+
				"Go to https://ci.example.com/job/backend/42/ to check out the details",
			secondary.Text,
		)
		assert.Equal(t, model.Yellow, secondary.Color)
	}

	build.Cause = &model.Cause{ShortDescription: "started by user Anonymous"}
	_, secondary = ComposeCompleted(buildServer, project, build, model.Success, config)
	if assert.NotNil(t, secondary) {
		assert.Equal(t, "A build was started by anonymous - it would be better if you log in next time!!", secondary.Text)
		assert.NotContains(t, secondary.Text, "@")
	}
}

func TestComposeCompletedCommittersTakePriority(t *testing.T) {
	build := failedBuild()
	config := &model.JobNotificationConfig{NotifyFailure: true, MentionCommitters: true, MentionBuilders: true}

	_, secondary := ComposeCompleted(buildServer, project, build, model.Success, config)
	if assert.NotNil(t, secondary) {
		assert.True(t, strings.HasPrefix(secondary.Text, "@alice -"))
	}

	config.MentionCommitters = false
	_, secondary = ComposeCompleted(buildServer, project, build, model.Success, config)
	if assert.NotNil(t, secondary) {
		assert.True(t, strings.HasPrefix(secondary.Text, "@jdoe -"))
	}

	config.MentionBuilders = false
	_, secondary = ComposeCompleted(buildServer, project, build, model.Success, config)
	assert.Nil(t, secondary)

	_, secondary = ComposeCompleted(buildServer, project, build, model.Success, nil)
	assert.Nil(t, secondary)
}

func TestComposeIsIdempotent(t *testing.T) {
	config := &model.JobNotificationConfig{NotifyFailure: true, MentionCommitters: true}
	build := failedBuild()
	build.ChangeSet.Entries = append(build.ChangeSet.Entries,
		model.Entry{Author: "carol", AffectedFiles: []string{"x"}},
		model.Entry{Author: "bob", AffectedFiles: []string{"y"}},
	)

	firstPrimary, firstSecondary := ComposeCompleted(buildServer, project, build, model.Success, config)
	for i := 0; i < 10; i++ {
		primary, secondary := ComposeCompleted(buildServer, project, build, model.Success, config)
		assert.Equal(t, firstPrimary, primary)
		assert.Equal(t, *firstSecondary, *secondary)
	}
	assert.Equal(t, ComposeStarted(buildServer, project, build), ComposeStarted(buildServer, project, build))
}
