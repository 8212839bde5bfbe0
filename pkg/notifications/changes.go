package notifications

import (
	"fmt"
	"strings"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/sets"
)

// ChangeSummary renders the authors and the number of touched files of a build.
// It returns false if the change set is not computed yet or has no entries.
func ChangeSummary(build *model.Build) (string, bool) {
	authors, files, ok := collectChanges(build)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("- changes from %s (%d file(s) changed)",
		strings.Join(sets.List(authors), ", "),
		files.Len(),
	), true
}

// CommitAuthorsMentionList lists the commit authors as chat mentions
func CommitAuthorsMentionList(build *model.Build) (string, bool) {
	authors, _, ok := collectChanges(build)
	if !ok {
		return "", false
	}

	mentions := []string{}
	for _, author := range sets.List(authors) {
		mentions = append(mentions, "@"+author)
	}
	return strings.Join(mentions, ", "), true
}

func collectChanges(build *model.Build) (sets.Set[string], sets.Set[string], bool) {
	logger := logrus.WithField("build", build.FullDisplayName)

	if build.ChangeSet == nil || !build.ChangeSet.Computed {
		logger.Info("No change set computed...")
		return nil, nil, false
	}
	if len(build.ChangeSet.Entries) == 0 {
		logger.Info("Empty change...")
		return nil, nil, false
	}

	authors := sets.New[string]()
	files := sets.New[string]()
	for _, entry := range build.ChangeSet.Entries {
		logger.Debugf("Entry by %s touching %d file(s)", entry.Author, len(entry.AffectedFiles))
		authors.Insert(entry.Author)
		files.Insert(entry.AffectedFiles...)
	}

	return authors, files, true
}
