package notifications

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/csconnell/hipchat-plugin/pkg/model"
	"github.com/google/go-github/v37/github"
	"golang.org/x/oauth2"
)

// CommitStatusPoster reflects build results on the built commit
type CommitStatusPoster interface {
	PostStatus(ctx context.Context, buildServerURL string, project model.Project, build *model.Build) error
}

type GithubProvider struct {
	token string
	// baseURL overrides the GitHub API endpoint, used for GitHub Enterprise
	baseURL string
}

func NewGithubProvider(token string, baseURL string) *GithubProvider {
	return &GithubProvider{
		token:   token,
		baseURL: baseURL,
	}
}

type status struct {
	state       string
	context     string
	description string
	targetURL   string
}

func statusOf(buildServerURL string, project model.Project, build *model.Build) *status {
	state := "error"
	switch {
	case build.Building:
		state = "pending"
	case build.Result == model.Success:
		state = "success"
	case build.Result == model.Failure:
		state = "failure"
	}

	description := fmt.Sprintf("%s %s", build.DisplayName, build.Result)
	if build.Building {
		description = fmt.Sprintf("%s is running", build.DisplayName)
	}

	return &status{
		state:       state,
		context:     "ci/" + project.Name,
		description: description,
		targetURL:   BuildURL(buildServerURL, build),
	}
}

// PostStatus is a no-op for builds that carry no repository and commit
func (g *GithubProvider) PostStatus(ctx context.Context, buildServerURL string, project model.Project, build *model.Build) error {
	if build.Repository == "" || build.SHA == "" {
		return nil
	}

	parts := strings.Split(build.Repository, "/")
	if len(parts) != 2 {
		return fmt.Errorf("cannot determine repo owner and name from %s", build.Repository)
	}
	owner := parts[0]
	repo := parts[1]

	s := statusOf(buildServerURL, project, build)
	return g.post(ctx, owner, repo, build.SHA, &github.RepoStatus{
		State:       &s.state,
		Context:     &s.context,
		Description: &s.description,
		TargetURL:   &s.targetURL,
	})
}

func (g *GithubProvider) post(ctx context.Context, owner string, repo string, sha string, status *github.RepoStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := g.client(ctx)
	if err != nil {
		return err
	}

	opts := &github.ListOptions{PerPage: 50}
	statuses, _, err := client.Repositories.ListStatuses(ctx, owner, repo, sha, opts)
	if err != nil {
		return fmt.Errorf("could not list commit statuses: %v", err)
	}
	if statusExists(statuses, status) {
		return nil
	}

	_, _, err = client.Repositories.CreateStatus(ctx, owner, repo, sha, status)
	if err != nil {
		return fmt.Errorf("could not create commit status: %v", err)
	}

	return nil
}

func (g *GithubProvider) client(ctx context.Context) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: g.token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if g.baseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(g.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %s", err)
		}
		client.BaseURL = baseURL
	}
	return client, nil
}

// statuses are listed newest first, only the latest one per context counts
func statusExists(statuses []*github.RepoStatus, status *github.RepoStatus) bool {
	for _, s := range statuses {
		if s.GetContext() == status.GetContext() {
			return s.GetState() == status.GetState() &&
				s.GetDescription() == status.GetDescription()
		}
	}

	return false
}
