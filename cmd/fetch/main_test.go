package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v82/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/fakes"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

func TestRun(t *testing.T) {
	repo := &gh.Repository{GitURL: gh.Ptr("git://github.com/org/repo.git"), SSHURL: gh.Ptr("git@github.com:org/repo.git")}
	github := new(fakes.FakeGithub)
	github.ListOpenPullRequestsReturns([]*gh.PullRequest{{
		Number:            gh.Ptr(3),
		Title:             gh.Ptr("A & B"),
		HTMLURL:           gh.Ptr("https://github.com/org/repo/pull/3"),
		AuthorAssociation: gh.Ptr("OWNER"),
		User:              &gh.User{Login: gh.Ptr("octocat")},
		Base:              &gh.PullRequestBranch{Ref: gh.Ptr("main"), SHA: gh.Ptr("1"), Repo: repo, User: &gh.User{Login: gh.Ptr("org")}},
		Head:              &gh.PullRequestBranch{Ref: gh.Ptr("x"), SHA: gh.Ptr("2"), Repo: repo, User: &gh.User{Login: gh.Ptr("octocat")}},
	}}, nil)

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), jobsets.FetchSource{Repository: "org/repo", AccessToken: "x"}, github, zap.NewNop().Sugar(), &stdout))
	assert.Contains(t, stdout.String(), `"title":"A & B"`)
	assert.Contains(t, stdout.String(), `"number":"3"`)

	// The output is the input of generate.
	prs, err := pullrequest.Decode(&stdout)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, prs.Keys())
	assert.Equal(t, pullrequest.Owner, prs["3"].AuthorAssociation)
}

func TestRunError(t *testing.T) {
	github := new(fakes.FakeGithub)
	github.ListOpenPullRequestsReturns(nil, errors.New("boom"))

	var stdout bytes.Buffer
	assert.Error(t, run(context.Background(), jobsets.FetchSource{}, github, zap.NewNop().Sugar(), &stdout))
	assert.Empty(t, stdout.String())
}
