package pullrequest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

func pull(base string, fork bool, association pullrequest.AuthorAssociation) pullrequest.PullRequest {
	p := pullrequest.PullRequest{
		AuthorAssociation: association,
		Base: pullrequest.Branch{
			Ref:  base,
			Repo: pullrequest.Repo{SSHURL: "git@github.com:org/repo.git"},
		},
		Head: pullrequest.Branch{
			Ref:  "feature",
			Repo: pullrequest.Repo{SSHURL: "git@github.com:org/repo.git"},
		},
	}
	if fork {
		p.Head.Repo.SSHURL = "git@github.com:someone/repo.git"
	}
	return p
}

func TestFork(t *testing.T) {
	tests := []struct {
		description string
		disabled    bool
		pull        pullrequest.PullRequest
		expect      bool
	}{
		{
			description: "match",
			disabled:    true,
			pull:        pull("master", true, pullrequest.Contributor),
			expect:      true,
		},
		{
			description: "no match",
			disabled:    true,
			pull:        pull("master", false, pullrequest.Member),
			expect:      false,
		},
		{
			description: "no match disabled",
			disabled:    false,
			pull:        pull("master", true, pullrequest.Contributor),
			expect:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			out := pullrequest.Fork(tc.disabled)(tc.pull)
			assert.Equal(t, tc.expect, out)
		})
	}
}

func TestBaseBranch(t *testing.T) {
	tests := []struct {
		description string
		patterns    []string
		pull        pullrequest.PullRequest
		expect      bool
	}{
		{
			description: "no patterns",
			patterns:    nil,
			pull:        pull("master", false, pullrequest.Member),
			expect:      false,
		},
		{
			description: "exact match",
			patterns:    []string{"master"},
			pull:        pull("master", false, pullrequest.Member),
			expect:      false,
		},
		{
			description: "no match",
			patterns:    []string{"develop"},
			pull:        pull("master", false, pullrequest.Member),
			expect:      true,
		},
		{
			description: "glob match",
			patterns:    []string{"release/*"},
			pull:        pull("release/1.0", false, pullrequest.Member),
			expect:      false,
		},
		{
			description: "negated glob",
			patterns:    []string{"release/*", "!release/old"},
			pull:        pull("release/old", false, pullrequest.Member),
			expect:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			f, err := pullrequest.BaseBranch(tc.patterns)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, f(tc.pull))
		})
	}
}

func TestAssociations(t *testing.T) {
	tests := []struct {
		description string
		allowed     []pullrequest.AuthorAssociation
		pull        pullrequest.PullRequest
		expect      bool
	}{
		{
			description: "nothing configured",
			allowed:     nil,
			pull:        pull("master", true, pullrequest.FirstTimer),
			expect:      false,
		},
		{
			description: "allowed",
			allowed:     []pullrequest.AuthorAssociation{pullrequest.Member, pullrequest.Owner},
			pull:        pull("master", false, pullrequest.Owner),
			expect:      false,
		},
		{
			description: "not allowed",
			allowed:     []pullrequest.AuthorAssociation{pullrequest.Member, pullrequest.Owner},
			pull:        pull("master", true, pullrequest.FirstTimeContributor),
			expect:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			out := pullrequest.Associations(tc.allowed)(tc.pull)
			assert.Equal(t, tc.expect, out)
		})
	}
}

func TestSkip(t *testing.T) {
	p := pull("master", true, pullrequest.Contributor)

	assert.False(t, pullrequest.Skip(p))
	assert.False(t, pullrequest.Skip(p, pullrequest.Fork(false)))
	assert.True(t, pullrequest.Skip(p, pullrequest.Fork(false), pullrequest.Fork(true)))
}
