package pullrequest

import (
	"strings"

	glob "github.com/sabhiram/go-gitignore"
)

// Filter reports whether a pull request should be skipped.
type Filter func(PullRequest) bool

// Fork returns true if forks are disabled && the PR head lives in another repository
func Fork(disabled bool) Filter {
	return func(p PullRequest) bool {
		return disabled && p.IsCrossRepository()
	}
}

// BaseBranch returns true if patterns are set & none of them match the PR base ref.
// Patterns use gitignore syntax, so "release/*" and "!release/old" both work.
func BaseBranch(patterns []string) (Filter, error) {
	if len(patterns) == 0 {
		return func(PullRequest) bool { return false }, nil
	}

	gc, err := glob.CompileIgnoreLines(patterns...)
	if err != nil {
		return nil, err
	}

	return func(p PullRequest) bool {
		ref := p.Base.Ref
		if !strings.HasPrefix(ref, "/") {
			ref = "/" + ref
		}
		return !gc.MatchesPath(ref)
	}, nil
}

// Associations returns true if allowed is set & the PR author's association is not in it.
func Associations(allowed []AuthorAssociation) Filter {
	return func(p PullRequest) bool {
		if len(allowed) == 0 {
			return false
		}
		for _, a := range allowed {
			if a == p.AuthorAssociation {
				return false
			}
		}
		return true
	}
}

// Skip reports whether any of the filters matches p.
func Skip(p PullRequest, filters ...Filter) bool {
	for _, f := range filters {
		if f(p) {
			return true
		}
	}
	return false
}

// IsCrossRepository is true when the head branch is pushed to a different
// repository than the base, i.e. the PR comes from a fork.
func (p PullRequest) IsCrossRepository() bool {
	return p.Head.Repo.SSHURL != p.Base.Repo.SSHURL
}
