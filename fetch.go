package jobsets

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	gh "github.com/google/go-github/v82/github"
	"go.uber.org/zap"

	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

// Fetch lists the open pull requests of the source repository and returns
// the ones that pass the configured filters, keyed by PR number.
func Fetch(ctx context.Context, source FetchSource, github Github, log *zap.SugaredLogger) (pullrequest.PullRequests, error) {
	associations, err := source.associations()
	if err != nil {
		return nil, err
	}
	baseBranch, err := pullrequest.BaseBranch(source.BaseBranches)
	if err != nil {
		return nil, fmt.Errorf("failed to compile base branch patterns: %w", err)
	}
	filters := []pullrequest.Filter{
		pullrequest.Fork(source.DisableForks),
		baseBranch,
		pullrequest.Associations(associations),
	}

	pulls, err := github.ListOpenPullRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open pull requests: %w", err)
	}

	prs := make(pullrequest.PullRequests, len(pulls))
	for _, p := range pulls {
		pr, err := convertPullRequest(p)
		if err != nil {
			return nil, fmt.Errorf("pull request #%d: %w", p.GetNumber(), err)
		}
		if pullrequest.Skip(pr, filters...) {
			log.Debugw("skipping pull request", "number", pr.Number, "base", pr.Base.Ref)
			continue
		}
		prs[string(pr.Number)] = pr
	}

	log.Infow("fetched pull requests", "repository", source.Repository, "open", len(pulls), "kept", len(prs))
	return prs, nil
}

func convertPullRequest(p *gh.PullRequest) (pullrequest.PullRequest, error) {
	association, err := pullrequest.ParseAuthorAssociation(p.GetAuthorAssociation())
	if err != nil {
		return pullrequest.PullRequest{}, err
	}
	head, err := convertBranch(p.GetHead())
	if err != nil {
		return pullrequest.PullRequest{}, fmt.Errorf("head: %w", err)
	}
	base, err := convertBranch(p.GetBase())
	if err != nil {
		return pullrequest.PullRequest{}, fmt.Errorf("base: %w", err)
	}

	return pullrequest.PullRequest{
		AuthorAssociation: association,
		Base:              base,
		Head:              head,
		HTMLURL:           p.GetHTMLURL(),
		Number:            pullrequest.Number(strconv.Itoa(p.GetNumber())),
		Title:             p.GetTitle(),
		User:              pullrequest.User{Login: p.GetUser().GetLogin()},
	}, nil
}

func convertBranch(b *gh.PullRequestBranch) (pullrequest.Branch, error) {
	if b == nil || b.Repo == nil {
		// The head repository of a PR from a deleted fork is null.
		return pullrequest.Branch{}, errors.New("repository is unavailable")
	}
	return pullrequest.Branch{
		Ref: b.GetRef(),
		Repo: pullrequest.Repo{
			GitURL: b.GetRepo().GetGitURL(),
			SSHURL: b.GetRepo().GetSSHURL(),
		},
		SHA:  b.GetSHA(),
		User: pullrequest.User{Login: b.GetUser().GetLogin()},
	}, nil
}
