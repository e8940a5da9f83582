package jobsets

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Github for testing purposes.
//go:generate counterfeiter -o fakes/fake_github.go . Github
type Github interface {
	ListOpenPullRequests(context.Context) ([]*gh.PullRequest, error)
}

// GithubClient for handling requests to the Github V3 API.
type GithubClient struct {
	V3         *gh.Client
	Repository string
	Owner      string
	Log        *zap.SugaredLogger
}

// NewGithubClient builds a client whose requests pass through (outermost first)
// oauth2 token injection, the secondary rate limit handler and RetryTransport.
func NewGithubClient(s FetchSource, log *zap.SugaredLogger) (*GithubClient, error) {
	owner, repository, err := parseRepository(s.Repository)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	if s.SkipSSLVerification {
		base.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for GitHub Enterprise with self-signed certs
	}

	rateLimited := github_ratelimit.NewClient(&RetryTransport{Base: base, Log: log})
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, rateLimited)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: s.AccessToken},
	))

	v3 := gh.NewClient(client)
	if s.V3Endpoint != "" {
		v3, err = v3.WithEnterpriseURLs(s.V3Endpoint, s.V3Endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to parse v3 endpoint: %w", err)
		}
	}

	return &GithubClient{
		V3:         v3,
		Owner:      owner,
		Repository: repository,
		Log:        log,
	}, nil
}

// ListOpenPullRequests gets all open pull requests, following pagination.
func (m *GithubClient) ListOpenPullRequests(ctx context.Context) ([]*gh.PullRequest, error) {
	opt := &gh.PullRequestListOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var pulls []*gh.PullRequest
	for {
		result, response, err := m.V3.PullRequests.List(ctx, m.Owner, m.Repository, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests (page %d): %w", opt.Page, err)
		}
		m.Log.Debugw("listed pull requests",
			"repository", m.Owner+"/"+m.Repository,
			"page", opt.Page,
			"count", len(result),
			"rate_remaining", response.Rate.Remaining,
		)
		pulls = append(pulls, result...)
		if response.NextPage == 0 {
			break
		}
		opt.Page = response.NextPage
	}
	return pulls, nil
}
