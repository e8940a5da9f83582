// Package jobsets turns open pull requests into Hydra jobset definitions.
package jobsets

import (
	"fmt"

	"github.com/telia-oss/hydra-pr-jobsets/jobset"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

// Build creates one flattened jobset per pull request.
func Build(prs pullrequest.PullRequests, cfg JobConfig, strategy Strategy) jobset.Jobsets {
	jobsets := make(jobset.Jobsets, len(prs))
	for _, key := range prs.Keys() {
		jobsets[Key(cfg, key)] = jobset.Flatten(NewJobset(cfg, prs[key], strategy))
	}
	return jobsets
}

// NewJobset builds the jobset for a single pull request.
func NewJobset(cfg JobConfig, pr pullrequest.PullRequest, strategy Strategy) jobset.Jobset {
	return jobset.Jobset{
		Enabled:          true,
		Hidden:           false,
		Description:      Description(pr),
		CheckInterval:    cfg.CheckInterval,
		SchedulingShares: cfg.SchedulingShares,
		EnableEmail:      cfg.EnableEmail,
		EmailOverride:    cfg.EmailOverride,
		KeepNr:           cfg.KeepNr,
		Definition:       strategy(cfg, pr),
	}
}

// Description is the human readable jobset description shown in Hydra.
func Description(pr pullrequest.PullRequest) string {
	return fmt.Sprintf("%s by %s: %s", pr.Title, pr.User.Login, pr.HTMLURL)
}

// Key is the jobset name for the pull request stored under key.
func Key(cfg JobConfig, key string) string {
	return cfg.KeyPrefix + key
}
