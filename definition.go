package jobsets

import (
	"fmt"
	"net/url"

	"github.com/telia-oss/hydra-pr-jobsets/jobset"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

// Strategy computes the definition of the jobset for a single pull request.
// It must return a jobset.Legacy or jobset.Flake; Build panics on nil.
type Strategy func(JobConfig, pullrequest.PullRequest) jobset.Definition

// FlakeDefinition points the jobset at the head commit of the PR over ssh.
func FlakeDefinition(_ JobConfig, pr pullrequest.PullRequest) jobset.Definition {
	q := url.Values{}
	q.Set("ref", pr.Head.Ref)
	q.Set("rev", pr.Head.SHA)

	return jobset.Flake{
		URI: fmt.Sprintf("git+ssh://%s?%s", pr.Head.Repo.SSHURL, q.Encode()),
	}
}

// LegacyDefinition adds the head commit of the PR to the input template
// under the configured input name, replacing any template entry with the
// same name.
func LegacyDefinition(cfg JobConfig, pr pullrequest.PullRequest) jobset.Definition {
	inputs := cfg.InputTemplate.Clone()
	inputs[cfg.InputName] = jobset.Input{
		Type:             "git",
		Value:            fmt.Sprintf("%s %s", pr.Head.Repo.GitURL, pr.Head.SHA),
		EmailResponsible: cfg.EmailResponsible,
	}

	return jobset.Legacy{
		NixExprInput: cfg.InputName,
		NixExprPath:  cfg.InputPath,
		Inputs:       inputs,
	}
}

// Mode selects one of the definition strategies.
type Mode int

// Modes
const (
	ModeLegacy Mode = iota
	ModeFlake
)

// ParseMode parses the name of a mode as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "legacy":
		return ModeLegacy, nil
	case "flake":
		return ModeFlake, nil
	default:
		return 0, fmt.Errorf("invalid definition mode: %q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeFlake:
		return "flake"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Strategy returns the definition strategy for m.
func (m Mode) Strategy() (Strategy, error) {
	switch m {
	case ModeLegacy:
		return LegacyDefinition, nil
	case ModeFlake:
		return FlakeDefinition, nil
	default:
		return nil, fmt.Errorf("invalid definition mode: %s", m)
	}
}
