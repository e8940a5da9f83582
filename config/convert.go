package config

import (
	"fmt"

	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/jobset"
)

// Mode is the definition mode selected by --mode, falling back to --flakes.
// Setting both is fine as long as they agree.
func (c Generate) Mode() (jobsets.Mode, error) {
	if c.DefinitionMode == "" {
		if c.Flakes {
			return jobsets.ModeFlake, nil
		}
		return jobsets.ModeLegacy, nil
	}

	mode, err := jobsets.ParseMode(c.DefinitionMode)
	if err != nil {
		return 0, err
	}
	if c.Flakes && mode != jobsets.ModeFlake {
		return 0, fmt.Errorf("%w: --flakes with --mode %s", ErrConflictingDefinition, mode)
	}
	return mode, nil
}

// JobConfig builds the job configuration, loading the template if one is set.
func (c Generate) JobConfig() (jobsets.JobConfig, error) {
	cfg := jobsets.JobConfig{
		CheckInterval:    c.CheckInterval,
		SchedulingShares: c.SchedulingShares,
		EnableEmail:      c.EmailEnable,
		EmailOverride:    c.EmailOverride,
		EmailResponsible: c.EmailResponsible,
		KeepNr:           c.KeepEvaluations,
		InputName:        c.InputName,
		InputPath:        c.InputPath,
		InputTemplate:    jobset.Inputs{},
		KeyPrefix:        c.KeyPrefix,
	}

	if c.Template != "" {
		inputs, err := LoadTemplate(c.Template)
		if err != nil {
			return jobsets.JobConfig{}, err
		}
		cfg.InputTemplate = inputs
	}

	if err := cfg.Validate(); err != nil {
		return jobsets.JobConfig{}, err
	}
	return cfg, nil
}

// Source converts the fetch configuration into a jobsets.FetchSource.
func (c Fetch) Source() jobsets.FetchSource {
	return jobsets.FetchSource{
		Repository:          c.Repository,
		AccessToken:         c.AccessToken,
		V3Endpoint:          c.V3Endpoint,
		SkipSSLVerification: c.SkipSSLVerification,
		DisableForks:        c.DisableForks,
		BaseBranches:        c.BaseBranches,
		Associations:        c.Associations,
	}
}
