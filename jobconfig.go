package jobsets

import (
	"errors"

	"github.com/telia-oss/hydra-pr-jobsets/jobset"
)

// JobConfig holds the settings shared by every jobset of a run.
type JobConfig struct {
	CheckInterval    uint64
	SchedulingShares uint64
	EnableEmail      bool
	EmailOverride    string
	EmailResponsible bool
	KeepNr           uint64
	InputName        string
	InputPath        string
	InputTemplate    jobset.Inputs
	// KeyPrefix is prepended to every pull request key to form the jobset
	// name. Older deployments used "pr-".
	KeyPrefix string
}

// Validate the job configuration.
func (c JobConfig) Validate() error {
	if c.InputName == "" {
		return errors.New("input name is required")
	}
	if c.InputPath == "" {
		return errors.New("input path is required")
	}
	return nil
}
