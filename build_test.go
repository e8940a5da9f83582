package jobsets_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/jobset"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

var testConfig = jobsets.JobConfig{
	CheckInterval:    300,
	SchedulingShares: 1,
	EnableEmail:      true,
	EmailOverride:    "ci@example.com",
	EmailResponsible: true,
	KeepNr:           3,
	InputName:        "src",
	InputPath:        "default.nix",
	InputTemplate: jobset.Inputs{
		"nixpkgs": {Type: "git", Value: "https://github.com/NixOS/nixpkgs.git"},
	},
}

func TestBuild(t *testing.T) {
	prs := pullrequest.PullRequests{
		"2": createTestPR("2", "feature/x", "abc123"),
		"1": createTestPR("1", "main", "def456"),
	}

	tests := []struct {
		description string
		prefix      string
		strategy    jobsets.Strategy
		expected    jobset.Jobsets
	}{
		{
			description: "legacy without prefix",
			strategy:    jobsets.LegacyDefinition,
			expected: jobset.Jobsets{
				"1": {
					Enabled:          true,
					Description:      "Change 1 by octocat: https://example.com/org/repo/pull/1",
					CheckInterval:    300,
					SchedulingShares: 1,
					EnableEmail:      true,
					EmailOverride:    "ci@example.com",
					KeepNr:           3,
					NixExprInput:     "src",
					NixExprPath:      "default.nix",
					Inputs: jobset.Inputs{
						"nixpkgs": {Type: "git", Value: "https://github.com/NixOS/nixpkgs.git"},
						"src":     {Type: "git", Value: "https://example.com/repo.git def456", EmailResponsible: true},
					},
				},
				"2": {
					Enabled:          true,
					Description:      "Change 2 by octocat: https://example.com/org/repo/pull/2",
					CheckInterval:    300,
					SchedulingShares: 1,
					EnableEmail:      true,
					EmailOverride:    "ci@example.com",
					KeepNr:           3,
					NixExprInput:     "src",
					NixExprPath:      "default.nix",
					Inputs: jobset.Inputs{
						"nixpkgs": {Type: "git", Value: "https://github.com/NixOS/nixpkgs.git"},
						"src":     {Type: "git", Value: "https://example.com/repo.git abc123", EmailResponsible: true},
					},
				},
			},
		},
		{
			description: "flake with pr- prefix",
			prefix:      "pr-",
			strategy:    jobsets.FlakeDefinition,
			expected: jobset.Jobsets{
				"pr-1": {
					Enabled:          true,
					Description:      "Change 1 by octocat: https://example.com/org/repo/pull/1",
					CheckInterval:    300,
					SchedulingShares: 1,
					EnableEmail:      true,
					EmailOverride:    "ci@example.com",
					KeepNr:           3,
					Flake:            "git+ssh://git@example.com:org/repo?ref=main&rev=def456",
					Inputs:           jobset.Inputs{},
				},
				"pr-2": {
					Enabled:          true,
					Description:      "Change 2 by octocat: https://example.com/org/repo/pull/2",
					CheckInterval:    300,
					SchedulingShares: 1,
					EnableEmail:      true,
					EmailOverride:    "ci@example.com",
					KeepNr:           3,
					Flake:            "git+ssh://git@example.com:org/repo?ref=feature%2Fx&rev=abc123",
					Inputs:           jobset.Inputs{},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			cfg := testConfig
			cfg.KeyPrefix = tc.prefix

			output := jobsets.Build(prs, cfg, tc.strategy)
			assert.Equal(t, tc.expected, output)
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	output := jobsets.Build(pullrequest.PullRequests{}, testConfig, jobsets.LegacyDefinition)
	assert.NotNil(t, output)
	assert.Empty(t, output)

	b, err := jobset.Marshal(output)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestBuildIsIdempotent(t *testing.T) {
	prs := pullrequest.PullRequests{
		"10": createTestPR("10", "a/b", "111"),
		"9":  createTestPR("9", "c&d", "222"),
		"1":  createTestPR("1", "e#f", "333"),
	}

	for _, strategy := range []jobsets.Strategy{jobsets.LegacyDefinition, jobsets.FlakeDefinition} {
		first, err := jobset.Marshal(jobsets.Build(prs, testConfig, strategy))
		require.NoError(t, err)
		second, err := jobset.Marshal(jobsets.Build(prs, testConfig, strategy))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestBuildDoesNotMutateTemplate(t *testing.T) {
	cfg := testConfig
	cfg.InputTemplate = jobset.Inputs{
		"src": {Type: "path", Value: "/template"},
	}
	prs := pullrequest.PullRequests{
		"1": createTestPR("1", "main", "111"),
		"2": createTestPR("2", "main", "222"),
	}

	output := jobsets.Build(prs, cfg, jobsets.LegacyDefinition)

	assert.Equal(t, jobset.Input{Type: "path", Value: "/template"}, cfg.InputTemplate["src"])
	assert.Equal(t, "https://example.com/repo.git 111", output["1"].Inputs["src"].Value)
	assert.Equal(t, "https://example.com/repo.git 222", output["2"].Inputs["src"].Value)
}

func TestBuildProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genPullRequests := gen.SliceOf(gen.Identifier()).Map(func(keys []string) pullrequest.PullRequests {
		prs := make(pullrequest.PullRequests, len(keys))
		for i, k := range keys {
			prs[k] = createTestPR(k, k, string(rune('a'+i%26)))
		}
		return prs
	})

	properties.Property("one jobset per pull request", prop.ForAll(
		func(prs pullrequest.PullRequests, prefix string, flake bool) bool {
			cfg := testConfig
			cfg.KeyPrefix = prefix
			strategy := jobsets.LegacyDefinition
			if flake {
				strategy = jobsets.FlakeDefinition
			}

			output := jobsets.Build(prs, cfg, strategy)
			if len(output) != len(prs) {
				return false
			}
			for key := range prs {
				flat, ok := output[jobsets.Key(cfg, key)]
				if !ok {
					return false
				}
				if flake != flat.IsFlake() {
					return false
				}
				if !flake && (flat.NixExprInput == "" || len(flat.Inputs) == 0 || flat.Flake != "") {
					return false
				}
				if flake && (flat.NixExprInput != "" || flat.NixExprPath != "" || len(flat.Inputs) != 0) {
					return false
				}
			}
			return true
		},
		genPullRequests,
		gen.OneConstOf("", "pr-"),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestBuildPanicsOnNilDefinition(t *testing.T) {
	prs := pullrequest.PullRequests{"1": createTestPR("1", "main", "abc")}
	nilStrategy := func(jobsets.JobConfig, pullrequest.PullRequest) jobset.Definition { return nil }

	assert.PanicsWithValue(t, "jobset: unsupported definition <nil>", func() {
		jobsets.Build(prs, testConfig, nilStrategy)
	})
}
