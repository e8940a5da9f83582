// Package config loads the settings of the generate and fetch commands from
// flags, environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/env"
)

// EnvPrefix is the prefix of every environment variable read by viper.
const EnvPrefix = "HYDRA_JOBSETS"

// ErrConflictingDefinition is returned when a template is combined with flake
// jobsets, or when --mode disagrees with --flakes.
var ErrConflictingDefinition = errors.New("conflicting jobset definition options")

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

// Generate holds the configuration of the generate command.
type Generate struct {
	PullRequestsFile string `mapstructure:"-"`
	Template         string `mapstructure:"template"`
	Flakes           bool   `mapstructure:"flakes"`
	DefinitionMode   string `mapstructure:"mode"`
	CheckInterval    uint64 `mapstructure:"check_interval"`
	SchedulingShares uint64 `mapstructure:"scheduling_shares"`
	EmailEnable      bool   `mapstructure:"email_enable"`
	EmailOverride    string `mapstructure:"email_override"`
	EmailResponsible bool   `mapstructure:"email_responsible"`
	KeepEvaluations  uint64 `mapstructure:"keep_evaluations"`
	InputName        string `mapstructure:"input_name"`
	InputPath        string `mapstructure:"input_path"`
	KeyPrefix        string `mapstructure:"key_prefix"`

	LoggingConfig `mapstructure:",squash"`
}

// Validate ensures the options can be combined.
func (c Generate) Validate() error {
	if c.PullRequestsFile == "" {
		return errors.New("pull requests file is required")
	}
	mode, err := c.Mode()
	if err != nil {
		return err
	}
	if mode == jobsets.ModeFlake && c.Template != "" {
		return fmt.Errorf("%w: --template only applies to legacy jobsets", ErrConflictingDefinition)
	}
	if c.InputName == "" {
		return errors.New("input_name must not be empty")
	}
	if c.InputPath == "" {
		return errors.New("input_path must not be empty")
	}
	return nil
}

// Fetch holds the configuration of the fetch command.
type Fetch struct {
	Repository          string        `mapstructure:"repository"`
	AccessToken         string        `mapstructure:"access_token"`
	V3Endpoint          string        `mapstructure:"v3_endpoint"`
	SkipSSLVerification bool          `mapstructure:"skip_ssl_verification"`
	DisableForks        bool          `mapstructure:"disable_forks"`
	BaseBranches        []string      `mapstructure:"base_branches"`
	Associations        []string      `mapstructure:"associations"`
	Timeout             time.Duration `mapstructure:"timeout"`

	LoggingConfig `mapstructure:",squash"`
}

// Validate ensures required fields are present.
func (c Fetch) Validate() error {
	if c.Repository == "" || c.AccessToken == "" {
		return errors.New("repository & access_token are required")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// LoadGenerate parses the generate command line.
func LoadGenerate(args []string) (*Generate, error) {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.Usage = usage(fs, "generate [flags] <pull-requests-file | ->")
	fs.String("template", "", "JSON or YAML file with the inputs every legacy jobset starts from")
	fs.Bool("flakes", false, "generate flake jobsets instead of legacy ones")
	fs.String("mode", "", `jobset definition mode, "legacy" or "flake" (defaults to legacy unless --flakes is set)`)
	fs.Uint64("check-interval", 300, "seconds between evaluations")
	fs.Uint64("scheduling-shares", 1, "scheduling shares of each jobset")
	fs.Bool("email-enable", false, "enable email notifications")
	fs.String("email-override", "", "send notifications to this address")
	fs.Bool("email-responsible", false, "email the authors of commits in the PR if something fails")
	fs.Uint64("keep-evaluations", 3, "number of evaluations to keep")
	fs.String("input-name", "src", "name of the input holding the pull request")
	fs.String("input-path", "default.nix", "path of the nix expression inside the input")
	fs.String("key-prefix", "", `prefix of every jobset name, e.g. "pr-"`)

	v, err := load(fs, args)
	if err != nil {
		return nil, err
	}

	var cfg Generate
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one pull requests file, got %d arguments", fs.NArg())
	}
	cfg.PullRequestsFile = fs.Arg(0)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFetch parses the fetch command line. The access token and endpoint
// fall back to the GitHub environment when not set otherwise.
func LoadFetch(args []string, github env.Github) (*Fetch, error) {
	fs := pflag.NewFlagSet("fetch", pflag.ContinueOnError)
	fs.Usage = usage(fs, "fetch [flags] --repository owner/name")
	fs.String("repository", "", "repository to list open pull requests of, as owner/name")
	fs.String("access-token", "", "GitHub access token")
	fs.String("v3-endpoint", "", "GitHub Enterprise API endpoint")
	fs.Bool("skip-ssl-verification", false, "skip TLS verification of the GitHub endpoint")
	fs.Bool("disable-forks", false, "skip pull requests from forks")
	fs.StringSlice("base-branches", nil, "only keep pull requests targeting branches matching these gitignore-style patterns")
	fs.StringSlice("associations", nil, "only keep pull requests whose author has one of these associations, e.g. MEMBER,OWNER")
	fs.Duration("timeout", 5*time.Minute, "timeout for talking to GitHub")

	v, err := load(fs, args)
	if err != nil {
		return nil, err
	}
	if github.Token != "" {
		v.SetDefault("access_token", github.Token)
	}
	if github.APIURL != "" {
		v.SetDefault("v3_endpoint", github.APIURL)
	}

	var cfg Fetch
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// load registers the flags shared by both commands, parses args and binds
// every flag to the viper key with dashes replaced by underscores.
func load(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	fs.String("config", "", "config file (JSON, YAML or TOML) with the same keys as the flags")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func usage(fs *pflag.FlagSet, synopsis string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s\n\n%s", synopsis, fs.FlagUsages())
	}
}
