package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/config"
	"github.com/telia-oss/hydra-pr-jobsets/jobset"
	"github.com/telia-oss/hydra-pr-jobsets/log"
	"github.com/telia-oss/hydra-pr-jobsets/pullrequest"
)

func main() {
	cfg, err := config.LoadGenerate(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		os.Exit(2)
	}

	logger, err := log.New(cfg.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %s\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Errorw("generate failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Generate, logger *zap.SugaredLogger, stdin io.Reader, stdout io.Writer) error {
	jobConfig, err := cfg.JobConfig()
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	strategy, err := mode.Strategy()
	if err != nil {
		return err
	}

	prs, err := readPullRequests(cfg.PullRequestsFile, stdin)
	if err != nil {
		return err
	}

	output := jobsets.Build(prs, jobConfig, strategy)
	flakes := 0
	for _, j := range output {
		if j.IsFlake() {
			flakes++
		}
	}
	logger.Infow("generated jobsets",
		"pull_requests", len(prs),
		"jobsets", len(output),
		"flake", flakes,
		"legacy", len(output)-flakes,
		"mode", mode.String(),
	)

	// Encode everything before writing so a failure never leaves partial output.
	b, err := jobset.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal jobsets: %w", err)
	}
	if _, err := stdout.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write jobsets: %w", err)
	}
	return nil
}

func readPullRequests(path string, stdin io.Reader) (pullrequest.PullRequests, error) {
	if path == "-" {
		return pullrequest.Decode(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pull requests file: %w", err)
	}
	defer f.Close()

	return pullrequest.Decode(f)
}
