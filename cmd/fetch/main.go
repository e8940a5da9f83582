package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	jobsets "github.com/telia-oss/hydra-pr-jobsets"
	"github.com/telia-oss/hydra-pr-jobsets/config"
	"github.com/telia-oss/hydra-pr-jobsets/env"
	"github.com/telia-oss/hydra-pr-jobsets/log"
)

func main() {
	cfg, err := config.LoadFetch(os.Args[1:], env.ReadGithub())
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	source := cfg.Source()
	if err := source.Validate(); err != nil {
		logger.Errorw("invalid source", "error", err)
		os.Exit(2) //nolint:gocritic // nothing to clean up yet
	}

	github, err := jobsets.NewGithubClient(source, logger)
	if err != nil {
		logger.Errorw("failed to create github client", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, source, github, logger, os.Stdout); err != nil {
		logger.Errorw("fetch failed", "error", err)
		_ = logger.Sync()
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, source jobsets.FetchSource, github jobsets.Github, logger *zap.SugaredLogger, stdout io.Writer) error {
	prs, err := jobsets.Fetch(ctx, source, github, logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(prs); err != nil {
		return fmt.Errorf("failed to marshal pull requests: %w", err)
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write pull requests: %w", err)
	}
	return nil
}
