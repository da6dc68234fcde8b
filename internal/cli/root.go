// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package cli parses arguments, wires the application together, and maps
// errors to exit codes. One subcommand is dispatched per invocation; each
// subcommand owns its flag set.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ransomwatch/ransomwatch/internal/adapter"
	"github.com/ransomwatch/ransomwatch/internal/config"
	"github.com/ransomwatch/ransomwatch/internal/logger"
	"github.com/ransomwatch/ransomwatch/internal/ratelimit"
	"github.com/ransomwatch/ransomwatch/internal/report"
	"github.com/ransomwatch/ransomwatch/internal/service"
	"github.com/ransomwatch/ransomwatch/models"
)

// app bundles everything a command handler needs.
type app struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	svc      *service.IntelService
	renderer *report.Renderer
	stdout   io.Writer
	stderr   io.Writer
	build    models.BuildInfo
}

// Run executes one invocation and returns the process exit code. All
// regular output goes to stdout, logs and error messages to stderr.
func Run(args []string, stdout, stderr io.Writer, build models.BuildInfo) int {
	flagCfg, rest, err := config.ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if len(rest) == 0 {
		fmt.Fprintln(stderr, "error: no command given (try `ransomwatch -h`)")
		return ExitUsage
	}
	command, commandArgs := rest[0], rest[1:]

	cfg, err := config.GetClientConfig(flagCfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}

	a := &app{
		cfg:    cfg,
		log:    logger.NewCLILogger(stderr, cfg.Output.Verbose),
		stdout: stdout,
		stderr: stderr,
		build:  build,
	}

	if command == "version" {
		return a.runVersion()
	}

	if strings.TrimSpace(cfg.API.Token) == "" {
		fmt.Fprintf(stderr, "error: %v\n", config.ErrMissingToken)
		fmt.Fprintln(stderr, "example: export RANSOMWATCH_API_TOKEN=your_token")
		return ExitFailure
	}

	a.wire()

	a.log.Debug().
		Str("command", command).
		Dur("timeout", cfg.API.Timeout).
		Int("rate_per_minute", cfg.Rate.PerMinute).
		Int("rate_per_second", cfg.Rate.PerSecond).
		Bool("json", cfg.Output.JSON).
		Msg("dispatching")

	var runErr error
	switch command {
	case "groups":
		runErr = a.runGroups(context.Background(), commandArgs)
	case "recent":
		runErr = a.runRecent(context.Background(), commandArgs)
	case "info":
		runErr = a.runInfo(context.Background(), commandArgs)
	case "stats":
		runErr = a.runStats(context.Background(), commandArgs)
	case "browse":
		runErr = a.runBrowse()
	default:
		fmt.Fprintf(stderr, "error: unknown command %q (try `ransomwatch -h`)\n", command)
		return ExitUsage
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "error: %s\n", userMessage(runErr, cfg))
		return exitCode(runErr)
	}
	return ExitOK
}

// wire builds the limiter, adapter, service, and renderer from the merged
// config. Split out so version/help never construct network machinery.
func (a *app) wire() {
	limiter := ratelimit.New(a.cfg.Rate.PerMinute, a.cfg.Rate.PerSecond, a.cfg.Rate.MinInterval)

	api := adapter.NewHTTPAPIAdapter(adapter.HTTPClientConfig{
		BaseURL:   a.cfg.API.BaseURL,
		Token:     a.cfg.API.Token,
		Timeout:   a.cfg.API.Timeout,
		UserAgent: "ransomwatch/" + a.build.Version(),
	}, limiter, a.log.GetChildLogger("adapter"))

	a.svc = service.NewIntelService(api, a.log.GetChildLogger("service"))
	a.renderer = report.New(a.stdout, a.cfg.Output.JSON)
}

// userMessage reduces an error chain to the single line shown on stderr.
// Credential material never appears here; adapter errors are already
// redacted.
func userMessage(err error, cfg *config.ClientConfig) string {
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		return fmt.Sprintf("request timed out after %s (increase with --timeout)", cfg.API.Timeout)
	case errors.Is(err, adapter.ErrUnauthorized):
		return "API token rejected: check RANSOMWATCH_API_TOKEN and your plan"
	case errors.Is(err, adapter.ErrNotFound):
		return "requested group not found"
	case errors.Is(err, adapter.ErrRateLimited):
		return "server rate limit hit: lower --rate-limit-per-minute and retry later"
	case errors.Is(err, adapter.ErrBadResponse):
		return "invalid JSON response from API"
	case errors.Is(err, models.ErrInvalidGroupName):
		return "group name must reduce to 1-50 characters of [a-z0-9-]"
	case errors.Is(err, service.ErrInvalidLimit):
		return fmt.Sprintf("limit must be between %d and %d", service.MinLimit, service.MaxLimit)
	}
	return err.Error()
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code()
	}
	if errors.Is(err, service.ErrInvalidLimit) || errors.Is(err, models.ErrInvalidGroupName) {
		return ExitUsage
	}
	return ExitFailure
}
