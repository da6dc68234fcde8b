// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *app) runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return NewExitError(ExitUsage, "stats: %v", err)
	}

	if !a.renderer.JSONMode() {
		a.log.Info().Msg("fetching statistics")
	}

	rep, err := a.svc.Overview(ctx)
	if err != nil {
		return err
	}

	if err := a.renderer.Stats(rep); err != nil {
		return fmt.Errorf("render stats: %w", err)
	}
	return nil
}
