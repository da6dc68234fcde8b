// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ransomwatch/ransomwatch/internal/service"
)

func (a *app) runRecent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recent", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var limit int
	fs.IntVar(&limit, "l", service.DefaultLimit, "Number of victims to show")
	fs.IntVar(&limit, "limit", service.DefaultLimit, "Number of victims to show (alias)")
	if err := fs.Parse(args); err != nil {
		return NewExitError(ExitUsage, "recent: %v", err)
	}

	if !a.renderer.JSONMode() {
		a.log.Info().Int("limit", limit).Msg("fetching recent victims")
	}

	rep, err := a.svc.RecentVictims(ctx, limit)
	if err != nil {
		return err
	}

	if err := a.renderer.Recent(rep); err != nil {
		return fmt.Errorf("render recent victims: %w", err)
	}
	return nil
}
