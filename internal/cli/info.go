// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *app) runInfo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var group string
	fs.StringVar(&group, "group", "", "Group name (case-insensitive)")
	if err := fs.Parse(args); err != nil {
		return NewExitError(ExitUsage, "info: %v", err)
	}
	if group == "" {
		return NewExitError(ExitUsage, "info: --group is required")
	}

	if !a.renderer.JSONMode() {
		a.log.Info().Msg("fetching group information")
	}

	detail, err := a.svc.GroupInfo(ctx, group)
	if err != nil {
		return err
	}

	if err := a.renderer.GroupInfo(detail); err != nil {
		return fmt.Errorf("render group info: %w", err)
	}
	return nil
}
