// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *app) runGroups(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("groups", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		return NewExitError(ExitUsage, "groups: %v", err)
	}

	if !a.renderer.JSONMode() {
		a.log.Info().Msg("fetching ransomware groups")
	}

	rep, err := a.svc.ActiveGroups(ctx)
	if err != nil {
		return err
	}

	if err := a.renderer.Groups(rep); err != nil {
		return fmt.Errorf("render groups: %w", err)
	}
	return nil
}
