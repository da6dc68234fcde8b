// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package cli

import (
	"fmt"

	"github.com/ransomwatch/ransomwatch/internal/tui"
)

func (a *app) runBrowse() error {
	ui, err := tui.New(a.svc, a.log.GetChildLogger("tui"))
	if err != nil {
		return fmt.Errorf("init browser: %w", err)
	}

	if err := ui.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
