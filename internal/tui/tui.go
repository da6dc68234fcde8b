// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package tui implements the interactive group browser behind the browse
// command: a filterable group list and a per-group detail page, both fed by
// the same service layer the one-shot commands use.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ransomwatch/ransomwatch/internal/logger"
	"github.com/ransomwatch/ransomwatch/internal/service"
)

// App runs the browse session.
type App struct {
	svc *service.IntelService
	log *logger.Logger
}

// New validates dependencies and builds the App.
func New(svc *service.IntelService, log *logger.Logger) (*App, error) {
	if svc == nil {
		return nil, errors.New("tui: nil service")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{svc: svc, log: log}, nil
}

// Run blocks until the user quits or the initial load fails.
func (a *App) Run() error {
	a.log.Debug().Msg("starting interactive browser")
	program := tea.NewProgram(newRootModel(a.svc), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(rootModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
