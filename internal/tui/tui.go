// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the search view.
//
// It renders the same [render.Page] as the web front end, as a text table.
// Row actions that would navigate in a browser copy their URL to the
// clipboard instead.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoView = errors.New("tui: search view is required")

type TUI struct {
	view   *view.RecordSearchView
	locale string
	logger *logger.Logger
}

func New(v *view.RecordSearchView, locale string, logger *logger.Logger) (*TUI, error) {
	if v == nil {
		return nil, errNoView
	}
	return &TUI{view: v, locale: locale, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.view, t.locale, clipboard.WriteAll)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
