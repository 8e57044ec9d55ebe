// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal view layer of the market-pulse client: the
// sign-in form, the dashboard, the watchlist and the settings screen.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

var ErrNoServices = errors.New("client services are not set")

// Options tune the views.
type Options struct {
	BuildInfo models.AppBuildInfo

	// PriceRange is the initial price window in days, 7 or 30.
	PriceRange int
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.DataService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, opts: opts, logger: logger}, nil
}

// Run shows the UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services.SessionService, t.services.DataService, t.opts, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
