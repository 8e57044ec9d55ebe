// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/market-pulse/internal/logger"
)

var ErrNoUI = errors.New("client ui is not set")

type App struct {
	ui     UI
	local  io.Closer
	logger *logger.Logger
}

// NewApp returns an App running ui. local is closed when Run returns and
// may be nil.
func NewApp(ui UI, local io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, local: local, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.close()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) close() {
	if a.local == nil {
		return
	}
	if err := a.local.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local storage")
	}
}
