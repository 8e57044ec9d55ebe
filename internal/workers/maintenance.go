// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/market-pulse/internal/logger"
)

const purgeTimeout = 30 * time.Second

// Purger is the part of the key-value store the sweep needs.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// MaintenanceWorker periodically drops expired sessions and usage counters
// from the store.
type MaintenanceWorker struct {
	cron   *cron.Cron
	purger Purger

	logger *logger.Logger
}

// NewMaintenanceWorker schedules the sweep on schedule, a five-field cron
// spec or a descriptor such as "@every 10m".
func NewMaintenanceWorker(purger Purger, schedule string, logger *logger.Logger) (*MaintenanceWorker, error) {
	log := logger.Component("maintenance")
	w := &MaintenanceWorker{
		cron:   cron.New(cron.WithLogger(cronLogger{log}), cron.WithChain(cron.SkipIfStillRunning(cronLogger{log}))),
		purger: purger,
		logger: log,
	}

	if _, err := w.cron.AddFunc(schedule, w.Sweep); err != nil {
		return nil, fmt.Errorf("register maintenance sweep %q: %w", schedule, err)
	}
	return w, nil
}

func (w *MaintenanceWorker) Run() {
	w.cron.Start()
	w.logger.Info().Msg("maintenance scheduler started")
}

func (w *MaintenanceWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("maintenance scheduler stopped")
}

// Sweep runs one purge.
func (w *MaintenanceWorker) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		w.logger.Err(err).Msg("purging expired entries failed")
		return
	}
	w.logger.Debug().Int64("purged", n).Msg("expired entries purged")
}

// cronLogger routes cron's own logging into zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
