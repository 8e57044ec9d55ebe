// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured jobs. An empty maintenance schedule
// disables the sweep.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.MaintenanceSchedule != "" {
		m, err := NewMaintenanceWorker(storages.KV, cfg.MaintenanceSchedule, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, m)
	}

	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
