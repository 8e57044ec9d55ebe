// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists market-pulse state in a flat key-value store and
// exposes typed repositories over it.
//
// Backends: in-memory, sqlite (mattn/go-sqlite3), postgres (pgx) and redis.
// The SQL backends share one table created by the embedded goose migrations.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
)

// Storages bundles the server repositories over a single [KV].
type Storages struct {
	KV KV

	SessionRepository   SessionRepository
	WatchlistRepository WatchlistRepository
	APIKeyRepository    APIKeyRepository
	SettingsRepository  SettingsRepository
	UsageRepository     UsageRepository
}

// NewStorages opens the backend selected by cfg.Driver, migrating SQL
// backends, and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	kv, err := OpenKV(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewStoragesWithKV(kv, log), nil
}

// NewStoragesWithKV builds the repositories over an existing kv.
func NewStoragesWithKV(kv KV, log *logger.Logger) *Storages {
	return &Storages{
		KV:                  kv,
		SessionRepository:   NewSessionRepository(kv, log),
		WatchlistRepository: NewWatchlistRepository(kv, log),
		APIKeyRepository:    NewAPIKeyRepository(kv, log),
		SettingsRepository:  NewSettingsRepository(kv, log),
		UsageRepository:     NewUsageRepository(kv, log),
	}
}

// OpenKV connects to the configured backend.
func OpenKV(ctx context.Context, cfg config.Storage, log *logger.Logger) (KV, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Info().Msg("using in-memory storage")
		return NewMemoryKV(), nil
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		return migratedKV(db)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		return migratedKV(db)
	case config.DriverRedis:
		return NewConnectRedis(ctx, cfg.Redis, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func migratedKV(db *DB) (KV, error) {
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLKV(db), nil
}

// NewClientStorage opens the client's local sqlite file.
func NewClientStorage(ctx context.Context, dsn string, log *logger.Logger) (KV, LocalRepository, error) {
	kv, err := OpenKV(ctx, config.Storage{Driver: config.DriverSQLite, DSN: dsn}, log)
	if err != nil {
		return nil, nil, err
	}
	return kv, NewLocalRepository(kv, log), nil
}
