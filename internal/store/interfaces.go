// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/market-pulse/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KV is a flat key-value store. Values are opaque bytes; a positive ttl
// makes an entry invisible once it elapses. Writes are last-writer-wins per
// key and there are no multi-key transactions.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// PurgeExpired physically removes expired entries and reports how many
	// were removed. Backends with native expiry return 0.
	PurgeExpired(ctx context.Context) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

type SessionRepository interface {
	Save(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

type WatchlistRepository interface {
	Load(ctx context.Context, email string) ([]models.Asset, error)
	Save(ctx context.Context, email string, items []models.Asset) error
}

type APIKeyRepository interface {
	// Get returns the stored key or "" when none exists.
	Get(ctx context.Context, email string) (string, error)
	Save(ctx context.Context, email, key string) error
}

type SettingsRepository interface {
	Get(ctx context.Context, email string) (models.Settings, error)
	Save(ctx context.Context, email string, settings models.Settings) error
}

type UsageRepository interface {
	Searches(ctx context.Context, email string, day time.Time) (int, error)
	IncrementSearches(ctx context.Context, email string, day time.Time) (int, error)
}

// LocalRepository holds the terminal client's persisted keys.
type LocalRepository interface {
	LoadSession(ctx context.Context) (models.LocalSession, error)
	SaveSession(ctx context.Context, session models.LocalSession) error
	ClearSession(ctx context.Context) error

	Theme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}
