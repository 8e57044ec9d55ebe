// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

func configSQLite(dsn string) config.Storage {
	return config.Storage{Driver: config.DriverSQLite, DSN: dsn}
}

var (
	assetBTC = models.Asset{Symbol: "BTC", Name: "Bitcoin", Type: models.AssetCrypto}
	assetETH = models.Asset{Symbol: "ETH", Name: "Ethereum", Type: models.AssetCrypto}
)

func TestWatchlistRepository_RoundTripAndIsolation(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewWatchlistRepository(kv, logger.Nop())

	empty, err := repo.Load(ctx, "a@example.com")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Save(ctx, "a@example.com", []models.Asset{assetBTC, assetETH}))

	got, err := repo.Load(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, []models.Asset{assetBTC, assetETH}, got)

	other, err := repo.Load(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = kv.Get(ctx, "watchlist:a@example.com")
	assert.NoError(t, err, "stored under the partition key")
}

func TestWatchlistRepository_MalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewWatchlistRepository(kv, logger.Nop())

	for _, raw := range []string{"{not json", `{"symbol":"BTC"}`, `"BTC"`, `[1,2]`} {
		require.NoError(t, kv.Set(ctx, WatchlistKey("a@example.com"), []byte(raw), 0))
		got, err := repo.Load(ctx, "a@example.com")
		require.NoError(t, err, raw)
		assert.Empty(t, got, raw)
	}
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	kv := newMemoryKV(clock.now)
	repo := &sessionRepository{kv: kv, now: clock.now, logger: logger.Nop()}

	s := models.Session{
		ID:        "sess-1",
		User:      models.User{Email: "pro@example.com", Subscription: models.TierPro},
		CreatedAt: clock.now(),
		ExpiresAt: clock.now().Add(time.Hour),
	}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, s.User, got.User)

	_, err = repo.Get(ctx, "other")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	clock.advance(2 * time.Hour)
	_, err = repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	expired := s
	expired.ExpiresAt = clock.now().Add(-time.Second)
	assert.Error(t, repo.Save(ctx, expired))

	require.NoError(t, repo.Delete(ctx, "sess-1"))
	require.NoError(t, repo.Delete(ctx, "sess-1"))
}

func TestSessionRepository_CorruptIsNotFound(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewSessionRepository(kv, logger.Nop())

	require.NoError(t, kv.Set(ctx, SessionKey("x"), []byte("garbage"), 0))
	_, err := repo.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAPIKeyRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewAPIKeyRepository(kv, logger.Nop())

	key, err := repo.Get(ctx, "premium@example.com")
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, repo.Save(ctx, "premium@example.com", "mp_live_1"))
	require.NoError(t, repo.Save(ctx, "premium@example.com", "mp_live_2"))

	key, err = repo.Get(ctx, "premium@example.com")
	require.NoError(t, err)
	assert.Equal(t, "mp_live_2", key)

	raw, _ := kv.Get(ctx, "apikey:premium@example.com")
	assert.Equal(t, `"mp_live_2"`, string(raw), "stored as a JSON string")
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(NewMemoryKV(), logger.Nop())

	s, err := repo.Get(ctx, "pro@example.com")
	require.NoError(t, err)
	assert.False(t, s.EmailAlerts)

	require.NoError(t, repo.Save(ctx, "pro@example.com", models.Settings{EmailAlerts: true}))
	s, err = repo.Get(ctx, "pro@example.com")
	require.NoError(t, err)
	assert.True(t, s.EmailAlerts)
}

func TestUsageRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewUsageRepository(kv, logger.Nop())
	day := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

	n, err := repo.Searches(ctx, "free@example.com", day)
	require.NoError(t, err)
	assert.Zero(t, n)

	for want := 1; want <= 3; want++ {
		n, err = repo.IncrementSearches(ctx, "free@example.com", day)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err = repo.Searches(ctx, "free@example.com", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Zero(t, n, "counters are per calendar day")

	_, err = kv.Get(ctx, "usage:free@example.com:2026-10-14")
	assert.NoError(t, err)
}

func TestUntilEndOfDay(t *testing.T) {
	day := time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 6*time.Hour, untilEndOfDay(day))
}

func TestLocalRepository(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	repo := NewLocalRepository(kv, logger.Nop())

	_, err := repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	s := models.LocalSession{Token: "t", User: models.User{Email: "pro@example.com"}}
	require.NoError(t, repo.SaveSession(ctx, s))

	got, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Token)

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, repo.SaveTheme(ctx, "light"))
	theme, err = repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, kv.Set(ctx, LocalSessionKey, []byte("{broken"), 0))
	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestOpenKV_UnsupportedDriver(t *testing.T) {
	_, err := OpenKV(context.Background(), config.Storage{Driver: "mongo"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.SessionRepository)
	assert.NotNil(t, s.UsageRepository)
}
