// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	httpHandler "github.com/MKhiriev/market-pulse/internal/handler/http"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

// newServerAdapter runs the real API over an in-memory store and points an
// adapter at it.
func newServerAdapter(t *testing.T) adapter.ServerAdapter {
	t.Helper()

	c, err := catalog.LoadWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:  "contract-key",
		TokenIssuer:   "market-pulse-test",
		TokenDuration: time.Hour,
		Version:       "0.0.1",
	}}
	storages := store.NewStoragesWithKV(store.NewMemoryKV(), logger.Nop())
	services, err := service.NewServices(storages, c, market.NewProvider(nil, time.Second, logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(httpHandler.NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestContract_ProSession(t *testing.T) {
	a := newServerAdapter(t)
	ctx := context.Background()

	session, err := a.SignIn(ctx, models.SignInRequest{Email: "pro@example.com", Password: "pro123"})
	require.NoError(t, err)
	assert.Equal(t, models.TierPro, session.Entitlement.Tier)

	assets, err := a.Assets(ctx, "", models.FilterAll, 8)
	require.NoError(t, err)
	require.Len(t, assets, 8)

	added, err := a.AddToWatchlist(ctx, assets[0].Symbol)
	require.NoError(t, err)
	assert.True(t, added.Changed)

	items, err := a.Watchlist(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, assets[0].Symbol, items[0].Symbol)

	points, err := a.Sentiment(ctx, "BTC", models.SourceTwitter, 30)
	require.NoError(t, err)
	assert.Len(t, points, 30)

	_, err = a.GenerateAPIKey(ctx)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.0.1", version)

	require.NoError(t, a.SignOut(ctx))
	_, err = a.Session(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestContract_FreeLimits(t *testing.T) {
	a := newServerAdapter(t)
	ctx := context.Background()

	_, err := a.SignIn(ctx, models.SignInRequest{Email: "free@example.com", Password: "free123"})
	require.NoError(t, err)

	_, err = a.Sentiment(ctx, "BTC", models.SourceAll, 30)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	for i := 0; i < 4; i++ {
		_, err = a.Sentiment(ctx, "BTC", models.SourceAll, 7)
		require.NoError(t, err, "the daily allowance is advisory")
	}
	overview, err := a.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, overview.Usage.SearchesToday)

	_, err = a.SignIn(ctx, models.SignInRequest{Email: "free@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
