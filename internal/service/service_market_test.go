// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/models"
)

func TestMarketService_Prices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.services.MarketService

	week, err := svc.Prices(ctx, freeUser, "BTC", 7)
	require.NoError(t, err)
	assert.Len(t, week, 7)

	month, err := svc.Prices(ctx, freeUser, "btc", 0)
	require.NoError(t, err)
	assert.Len(t, month, 30, "price range is not tier-gated and defaults to 30")
	assert.Equal(t, month[len(month)-1], week[len(week)-1])

	_, err = svc.Prices(ctx, freeUser, "BTC", 14)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Prices(ctx, freeUser, "NOPE", 7)
	assert.ErrorIs(t, err, catalog.ErrAssetNotFound)
}

func TestMarketService_Sentiment_Entitlement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.services.MarketService

	points, err := svc.Sentiment(ctx, freeUser, "ETH", models.SourceAll, 0)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	_, err = svc.Sentiment(ctx, freeUser, "ETH", models.SourceAll, 30)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Sentiment(ctx, freeUser, "ETH", models.SourceReddit, 7)
	assert.ErrorIs(t, err, ErrForbidden)

	points, err = svc.Sentiment(ctx, proUser, "ETH", models.SourceReddit, 30)
	require.NoError(t, err)
	assert.Len(t, points, 30)
}

func TestMarketService_Sentiment_CountsWithoutBlocking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.services.MarketService

	searches := entitlement.FreeDailySearches + 2
	for i := 0; i < searches; i++ {
		_, err := svc.Sentiment(ctx, freeUser, "AAPL", models.SourceAll, 7)
		require.NoError(t, err, "search %d", i+1)
	}

	_, err := svc.Sentiment(ctx, freeUser, "AAPL", models.SourceAll, 30)
	assert.ErrorIs(t, err, ErrForbidden)

	o, err := env.services.SettingsService.Overview(ctx, freeUser)
	require.NoError(t, err)
	assert.Equal(t, searches, o.Usage.SearchesToday, "a denied request does not reach the counter")
	assert.Equal(t, models.Cap(entitlement.FreeDailySearches), o.Usage.SearchLimit)
}

func TestMarketService_Distribution(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.services.MarketService.Distribution(ctx, proUser, "TSLA", models.SourceTwitter)
	require.NoError(t, err)
	assert.Equal(t, models.SourceTwitter, view.Source)
	assert.Equal(t, view.Breakdown.Total(), view.TotalMentions)

	_, err = env.services.MarketService.Distribution(ctx, freeUser, "TSLA", models.SourceTwitter)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMarketService_Convert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.services.MarketService.Convert(ctx, "BTC", 2, market.CurrencyPHP)
	require.NoError(t, err)
	assert.InDelta(t, 2*50000*56.0, c.Value, 1e-6)

	_, err = env.services.MarketService.Convert(ctx, "BTC", -1, market.CurrencyUSD)
	assert.ErrorIs(t, err, market.ErrInvalidAmount)

	_, err = env.services.MarketService.Convert(ctx, "NOPE", 1, market.CurrencyUSD)
	assert.ErrorIs(t, err, catalog.ErrAssetNotFound)
}

func TestAssetService_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.services.AssetService

	assert.Len(t, svc.Search(ctx, "", models.FilterAll, 0), catalog.WatchlistResults)
	assert.Len(t, svc.Search(ctx, "", models.FilterAll, catalog.DashboardSuggestions), catalog.DashboardSuggestions)
	assert.Len(t, svc.Search(ctx, "", models.FilterAll, 1000), len(env.catalog.Assets()))

	for _, a := range svc.Search(ctx, "", models.FilterCrypto, catalog.MaxResults) {
		assert.Equal(t, models.AssetCrypto, a.Type)
	}

	assert.Len(t, svc.Plans(ctx), 3)
}

func TestNewAppInfoService(t *testing.T) {
	_, err := NewAppInfoService(testAppConfig, nil)
	require.NoError(t, err)

	cfg := testAppConfig
	cfg.Version = ""
	_, err = NewAppInfoService(cfg, nil)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
