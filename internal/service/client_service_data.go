// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/market-pulse/internal/adapter"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

type clientDataService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientDataService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDataService {
	return &clientDataService{adapter: serverAdapter, logger: logger}
}

func (s *clientDataService) Plans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.adapter.Plans(ctx)
	return plans, MapAdapterError(err)
}

func (s *clientDataService) Version(ctx context.Context) (string, error) {
	v, err := s.adapter.Version(ctx)
	return v, MapAdapterError(err)
}

func (s *clientDataService) Search(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error) {
	assets, err := s.adapter.Assets(ctx, query, filter, limit)
	return assets, MapAdapterError(err)
}

func (s *clientDataService) Snapshot(ctx context.Context, sel models.Selection) (models.MarketSnapshot, error) {
	snap := models.MarketSnapshot{Selection: sel}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prices, err := s.adapter.Prices(gctx, sel.Symbol, sel.PriceRange)
		snap.Prices = prices
		return MapAdapterError(err)
	})
	g.Go(func() error {
		view, err := s.adapter.Distribution(gctx, sel.Symbol, sel.Source)
		snap.Distribution = view
		return MapAdapterError(err)
	})
	g.Go(func() error {
		points, err := s.adapter.Sentiment(gctx, sel.Symbol, sel.Source, sel.SentimentRange)
		snap.Sentiment = points
		snap.SentimentErr = MapAdapterError(err)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Debug().Err(err).Str("tag", sel.Tag()).Msg("market snapshot failed")
		return models.MarketSnapshot{Selection: sel}, err
	}
	return snap, nil
}

func (s *clientDataService) Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error) {
	c, err := s.adapter.Convert(ctx, symbol, amount, currency)
	return c, MapAdapterError(err)
}

func (s *clientDataService) Watchlist(ctx context.Context) ([]models.Asset, error) {
	items, err := s.adapter.Watchlist(ctx)
	return items, MapAdapterError(err)
}

func (s *clientDataService) AddToWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	resp, err := s.adapter.AddToWatchlist(ctx, symbol)
	return resp, MapAdapterError(err)
}

func (s *clientDataService) RemoveFromWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	resp, err := s.adapter.RemoveFromWatchlist(ctx, symbol)
	return resp, MapAdapterError(err)
}

func (s *clientDataService) Settings(ctx context.Context) (models.AccountOverview, error) {
	o, err := s.adapter.Settings(ctx)
	return o, MapAdapterError(err)
}

func (s *clientDataService) SetEmailAlerts(ctx context.Context, enabled bool) (models.Settings, error) {
	st, err := s.adapter.SetEmailAlerts(ctx, enabled)
	return st, MapAdapterError(err)
}

func (s *clientDataService) APIKey(ctx context.Context) (models.APIKeyResponse, error) {
	k, err := s.adapter.APIKey(ctx)
	return k, MapAdapterError(err)
}

func (s *clientDataService) GenerateAPIKey(ctx context.Context) (models.APIKeyResponse, error) {
	k, err := s.adapter.GenerateAPIKey(ctx)
	return k, MapAdapterError(err)
}
