// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/models"
)

type marketService struct {
	provider *market.Provider
	catalog  *catalog.Catalog
	settings SettingsService
	logger   *logger.Logger
}

func NewMarketService(provider *market.Provider, c *catalog.Catalog, settings SettingsService, logger *logger.Logger) MarketService {
	return &marketService{provider: provider, catalog: c, settings: settings, logger: logger}
}

// Prices returns the most recent rangeDays price points. The price range is
// not tier-gated; 0 means the default of 30.
func (s *marketService) Prices(ctx context.Context, _ models.User, symbol string, rangeDays int) ([]models.PricePoint, error) {
	days, err := validRange(rangeDays, market.DefaultPriceRange)
	if err != nil {
		return nil, err
	}
	asset, err := s.catalog.Asset(symbol)
	if err != nil {
		return nil, err
	}

	series, err := s.provider.Prices(ctx, asset.Symbol)
	if err != nil {
		return nil, err
	}
	return market.PriceWindow(series, days), nil
}

// Sentiment projects the sentiment series onto source and the most recent
// rangeDays points, counting one daily search. 0 days means 7.
func (s *marketService) Sentiment(ctx context.Context, user models.User, symbol string, source models.Source, rangeDays int) ([]models.SentimentPoint, error) {
	days, err := validRange(rangeDays, entitlement.RangeWeek)
	if err != nil {
		return nil, err
	}
	if err = authorize(user, entitlement.SentimentRange(days)); err != nil {
		return nil, err
	}
	if err = authorize(user, entitlement.SentimentSource(source)); err != nil {
		return nil, err
	}
	asset, err := s.catalog.Asset(symbol)
	if err != nil {
		return nil, err
	}

	if _, err = s.settings.RecordSearch(ctx, user); err != nil {
		return nil, err
	}

	series, err := s.provider.Sentiment(ctx, asset.Symbol)
	if err != nil {
		return nil, err
	}
	return market.ProjectSentiment(series, source, days), nil
}

func (s *marketService) Distribution(ctx context.Context, user models.User, symbol string, source models.Source) (models.DistributionView, error) {
	if err := authorize(user, entitlement.SentimentSource(source)); err != nil {
		return models.DistributionView{}, err
	}
	asset, err := s.catalog.Asset(symbol)
	if err != nil {
		return models.DistributionView{}, err
	}

	dist, err := s.provider.Distribution(ctx, asset.Symbol)
	if err != nil {
		return models.DistributionView{}, err
	}
	return market.PickDistribution(dist, source), nil
}

func (s *marketService) Convert(_ context.Context, symbol string, amount float64, currency string) (models.Conversion, error) {
	asset, err := s.catalog.Asset(symbol)
	if err != nil {
		return models.Conversion{}, err
	}
	return market.Convert(amount, asset, currency)
}

func validRange(days, fallback int) (int, error) {
	switch days {
	case 0:
		return fallback, nil
	case entitlement.RangeWeek, entitlement.RangeMonth:
		return days, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidRange, days)
	}
}
