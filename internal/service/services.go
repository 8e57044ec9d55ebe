// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/crypto"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/store"
)

type Services struct {
	AuthService      AuthService
	AssetService     AssetService
	WatchlistService WatchlistService
	MarketService    MarketService
	APIKeyService    APIKeyService
	SettingsService  SettingsService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, c *catalog.Catalog, provider *market.Provider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	sealer, err := crypto.NewSealer(cfg.App.TokenSignKey)
	if err != nil {
		return nil, err
	}

	locks := &partitionLocks{}
	apiKeys := NewAPIKeyService(storages.APIKeyRepository, sealer, logger)
	settings := NewSettingsService(storages, c, apiKeys, locks, logger)

	return &Services{
		AuthService:      NewAuthService(c, storages.SessionRepository, cfg.App, logger),
		AssetService:     NewAssetService(c),
		WatchlistService: NewWatchlistService(storages.WatchlistRepository, c, locks, logger),
		MarketService:    NewMarketService(provider, c, settings, logger),
		APIKeyService:    apiKeys,
		SettingsService:  settings,
		AppInfoService:   appInfo,
	}, nil
}
