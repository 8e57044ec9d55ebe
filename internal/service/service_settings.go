// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

// renewalPeriod is how far ahead the mocked renewal date is shown.
const renewalPeriod = 30

type settingsService struct {
	settings  store.SettingsRepository
	usage     store.UsageRepository
	watchlist store.WatchlistRepository
	apiKeys   APIKeyService
	catalog   *catalog.Catalog
	locks     *partitionLocks

	now    func() time.Time
	logger *logger.Logger
}

func NewSettingsService(storages *store.Storages, c *catalog.Catalog, apiKeys APIKeyService, locks *partitionLocks, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings:  storages.SettingsRepository,
		usage:     storages.UsageRepository,
		watchlist: storages.WatchlistRepository,
		apiKeys:   apiKeys,
		catalog:   c,
		locks:     locks,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *settingsService) Overview(ctx context.Context, user models.User) (models.AccountOverview, error) {
	ent := entitlement.Resolve(user.Subscription)
	now := s.now()

	plan, err := s.catalog.Plan(ent.Tier)
	if err != nil {
		return models.AccountOverview{}, err
	}
	searches, err := s.usage.Searches(ctx, user.Email, now)
	if err != nil {
		return models.AccountOverview{}, fmt.Errorf("usage load failed: %w", err)
	}
	items, err := s.watchlist.Load(ctx, user.Email)
	if err != nil {
		return models.AccountOverview{}, fmt.Errorf("watchlist load failed: %w", err)
	}
	settings, err := s.settings.Get(ctx, user.Email)
	if err != nil {
		return models.AccountOverview{}, fmt.Errorf("settings load failed: %w", err)
	}

	overview := models.AccountOverview{
		User:        user.Public(),
		Entitlement: ent,
		Plan:        plan,
		RenewalDate: now.AddDate(0, 0, renewalPeriod).Format(time.DateOnly),
		Usage: models.Usage{
			SearchesToday:  searches,
			SearchLimit:    ent.DailySearchLimit,
			WatchlistCount: len(items),
			WatchlistLimit: ent.MaxWatchlistSize,
		},
		Settings: settings,
	}

	if ent.APIKeyEnabled {
		key, err := s.apiKeys.Get(ctx, user)
		if err != nil {
			return models.AccountOverview{}, err
		}
		overview.APIKeyMasked = key.Masked
	}

	return overview, nil
}

func (s *settingsService) SetEmailAlerts(ctx context.Context, user models.User, enabled bool) (models.Settings, error) {
	if err := authorize(user, entitlement.EmailAlertsUpdate); err != nil {
		return models.Settings{}, err
	}

	unlock := s.locks.lock(store.SettingsKey(user.Email))
	defer unlock()

	settings, err := s.settings.Get(ctx, user.Email)
	if err != nil {
		return models.Settings{}, fmt.Errorf("settings load failed: %w", err)
	}
	settings.EmailAlerts = enabled
	if err = s.settings.Save(ctx, user.Email, settings); err != nil {
		return models.Settings{}, fmt.Errorf("settings save failed: %w", err)
	}
	return settings, nil
}

func (s *settingsService) RecordSearch(ctx context.Context, user models.User) (int, error) {
	ent := entitlement.Resolve(user.Subscription)
	now := s.now()

	unlock := s.locks.lock(store.UsageKey(user.Email, now))
	defer unlock()

	n, err := s.usage.IncrementSearches(ctx, user.Email, now)
	if err != nil {
		return 0, fmt.Errorf("usage update failed: %w", err)
	}
	if !ent.DailySearchLimit.Allows(n - 1) {
		logger.FromContext(ctx).Debug().Str("email", user.Email).Int("searches", n).Msg("searches past the plan's daily allowance")
	}
	return n, nil
}
