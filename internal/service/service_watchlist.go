// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

type watchlistService struct {
	repo    store.WatchlistRepository
	catalog *catalog.Catalog
	locks   *partitionLocks
	logger  *logger.Logger
}

func NewWatchlistService(repo store.WatchlistRepository, c *catalog.Catalog, locks *partitionLocks, logger *logger.Logger) WatchlistService {
	return &watchlistService{repo: repo, catalog: c, locks: locks, logger: logger}
}

func (s *watchlistService) Load(ctx context.Context, user models.User) ([]models.Asset, error) {
	return s.repo.Load(ctx, user.Email)
}

// Add appends the catalog asset of symbol to the user's watchlist.
//
// The guard runs first. A denied tier, a symbol already present or a full
// list is a no-op that returns the unchanged list with changed=false.
func (s *watchlistService) Add(ctx context.Context, user models.User, symbol string) ([]models.Asset, bool, error) {
	if err := authorize(user, entitlement.WatchlistAdd); err != nil {
		return s.denied(ctx, user, err)
	}

	asset, err := s.catalog.Asset(symbol)
	if err != nil {
		return nil, false, err
	}

	unlock := s.locks.lock(store.WatchlistKey(user.Email))
	defer unlock()

	items, err := s.repo.Load(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("watchlist load failed: %w", err)
	}

	next, changed := appendAsset(items, asset, entitlement.Resolve(user.Subscription))
	if !changed {
		return items, false, nil
	}
	if err = s.repo.Save(ctx, user.Email, next); err != nil {
		return nil, false, fmt.Errorf("watchlist save failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("email", user.Email).Str("symbol", asset.Symbol).Msg("watchlist add")
	return next, true, nil
}

// Remove drops symbol from the user's watchlist. Removing an absent symbol
// returns the unchanged list.
func (s *watchlistService) Remove(ctx context.Context, user models.User, symbol string) ([]models.Asset, bool, error) {
	if err := authorize(user, entitlement.WatchlistRemove); err != nil {
		return s.denied(ctx, user, err)
	}

	unlock := s.locks.lock(store.WatchlistKey(user.Email))
	defer unlock()

	items, err := s.repo.Load(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("watchlist load failed: %w", err)
	}

	next, changed := removeAsset(items, symbol)
	if !changed {
		return items, false, nil
	}
	if err = s.repo.Save(ctx, user.Email, next); err != nil {
		return nil, false, fmt.Errorf("watchlist save failed: %w", err)
	}
	return next, true, nil
}

// denied answers a watchlist change the tier may not make: nothing is
// written and the stored list comes back unchanged.
func (s *watchlistService) denied(ctx context.Context, user models.User, reason error) ([]models.Asset, bool, error) {
	logger.FromContext(ctx).Info().Err(reason).Str("email", user.Email).Msg("watchlist change ignored")

	items, err := s.repo.Load(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("watchlist load failed: %w", err)
	}
	return items, false, nil
}

// appendAsset is the store rule of add: no-op when the symbol is present,
// the tier has no watchlist, or the list is at capacity.
func appendAsset(items []models.Asset, asset models.Asset, e models.Entitlement) ([]models.Asset, bool) {
	if !entitlement.CanAddToWatchlist(e, len(items)) || containsSymbol(items, asset.Symbol) {
		return items, false
	}
	next := make([]models.Asset, 0, len(items)+1)
	next = append(next, items...)
	return append(next, asset), true
}

func removeAsset(items []models.Asset, symbol string) ([]models.Asset, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	next := slices.DeleteFunc(slices.Clone(items), func(a models.Asset) bool {
		return a.Symbol == symbol
	})
	return next, len(next) != len(items)
}

func containsSymbol(items []models.Asset, symbol string) bool {
	return slices.ContainsFunc(items, func(a models.Asset) bool { return a.Symbol == symbol })
}
