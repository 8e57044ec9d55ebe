// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

type watchlistRepository struct {
	kv     KV
	logger *logger.Logger
}

func NewWatchlistRepository(kv KV, logger *logger.Logger) WatchlistRepository {
	return &watchlistRepository{kv: kv, logger: logger}
}

// Load returns the stored watchlist of email. Absent or malformed data
// yields an empty list; only storage failures are reported.
func (r *watchlistRepository) Load(ctx context.Context, email string) ([]models.Asset, error) {
	var items []models.Asset
	_, err := getJSON(ctx, r.kv, WatchlistKey(email), &items)
	if err != nil {
		if isDecodeError(err) {
			logger.FromContext(ctx).Warn().Err(err).Str("email", email).Msg("malformed watchlist discarded")
			return []models.Asset{}, nil
		}
		return nil, err
	}
	if items == nil {
		items = []models.Asset{}
	}
	return items, nil
}

func (r *watchlistRepository) Save(ctx context.Context, email string, items []models.Asset) error {
	if items == nil {
		items = []models.Asset{}
	}
	return setJSON(ctx, r.kv, WatchlistKey(email), items, 0)
}
