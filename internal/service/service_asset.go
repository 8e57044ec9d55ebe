// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/models"
)

type assetService struct {
	catalog *catalog.Catalog
}

func NewAssetService(c *catalog.Catalog) AssetService {
	return &assetService{catalog: c}
}

// Search clamps limit to (0, catalog.MaxResults]; 0 means
// catalog.WatchlistResults.
func (s *assetService) Search(_ context.Context, query string, filter models.TypeFilter, limit int) []models.Asset {
	switch {
	case limit <= 0:
		limit = catalog.WatchlistResults
	case limit > catalog.MaxResults:
		limit = catalog.MaxResults
	}
	return s.catalog.Search(query, filter, limit)
}

func (s *assetService) Asset(_ context.Context, symbol string) (models.Asset, error) {
	return s.catalog.Asset(symbol)
}

func (s *assetService) Plans(context.Context) []models.Plan {
	return s.catalog.Plans()
}
