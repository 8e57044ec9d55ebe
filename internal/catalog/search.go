// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"strings"

	"github.com/MKhiriev/market-pulse/models"
)

// Search limits used by the client views.
const (
	DashboardSuggestions = 8
	WatchlistResults     = 10
	MaxResults           = 50
)

// Search returns the assets passing filter whose symbol or name contains the
// trimmed query, ignoring case. Results keep catalog order; an empty query
// matches every asset passing the filter.
func Search(assets []models.Asset, query string, filter models.TypeFilter) []models.Asset {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if !filter.Matches(a.Type) {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(a.Symbol), q) ||
			strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}

	return out
}

// Truncate returns at most n leading elements of assets.
func Truncate(assets []models.Asset, n int) []models.Asset {
	if n >= 0 && len(assets) > n {
		return assets[:n]
	}
	return assets
}
