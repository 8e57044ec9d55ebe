// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package entitlement derives capability sets from subscription tiers and
// guards every tier-gated operation.
//
// Resolution is pure and fail-closed: an unknown tier gets the free
// entitlement. Capabilities never shrink when moving up a tier.
package entitlement

import (
	"slices"

	"github.com/MKhiriev/market-pulse/models"
)

// Sentiment range lengths in days.
const (
	RangeWeek  = 7
	RangeMonth = 30
)

// ProWatchlistCap is the watchlist size limit of the pro tier.
const ProWatchlistCap = 20

// FreeDailySearches is the number of sentiment searches a free user may run
// per calendar day.
const FreeDailySearches = 3

// Resolve returns the entitlement of tier. Empty, unknown or differently
// cased values are normalised first and fall back to free.
func Resolve(tier models.Tier) models.Entitlement {
	t, _ := models.ParseTier(string(tier))

	switch t {
	case models.TierPremium:
		return models.Entitlement{
			Tier:                  models.TierPremium,
			MaxSentimentRangeDays: RangeMonth,
			SentimentRanges:       []int{RangeWeek, RangeMonth},
			AllSources:            true,
			AllowedSources:        allSources(),
			MaxWatchlistSize:      models.Unlimited,
			WatchlistEnabled:      true,
			EmailAlertsEnabled:    true,
			APIKeyEnabled:         true,
			DailySearchLimit:      models.Unlimited,
		}
	case models.TierPro:
		return models.Entitlement{
			Tier:                  models.TierPro,
			MaxSentimentRangeDays: RangeMonth,
			SentimentRanges:       []int{RangeWeek, RangeMonth},
			AllSources:            true,
			AllowedSources:        allSources(),
			MaxWatchlistSize:      models.Cap(ProWatchlistCap),
			WatchlistEnabled:      true,
			EmailAlertsEnabled:    true,
			APIKeyEnabled:         false,
			DailySearchLimit:      models.Unlimited,
		}
	default:
		return models.Entitlement{
			Tier:                  models.TierFree,
			MaxSentimentRangeDays: RangeWeek,
			SentimentRanges:       []int{RangeWeek},
			AllowedSources:        []models.Source{models.SourceAll},
			MaxWatchlistSize:      models.Cap(0),
			DailySearchLimit:      models.Cap(FreeDailySearches),
		}
	}
}

func allSources() []models.Source {
	return append([]models.Source{models.SourceAll}, models.SentimentSources...)
}

// AllowsRange reports whether days is one of the selectable sentiment ranges.
func AllowsRange(e models.Entitlement, days int) bool {
	return slices.Contains(e.SentimentRanges, days)
}

// AllowsSource reports whether the sentiment source filter may be set to s.
func AllowsSource(e models.Entitlement, s models.Source) bool {
	if s == "" {
		s = models.SourceAll
	}
	if e.AllSources {
		_, known := models.ParseSource(string(s))
		return known
	}
	return slices.Contains(e.AllowedSources, s)
}

// CanAddToWatchlist reports whether a watchlist holding size entries may
// grow by one.
func CanAddToWatchlist(e models.Entitlement, size int) bool {
	return e.WatchlistEnabled && e.MaxWatchlistSize.Allows(size)
}

// Covers reports whether e grants every capability other grants.
func Covers(e, other models.Entitlement) bool {
	if e.MaxSentimentRangeDays < other.MaxSentimentRangeDays {
		return false
	}
	for _, days := range other.SentimentRanges {
		if !AllowsRange(e, days) {
			return false
		}
	}
	for _, s := range other.AllowedSources {
		if !AllowsSource(e, s) {
			return false
		}
	}
	if other.AllSources && !e.AllSources {
		return false
	}
	if !e.MaxWatchlistSize.AtLeast(other.MaxWatchlistSize) ||
		!e.DailySearchLimit.AtLeast(other.DailySearchLimit) {
		return false
	}

	return implies(other.WatchlistEnabled, e.WatchlistEnabled) &&
		implies(other.EmailAlertsEnabled, e.EmailAlertsEnabled) &&
		implies(other.APIKeyEnabled, e.APIKeyEnabled)
}

func implies(a, b bool) bool {
	return !a || b
}
