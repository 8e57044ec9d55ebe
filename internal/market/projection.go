// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package market

import (
	"maps"

	"github.com/MKhiriev/market-pulse/models"
)

// DefaultPriceRange is the price window shown when none is requested.
const DefaultPriceRange = 30

// ProjectSentiment maps every point onto source and keeps the rangeDays most
// recent points. For "all", or when a point has no breakdown for source, the
// aggregate values are used. The input is never modified.
func ProjectSentiment(series []models.SentimentPoint, source models.Source, rangeDays int) []models.SentimentPoint {
	projected := make([]models.SentimentPoint, 0, len(series))
	for _, p := range series {
		out := models.SentimentPoint{Date: p.Date, Breakdown: p.Breakdown}
		if b, ok := p.Sources[source]; ok && source != models.SourceAll {
			out.Breakdown = b
		}
		if len(p.Sources) > 0 {
			out.Sources = maps.Clone(p.Sources)
		}
		projected = append(projected, out)
	}

	return tail(projected, rangeDays)
}

// PriceWindow returns a copy of the rangeDays most recent points. A
// non-positive range means [DefaultPriceRange].
func PriceWindow(series []models.PricePoint, rangeDays int) []models.PricePoint {
	if rangeDays <= 0 {
		rangeDays = DefaultPriceRange
	}
	out := make([]models.PricePoint, len(series))
	copy(out, series)
	return tail(out, rangeDays)
}

func tail[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// PickDistribution resolves the breakdown shown for source.
//
// For "all" the total wins, then the legacy flat fields. For a channel its
// own breakdown wins, then the total, then the flat fields.
func PickDistribution(d models.Distribution, source models.Source) models.DistributionView {
	if source == "" {
		source = models.SourceAll
	}

	var b models.Breakdown
	switch {
	case source != models.SourceAll && hasSource(d, source):
		b = d.Sources[source]
	case d.Total != nil:
		b = *d.Total
	default:
		b = models.Breakdown{
			Positive: deref(d.Positive),
			Neutral:  deref(d.Neutral),
			Negative: deref(d.Negative),
		}
	}

	return models.DistributionView{Source: source, Breakdown: b, TotalMentions: b.Total()}
}

func hasSource(d models.Distribution, s models.Source) bool {
	_, ok := d.Sources[s]
	return ok
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
