// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package market serves per-symbol price and sentiment fixtures and the
// pure projections the dashboard applies to them.
package market

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/models"
)

// Provider reads fixtures through an ordered chain of sources. Every failure
// (transport error, non-2xx, undecodable body) falls through to the next
// source and finally to the bundled default fixture; callers never see an
// error for a valid symbol.
type Provider struct {
	sources  []FixtureSource
	fallback FixtureSource
	timeout  time.Duration
	logger   *logger.Logger
}

// NewProvider builds a provider over remote (may be nil) followed by the
// bundled fixtures.
func NewProvider(remote FixtureSource, timeout time.Duration, l *logger.Logger) *Provider {
	b := NewBundledSource()

	sources := make([]FixtureSource, 0, 2)
	if remote != nil {
		sources = append(sources, remote)
	}
	sources = append(sources, b)

	return NewProviderWithSources(sources, b, timeout, l)
}

// NewProviderWithSources is like [NewProvider] with an explicit chain and a
// fallback that is asked for [DefaultFixture].
func NewProviderWithSources(sources []FixtureSource, fallback FixtureSource, timeout time.Duration, l *logger.Logger) *Provider {
	return &Provider{sources: sources, fallback: fallback, timeout: timeout, logger: l}
}

// Prices returns the price series of symbol.
func (p *Provider) Prices(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	var out []models.PricePoint
	return out, load(ctx, p, symbol, PriceFile, &out)
}

// Sentiment returns the sentiment series of symbol.
func (p *Provider) Sentiment(ctx context.Context, symbol string) ([]models.SentimentPoint, error) {
	var out []models.SentimentPoint
	return out, load(ctx, p, symbol, SentimentFile, &out)
}

// Distribution returns the sentiment distribution of symbol.
func (p *Provider) Distribution(ctx context.Context, symbol string) (models.Distribution, error) {
	var out models.Distribution
	return out, load(ctx, p, symbol, DistributionFile, &out)
}

// load decodes file for symbol into dst from the first source that yields a
// decodable body. Only an invalid symbol is reported to the caller.
func load[T any](ctx context.Context, p *Provider, rawSymbol, file string, dst *T) error {
	symbol, err := NormalizeSymbol(rawSymbol)
	if err != nil {
		return err
	}

	log := p.logger.With().Str("symbol", symbol).Str("file", file).Logger()

	for _, src := range p.sources {
		if decodeFrom(ctx, p, src, symbol, file, dst) == nil {
			return nil
		}
		log.Debug().Str("source", src.Name()).Msg("fixture unavailable, falling through")
	}

	if p.fallback != nil {
		if err := decodeFrom(ctx, p, p.fallback, DefaultFixture, file, dst); err != nil {
			log.Error().Err(err).Msg("default fixture unavailable")
		}
	}

	return nil
}

func decodeFrom[T any](ctx context.Context, p *Provider, src FixtureSource, symbol, file string, dst *T) error {
	fctx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	data, err := src.Fetch(fctx, symbol, file)
	if err != nil {
		return err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}
