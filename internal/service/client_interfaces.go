// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/market-pulse/models"
)

// ClientSessionService keeps the terminal client's sign-in and theme in the
// local store and in step with the server.
type ClientSessionService interface {
	// Restore loads the persisted session and confirms it with the server.
	// A missing or rejected session yields ErrNotSignedIn and is cleared.
	Restore(ctx context.Context) (models.SessionResponse, error)

	SignIn(ctx context.Context, email, password string) (models.SessionResponse, error)

	// SignOut clears the local session even when the server call fails.
	SignOut(ctx context.Context) error

	Theme(ctx context.Context) string
	SaveTheme(ctx context.Context, theme string) error
}

// ClientDataService is the client's view of the market-pulse API. Errors
// are translated with [MapAdapterError].
type ClientDataService interface {
	Plans(ctx context.Context) ([]models.Plan, error)
	Version(ctx context.Context) (string, error)

	Search(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error)

	// Snapshot fetches prices, sentiment and distribution for sel
	// concurrently.
	Snapshot(ctx context.Context, sel models.Selection) (models.MarketSnapshot, error)
	Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error)

	Watchlist(ctx context.Context) ([]models.Asset, error)
	AddToWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error)
	RemoveFromWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error)

	Settings(ctx context.Context) (models.AccountOverview, error)
	SetEmailAlerts(ctx context.Context, enabled bool) (models.Settings, error)
	APIKey(ctx context.Context) (models.APIKeyResponse, error)
	GenerateAPIKey(ctx context.Context) (models.APIKeyResponse, error)
}
