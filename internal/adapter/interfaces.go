// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's transport to the market-pulse
// API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401). The response body
// follows the sentinel after ": ".
package adapter

import (
	"context"

	"github.com/MKhiriev/market-pulse/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the market-pulse server.
// Every method except SignIn, Plans and Version needs a bearer token set via
// SetToken or obtained by SignIn.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// SignIn posts the credentials and stores the returned bearer token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.SessionResponse, error)
	SignOut(ctx context.Context) error
	Session(ctx context.Context) (models.SessionResponse, error)

	Plans(ctx context.Context) ([]models.Plan, error)
	Version(ctx context.Context) (string, error)

	Assets(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error)

	Watchlist(ctx context.Context) ([]models.Asset, error)
	AddToWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error)
	RemoveFromWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error)

	Prices(ctx context.Context, symbol string, rangeDays int) ([]models.PricePoint, error)
	Sentiment(ctx context.Context, symbol string, source models.Source, rangeDays int) ([]models.SentimentPoint, error)
	Distribution(ctx context.Context, symbol string, source models.Source) (models.DistributionView, error)
	Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error)

	Settings(ctx context.Context) (models.AccountOverview, error)
	SetEmailAlerts(ctx context.Context, enabled bool) (models.Settings, error)
	APIKey(ctx context.Context) (models.APIKeyResponse, error)
	GenerateAPIKey(ctx context.Context) (models.APIKeyResponse, error)
}
