// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/market-pulse/models"
)

// AuthService owns the session store. CurrentSession is the only resolver
// protected endpoints use.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (models.Session, models.Token, error)
	CurrentSession(ctx context.Context, token string) (models.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	SignUp(ctx context.Context, req models.SignInRequest) error
}

type AssetService interface {
	Search(ctx context.Context, query string, filter models.TypeFilter, limit int) []models.Asset
	Asset(ctx context.Context, symbol string) (models.Asset, error)
	Plans(ctx context.Context) []models.Plan
}

// WatchlistService mutates a user's watchlist. The bool result reports
// whether the stored list changed.
type WatchlistService interface {
	Load(ctx context.Context, user models.User) ([]models.Asset, error)
	Add(ctx context.Context, user models.User, symbol string) ([]models.Asset, bool, error)
	Remove(ctx context.Context, user models.User, symbol string) ([]models.Asset, bool, error)
}

type MarketService interface {
	Prices(ctx context.Context, user models.User, symbol string, rangeDays int) ([]models.PricePoint, error)
	Sentiment(ctx context.Context, user models.User, symbol string, source models.Source, rangeDays int) ([]models.SentimentPoint, error)
	Distribution(ctx context.Context, user models.User, symbol string, source models.Source) (models.DistributionView, error)
	Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error)
}

type APIKeyService interface {
	Get(ctx context.Context, user models.User) (models.APIKeyResponse, error)
	Generate(ctx context.Context, user models.User) (models.APIKeyResponse, error)
}

type SettingsService interface {
	Overview(ctx context.Context, user models.User) (models.AccountOverview, error)
	SetEmailAlerts(ctx context.Context, user models.User, enabled bool) (models.Settings, error)

	// RecordSearch counts one sentiment search for today and returns the new
	// count. The count is shown against the plan's allowance and never blocks.
	RecordSearch(ctx context.Context, user models.User) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
