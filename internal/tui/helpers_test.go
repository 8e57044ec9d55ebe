// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

type mockSessionService struct {
	restore func(ctx context.Context) (models.SessionResponse, error)
	signIn  func(ctx context.Context, email, password string) (models.SessionResponse, error)

	theme      string
	savedTheme string
	signOuts   int
}

func (m *mockSessionService) Restore(ctx context.Context) (models.SessionResponse, error) {
	if m.restore == nil {
		return models.SessionResponse{}, service.ErrNotSignedIn
	}
	return m.restore(ctx)
}

func (m *mockSessionService) SignIn(ctx context.Context, email, password string) (models.SessionResponse, error) {
	return m.signIn(ctx, email, password)
}

func (m *mockSessionService) SignOut(context.Context) error {
	m.signOuts++
	return nil
}

func (m *mockSessionService) Theme(context.Context) string {
	return m.theme
}

func (m *mockSessionService) SaveTheme(_ context.Context, theme string) error {
	m.savedTheme = theme
	return nil
}

// mockDataService panics on methods a test did not expect.
type mockDataService struct {
	service.ClientDataService

	plans          func(ctx context.Context) ([]models.Plan, error)
	search         func(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error)
	snapshot       func(ctx context.Context, sel models.Selection) (models.MarketSnapshot, error)
	convert        func(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error)
	watchlist      func(ctx context.Context) ([]models.Asset, error)
	add            func(ctx context.Context, symbol string) (models.WatchlistResponse, error)
	remove         func(ctx context.Context, symbol string) (models.WatchlistResponse, error)
	settings       func(ctx context.Context) (models.AccountOverview, error)
	setEmailAlerts func(ctx context.Context, enabled bool) (models.Settings, error)
	apiKey         func(ctx context.Context) (models.APIKeyResponse, error)
	generateAPIKey func(ctx context.Context) (models.APIKeyResponse, error)
}

func (m *mockDataService) Plans(ctx context.Context) ([]models.Plan, error) {
	return m.plans(ctx)
}

func (m *mockDataService) Search(ctx context.Context, query string, filter models.TypeFilter, limit int) ([]models.Asset, error) {
	return m.search(ctx, query, filter, limit)
}

func (m *mockDataService) Snapshot(ctx context.Context, sel models.Selection) (models.MarketSnapshot, error) {
	return m.snapshot(ctx, sel)
}

func (m *mockDataService) Convert(ctx context.Context, symbol string, amount float64, currency string) (models.Conversion, error) {
	return m.convert(ctx, symbol, amount, currency)
}

func (m *mockDataService) Watchlist(ctx context.Context) ([]models.Asset, error) {
	return m.watchlist(ctx)
}

func (m *mockDataService) AddToWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	return m.add(ctx, symbol)
}

func (m *mockDataService) RemoveFromWatchlist(ctx context.Context, symbol string) (models.WatchlistResponse, error) {
	return m.remove(ctx, symbol)
}

func (m *mockDataService) Settings(ctx context.Context) (models.AccountOverview, error) {
	return m.settings(ctx)
}

func (m *mockDataService) SetEmailAlerts(ctx context.Context, enabled bool) (models.Settings, error) {
	return m.setEmailAlerts(ctx, enabled)
}

func (m *mockDataService) APIKey(ctx context.Context) (models.APIKeyResponse, error) {
	return m.apiKey(ctx)
}

func (m *mockDataService) GenerateAPIKey(ctx context.Context) (models.APIKeyResponse, error) {
	return m.generateAPIKey(ctx)
}

var testAssets = []models.Asset{
	{Symbol: "BTC", Name: "Bitcoin", Type: models.AssetCrypto},
	{Symbol: "ETH", Name: "Ethereum", Type: models.AssetCrypto},
	{Symbol: "AAPL", Name: "Apple Inc.", Type: models.AssetStock},
}

// newMarketData answers searches with testAssets and snapshots with one
// price point per day of the requested window.
func newMarketData() *mockDataService {
	return &mockDataService{
		search: func(_ context.Context, _ string, _ models.TypeFilter, _ int) ([]models.Asset, error) {
			return testAssets, nil
		},
		snapshot: func(_ context.Context, sel models.Selection) (models.MarketSnapshot, error) {
			return models.MarketSnapshot{
				Selection: sel,
				Prices:    make([]models.PricePoint, sel.PriceRange),
				Distribution: models.DistributionView{
					Source:    sel.Source,
					Breakdown: models.Breakdown{Positive: 60, Neutral: 30, Negative: 10},
				},
			}, nil
		},
	}
}

func newTestModel(sessions *mockSessionService, data *mockDataService) appModel {
	if sessions == nil {
		sessions = &mockSessionService{theme: service.ThemeDark}
	}
	return newAppModel(context.Background(), sessions, data, Options{PriceRange: 30}, logger.Nop())
}

func sessionFor(tier models.Tier) models.SessionResponse {
	return models.SessionResponse{
		User:        models.User{Name: "Demo", Email: string(tier) + "@marketpulse.test", Subscription: tier},
		Entitlement: entitlement.Resolve(tier),
	}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

// collect runs cmd and every command of a batch it returns.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// feed runs cmd and delivers its messages to m.
func feed(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	for _, msg := range collect(cmd) {
		m, _ = update(t, m, msg)
	}
	return m
}

// signedIn returns a model on the dashboard for tier with the first asset
// selected and its snapshot applied.
func signedIn(t *testing.T, tier models.Tier, data *mockDataService) appModel {
	t.Helper()
	m := newTestModel(nil, data)
	m, cmd := update(t, m, sessionRestoredMsg{session: sessionFor(tier)})
	m, cmd = update(t, m, cmd())
	m = feed(t, m, cmd)
	require.Equal(t, screenDashboard, m.currentScreen)
	require.NotNil(t, m.dashboard.snapshot)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
