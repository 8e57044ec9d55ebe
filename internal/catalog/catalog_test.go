// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/market-pulse/models"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadFS(embedded, bcrypt.MinCost)
	require.NoError(t, err)
	return c
}

var sample = []models.Asset{
	{Symbol: "BTC", Name: "Bitcoin", Type: models.AssetCrypto},
	{Symbol: "AAPL", Name: "Apple Inc.", Type: models.AssetStock},
	{Symbol: "ETH", Name: "Ethereum", Type: models.AssetCrypto},
	{Symbol: "TSLA", Name: "Tesla Inc.", Type: models.AssetStock},
}

func symbols(assets []models.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Symbol)
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter models.TypeFilter
		want   []string
	}{
		{name: "empty query all", query: "", filter: models.FilterAll, want: []string{"BTC", "AAPL", "ETH", "TSLA"}},
		{name: "empty query stocks", query: "  ", filter: models.FilterStock, want: []string{"AAPL", "TSLA"}},
		{name: "symbol case insensitive", query: "btc", filter: models.FilterAll, want: []string{"BTC"}},
		{name: "name substring", query: "inc", filter: models.FilterAll, want: []string{"AAPL", "TSLA"}},
		{name: "filter before match", query: "btc", filter: models.FilterStock, want: []string{}},
		{name: "crypto filter", query: "e", filter: models.FilterCrypto, want: []string{"ETH"}},
		{name: "unknown filter is all", query: "t", filter: models.ParseTypeFilter("bonds"), want: []string{"BTC", "ETH", "TSLA"}},
		{name: "trimmed query", query: "  eth ", filter: models.FilterAll, want: []string{"ETH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, symbols(Search(sample, tt.query, tt.filter)))
		})
	}
}

func TestSearch_SubsetOfFilter(t *testing.T) {
	for _, q := range []string{"", "a", "in", "zzz"} {
		all := Search(sample, q, models.FilterAll)
		for _, a := range all {
			assert.Contains(t, symbols(Search(sample, "", models.FilterAll)), a.Symbol)
		}
		stocks := Search(sample, q, models.FilterStock)
		for _, a := range stocks {
			assert.Equal(t, models.AssetStock, a.Type)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Len(t, Truncate(sample, 2), 2)
	assert.Len(t, Truncate(sample, 10), 4)
	assert.Empty(t, Truncate(sample, 0))
}

func TestLoad_EmbeddedFixtures(t *testing.T) {
	c := loadTestCatalog(t)

	assets := c.Assets()
	require.NotEmpty(t, assets)
	assert.Equal(t, "BTC", assets[0].Symbol)

	plans := c.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "Starter Plan", plans[0].Name)
	assert.Equal(t, "₱0 / free", plans[0].Price)
	assert.Equal(t, "Trader Plan", plans[1].Name)
	assert.Equal(t, "₱399/mo.", plans[1].Price)
	assert.Equal(t, "AI Analyst Plan", plans[2].Name)
	assert.Equal(t, "₱1,299/mo.", plans[2].Price)
}

func TestCatalog_Asset(t *testing.T) {
	c := loadTestCatalog(t)

	a, err := c.Asset(" eth ")
	require.NoError(t, err)
	assert.Equal(t, "Ethereum", a.Name)

	_, err = c.Asset("NOPE")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestCatalog_SearchTruncates(t *testing.T) {
	c := loadTestCatalog(t)
	assert.Len(t, c.Search("", models.FilterAll, DashboardSuggestions), DashboardSuggestions)
}

func TestCatalog_Authenticate(t *testing.T) {
	c := loadTestCatalog(t)

	u, err := c.Authenticate(" pro@example.com ", "pro123")
	require.NoError(t, err)
	assert.Equal(t, models.TierPro, u.Subscription)
	assert.Empty(t, u.Password, "plaintext must be discarded")
	assert.NotEmpty(t, u.PasswordHash)

	_, err = c.Authenticate("nobody@example.com", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = c.Authenticate("pro@example.com", "wrong")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestCatalog_Plan(t *testing.T) {
	c := loadTestCatalog(t)

	p, err := c.Plan("gold")
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, p.ID)
}

func TestLoadFS_InvalidFixtures(t *testing.T) {
	tests := []struct {
		name   string
		assets string
	}{
		{name: "bad yaml", assets: "{{"},
		{name: "unknown type", assets: "- {symbol: X, name: X, type: bond}"},
		{name: "duplicate symbol", assets: "- {symbol: X, name: X, type: stock}\n- {symbol: x, name: Y, type: stock}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				assetsFile: {Data: []byte(tt.assets)},
				usersFile:  {Data: []byte("[]")},
				plansFile:  {Data: []byte("[]")},
			}
			_, err := LoadFS(fsys, bcrypt.MinCost)
			assert.ErrorIs(t, err, ErrInvalidFixture)
		})
	}
}
