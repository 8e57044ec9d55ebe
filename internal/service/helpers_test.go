// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/market"
	"github.com/MKhiriev/market-pulse/internal/store"
	"github.com/MKhiriev/market-pulse/models"
)

var (
	freeUser    = models.User{ID: "u-001", Name: "Frida Free", Email: "free@example.com", Subscription: models.TierFree}
	proUser     = models.User{ID: "u-002", Name: "Paolo Pro", Email: "pro@example.com", Subscription: models.TierPro}
	premiumUser = models.User{ID: "u-003", Name: "Priya Premium", Email: "premium@example.com", Subscription: models.TierPremium}
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "market-pulse-test",
	TokenDuration: time.Hour,
	Version:       "1.2.3",
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadWithCost(bcrypt.MinCost)
	require.NoError(t, err)
	return c
}

type testEnv struct {
	storages *store.Storages
	catalog  *catalog.Catalog
	services *Services
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	storages := store.NewStoragesWithKV(store.NewMemoryKV(), logger.Nop())
	c := testCatalog(t)
	provider := market.NewProvider(nil, time.Second, logger.Nop())

	services, err := NewServices(storages, c, provider, config.StructuredConfig{App: testAppConfig}, logger.Nop())
	require.NoError(t, err)

	return testEnv{storages: storages, catalog: c, services: services}
}

func symbolsOf(items []models.Asset) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Symbol)
	}
	return out
}
