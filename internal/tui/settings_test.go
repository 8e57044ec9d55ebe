// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

func settingsData(tier models.Tier, masked string) *mockDataService {
	data := newMarketData()
	emailAlerts := false
	data.settings = func(context.Context) (models.AccountOverview, error) {
		return models.AccountOverview{
			User:         models.User{Name: "Demo", Email: "demo@marketpulse.test", Subscription: tier},
			Entitlement:  entitlement.Resolve(tier),
			Plan:         models.Plan{ID: tier, Name: "Plan " + string(tier), Price: "$0", Features: []string{"Charts"}},
			RenewalDate:  "2099-01-01",
			Usage:        models.Usage{SearchesToday: 2, SearchLimit: models.Cap(3), WatchlistLimit: models.Cap(0)},
			Settings:     models.Settings{EmailAlerts: emailAlerts},
			APIKeyMasked: masked,
		}, nil
	}
	data.setEmailAlerts = func(_ context.Context, enabled bool) (models.Settings, error) {
		emailAlerts = enabled
		return models.Settings{EmailAlerts: enabled}, nil
	}
	data.apiKey = func(context.Context) (models.APIKeyResponse, error) {
		return models.APIKeyResponse{Key: "mp_live_first", Masked: masked}, nil
	}
	data.generateAPIKey = func(context.Context) (models.APIKeyResponse, error) {
		return models.APIKeyResponse{Key: "mp_live_rotated", Masked: "mp_live_****ated"}, nil
	}
	return data
}

func openSettings(t *testing.T, m appModel) appModel {
	t.Helper()
	m, cmd := update(t, m, runes("s"))
	require.Equal(t, screenSettings, m.currentScreen)
	assert.Contains(t, m.View(), "loading")
	m = feed(t, m, cmd)
	require.NotNil(t, m.settings.overview)
	return m
}

func TestSettings_FreeOverview(t *testing.T) {
	m := openSettings(t, signedIn(t, models.TierFree, settingsData(models.TierFree, "")))

	view := m.View()
	assert.Contains(t, view, "Plan free")
	assert.Contains(t, view, "2099-01-01")
	assert.Contains(t, view, "from now")
	assert.Contains(t, view, "Searches today  2 / 3")
	assert.Contains(t, view, "not available on your plan")
	assert.NotContains(t, view, "g: generate")

	for _, k := range []string{"e", "g", "r", "y"} {
		var cmd tea.Cmd
		m, cmd = update(t, m, runes(k))
		assert.Nil(t, cmd, "key %q", k)
	}
}

func TestSettings_EmailAlerts(t *testing.T) {
	m := openSettings(t, signedIn(t, models.TierPro, settingsData(models.TierPro, "")))
	assert.Contains(t, m.View(), "e: email alerts")

	m, cmd := update(t, m, runes("e"))
	m = feed(t, m, cmd)
	assert.True(t, m.settings.overview.Settings.EmailAlerts)

	m, cmd = update(t, m, runes("e"))
	m = feed(t, m, cmd)
	assert.False(t, m.settings.overview.Settings.EmailAlerts)

	_, cmd = update(t, m, runes("g"))
	assert.Nil(t, cmd, "pro has no API key")
}

func TestSettings_APIKeyRevealCopyRotate(t *testing.T) {
	m := openSettings(t, signedIn(t, models.TierPremium, settingsData(models.TierPremium, "mp_live_****irst")))
	assert.Contains(t, m.View(), "mp_live_****irst")
	assert.Contains(t, m.View(), "g: rotate key")

	_, cmd := update(t, m, runes("y"))
	assert.Nil(t, cmd, "nothing to copy before the key is fetched")

	m, cmd = update(t, m, runes("r"))
	m = feed(t, m, cmd)
	assert.True(t, m.settings.revealed)
	assert.Contains(t, m.View(), "mp_live_first")

	m, _ = update(t, m, runes("r"))
	assert.False(t, m.settings.revealed)
	assert.NotContains(t, m.View(), "mp_live_first")

	m, cmd = update(t, m, runes("g"))
	m = feed(t, m, cmd)
	assert.True(t, m.settings.revealed)
	assert.Contains(t, m.View(), "mp_live_rotated")
	assert.Equal(t, "New API key generated", m.status)

	_, cmd = update(t, m, runes("y"))
	assert.NotNil(t, cmd)
}

func TestSettings_KeyGenerationFailure(t *testing.T) {
	data := settingsData(models.TierPremium, "")
	data.generateAPIKey = func(context.Context) (models.APIKeyResponse, error) {
		return models.APIKeyResponse{}, service.ErrKeyGenerationFailed
	}
	m := openSettings(t, signedIn(t, models.TierPremium, data))
	assert.Contains(t, m.View(), "none yet")
	assert.Contains(t, m.View(), "g: generate key")

	m, cmd := update(t, m, runes("g"))
	m = feed(t, m, cmd)

	assert.True(t, m.showError)
	assert.Empty(t, m.settings.key.Key)
}
