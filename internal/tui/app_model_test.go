// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

func TestAppModel_Init(t *testing.T) {
	sessions := &mockSessionService{
		theme: service.ThemeLight,
		restore: func(context.Context) (models.SessionResponse, error) {
			return sessionFor(models.TierPro), nil
		},
	}
	data := newMarketData()
	data.plans = func(context.Context) ([]models.Plan, error) {
		return []models.Plan{{ID: models.TierPro, Name: "Pro", Price: "$29/mo"}}, nil
	}

	m := newTestModel(sessions, data)
	assert.Equal(t, service.ThemeLight, m.theme.name)
	assert.True(t, m.restoring)
	assert.Contains(t, m.View(), "Restoring session")

	var restored, plans bool
	for _, msg := range collect(m.Init()) {
		switch msg.(type) {
		case sessionRestoredMsg:
			restored = true
		case plansLoadedMsg:
			plans = true
		}
		m, _ = update(t, m, msg)
	}

	assert.True(t, restored)
	assert.True(t, plans)
	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.Equal(t, models.TierPro, m.session.Entitlement.Tier)
	assert.Len(t, m.signIn.plans, 1)
}

func TestAppModel_RestoreWithoutSessionShowsSignIn(t *testing.T) {
	m := newTestModel(nil, newMarketData())

	m, cmd := update(t, m, sessionRestoredMsg{err: service.ErrNotSignedIn})

	assert.Nil(t, cmd)
	assert.False(t, m.restoring)
	assert.Equal(t, screenSignIn, m.currentScreen)
	assert.Contains(t, m.View(), "SIGN IN")
	assert.Contains(t, m.View(), app.MsgSignUpPlaceholder)
}

func TestAppModel_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantScreen screen
		wantErrMsg string
	}{
		{name: "success", wantScreen: screenDashboard},
		{name: "unknown email", err: service.ErrNoAccountFound, wantScreen: screenSignIn, wantErrMsg: app.MsgNoAccountFound},
		{name: "wrong password", err: service.ErrIncorrectPassword, wantScreen: screenSignIn, wantErrMsg: app.MsgIncorrectPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail, gotPassword string
			sessions := &mockSessionService{
				signIn: func(_ context.Context, email, password string) (models.SessionResponse, error) {
					gotEmail, gotPassword = email, password
					if tt.err != nil {
						return models.SessionResponse{}, tt.err
					}
					return sessionFor(models.TierFree), nil
				},
			}
			m := newTestModel(sessions, newMarketData())
			m, _ = update(t, m, sessionRestoredMsg{err: service.ErrNotSignedIn})

			m, _ = update(t, m, runes(" free@marketpulse.test "))
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
			m, _ = update(t, m, runes("secret"))
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.True(t, m.signIn.submitting)

			m, _ = update(t, m, cmd())

			assert.Equal(t, "free@marketpulse.test", gotEmail)
			assert.Equal(t, "secret", gotPassword)
			assert.False(t, m.signIn.submitting)
			assert.Equal(t, tt.wantScreen, m.currentScreen)
			assert.Equal(t, tt.wantErrMsg, m.signIn.errMsg)
			if tt.wantErrMsg != "" {
				assert.Contains(t, m.View(), tt.wantErrMsg)
			}
		})
	}
}

func TestAppModel_SignInRequiresCredentials(t *testing.T) {
	m := newTestModel(nil, newMarketData())
	m, _ = update(t, m, sessionRestoredMsg{err: service.ErrNotSignedIn})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, msgCredentials, m.signIn.errMsg)
}

func TestAppModel_LetterKeysTypeIntoSignInForm(t *testing.T) {
	m := newTestModel(nil, newMarketData())
	m, _ = update(t, m, sessionRestoredMsg{err: service.ErrNotSignedIn})

	m, _ = update(t, m, runes("qwsd"))

	assert.Equal(t, screenSignIn, m.currentScreen)
	assert.Equal(t, "qwsd", m.signIn.inputs[0].Value())
}

func TestAppModel_Navigation(t *testing.T) {
	m := signedIn(t, models.TierFree, newMarketData())

	m, cmd := update(t, m, runes("w"))
	assert.Equal(t, screenWatchlist, m.currentScreen)
	assert.Nil(t, cmd, "free users never load the watchlist")

	m, _ = update(t, m, runes("d"))
	assert.Equal(t, screenDashboard, m.currentScreen)

	m, _ = update(t, m, runes("i"))
	assert.True(t, m.showInfo)
	assert.Contains(t, m.View(), "ABOUT")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)

	_, cmd = update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_CtrlCQuitsEverywhere(t *testing.T) {
	m := newTestModel(nil, newMarketData())
	m, _ = update(t, m, sessionRestoredMsg{err: service.ErrNotSignedIn})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_SignOut(t *testing.T) {
	sessions := &mockSessionService{theme: service.ThemeDark}
	m := newTestModel(sessions, newMarketData())
	m, cmd := update(t, m, sessionRestoredMsg{session: sessionFor(models.TierPro)})
	m = feed(t, m, cmd)

	m, cmd = update(t, m, runes("o"))
	m = feed(t, m, cmd)

	assert.Equal(t, 1, sessions.signOuts)
	assert.Equal(t, screenSignIn, m.currentScreen)
	assert.Empty(t, m.session.User.Email)
}

func TestAppModel_AuthErrorRedirectsToSignIn(t *testing.T) {
	sessions := &mockSessionService{theme: service.ThemeDark}
	m := newTestModel(sessions, newMarketData())
	m, cmd := update(t, m, sessionRestoredMsg{session: sessionFor(models.TierPro)})
	m = feed(t, m, cmd)

	m, cmd = update(t, m, snapshotMsg{
		snapshot: models.MarketSnapshot{Selection: m.dashboard.selection},
		err:      service.ErrTokenIsExpiredOrInvalid,
	})
	assert.Equal(t, screenSignIn, m.currentScreen)
	assert.Equal(t, msgSessionExpired, m.signIn.notice)

	m = feed(t, m, cmd)
	assert.Equal(t, 1, sessions.signOuts)
	assert.Equal(t, msgSessionExpired, m.signIn.notice, "the late sign-out keeps the notice")
}

func TestAppModel_ErrorOverlay(t *testing.T) {
	m := signedIn(t, models.TierPro, newMarketData())

	m, _ = update(t, m, errMsg{err: service.ErrKeyGenerationFailed})
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), app.MsgKeyGenerationFailed)

	m, _ = update(t, m, runes("w"))
	assert.Equal(t, screenDashboard, m.currentScreen, "overlay swallows keys")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

func TestAppModel_ToggleTheme(t *testing.T) {
	sessions := &mockSessionService{theme: service.ThemeDark}
	m := newTestModel(sessions, newMarketData())
	m, cmd := update(t, m, sessionRestoredMsg{session: sessionFor(models.TierFree)})
	m = feed(t, m, cmd)

	m, cmd = update(t, m, runes("t"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	assert.Equal(t, service.ThemeLight, m.theme.name)
	assert.Equal(t, service.ThemeLight, sessions.savedTheme)

	m, cmd = update(t, m, runes("t"))
	cmd()
	assert.Equal(t, service.ThemeDark, m.theme.name)
	assert.Equal(t, service.ThemeDark, sessions.savedTheme)
}

func TestAppModel_Status(t *testing.T) {
	m := signedIn(t, models.TierPremium, newMarketData())

	m, cmd := update(t, m, copiedMsg{})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Copied to clipboard")

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}
