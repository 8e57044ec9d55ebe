// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/models"
)

type settingsModel struct {
	overview *models.AccountOverview
	loading  bool

	key      models.APIKeyResponse
	revealed bool
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.settings.overview == nil {
		return m, nil
	}

	ent := m.settings.overview.Entitlement
	s := &m.settings
	switch {
	case key.Matches(keyMsg, keys.emailAlerts):
		if !ent.EmailAlertsEnabled {
			return m, nil
		}
		return m, m.cmdSetEmailAlerts(!s.overview.Settings.EmailAlerts)
	case key.Matches(keyMsg, keys.generate):
		if !ent.APIKeyEnabled {
			return m, nil
		}
		return m, m.cmdGenerateAPIKey()
	case key.Matches(keyMsg, keys.reveal):
		if !ent.APIKeyEnabled {
			return m, nil
		}
		if s.revealed {
			s.revealed = false
			return m, nil
		}
		if s.key.Key == "" {
			return m, m.cmdAPIKey()
		}
		s.revealed = true
	case key.Matches(keyMsg, keys.copy):
		if !ent.APIKeyEnabled || s.key.Key == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(s.key.Key)
	}

	return m, nil
}

func (m appModel) onSettingsLoaded(msg settingsLoadedMsg) (tea.Model, tea.Cmd) {
	m.settings.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	overview := msg.overview
	m.settings.overview = &overview
	if overview.APIKeyMasked != "" {
		m.settings.key.Masked = overview.APIKeyMasked
	}
	return m, nil
}

func (m appModel) onEmailAlerts(msg emailAlertsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}
	if m.settings.overview != nil {
		m.settings.overview.Settings = msg.settings
	}
	return m, nil
}

func (m appModel) onAPIKey(msg apiKeyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.settings.key = msg.key
	m.settings.revealed = msg.key.Key != ""
	if m.settings.overview != nil {
		m.settings.overview.APIKeyMasked = msg.key.Masked
	}
	if msg.generated {
		m.status = "New API key generated"
		return m, cmdClearStatus()
	}
	return m, nil
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		overview, err := data.Settings(ctx)
		return settingsLoadedMsg{overview: overview, err: err}
	}
}

func (m appModel) cmdSetEmailAlerts(enabled bool) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		settings, err := data.SetEmailAlerts(ctx, enabled)
		return emailAlertsMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdAPIKey() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		k, err := data.APIKey(ctx)
		return apiKeyMsg{key: k, err: err}
	}
}

func (m appModel) cmdGenerateAPIKey() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		k, err := data.GenerateAPIKey(ctx)
		return apiKeyMsg{key: k, generated: true, err: err}
	}
}

func (m appModel) viewSettings() string {
	th := m.theme
	s := m.settings
	if s.overview == nil {
		return renderPage(th, "SETTINGS", th.muted.Render("loading..."), "d: dashboard │ w: watchlist │ q: quit")
	}

	o := s.overview
	ent := o.Entitlement
	var b strings.Builder

	fmt.Fprintf(&b, "Account   %s <%s>\n", o.User.Name, o.User.Email)
	fmt.Fprintf(&b, "Plan      %s (%s)", o.Plan.Name, o.Plan.Price)
	if o.Plan.Badge != "" {
		b.WriteString(" " + th.accent.Render("["+o.Plan.Badge+"]"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Renews    %s\n", formatRenewal(o.RenewalDate, time.Now()))
	for _, f := range o.Plan.Features {
		b.WriteString(th.muted.Render("  • " + f))
		b.WriteString("\n")
	}

	b.WriteString("\nUsage\n")
	fmt.Fprintf(&b, "  Searches today  %d / %s\n", o.Usage.SearchesToday, o.Usage.SearchLimit)
	fmt.Fprintf(&b, "  Watchlist       %d / %s\n", o.Usage.WatchlistCount, o.Usage.WatchlistLimit)

	b.WriteString("\nEmail alerts  ")
	switch {
	case !ent.EmailAlertsEnabled:
		b.WriteString(th.muted.Render("not available on your plan"))
	case o.Settings.EmailAlerts:
		b.WriteString(th.positive.Render("on"))
	default:
		b.WriteString("off")
	}
	b.WriteString("\n")

	b.WriteString("API key       ")
	switch {
	case !ent.APIKeyEnabled:
		b.WriteString(th.muted.Render("not available on your plan"))
	case s.revealed && s.key.Key != "":
		b.WriteString(s.key.Key)
	case s.key.Masked != "":
		b.WriteString(s.key.Masked)
	default:
		b.WriteString(th.muted.Render("none yet"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Theme         %s\n", m.theme.name)

	return renderPage(th, "SETTINGS", strings.TrimRight(b.String(), "\n"), m.settingsHotKeys(ent))
}

func (m appModel) settingsHotKeys(ent models.Entitlement) string {
	var hot []string
	if ent.EmailAlertsEnabled {
		hot = append(hot, "e: email alerts")
	}
	if ent.APIKeyEnabled {
		verb := "generate"
		if m.settings.key.Masked != "" {
			verb = "rotate"
		}
		hot = append(hot, "g: "+verb+" key", "r: reveal", "y: copy")
	}
	hot = append(hot, "t: theme", "d: dashboard", "w: watchlist", "o: sign out", "q: quit")
	return strings.Join(hot, " │ ")
}
