// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/internal/logger"
	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

type screen int

const (
	screenSignIn screen = iota
	screenDashboard
	screenWatchlist
	screenSettings
)

// appModel is the single bubbletea model of the client. Every protected
// screen reads the session from here; it is reset whenever the server
// rejects the token.
type appModel struct {
	ctx      context.Context
	sessions service.ClientSessionService
	data     service.ClientDataService
	logger   *logger.Logger
	opts     Options

	currentScreen screen
	restoring     bool
	session       models.SessionResponse
	theme         theme

	signIn    signInModel
	dashboard dashboardModel
	watchlist watchlistModel
	settings  settingsModel

	serverVersion string
	showInfo      bool

	showError    bool
	errorOverlay errorOverlayModel
	status       string
}

func newAppModel(ctx context.Context, sessions service.ClientSessionService, data service.ClientDataService, opts Options, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		sessions:      sessions,
		data:          data,
		logger:        log,
		opts:          opts,
		currentScreen: screenSignIn,
		restoring:     true,
		theme:         newTheme(sessions.Theme(ctx)),
		signIn:        newSignInModel(),
		dashboard:     newDashboardModel(models.Entitlement{}, opts.PriceRange),
		watchlist:     newWatchlistModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRestore(), m.cmdPlans(), textinput.Blink)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showInfo = false
			}
			return m, nil
		}
		if m.currentScreen != screenSignIn && !m.typing() {
			switch {
			case key.Matches(msg, keys.quit):
				return m, tea.Quit
			case key.Matches(msg, keys.dashboard):
				return m.open(screenDashboard)
			case key.Matches(msg, keys.watchlist):
				return m.open(screenWatchlist)
			case key.Matches(msg, keys.settings):
				return m.open(screenSettings)
			case key.Matches(msg, keys.theme):
				return m.toggleTheme()
			case key.Matches(msg, keys.info):
				m.showInfo = true
				return m, m.cmdVersion()
			case key.Matches(msg, keys.signOut):
				return m, m.cmdSignOut()
			}
		}

	case sessionRestoredMsg:
		m.restoring = false
		if msg.err != nil {
			if !errors.Is(msg.err, service.ErrNotSignedIn) {
				m.logger.Warn().Err(msg.err).Msg("session restore failed")
			}
			m.currentScreen = screenSignIn
			return m, nil
		}
		return m.enterSession(msg.session)
	case signedInMsg:
		m.signIn.submitting = false
		if msg.err != nil {
			m.signIn.errMsg = signInErrorMessage(msg.err)
			return m, nil
		}
		plans := m.signIn.plans
		m.signIn = newSignInModel()
		m.signIn.plans = plans
		return m.enterSession(msg.session)
	case signedOutMsg:
		if m.currentScreen == screenSignIn {
			return m, nil
		}
		return m.toSignIn(""), textinput.Blink
	case plansLoadedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("plans load failed")
			return m, nil
		}
		m.signIn.plans = msg.plans
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case searchResultsMsg:
		return m.onSearchResults(msg)
	case snapshotMsg:
		return m.onSnapshot(msg)
	case conversionMsg:
		return m.onConversion(msg)
	case watchlistLoadedMsg:
		return m.onWatchlistLoaded(msg)
	case watchlistChangedMsg:
		return m.onWatchlistChanged(msg)
	case settingsLoadedMsg:
		return m.onSettingsLoaded(msg)
	case emailAlertsMsg:
		return m.onEmailAlerts(msg)
	case apiKeyMsg:
		return m.onAPIKey(msg)

	case errMsg:
		return m.fail(msg.err)
	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSignIn:
		return m.updateSignIn(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenWatchlist:
		return m.updateWatchlist(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showInfo:
		body = renderBuildInfoWindow(m.theme, m.opts.BuildInfo, m.serverVersion)
	case m.restoring:
		body = renderPage(m.theme, "MARKET PULSE", "Restoring session...", "")
	default:
		switch m.currentScreen {
		case screenSignIn:
			body = m.viewSignIn()
		case screenDashboard:
			body = m.viewDashboard()
		case screenWatchlist:
			body = m.viewWatchlist()
		case screenSettings:
			body = m.viewSettings()
		}
	}

	if m.status != "" {
		body += "\n\n  " + m.theme.accent.Render(m.status)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.theme)
	}

	return m.theme.app.Render(body)
}

// typing reports whether a text input owns the keyboard, in which case
// letter hotkeys go to the input.
func (m appModel) typing() bool {
	switch m.currentScreen {
	case screenDashboard:
		return m.dashboard.focus != focusNone
	case screenWatchlist:
		return m.watchlist.typing
	}
	return false
}

func (m appModel) entitlement() models.Entitlement {
	return m.session.Entitlement
}

func (m appModel) enterSession(session models.SessionResponse) (tea.Model, tea.Cmd) {
	m.session = session
	m.dashboard = newDashboardModel(session.Entitlement, m.opts.PriceRange)
	m.watchlist = newWatchlistModel()
	m.settings = settingsModel{}
	m.logger.Info().Str("user", session.User.Email).Str("tier", string(session.Entitlement.Tier)).Msg("signed in")
	return m.open(screenDashboard)
}

// toSignIn drops the session and shows the sign-in form with notice.
func (m appModel) toSignIn(notice string) appModel {
	plans := m.signIn.plans
	m.session = models.SessionResponse{}
	m.currentScreen = screenSignIn
	m.signIn = newSignInModel()
	m.signIn.plans = plans
	m.signIn.notice = notice
	m.showError = false
	return m
}

func (m appModel) open(s screen) (tea.Model, tea.Cmd) {
	m.currentScreen = s
	switch s {
	case screenDashboard:
		if m.dashboard.suggestions == nil {
			return m, m.dashboardSearch()
		}
	case screenWatchlist:
		if !m.entitlement().WatchlistEnabled {
			return m, nil
		}
		m.watchlist.loading = true
		return m, tea.Batch(m.cmdLoadWatchlist(), m.watchlistSearch())
	case screenSettings:
		m.settings.loading = true
		return m, m.cmdLoadSettings()
	}
	return m, nil
}

func (m appModel) toggleTheme() (tea.Model, tea.Cmd) {
	m.theme = m.theme.toggled()
	return m, m.cmdSaveTheme(m.theme.name)
}

// fail routes err: an auth failure returns to sign-in, anything else is
// shown in the error overlay.
func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	if isAuthError(err) {
		m = m.toSignIn(msgSessionExpired)
		return m, tea.Batch(textinput.Blink, m.cmdSignOut())
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Restore(ctx)
		return sessionRestoredMsg{session: session, err: err}
	}
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.SignIn(ctx, email, password)
		return signedInMsg{session: session, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	log := m.logger
	return func() tea.Msg {
		if err := sessions.SignOut(ctx); err != nil {
			log.Warn().Err(err).Msg("local session clear failed")
		}
		return signedOutMsg{}
	}
}

func (m appModel) cmdSaveTheme(name string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	log := m.logger
	return func() tea.Msg {
		if err := sessions.SaveTheme(ctx, name); err != nil {
			log.Warn().Err(err).Str("theme", name).Msg("theme save failed")
		}
		return nil
	}
}

func (m appModel) cmdPlans() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		plans, err := data.Plans(ctx)
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func (m appModel) cmdVersion() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		version, err := data.Version(ctx)
		return versionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
