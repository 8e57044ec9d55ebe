// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/models"
)

type watchlistPane int

const (
	paneItems watchlistPane = iota
	paneResults
)

type watchlistModel struct {
	search  textinput.Model
	typing  bool
	pane    watchlistPane
	loading bool

	items   []models.Asset
	itemIdx int

	results   []models.Asset
	resultIdx int
}

func newWatchlistModel() watchlistModel {
	search := textinput.New()
	search.Placeholder = "add asset"
	search.CharLimit = 40
	search.Width = 30

	return watchlistModel{search: search}
}

func (w *watchlistModel) move(delta int) {
	if w.pane == paneItems {
		w.itemIdx = clampIndex(w.itemIdx+delta, len(w.items))
		return
	}
	w.resultIdx = clampIndex(w.resultIdx+delta, len(w.results))
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m appModel) updateWatchlist(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.entitlement().WatchlistEnabled {
		return m, nil
	}

	w := &m.watchlist
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !w.typing {
			return m, nil
		}
		var cmd tea.Cmd
		w.search, cmd = w.search.Update(msg)
		return m, cmd
	}

	if w.typing {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			w.typing = false
			w.search.Blur()
			w.pane = paneResults
			return m, nil
		}

		before := w.search.Value()
		var cmd tea.Cmd
		w.search, cmd = w.search.Update(msg)
		if w.search.Value() != before {
			return m, tea.Batch(cmd, m.watchlistSearch())
		}
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		w.typing = true
		return m, w.search.Focus()
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if w.pane == paneItems {
			w.pane = paneResults
		} else {
			w.pane = paneItems
		}
	case key.Matches(keyMsg, keys.up):
		w.move(-1)
	case key.Matches(keyMsg, keys.down):
		w.move(1)
	case key.Matches(keyMsg, keys.enter):
		if w.pane == paneResults {
			if w.resultIdx < len(w.results) {
				return m, m.cmdAddToWatchlist(w.results[w.resultIdx].Symbol)
			}
			return m, nil
		}
		if w.itemIdx < len(w.items) {
			m.currentScreen = screenDashboard
			return m.selectAsset(w.items[w.itemIdx])
		}
	case key.Matches(keyMsg, keys.star):
		if w.pane == paneResults && w.resultIdx < len(w.results) {
			return m, m.cmdAddToWatchlist(w.results[w.resultIdx].Symbol)
		}
	case key.Matches(keyMsg, keys.remove):
		if w.pane == paneItems && w.itemIdx < len(w.items) {
			return m, m.cmdRemoveFromWatchlist(w.items[w.itemIdx].Symbol)
		}
	}

	return m, nil
}

func (m appModel) onWatchlistSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.tag != searchTag(m.watchlist.search.Value(), models.FilterAll) {
		return m, nil
	}
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.watchlist.results = msg.assets
	m.watchlist.resultIdx = clampIndex(m.watchlist.resultIdx, len(msg.assets))
	return m, nil
}

func (m appModel) onWatchlistLoaded(msg watchlistLoadedMsg) (tea.Model, tea.Cmd) {
	m.watchlist.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.watchlist.items = msg.items
	m.watchlist.itemIdx = clampIndex(m.watchlist.itemIdx, len(msg.items))
	return m, nil
}

func (m appModel) onWatchlistChanged(msg watchlistChangedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.watchlist.items = msg.response.Items
	m.watchlist.itemIdx = clampIndex(m.watchlist.itemIdx, len(msg.response.Items))

	switch {
	case !msg.response.Changed && msg.added:
		m.status = fmt.Sprintf("%s not added: already watched or watchlist full (%s max)",
			msg.symbol, m.entitlement().MaxWatchlistSize)
	case !msg.response.Changed:
		m.status = msg.symbol + " is not on the watchlist"
	case msg.added:
		m.status = "Added " + msg.symbol + " to watchlist"
	default:
		m.status = "Removed " + msg.symbol + " from watchlist"
	}
	return m, cmdClearStatus()
}

func (m appModel) watchlistSearch() tea.Cmd {
	return m.cmdSearch(screenWatchlist, m.watchlist.search.Value(), models.FilterAll, catalog.WatchlistResults)
}

func (m appModel) cmdLoadWatchlist() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		items, err := data.Watchlist(ctx)
		return watchlistLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdAddToWatchlist(symbol string) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		resp, err := data.AddToWatchlist(ctx, symbol)
		return watchlistChangedMsg{symbol: symbol, added: true, response: resp, err: err}
	}
}

func (m appModel) cmdRemoveFromWatchlist(symbol string) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		resp, err := data.RemoveFromWatchlist(ctx, symbol)
		return watchlistChangedMsg{symbol: symbol, response: resp, err: err}
	}
}

func (m appModel) viewWatchlist() string {
	th := m.theme
	ent := m.entitlement()
	if !ent.WatchlistEnabled {
		return renderPage(th, "WATCHLIST",
			th.muted.Render("The watchlist is not available on your plan. Upgrade to Pro to track assets."),
			"d: dashboard │ s: settings │ q: quit")
	}

	w := m.watchlist
	var b strings.Builder

	fmt.Fprintf(&b, "Watching %d of %s\n", len(w.items), ent.MaxWatchlistSize)
	if w.loading {
		b.WriteString(th.muted.Render("loading..."))
		b.WriteString("\n")
	} else if len(w.items) == 0 {
		b.WriteString(th.muted.Render("  nothing watched yet"))
		b.WriteString("\n")
	}
	for i, a := range w.items {
		b.WriteString(renderAssetRow(th, a, w.pane == paneItems && i == w.itemIdx))
	}

	fmt.Fprintf(&b, "\nSearch [%s]\n", w.search.View())
	for i, a := range w.results {
		b.WriteString(renderAssetRow(th, a, w.pane == paneResults && i == w.resultIdx))
	}

	hot := "/: search │ tab: switch list │ enter: open / add │ x: remove │ d: dashboard │ s: settings │ q: quit"
	if w.typing {
		hot = "enter / esc: leave search"
	}
	return renderPage(th, "WATCHLIST", strings.TrimRight(b.String(), "\n"), hot)
}

func renderAssetRow(th theme, a models.Asset, active bool) string {
	line := fmt.Sprintf("%s%-6s %-24s %s", cursor(active), a.Symbol, fitText(a.Name, 24), a.Type)
	if active {
		line = th.selected.Render(line)
	}
	return line + "\n"
}
