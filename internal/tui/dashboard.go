// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/market-pulse/internal/app"
	"github.com/MKhiriev/market-pulse/internal/catalog"
	"github.com/MKhiriev/market-pulse/internal/entitlement"
	"github.com/MKhiriev/market-pulse/models"
)

type inputFocus int

const (
	focusNone inputFocus = iota
	focusSearch
	focusAmount
)

var (
	typeFilters = []models.TypeFilter{models.FilterAll, models.FilterCrypto, models.FilterStock}
	currencies  = []string{"USD", "PHP"}
)

type dashboardModel struct {
	ent models.Entitlement

	search textinput.Model
	amount textinput.Model
	focus  inputFocus

	filter      models.TypeFilter
	suggestions []models.Asset
	idx         int

	asset     models.Asset
	selection models.Selection
	snapshot  *models.MarketSnapshot
	loading   bool

	currency   string
	convertTag string
	conversion *models.Conversion
	convertErr string
}

func newDashboardModel(ent models.Entitlement, priceRange int) dashboardModel {
	if priceRange != entitlement.RangeWeek && priceRange != entitlement.RangeMonth {
		priceRange = entitlement.RangeMonth
	}
	sentimentRange := entitlement.RangeWeek
	if len(ent.SentimentRanges) > 0 && !slices.Contains(ent.SentimentRanges, sentimentRange) {
		sentimentRange = ent.SentimentRanges[0]
	}

	search := textinput.New()
	search.Placeholder = "symbol or name"
	search.CharLimit = 40
	search.Width = 30

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 20
	amount.Width = 14

	return dashboardModel{
		ent:      ent,
		search:   search,
		amount:   amount,
		filter:   models.FilterAll,
		currency: currencies[0],
		selection: models.Selection{
			Source:         models.SourceAll,
			PriceRange:     priceRange,
			SentimentRange: sentimentRange,
		},
	}
}

// searchTag identifies an asset search so that results for an outdated
// query can be dropped.
func searchTag(query string, filter models.TypeFilter) string {
	return string(filter) + "|" + strings.ToUpper(strings.TrimSpace(query))
}

// selectableSources returns the sources the user may pick. A single entry
// means the selector is hidden.
func selectableSources(ent models.Entitlement) []models.Source {
	if len(ent.AllowedSources) == 0 {
		return []models.Source{models.SourceAll}
	}
	return ent.AllowedSources
}

func cycle[T comparable](values []T, current T) T {
	if len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardDashboardInput(msg)
	}

	d := &m.dashboard
	switch d.focus {
	case focusSearch:
		switch {
		case key.Matches(keyMsg, keys.esc):
			d.focus = focusNone
			d.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			d.focus = focusNone
			d.search.Blur()
			if d.idx < len(d.suggestions) {
				return m.selectAsset(d.suggestions[d.idx])
			}
			return m, nil
		case keyMsg.Type == tea.KeyUp:
			d.moveCursor(-1)
			return m, nil
		case keyMsg.Type == tea.KeyDown:
			d.moveCursor(1)
			return m, nil
		}

		before := d.search.Value()
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		if d.search.Value() != before {
			return m, tea.Batch(cmd, m.dashboardSearch())
		}
		return m, cmd

	case focusAmount:
		switch {
		case key.Matches(keyMsg, keys.esc):
			d.focus = focusNone
			d.amount.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			d.focus = focusNone
			d.amount.Blur()
			return m.convert()
		}

		var cmd tea.Cmd
		d.amount, cmd = d.amount.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.search):
		d.focus = focusSearch
		return m, d.search.Focus()
	case key.Matches(keyMsg, keys.up):
		d.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		d.moveCursor(1)
	case key.Matches(keyMsg, keys.enter):
		if d.idx < len(d.suggestions) {
			return m.selectAsset(d.suggestions[d.idx])
		}
	case key.Matches(keyMsg, keys.filter):
		d.filter = cycle(typeFilters, d.filter)
		d.idx = 0
		return m, m.dashboardSearch()
	case key.Matches(keyMsg, keys.priceRange):
		sel := d.selection
		if sel.PriceRange == entitlement.RangeWeek {
			sel.PriceRange = entitlement.RangeMonth
		} else {
			sel.PriceRange = entitlement.RangeWeek
		}
		return m.reselect(sel)
	case key.Matches(keyMsg, keys.sentimentRange):
		if len(d.ent.SentimentRanges) < 2 {
			return m, nil
		}
		sel := d.selection
		sel.SentimentRange = cycle(d.ent.SentimentRanges, sel.SentimentRange)
		return m.reselect(sel)
	case key.Matches(keyMsg, keys.source):
		sources := selectableSources(d.ent)
		if len(sources) < 2 {
			return m, nil
		}
		sel := d.selection
		sel.Source = cycle(sources, sel.Source)
		return m.reselect(sel)
	case key.Matches(keyMsg, keys.star):
		if !d.ent.WatchlistEnabled || d.asset.Symbol == "" {
			return m, nil
		}
		return m, m.cmdAddToWatchlist(d.asset.Symbol)
	case key.Matches(keyMsg, keys.convert):
		if d.asset.Symbol == "" {
			return m, nil
		}
		d.focus = focusAmount
		return m, d.amount.Focus()
	case key.Matches(keyMsg, keys.currency):
		d.currency = cycle(currencies, d.currency)
		if d.conversion != nil {
			return m.convert()
		}
	}

	return m, nil
}

func (m appModel) forwardDashboardInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.dashboard.focus {
	case focusSearch:
		m.dashboard.search, cmd = m.dashboard.search.Update(msg)
	case focusAmount:
		m.dashboard.amount, cmd = m.dashboard.amount.Update(msg)
	}
	return m, cmd
}

func (d *dashboardModel) moveCursor(delta int) {
	d.idx += delta
	if d.idx >= len(d.suggestions) {
		d.idx = len(d.suggestions) - 1
	}
	if d.idx < 0 {
		d.idx = 0
	}
}

func (m appModel) selectAsset(asset models.Asset) (tea.Model, tea.Cmd) {
	if asset.Symbol != m.dashboard.asset.Symbol {
		m.dashboard.conversion = nil
		m.dashboard.convertErr = ""
		m.dashboard.convertTag = ""
	}
	m.dashboard.asset = asset
	sel := m.dashboard.selection
	sel.Symbol = asset.Symbol
	return m.reselect(sel)
}

// reselect makes sel current and fetches its snapshot. Responses for any
// earlier selection are dropped in onSnapshot.
func (m appModel) reselect(sel models.Selection) (tea.Model, tea.Cmd) {
	m.dashboard.selection = sel
	if sel.Symbol == "" {
		return m, nil
	}
	m.dashboard.loading = true
	return m, m.cmdSnapshot(sel)
}

func (m appModel) convert() (tea.Model, tea.Cmd) {
	d := &m.dashboard
	raw := strings.TrimSpace(d.amount.Value())
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount < 0 {
		d.convertErr = app.MsgInvalidAmount
		d.conversion = nil
		return m, nil
	}

	d.convertErr = ""
	d.convertTag = fmt.Sprintf("%s|%g|%s", d.asset.Symbol, amount, d.currency)
	return m, m.cmdConvert(d.convertTag, d.asset.Symbol, amount, d.currency)
}

func (m appModel) onSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.target == screenWatchlist {
		return m.onWatchlistSearchResults(msg)
	}

	d := &m.dashboard
	if msg.tag != searchTag(d.search.Value(), d.filter) {
		return m, nil
	}
	if msg.err != nil {
		return m.fail(msg.err)
	}

	d.suggestions = msg.assets
	if d.suggestions == nil {
		d.suggestions = []models.Asset{}
	}
	d.moveCursor(0)

	if d.asset.Symbol == "" && len(d.suggestions) > 0 {
		return m.selectAsset(d.suggestions[0])
	}
	return m, nil
}

func (m appModel) onSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	if msg.snapshot.Selection.Tag() != m.dashboard.selection.Tag() {
		m.logger.Debug().
			Str("got", msg.snapshot.Selection.Tag()).
			Str("want", m.dashboard.selection.Tag()).
			Msg("stale market snapshot dropped")
		return m, nil
	}

	m.dashboard.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	if isAuthError(msg.snapshot.SentimentErr) {
		return m.fail(msg.snapshot.SentimentErr)
	}

	snapshot := msg.snapshot
	m.dashboard.snapshot = &snapshot
	return m, nil
}

func (m appModel) onConversion(msg conversionMsg) (tea.Model, tea.Cmd) {
	if msg.tag != m.dashboard.convertTag {
		return m, nil
	}
	if msg.err != nil {
		if isAuthError(msg.err) {
			return m.fail(msg.err)
		}
		m.dashboard.convertErr = humanizeError(msg.err)
		m.dashboard.conversion = nil
		return m, nil
	}
	conversion := msg.conversion
	m.dashboard.conversion = &conversion
	return m, nil
}

func (m appModel) dashboardSearch() tea.Cmd {
	d := m.dashboard
	return m.cmdSearch(screenDashboard, d.search.Value(), d.filter, catalog.DashboardSuggestions)
}

func (m appModel) cmdSearch(target screen, query string, filter models.TypeFilter, limit int) tea.Cmd {
	ctx := m.ctx
	data := m.data
	tag := searchTag(query, filter)
	return func() tea.Msg {
		assets, err := data.Search(ctx, strings.TrimSpace(query), filter, limit)
		return searchResultsMsg{target: target, tag: tag, assets: assets, err: err}
	}
}

func (m appModel) cmdSnapshot(sel models.Selection) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		snapshot, err := data.Snapshot(ctx, sel)
		snapshot.Selection = sel
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func (m appModel) cmdConvert(tag, symbol string, amount float64, currency string) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		conversion, err := data.Convert(ctx, symbol, amount, currency)
		return conversionMsg{tag: tag, conversion: conversion, err: err}
	}
}

func (m appModel) viewDashboard() string {
	th := m.theme
	d := m.dashboard
	var b strings.Builder

	fmt.Fprintf(&b, "Search [%s]  Type: %s\n", d.search.View(), d.filter)
	if len(d.suggestions) == 0 {
		b.WriteString(th.muted.Render("  no matching assets"))
		b.WriteString("\n")
	}
	for i, a := range d.suggestions {
		line := fmt.Sprintf("%s%-6s %-24s %s", cursor(i == d.idx), a.Symbol, fitText(a.Name, 24), a.Type)
		if a.Symbol == d.asset.Symbol {
			line = th.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if d.asset.Symbol == "" {
		b.WriteString(th.muted.Render("Select an asset to see its market data."))
	} else {
		b.WriteString(m.viewMarket())
	}

	return renderPage(th, "DASHBOARD", strings.TrimRight(b.String(), "\n"), m.dashboardHotKeys())
}

func (m appModel) viewMarket() string {
	th := m.theme
	d := m.dashboard
	sel := d.selection
	var b strings.Builder

	b.WriteString(th.title.Render(d.asset.Symbol + "  " + d.asset.Name))
	if d.loading {
		b.WriteString(th.muted.Render("  loading..."))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Price (%dd)\n", sel.PriceRange)
	var snap models.MarketSnapshot
	if d.snapshot != nil {
		snap = *d.snapshot
	}
	b.WriteString(renderPrices(th, snap.Prices))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Sentiment (%dd)", sel.SentimentRange)
	if len(selectableSources(d.ent)) > 1 {
		fmt.Fprintf(&b, "  Source: %s", sel.Source.Label())
	}
	b.WriteString("\n")
	if snap.SentimentErr != nil {
		b.WriteString(th.errText.Render(humanizeError(snap.SentimentErr)))
	} else {
		b.WriteString(renderSentiment(th, snap.Sentiment))
	}
	b.WriteString("\n\n")

	b.WriteString("Distribution\n")
	b.WriteString(renderDistribution(th, snap.Distribution))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Convert [%s] %s %s", d.amount.View(), d.asset.Symbol, d.currency)
	switch {
	case d.convertErr != "":
		b.WriteString("  " + th.errText.Render(d.convertErr))
	case d.conversion != nil:
		fmt.Fprintf(&b, "  = %s %s", formatMoney(d.conversion.Value), d.conversion.Currency)
	}

	return b.String()
}

func (m appModel) dashboardHotKeys() string {
	d := m.dashboard
	if d.focus != focusNone {
		return "enter: confirm │ esc: leave input"
	}

	hot := []string{"/: search", "f: type", "p: price range"}
	if len(d.ent.SentimentRanges) > 1 {
		hot = append(hot, "r: sentiment range")
	}
	if len(selectableSources(d.ent)) > 1 {
		hot = append(hot, "c: source")
	}
	if d.ent.WatchlistEnabled {
		hot = append(hot, "a: watch")
	}
	hot = append(hot, "v: convert", "u: currency", "w: watchlist", "s: settings", "t: theme", "o: sign out", "q: quit")
	return strings.Join(hot, " │ ")
}
