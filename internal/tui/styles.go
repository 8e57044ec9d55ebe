// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/market-pulse/internal/service"
)

// theme is one lipgloss palette.
type theme struct {
	name string

	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	errText  lipgloss.Style
	overlay  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style

	positive lipgloss.Style
	neutral  lipgloss.Style
	negative lipgloss.Style
}

type palette struct {
	fg, muted, accent, err                lipgloss.Color
	positive, neutral, negative, selectBg lipgloss.Color
}

var (
	darkPalette = palette{
		fg: "#E6E6E6", muted: "#7A7A7A", accent: "#7DD3FC", err: "#F87171",
		positive: "#4ADE80", neutral: "#FACC15", negative: "#F87171", selectBg: "#334155",
	}
	lightPalette = palette{
		fg: "#1F2937", muted: "#6B7280", accent: "#0369A1", err: "#B91C1C",
		positive: "#15803D", neutral: "#A16207", negative: "#B91C1C", selectBg: "#E2E8F0",
	}
)

func newTheme(name string) theme {
	p := darkPalette
	if name == service.ThemeLight {
		p = lightPalette
	} else {
		name = service.ThemeDark
	}

	return theme{
		name:     name,
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(p.fg),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		errText:  lipgloss.NewStyle().Bold(true).Foreground(p.err),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		accent:   lipgloss.NewStyle().Foreground(p.accent),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		selected: lipgloss.NewStyle().Bold(true).Background(p.selectBg),
		positive: lipgloss.NewStyle().Foreground(p.positive),
		neutral:  lipgloss.NewStyle().Foreground(p.neutral),
		negative: lipgloss.NewStyle().Foreground(p.negative),
	}
}

func (t theme) toggled() theme {
	if t.name == service.ThemeLight {
		return newTheme(service.ThemeDark)
	}
	return newTheme(service.ThemeLight)
}
