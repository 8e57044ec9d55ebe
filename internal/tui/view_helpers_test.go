// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/market-pulse/internal/service"
	"github.com/MKhiriev/market-pulse/models"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "5,600,000.00", formatMoney(5600000))
	assert.Equal(t, "0.50", formatMoney(0.5))
	assert.Equal(t, "1,200", formatCount(1200))
}

func TestFormatRenewal(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	renewal := formatRenewal("2026-11-13", now)
	assert.True(t, strings.HasPrefix(renewal, "2026-11-13 ("), renewal)
	assert.True(t, strings.HasSuffix(renewal, "from now)"), renewal)
	assert.Equal(t, "soon", formatRenewal("soon", now))
	assert.Equal(t, "N/A", formatRenewal("", now))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Bitcoin", fitText("Bitcoin", 10))
	assert.Equal(t, "Bitc...", fitText("Bitcoin Cash", 7))
	assert.Equal(t, "Bi", fitText("Bitcoin", 2))
}

func TestRenderPage(t *testing.T) {
	out := renderPage(newTheme(service.ThemeDark), "TITLE", "line one\nline two", "q: quit")

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "  line one\n  line two\n")
	assert.Contains(t, out, "q: quit")
	assert.Contains(t, out, "ctrl+c: quit")

	assert.Contains(t, renderPage(newTheme(""), "EMPTY", " ", ""), "  -\n")
}

func TestNewTheme(t *testing.T) {
	assert.Equal(t, service.ThemeDark, newTheme("").name)
	assert.Equal(t, service.ThemeDark, newTheme("neon").name)
	assert.Equal(t, service.ThemeLight, newTheme(service.ThemeLight).name)
	assert.Equal(t, service.ThemeLight, newTheme(service.ThemeDark).toggled().name)
}

func TestRenderBuildInfoWindow(t *testing.T) {
	out := renderBuildInfoWindow(newTheme(""), models.NewAppBuildInfo("1.2.3", "", "abc"), "9.9.9")

	assert.Contains(t, out, "Version: 1.2.3")
	assert.Contains(t, out, "Date: N/A")
	assert.Contains(t, out, "Commit: abc")
	assert.Contains(t, out, "Server version: 9.9.9")
}
