// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/market-pulse/models"
)

const (
	barWidth       = 30
	sparklineWidth = 30
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// bar renders fraction (clamped to [0,1]) of width as filled cells.
func bar(fraction float64, width int) string {
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// sparkline draws the last width prices scaled between their min and max.
func sparkline(points []models.PricePoint, width int) string {
	if len(points) == 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0].Price, points[0].Price
	for _, p := range points {
		lo = math.Min(lo, p.Price)
		hi = math.Max(hi, p.Price)
	}

	out := make([]rune, len(points))
	for i, p := range points {
		level := len(sparkLevels) / 2
		if hi > lo {
			level = int((p.Price - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}

func renderPrices(th theme, points []models.PricePoint) string {
	if len(points) == 0 {
		return th.muted.Render("no price data")
	}
	first, last := points[0], points[len(points)-1]
	change := 0.0
	if first.Price != 0 {
		change = (last.Price - first.Price) / first.Price * 100
	}
	style := th.positive
	if change < 0 {
		style = th.negative
	}
	return fmt.Sprintf("%s\n%s → %s  $%s %s",
		th.accent.Render(sparkline(points, sparklineWidth)),
		first.Date, last.Date, formatMoney(last.Price),
		style.Render(fmt.Sprintf("%+.2f%%", change)))
}

// renderSentiment shows the positive share of every day.
func renderSentiment(th theme, points []models.SentimentPoint) string {
	if len(points) == 0 {
		return th.muted.Render("no sentiment data")
	}
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteString("\n")
		}
		share := 0.0
		if total := p.Total(); total > 0 {
			share = p.Positive / total
		}
		fmt.Fprintf(&b, "%-10s %s %5.1f%%", p.Date, th.positive.Render(bar(share, barWidth/2)), share*100)
	}
	return b.String()
}

func renderDistribution(th theme, view models.DistributionView) string {
	total := view.Breakdown.Total()
	rows := []struct {
		label string
		value float64
		style func(...string) string
	}{
		{"Positive", view.Breakdown.Positive, th.positive.Render},
		{"Neutral", view.Breakdown.Neutral, th.neutral.Render},
		{"Negative", view.Breakdown.Negative, th.negative.Render},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s mentions", view.Source.Label(), formatCount(view.TotalMentions))
	for _, row := range rows {
		share := 0.0
		if total > 0 {
			share = row.value / total
		}
		fmt.Fprintf(&b, "\n%-8s %s %5.1f%%", row.label, row.style(bar(share, barWidth)), share*100)
	}
	return b.String()
}

func formatCount(v float64) string {
	return strings.TrimSuffix(formatMoney(v), ".00")
}
