// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Source is a sentiment channel or the aggregate "all".
type Source string

const (
	SourceAll      Source = "all"
	SourceFacebook Source = "facebook"
	SourceReddit   Source = "reddit"
	SourceTwitter  Source = "twitter"
	SourceYahoo    Source = "yahoo"
)

// SentimentSources lists every concrete channel in display order.
var SentimentSources = []Source{SourceFacebook, SourceReddit, SourceTwitter, SourceYahoo}

// ParseSource maps raw to a [Source]. Empty input means all; the second
// result is false for values that name no known channel.
func ParseSource(raw string) (Source, bool) {
	s := Source(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" || s == SourceAll {
		return SourceAll, true
	}
	for _, known := range SentimentSources {
		if s == known {
			return s, true
		}
	}
	return SourceAll, false
}

// Label returns the display name of a source.
func (s Source) Label() string {
	switch s {
	case SourceFacebook:
		return "Facebook"
	case SourceReddit:
		return "Reddit"
	case SourceTwitter:
		return "Twitter"
	case SourceYahoo:
		return "Yahoo Finance"
	default:
		return "All sources"
	}
}

// PricePoint is one day of a price series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Breakdown holds one positive/neutral/negative triple.
type Breakdown struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Total returns the sum of the three values.
func (b Breakdown) Total() float64 {
	return b.Positive + b.Neutral + b.Negative
}

// SentimentPoint is one day of a sentiment series with an optional per-source
// breakdown.
type SentimentPoint struct {
	Date string `json:"date"`
	Breakdown
	Sources map[Source]Breakdown `json:"sources,omitempty"`
}

// Distribution is the aggregate sentiment split of an asset. Older fixtures
// carry the aggregate as flat fields instead of Total.
type Distribution struct {
	Total    *Breakdown           `json:"total,omitempty"`
	Sources  map[Source]Breakdown `json:"sources,omitempty"`
	Positive *float64             `json:"positive,omitempty"`
	Neutral  *float64             `json:"neutral,omitempty"`
	Negative *float64             `json:"negative,omitempty"`
}

// DistributionView is a resolved distribution for one source.
type DistributionView struct {
	Source        Source    `json:"source"`
	Breakdown     Breakdown `json:"breakdown"`
	TotalMentions float64   `json:"totalMentions"`
}

// Conversion is the result of a currency conversion.
type Conversion struct {
	Symbol       string  `json:"symbol"`
	Amount       float64 `json:"amount"`
	UnitPriceUSD float64 `json:"unitPriceUsd"`
	Currency     string  `json:"currency"`
	Value        float64 `json:"value"`
}

// Selection is the dashboard's current market query. Its Tag identifies a
// request so that late responses for an older selection can be dropped.
type Selection struct {
	Symbol         string `json:"symbol"`
	Source         Source `json:"source"`
	PriceRange     int    `json:"priceRange"`
	SentimentRange int    `json:"sentimentRange"`
}

func (s Selection) Tag() string {
	source := s.Source
	if source == "" {
		source = SourceAll
	}
	return fmt.Sprintf("%s|%s|%d|%d", strings.ToUpper(strings.TrimSpace(s.Symbol)), source, s.PriceRange, s.SentimentRange)
}

// MarketSnapshot is everything the dashboard renders for one Selection.
// SentimentErr is kept apart so a denied or rate-limited sentiment fetch
// still leaves prices and distribution on screen.
type MarketSnapshot struct {
	Selection    Selection        `json:"selection"`
	Prices       []PricePoint     `json:"prices"`
	Sentiment    []SentimentPoint `json:"sentiment"`
	Distribution DistributionView `json:"distribution"`
	SentimentErr error            `json:"-"`
}
