// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidLimit = errors.New("invalid limit")

// Limit is a non-negative cap that may be unlimited. It marshals to a JSON
// number or to the string "unlimited".
type Limit struct {
	Value     int
	Unlimited bool
}

// Unlimited is the limit that never caps.
var Unlimited = Limit{Unlimited: true}

// Cap returns a bounded limit of n.
func Cap(n int) Limit {
	return Limit{Value: n}
}

// Allows reports whether a count of n may grow by one more element.
func (l Limit) Allows(n int) bool {
	return l.Unlimited || n < l.Value
}

// AtLeast reports whether l grants at least as much as other.
func (l Limit) AtLeast(other Limit) bool {
	if l.Unlimited {
		return true
	}
	if other.Unlimited {
		return false
	}
	return l.Value >= other.Value
}

func (l Limit) String() string {
	if l.Unlimited {
		return "unlimited"
	}
	return strconv.Itoa(l.Value)
}

func (l Limit) MarshalJSON() ([]byte, error) {
	if l.Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(l.Value)
}

func (l *Limit) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		if v != "unlimited" {
			return fmt.Errorf("%w: %q", ErrInvalidLimit, v)
		}
		*l = Unlimited
	case float64:
		*l = Cap(int(v))
	default:
		*l = Limit{}
	}
	return nil
}

// Entitlement is the capability set derived from a tier. It is recomputed on
// every read and never stored.
type Entitlement struct {
	Tier Tier `json:"tier"`

	// MaxSentimentRangeDays is the longest sentiment history a tier may view.
	MaxSentimentRangeDays int `json:"maxSentimentRangeDays"`

	// SentimentRanges lists the selectable sentiment ranges in days.
	SentimentRanges []int `json:"sentimentRanges"`

	// AllowedSources lists the selectable sentiment sources; AllSources marks
	// the wildcard ("*").
	AllowedSources []Source `json:"allowedSources"`
	AllSources     bool     `json:"allSources"`

	MaxWatchlistSize   Limit `json:"maxWatchlistSize"`
	WatchlistEnabled   bool  `json:"watchlistEnabled"`
	EmailAlertsEnabled bool  `json:"emailAlertsEnabled"`
	APIKeyEnabled      bool  `json:"apiKeyEnabled"`

	// DailySearchLimit caps sentiment searches per calendar day.
	DailySearchLimit Limit `json:"dailySearchLimit"`
}

// SessionResponse is returned on sign-in and by the session endpoint.
type SessionResponse struct {
	User        User        `json:"user"`
	Entitlement Entitlement `json:"entitlement"`
	ExpiresAt   string      `json:"expiresAt,omitempty"`
}
