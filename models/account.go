// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side sign-in record persisted under session:{id}.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Settings holds mutable per-user preferences.
type Settings struct {
	EmailAlerts bool `json:"emailAlerts"`
}

// Usage holds the counters shown on the settings view.
type Usage struct {
	SearchesToday  int   `json:"searchesToday"`
	SearchLimit    Limit `json:"searchLimit"`
	WatchlistCount int   `json:"watchlistCount"`
	WatchlistLimit Limit `json:"watchlistLimit"`
}

// Plan is the marketing metadata of a tier.
type Plan struct {
	ID       Tier     `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    string   `json:"price" yaml:"price"`
	Badge    string   `json:"badge,omitempty" yaml:"badge"`
	Blurb    string   `json:"blurb" yaml:"blurb"`
	Features []string `json:"features" yaml:"features"`
}

// AccountOverview is everything the settings view renders.
type AccountOverview struct {
	User         User        `json:"user"`
	Entitlement  Entitlement `json:"entitlement"`
	Plan         Plan        `json:"plan"`
	RenewalDate  string      `json:"renewalDate"`
	Usage        Usage       `json:"usage"`
	Settings     Settings    `json:"settings"`
	APIKeyMasked string      `json:"apiKeyMasked,omitempty"`
}

// EmailAlertsRequest toggles email alerts.
type EmailAlertsRequest struct {
	Enabled bool `json:"enabled"`
}

// APIKeyResponse carries a user's API key. Key is empty when none exists.
type APIKeyResponse struct {
	Key    string `json:"key"`
	Masked string `json:"masked,omitempty"`
}

// LocalSession is the client's persisted sign-in: the bearer token plus the
// last known user snapshot.
type LocalSession struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}
