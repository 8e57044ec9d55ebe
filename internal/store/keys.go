// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "time"

// Server partition keys. Every per-user value is stored under a key derived
// from the user's email and never under another user's key.
const (
	sessionPrefix   = "session:"
	watchlistPrefix = "watchlist:"
	apiKeyPrefix    = "apikey:"
	settingsPrefix  = "settings:"
	usagePrefix     = "usage:"
)

// Client-local keys.
const (
	LocalSessionKey = "session"
	LocalThemeKey   = "theme-preference"
)

const usageDayLayout = "2006-01-02"

func SessionKey(id string) string      { return sessionPrefix + id }
func WatchlistKey(email string) string { return watchlistPrefix + email }
func APIKeyKey(email string) string    { return apiKeyPrefix + email }
func SettingsKey(email string) string  { return settingsPrefix + email }

// UsageKey is the daily search counter key, e.g. usage:a@b.c:2026-10-14.
func UsageKey(email string, day time.Time) string {
	return usagePrefix + email + ":" + day.Format(usageDayLayout)
}
