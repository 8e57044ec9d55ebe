// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package entitlement

import (
	"fmt"

	"github.com/MKhiriev/market-pulse/models"
)

// ActionKind enumerates the tier-gated operations.
type ActionKind int

const (
	ActionWatchlistAdd ActionKind = iota + 1
	ActionWatchlistRemove
	ActionAPIKeyRead
	ActionAPIKeyGenerate
	ActionEmailAlertsUpdate
	ActionSentimentRange
	ActionSentimentSource
)

func (k ActionKind) String() string {
	switch k {
	case ActionWatchlistAdd:
		return "watchlist add"
	case ActionWatchlistRemove:
		return "watchlist remove"
	case ActionAPIKeyRead:
		return "api key read"
	case ActionAPIKeyGenerate:
		return "api key generate"
	case ActionEmailAlertsUpdate:
		return "email alerts update"
	case ActionSentimentRange:
		return "sentiment range"
	case ActionSentimentSource:
		return "sentiment source"
	default:
		return "unknown action"
	}
}

// Action is one operation presented to the guard. Days and Source are only
// meaningful for the sentiment actions.
type Action struct {
	Kind   ActionKind
	Days   int
	Source models.Source
}

var (
	WatchlistAdd      = Action{Kind: ActionWatchlistAdd}
	WatchlistRemove   = Action{Kind: ActionWatchlistRemove}
	APIKeyRead        = Action{Kind: ActionAPIKeyRead}
	APIKeyGenerate    = Action{Kind: ActionAPIKeyGenerate}
	EmailAlertsUpdate = Action{Kind: ActionEmailAlertsUpdate}
)

// SentimentRange builds the action of viewing a sentiment history of days.
func SentimentRange(days int) Action {
	return Action{Kind: ActionSentimentRange, Days: days}
}

// SentimentSource builds the action of filtering sentiment by s.
func SentimentSource(s models.Source) Action {
	return Action{Kind: ActionSentimentSource, Source: s}
}

// Decision is the guard's verdict. Reason is empty when Allowed is true.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(format string, args ...any) Decision {
	return Decision{Reason: fmt.Sprintf(format, args...)}
}

// Authorize decides whether tier may perform a. Unknown actions are denied.
//
// Watchlist capacity is not checked here: reaching the cap is a silent no-op
// of the store, not a denial.
func Authorize(tier models.Tier, a Action) Decision {
	e := Resolve(tier)

	switch a.Kind {
	case ActionWatchlistAdd, ActionWatchlistRemove:
		if !e.WatchlistEnabled {
			return deny("watchlist is not available on the %s plan", e.Tier)
		}
	case ActionAPIKeyRead, ActionAPIKeyGenerate:
		if !e.APIKeyEnabled {
			return deny("API key management requires the premium plan")
		}
	case ActionEmailAlertsUpdate:
		if !e.EmailAlertsEnabled {
			return deny("email alerts are not available on the %s plan", e.Tier)
		}
	case ActionSentimentRange:
		if !AllowsRange(e, a.Days) {
			return deny("a %d-day sentiment range is not available on the %s plan", a.Days, e.Tier)
		}
	case ActionSentimentSource:
		if !AllowsSource(e, a.Source) {
			return deny("source %q is not available on the %s plan", a.Source, e.Tier)
		}
	default:
		return deny("%s is not permitted", a.Kind)
	}

	return allow()
}
