// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/market-pulse/models"
)

type sessionRestoredMsg struct {
	session models.SessionResponse
	err     error
}

type signedInMsg struct {
	session models.SessionResponse
	err     error
}

type signedOutMsg struct{}

type plansLoadedMsg struct {
	plans []models.Plan
	err   error
}

type versionMsg struct {
	version string
	err     error
}

// searchResultsMsg answers an asset search; tag is searchTag of the query
// that issued it.
type searchResultsMsg struct {
	target screen
	tag    string
	assets []models.Asset
	err    error
}

type snapshotMsg struct {
	snapshot models.MarketSnapshot
	err      error
}

type conversionMsg struct {
	tag        string
	conversion models.Conversion
	err        error
}

type watchlistLoadedMsg struct {
	items []models.Asset
	err   error
}

type watchlistChangedMsg struct {
	symbol   string
	added    bool
	response models.WatchlistResponse
	err      error
}

type settingsLoadedMsg struct {
	overview models.AccountOverview
	err      error
}

type emailAlertsMsg struct {
	settings models.Settings
	err      error
}

type apiKeyMsg struct {
	key       models.APIKeyResponse
	generated bool
	err       error
}

type errMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
