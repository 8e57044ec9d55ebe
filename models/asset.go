// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AssetType distinguishes stocks from crypto currencies.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetCrypto AssetType = "crypto"
)

// TypeFilter restricts an asset search to one asset type.
type TypeFilter string

const (
	FilterAll    TypeFilter = "all"
	FilterStock  TypeFilter = "stock"
	FilterCrypto TypeFilter = "crypto"
)

// ParseTypeFilter maps raw to a [TypeFilter]; anything unknown means all.
func ParseTypeFilter(raw string) TypeFilter {
	switch f := TypeFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterStock, FilterCrypto:
		return f
	default:
		return FilterAll
	}
}

// Matches reports whether an asset of type t passes the filter.
func (f TypeFilter) Matches(t AssetType) bool {
	return f == FilterAll || f == "" || string(f) == string(t)
}

// Asset is an immutable catalog entry. It is also the value stored in a
// watchlist (by value, not by reference).
type Asset struct {
	Symbol string    `json:"symbol" yaml:"symbol"`
	Name   string    `json:"name" yaml:"name"`
	Type   AssetType `json:"type" yaml:"type"`
}

// WatchlistRequest is the body of an add-to-watchlist call.
type WatchlistRequest struct {
	Symbol string `json:"symbol"`
}

// WatchlistResponse is returned by every watchlist endpoint. Changed is false
// when a mutation was a no-op (duplicate, capacity reached, absent symbol).
type WatchlistResponse struct {
	Items   []Asset `json:"items"`
	Changed bool    `json:"changed"`
}
