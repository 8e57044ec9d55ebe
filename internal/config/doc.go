// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates market-pulse configuration.
//
// Values are assembled from several sources. When more than one source sets
// the same field, the earlier source in this list wins:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file (-c / -config / CONFIG)
//
// Missing values are then filled with defaults and the result is validated.
// [GetStructuredConfig] returns the server view, [GetClientConfig] the
// terminal client view.
package config
