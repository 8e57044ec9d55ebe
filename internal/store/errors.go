// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrNotFound is returned by a [KV] when a key is absent or expired.
	ErrNotFound = errors.New("key not found")

	ErrSessionNotFound = errors.New("session not found")

	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	ErrEncodingValue = errors.New("error encoding stored value")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")
)
