// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package market

import "errors"

var (
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrUnexpectedCode  = errors.New("unexpected response status")
)
