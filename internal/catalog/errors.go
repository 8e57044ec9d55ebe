// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import "errors"

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidFixture   = errors.New("invalid catalog fixture")
)
