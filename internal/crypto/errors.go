// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrEmptySecret   = errors.New("sealer secret is empty")
	ErrNotSealed     = errors.New("value is not sealed")
	ErrMalformedSeal = errors.New("sealed value is malformed")
	ErrOpenFailed    = errors.New("sealed value cannot be opened")
)
