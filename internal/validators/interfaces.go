// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services.
//
// A Validator accepts any value and fails with ErrUnsupportedType for types
// it does not know. Callers may name the fields to check; with no names
// every field of the type is checked.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
