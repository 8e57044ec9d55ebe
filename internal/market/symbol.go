// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package market

import (
	"fmt"
	"regexp"
	"strings"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.\-]{1,12}$`)

// NormalizeSymbol upper-cases and validates a ticker before it is used in a
// path, object key or storage key.
func NormalizeSymbol(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolPattern.MatchString(s) || s == "." || s == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, raw)
	}
	return s, nil
}
