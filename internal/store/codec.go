// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// getJSON decodes the value under key into dst. found is false when the key
// is absent; a decode failure is returned as is so callers can decide
// whether to swallow it.
func getJSON(ctx context.Context, kv KV, key string, dst any) (found bool, err error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, dst)
}

func setJSON(ctx context.Context, kv KV, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}
	return kv.Set(ctx, key, raw, ttl)
}
