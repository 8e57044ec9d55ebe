// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_JSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Limit
	}{
		{name: "number", raw: `20`, want: Cap(20)},
		{name: "zero", raw: `0`, want: Cap(0)},
		{name: "unlimited", raw: `"unlimited"`, want: Unlimited},
		{name: "null", raw: `null`, want: Limit{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Limit
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimit_UnmarshalUnknownString(t *testing.T) {
	var e Entitlement
	err := json.Unmarshal([]byte(`{"maxWatchlistSize":"lots"}`), &e)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	assert.NotPanics(t, func() { _ = err.Error() })
	assert.Contains(t, err.Error(), `"lots"`)
}

func TestLimit_AllowsAndAtLeast(t *testing.T) {
	assert.True(t, Cap(3).Allows(2))
	assert.False(t, Cap(3).Allows(3))
	assert.True(t, Unlimited.Allows(1_000_000))

	assert.True(t, Unlimited.AtLeast(Cap(20)))
	assert.False(t, Cap(20).AtLeast(Unlimited))
	assert.True(t, Cap(20).AtLeast(Cap(0)))
	assert.Equal(t, "unlimited", Unlimited.String())
	assert.Equal(t, "20", Cap(20).String())
}
