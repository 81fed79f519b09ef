//go:build unit || e2e

// Package testutil breaks valid request bodies one field at a time.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// JSONMap converts v to its JSON object form and applies edits to it.
func JSONMap(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		if edit != nil {
			edit(m)
		}
	}
	return m
}

// Set overwrites key. A nil value drops the key instead.
func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
