//go:build unit

package repository_test

import "dynamic-pricing/internal/infra/query"

// mockDBTX is only handed through to the query mocks; calling it panics.
type mockDBTX struct{ query.DBTX }
