//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorEnvelope mirrors httperr.Response.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and, for 2xx with a target,
// decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()
	if !assert.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message
// contains wantMsg. An empty wantMsg only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()
	assert.Equalf(t, wantStatus, w.Code, "body: %s", w.Body.String())

	var env errorEnvelope
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "decode error body: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, env.Error.Message, wantMsg)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for name, value := range want {
		assert.Equalf(t, value, w.Header().Get(name), "header %s", name)
	}
}
