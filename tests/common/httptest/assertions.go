//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody is the wire shape written by httperr.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func DecodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "error body is not JSON: %s", w.Body.String())
	return body
}

// AssertSuccessResponse decodes 2xx bodies into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	if !assert.Equal(t, status, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and, when msg is set, that the
// error message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code, "body: %s", w.Body.String())
	body := DecodeError(t, w)
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertValidationReason checks a 400 whose detail.reason contains reason.
func AssertValidationReason(t *testing.T, w *httptest.ResponseRecorder, reason string) {
	t.Helper()
	AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	got, _ := DecodeError(t, w).Detail["reason"].(string)
	assert.Contains(t, got, reason)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}
