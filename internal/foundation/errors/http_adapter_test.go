package errors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorAdapter_StatusCodeFor(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, http.StatusOK},
		{"validation", ValidationError("missing path").Build(), http.StatusBadRequest},
		{"not found", NotFoundError("no icon").Build(), http.StatusNotFound},
		{"config", ConfigError("dead entry").Build(), http.StatusUnprocessableEntity},
		{"server", ServerError("no snapshot").Build(), http.StatusServiceUnavailable},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.StatusCodeFor(tt.err))
		})
	}
}

func TestHTTPErrorAdapter_WriteErrorResponse(t *testing.T) {
	adapter := NewHTTPErrorAdapter(slog.Default())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/icons/nope.svg", nil)

	adapter.WriteErrorResponse(rec, req, NotFoundError("unknown icon").WithContext("icon", "nope").Build())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "unknown icon", payload.Error)
	assert.Equal(t, "not_found", payload.Code)
	assert.Equal(t, "nope", payload.Details["icon"])
	assert.False(t, payload.Retryable)
}

func TestHTTPErrorAdapter_FormatUnclassified(t *testing.T) {
	adapter := NewHTTPErrorAdapter(nil)
	resp := adapter.FormatErrorResponse(errors.New("plain failure"))
	assert.Equal(t, "plain failure", resp.Error)
	assert.Empty(t, resp.Code)
}
