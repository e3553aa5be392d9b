package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripman/internal/middleware"
)

// serveLogged runs one request through NewSlogLogger wrapped around a handler
// that answers status and body, and returns the decoded log line.
func serveLogged(t *testing.T, req *http.Request, status int, body string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			//nolint:errcheck
			w.Write([]byte(body))
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, status, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestSlogLogger_logsRequestFields verifies that the log line carries method,
// path, query, status, size, duration, and the request ID placed in context by
// chi's RequestID middleware.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/trips?destination=Bali", nil)
	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id"))

	entry := serveLogged(t, req, http.StatusOK, `{"deleted":2}`)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "DELETE", entry["method"])
	assert.Equal(t, "/trips", entry["path"])
	assert.Equal(t, "destination=Bali", entry["query"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(`{"deleted":2}`), entry["bytes"])
	assert.Equal(t, "test-req-id", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusCreated, "INFO"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trips/1", nil)

			entry := serveLogged(t, req, tt.status, "")

			assert.Equal(t, tt.level, entry["level"])
		})
	}
}
