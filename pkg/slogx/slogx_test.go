package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/labdash/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("bogus"))
}

func TestHTTPMiddlewareLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slogx.NewHandler(slogx.Config{Output: &buf, Level: "info"}))

	var ctxLogger *slog.Logger
	h := slogx.HTTPMiddleware(logger, "/static/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, ctxLogger)
	require.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "http_request", entry["msg"])
	require.Equal(t, "req-1", entry["req_id"])
	require.Equal(t, "/home", entry["path"])
	require.EqualValues(t, http.StatusTeapot, entry["status"])
}

func TestHTTPMiddlewareTagsHandlerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slogx.NewHandler(slogx.Config{Output: &buf, Level: "info"}))

	h := slogx.HTTPMiddleware(logger, "/home")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
	}))
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("X-Request-ID", "req-2")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "inside", entry["msg"])
	require.Equal(t, "req-2", entry["req_id"])
	require.Equal(t, "/home", entry["path"])
}

func TestHTTPMiddlewareQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slogx.NewHandler(slogx.Config{Output: &buf, Level: "info"}))

	h := slogx.HTTPMiddleware(logger, "/static/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	require.Empty(t, buf.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Same(t, slog.Default(), slogx.FromContext(req.Context()))
}
