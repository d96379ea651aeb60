package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "10.0.0.7:5123", "10.0.0.7"},
		{"forwarded for first hop", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.4 "}, "10.0.0.1:80", "198.51.100.4"},
		{"no port", nil, "unix-socket", "unix-socket"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestJSONFieldKeyExtractor(t *testing.T) {
	extract := httpx.JSONFieldKeyExtractor("email")

	tests := []struct {
		name string
		body string
		want string
	}{
		{"lowercased and trimmed", `{"email":"  Ana@Lab.Test ","password":"x"}`, "ana@lab.test"},
		{"missing field", `{"password":"x"}`, ""},
		{"not a string", `{"email":42}`, ""},
		{"invalid json", `{"email":`, ""},
		{"empty body", ``, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tc.body))
			require.Equal(t, tc.want, extract(req))

			// The next handler still sees the full body.
			rest, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.Equal(t, tc.body, string(rest))
		})
	}
}

func TestUserIDKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	require.Empty(t, httpx.UserIDKeyExtractor(req))

	req = req.WithContext(httpx.WithPrincipal(req.Context(), httpx.Principal{UserID: "01JUSER", Role: "operator"}))
	require.Equal(t, "01JUSER", httpx.UserIDKeyExtractor(req))

	key := httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)
	req.RemoteAddr = "10.0.0.7:1"
	require.Equal(t, "01JUSER:10.0.0.7", key(req))
}

func TestRateLimitByIPAndJSONField(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.RateLimitByIPAndJSONField(cfg, "email")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers behind the limiter must still be able to decode the body.
		b, _ := io.ReadAll(r.Body)
		require.Contains(t, string(b), "email")
		w.WriteHeader(http.StatusOK)
	}))

	login := func(email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"`+email+`"}`))
		req.RemoteAddr = "10.0.0.7:1"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, login("ana@lab.test").Code)
	require.Equal(t, http.StatusOK, login("ANA@lab.test").Code)

	rec := login("Ana@Lab.Test")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	// Another address on the same IP has its own bucket.
	require.Equal(t, http.StatusOK, login("luis@lab.test").Code)
}

func TestRateLimitByUser(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitByUser(cfg)(okHandler())

	call := func(userID string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/profile/update", nil)
		req.RemoteAddr = "10.0.0.7:1"
		req = req.WithContext(httpx.WithPrincipal(req.Context(), httpx.Principal{UserID: userID}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, call("u1"))
	require.Equal(t, http.StatusTooManyRequests, call("u1"))
	require.Equal(t, http.StatusOK, call("u2"))
}

func TestRateLimitEmptyKeyAllows(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler())

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{"defaults", nil, def},
		{
			"partial override",
			map[string]string{"RATELIMIT_LOGIN_BURST": "3"},
			httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 3},
		},
		{
			"full override",
			map[string]string{
				"RATELIMIT_LOGIN_REQUESTS":   "200",
				"RATELIMIT_LOGIN_WINDOW_SEC": "30",
				"RATELIMIT_LOGIN_BURST":      "250",
			},
			httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
		},
		{"non-positive ignored", map[string]string{"RATELIMIT_LOGIN_WINDOW_SEC": "-10", "RATELIMIT_LOGIN_BURST": "0"}, def},
		{"unparsable keeps defaults", map[string]string{"RATELIMIT_LOGIN_REQUESTS": "many"}, def},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			require.Equal(t, tc.want, httpx.ParseRateLimitFromEnv("LOGIN", def))
		})
	}
}
