package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "labdash", cfg.Issuer)
	require.Equal(t, "labdash.db", cfg.DatabaseFile)
	require.Equal(t, 3, cfg.NumKeys)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, 256, cfg.ProfileCacheSize)
	require.Equal(t, time.Minute, cfg.ProfileCacheTTL)
	require.Empty(t, cfg.BootstrapToken)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("LABDASH_ISSUER", "https://dash.lab")
	t.Setenv("LABDASH_NUM_KEYS", "5")
	t.Setenv("LABDASH_SESSION_TTL", "30m")
	t.Setenv("LABDASH_COOKIE_SECURE", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("BOOTSTRAP_TOKEN", "boot")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "https://dash.lab", cfg.Issuer)
	require.Equal(t, 5, cfg.NumKeys)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "boot", cfg.BootstrapToken)
}

func TestLoadConfig_DotEnvDoesNotOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("LABDASH_DATABASE_FILE=from-file.db\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("LOG_LEVEL", "warn")
	// Registered so the variable loaded from the file is removed afterwards.
	t.Setenv("LABDASH_DATABASE_FILE", "")
	require.NoError(t, os.Unsetenv("LABDASH_DATABASE_FILE"))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	require.Equal(t, "from-file.db", cfg.DatabaseFile)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"too many keys", "LABDASH_NUM_KEYS", "11"},
		{"no keys", "LABDASH_NUM_KEYS", "0"},
		{"bad ttl", "LABDASH_SESSION_TTL", "soon"},
		{"zero ttl", "LABDASH_SESSION_TTL", "0s"},
		{"bad port", "PORT", "http"},
		{"csrf not hex", "LABDASH_CSRF_KEY", "zz"},
		{"csrf too short", "LABDASH_CSRF_KEY", "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
		})
	}
}

func TestCSRFKeyBytes(t *testing.T) {
	key, err := Config{}.csrfKeyBytes()
	require.NoError(t, err)
	require.Len(t, key, 32)

	hexKey := strings.Repeat("ab", 32)
	key, err = Config{CSRFKey: hexKey}.csrfKeyBytes()
	require.NoError(t, err)
	require.Len(t, key, 32)
	require.Equal(t, byte(0xab), key[0])
}

func TestNew_ServesHealth(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	cfg.DatabaseFile = filepath.Join(dir, "labdash.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.NumKeys = 1

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	for _, path := range []string{"/livez", "/readyz", "/login"} {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
