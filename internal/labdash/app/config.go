package app

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aussiebroadwan/labdash/pkg/cryptox"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Issuer         string `env:"LABDASH_ISSUER" envDefault:"labdash"`           // issuer claim for session tokens
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`                               // Optional: if set, required to perform bootstrap
	DatabaseFile   string `env:"LABDASH_DATABASE_FILE" envDefault:"labdash.db"` // path to SQLite database file
	PepperFile     string `env:"LABDASH_PEPPER_FILE" envDefault:"pepper"`       // file containing pepper for password hashing

	NumKeys      int           `env:"LABDASH_NUM_KEYS" envDefault:"3"`         // session signing keys (min: 1, max: 10)
	SessionTTL   time.Duration `env:"LABDASH_SESSION_TTL" envDefault:"12h"`    // lifetime of a login
	CookieSecure bool          `env:"LABDASH_COOKIE_SECURE" envDefault:"true"` // set false only for plain-HTTP development
	CSRFKey      string        `env:"LABDASH_CSRF_KEY"`                        // hex, 32 bytes; random per process when empty

	ProfileCacheSize int           `env:"PROFILE_CACHE_SIZE" envDefault:"256"`
	ProfileCacheTTL  time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"1m"`

	Env                  string        `env:"ENV" envDefault:"dev"`          // dev, staging, prod
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`   // debug, info, warn, error
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`  // json, text
	Port                 int           `env:"PORT" envDefault:"8080"`        // HTTP server port
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

// LoadConfig reads the environment, after loading any of files that exist
// (".env" when none are given). Variables already set win over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.NumKeys < 1 || c.NumKeys > 10 {
		return fmt.Errorf("LABDASH_NUM_KEYS must be between 1 and 10, got %d", c.NumKeys)
	}
	if c.SessionTTL <= 0 {
		return errors.New("LABDASH_SESSION_TTL must be positive")
	}
	if c.CSRFKey != "" {
		if _, err := c.csrfKeyBytes(); err != nil {
			return err
		}
	}
	return nil
}

// csrfKeyBytes decodes the configured key, or generates one.
func (c Config) csrfKeyBytes() ([]byte, error) {
	if c.CSRFKey == "" {
		return cryptox.RandomBytes(32)
	}
	key, err := hex.DecodeString(c.CSRFKey)
	if err != nil {
		return nil, fmt.Errorf("LABDASH_CSRF_KEY must be hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("LABDASH_CSRF_KEY must be 32 bytes, got %d", len(key))
	}
	return key, nil
}
