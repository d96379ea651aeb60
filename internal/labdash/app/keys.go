package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/labdash/pkg/jwtx"
)

// InitSessionKeys generates the in-memory Ed25519 keys that sign session
// cookies. Keys are not persisted, so every restart signs everyone out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	logger.Info("initializing session keys", "num_keys", cfg.NumKeys)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	logger.Info("generated session signing keys",
		"num_keys", km.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing sessions are now invalid due to key rotation on startup")
	return km, nil
}
