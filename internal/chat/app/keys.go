package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/pkg/cryptox"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
)

const (
	minSecretLength = 32

	// loginStatePurpose binds the sealing key derived from TOKEN_SECRET.
	loginStatePurpose = "wgchat/login-state/v1"
)

// InitKeys builds the token signing keys and the sealer for login state.
//
// With TOKEN_SECRET set both are derived from it, so every instance sharing
// the secret accepts the others' tokens and restarts keep sessions alive.
// Without it the keys only live in this process: every outstanding access,
// registration and login token dies on restart. Refresh rows survive, so
// users are silently issued new access tokens.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, *cryptox.Sealer, error) {
	if cfg.TokenSecret == "" {
		logger.Warn("TOKEN_SECRET not set, using ephemeral keys")

		km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{NumKeys: 1})
		if err != nil {
			return nil, nil, err
		}
		sealer, err := cryptox.NewEphemeralSealer()
		if err != nil {
			return nil, nil, err
		}
		return km, sealer, nil
	}

	secret := []byte(cfg.TokenSecret)
	km, err := jwtx.NewSeededKeyManager(secret)
	if err != nil {
		return nil, nil, err
	}
	sealer, err := cryptox.NewDerivedSealer(secret, loginStatePurpose)
	if err != nil {
		return nil, nil, fmt.Errorf("derive login state key: %w", err)
	}

	logger.Info("signing keys derived from TOKEN_SECRET", "signers", km.NumSigners())
	return km, sealer, nil
}

// InitPAKE loads the OPAQUE server setup. A missing setup is not fatal: the
// service runs and reports server_misconfigured on every handshake, and
// /readyz stays degraded. A setup that does not parse is fatal.
func InitPAKE(cfg Config, logger *slog.Logger) (pake.Server, error) {
	setup, err := pake.ParseSetup(cfg.OpaqueServerSetup)
	switch {
	case err == nil:
		return pake.NewServer(setup), nil
	case cfg.OpaqueServerSetup == "":
		logger.Error("OPAQUE_SERVER_SETUP not set, registration and login are disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid OPAQUE_SERVER_SETUP: %w", err)
	}
}
