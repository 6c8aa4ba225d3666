package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "wgchat", cfg.Issuer)
	require.Equal(t, "sqlite", cfg.StoreDriver)
	require.Equal(t, "memory", cfg.ConversationStore)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 10*time.Minute, cfg.HousekeepingInterval)
	require.False(t, cfg.SecureCookies())
	require.Empty(t, cfg.Origins())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TOKEN_ISSUER=from-file\nPORT=9999\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "9090") // set variables win over the file
	// Register restoration, then unset so the file can supply it.
	t.Setenv("TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("TOKEN_ISSUER"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Issuer)
	require.Equal(t, 9090, cfg.Port)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{StoreDriver: "sqlite", ConversationStore: "memory", Port: 8080}
	require.NoError(t, base.Validate())

	cfg := base
	cfg.StoreDriver = "postgres"
	require.Error(t, cfg.Validate())
	cfg.DatabaseURL = "postgres://localhost/wgchat"
	require.NoError(t, cfg.Validate())

	cfg = base
	cfg.StoreDriver = "mysql"
	require.Error(t, cfg.Validate())

	cfg = base
	cfg.ConversationStore = "redis"
	require.Error(t, cfg.Validate())

	cfg = base
	cfg.TokenSecret = "short"
	require.Error(t, cfg.Validate())
}

func TestConfig_Origins(t *testing.T) {
	cfg := Config{AllowedOrigins: " https://a.example , ,https://b.example"}
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}
