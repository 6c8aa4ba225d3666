package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Issuer            string `env:"TOKEN_ISSUER,default=wgchat"`
	TokenSecret       string `env:"TOKEN_SECRET"`        // Optional: derives signing and sealing keys; ephemeral when empty
	OpaqueServerSetup string `env:"OPAQUE_SERVER_SETUP"` // Required for registration and login, see cmd/opaque-setup

	StoreDriver  string `env:"STORE_DRIVER,default=sqlite"` // sqlite or postgres
	DatabaseFile string `env:"DATABASE_FILE,default=wgchat.db"`
	DatabaseURL  string `env:"DATABASE_URL"` // postgres only

	ConversationStore string `env:"CONVERSATION_STORE,default=memory"` // memory or badger
	BadgerDir         string `env:"BADGER_DIR,default=wgchat-history"`

	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"` // comma separated

	Env       string `env:"ENV,default=dev"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=json"`
	Port      int    `env:"PORT,default=8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD,default=10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL,default=10m"`
	RegistryTTL          time.Duration `env:"REGISTRY_TTL,default=30m"`
	EventReplaySize      int           `env:"EVENT_REPLAY_SIZE,default=256"`
	EventReplayWindow    time.Duration `env:"EVENT_REPLAY_WINDOW,default=10m"`
	EventHeartbeat       time.Duration `env:"EVENT_HEARTBEAT,default=25s"`
}

// LoadConfig reads the environment, after loading ENV_FILE (default
// ".env") if it exists. Variables already set win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.ConversationStore {
	case "memory", "badger":
	default:
		return fmt.Errorf("unknown CONVERSATION_STORE %q", c.ConversationStore)
	}

	if c.TokenSecret != "" && len(c.TokenSecret) < minSecretLength {
		return fmt.Errorf("TOKEN_SECRET must be at least %d bytes", minSecretLength)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// Origins splits AllowedOrigins, dropping blanks.
func (c Config) Origins() []string {
	return lo.Compact(lo.Map(strings.Split(c.AllowedOrigins, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

// SecureCookies reports whether session cookies need the Secure flag.
func (c Config) SecureCookies() bool {
	return c.Env == "prod"
}
