package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the remote recruitment API.
	APIBaseURL string        `env:"API_BASE_URL, default=http://localhost:3005/api"`
	Timeout    time.Duration `env:"API_TIMEOUT,  default=30s"`
	LogLevel   string        `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool          `env:"LOG_PRETTY,   default=false"`

	Credential CredentialConfig
	Redis      RedisConfig
}

// CredentialConfig selects where the bearer credential is persisted.
// Backend "file" is the default; "redis" is for shared kiosk deployments.
type CredentialConfig struct {
	Backend string `env:"CREDENTIAL_BACKEND, default=file"`
	// Path of the token file. Empty means <user config dir>/recruit-portal/token.
	Path string `env:"CREDENTIAL_PATH"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the environment, after merging a local .env
// file when one exists.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.Credential.Path == "" {
		cfg.Credential.Path = defaultCredentialPath()
	}
	return &cfg, nil
}

func defaultCredentialPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "recruit-portal", "token")
}
