package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config carries every runtime setting of the client. Values come from the
// environment; a .env file loaded beforehand feeds the same variables.
type Config struct {
	// APIBaseURL is the server root including the /api prefix.
	APIBaseURL string        `env:"DRINKWISE_API_URL, default=http://localhost:8000/api"`
	Timeout    time.Duration `env:"DRINKWISE_TIMEOUT, default=15s"`

	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	// TokenStore selects where the credential pair lives: file, memory,
	// or redis (shared across processes).
	TokenStore string `env:"DRINKWISE_TOKEN_STORE, default=file"`
	// TokenFile overrides the default token path inside the user config
	// dir; only meaningful for the file store.
	TokenFile string `env:"DRINKWISE_TOKEN_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int           `env:"REDIS_DB,   default=0"`
	TTL  time.Duration `env:"DRINKWISE_TOKEN_TTL, default=720h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
