package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Auth transport modes. Bearer is the strict API deployment; cookie is the
// browser deployment with redirect-to-login semantics.
const (
	AuthModeBearer = "bearer"
	AuthModeCookie = "cookie"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DatabaseURL and JWTSecret have no defaults: the process must not
	// start without them.
	DatabaseURL string `env:"DATABASE_URL, required"`
	JWTSecret   string `env:"JWT_SECRET,   required"`

	AuthMode   string        `env:"AUTH_MODE,   default=bearer"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=15m"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing required variable or an unknown auth mode is fatal.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.AuthMode != AuthModeBearer && cfg.AuthMode != AuthModeCookie {
		return nil, fmt.Errorf("config: AUTH_MODE must be %q or %q, got %q",
			AuthModeBearer, AuthModeCookie, cfg.AuthMode)
	}
	return &cfg, nil
}
