package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultJWTSecret = "dev-secret-change-in-production"

var ErrDefaultSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseDriver string `env:"DB_DRIVER" envDefault:"mysql"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/donatehub?parseTime=true&multiStatements=true"`
	AutoMigrate    bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// JWTSecret falls back to defaultJWTSecret outside production.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// DetachOnRead keeps the legacy behavior where reading a single comment or
	// contact also removes it from the parent campaign's list.
	DetachOnRead bool `env:"DETACH_ON_READ" envDefault:"false"`

	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// TrustProxyHeaders takes client addresses from X-Forwarded-For/X-Real-IP.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DatabaseDriver {
	case "mysql", "sqlite3":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return Config{}, ErrDefaultSecretInProduction
		}
	} else if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}

	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
