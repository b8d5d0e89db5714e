package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DatabaseDriver != "mysql" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "mysql")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 24*time.Hour)
	}
	if cfg.DetachOnRead {
		t.Error("DetachOnRead should default to false")
	}
	if cfg.TrustProxyHeaders {
		t.Error("TrustProxyHeaders should default to false")
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Errorf("JWTSecret = %q, want the development default", cfg.JWTSecret)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development environment by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("DETACH_ON_READ", "true")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.DatabaseDriver != "sqlite3" {
		t.Errorf("DatabaseDriver = %q, want %q", cfg.DatabaseDriver, "sqlite3")
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, 30*time.Minute)
	}
	if !cfg.DetachOnRead {
		t.Error("DetachOnRead = false, want true")
	}
	if cfg.RateLimitBurst != 3 {
		t.Errorf("RateLimitBurst = %d, want 3", cfg.RateLimitBurst)
	}
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	_, err := Load()
	if !errors.Is(err, ErrDefaultSecretInProduction) {
		t.Fatalf("Load() error = %v, want ErrDefaultSecretInProduction", err)
	}
}

func TestLoadRejectsDevelopmentSecretSetExplicitlyInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", defaultJWTSecret)

	_, err := Load()
	if !errors.Is(err, ErrDefaultSecretInProduction) {
		t.Fatalf("Load() error = %v, want ErrDefaultSecretInProduction", err)
	}
}

func TestLoadAcceptsProductionSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("production config reported as development")
	}
	if cfg.JWTSecret != "a-real-secret" {
		t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "a-real-secret")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unsupported driver")
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "tomorrow")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for malformed duration")
	}
}
