package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/donatehub/donatehub-go/internal/config"
	"github.com/donatehub/donatehub-go/internal/crypto"
	"github.com/donatehub/donatehub-go/internal/handler"
	"github.com/donatehub/donatehub-go/internal/logging"
	"github.com/donatehub/donatehub-go/internal/repository"
	"github.com/donatehub/donatehub-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stderr, cfg.Env, cfg.LogLevel))
	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := repository.Migrate(db, cfg.DatabaseDriver); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
	}

	store := repository.NewStore(db)
	hasher := crypto.NewPasswordHasher(crypto.DefaultHashParams())
	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := handler.NewRouter(ctx, handler.Services{
		Auth:      service.NewAuthService(store, hasher, tokens),
		Campaigns: service.NewCampaignService(store),
		Comments:  service.NewCommentService(store, cfg.DetachOnRead),
		Contacts:  service.NewContactService(store, cfg.DetachOnRead),
	}, handler.RouterConfig{
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
