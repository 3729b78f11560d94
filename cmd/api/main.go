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

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := handler.InitSentry(cfg, version); err != nil {
		slog.Warn("sentry init failed, error reporting disabled", "error", err)
	}
	defer sentry.Flush(5 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var audit service.AuditStore
	if cfg.AuditEnabled() {
		db, err := repository.NewDB(ctx, cfg.AuditDSN)
		if err != nil {
			slog.Warn("audit database unavailable, audit disabled", "error", err)
		} else {
			defer db.Close()
			repo := repository.NewAuditRepository(db)
			if err := repo.EnsureSchema(ctx); err != nil {
				slog.Warn("audit schema check failed", "error", err)
			}
			audit = repo
		}
	}

	genService := service.NewGeneratorService(audit, cfg.Hash)
	genHandler := handler.NewGeneratorHandler(genService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(ctx, cfg, genHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"auth", cfg.AuthEnabled(),
			"audit", audit != nil,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			sentry.CaptureException(err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		return
	}

	slog.Info("server stopped")
}
