package handler

import (
	"context"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/middleware"
)

// Router wires the HTTP API. Background middleware goroutines stop when ctx is done.
func Router(ctx context.Context, cfg config.Config, gen *GeneratorHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimit, cfg.RateBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.ClientAuth(cfg.AuthSecret))
		}

		r.Post("/generate", gen.HandleGenerate)
		r.Post("/alphabet", gen.HandleAlphabet)
		r.Get("/audit", gen.HandleListAudit)
	})

	return r
}

// InitSentry configures error reporting. An empty DSN leaves the client disabled.
func InitSentry(cfg config.Config, release string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
		Release:     release,
	})
}
