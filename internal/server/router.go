package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cloo-solutions/finassist/internal/api"
	"github.com/cloo-solutions/finassist/internal/api/handlers"
	"github.com/cloo-solutions/finassist/internal/api/middleware"
)

type RouterConfig struct {
	APIToken     string
	QueryHandler *handlers.QueryHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.APIToken))

		r.Post("/resolve", cfg.QueryHandler.Resolve)
		r.Get("/status", cfg.QueryHandler.Status)
	})

	return r
}
