package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/middleware"
	"github.com/ppopeskul/wa-dashboard/internal/session"
)

// contactUpdateRoute is open unless guard_contact_update is set.
const contactUpdateRoute = "PATCH /api/contacts/{phone}"

func setupRouter(handler api.ServerInterface, sessions *session.Manager, cfg *config.MiddlewareConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "api/openapi.yaml")
	})

	r.Handle("/metrics", promhttp.Handler())

	var extraGuarded []string
	if cfg.GuardContactUpdate {
		extraGuarded = append(extraGuarded, contactUpdateRoute)
	}

	return api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		Middlewares: []api.MiddlewareFunc{
			middleware.RequireLogin(sessions, logger, extraGuarded...),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			middleware.WriteError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, err.Error())
		},
	})
}
