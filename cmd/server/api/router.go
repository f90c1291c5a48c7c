package api

import (
	"net/http"
	"time"

	"github.com/elC0mpa/azure-advisor/config"
	"github.com/elC0mpa/azure-advisor/service/advisor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// NewRouter creates the API router with all endpoints.
func NewRouter(advisorService advisor.AdvisorService, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	h := NewHandler(advisorService, cfg)

	r.Get("/", h.Root)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/list-custom-recommendations", h.ListRecommendations)
	r.Post("/list-vms-detailed", h.ListVMs)
	r.Post("/stop-vm", h.StopVM)
	r.Post("/cost-details", h.GetCostDetails)
	r.Get("/get-current-pricing/{region}", h.GetPricing)
	r.Post("/debug/list-app-service-plans", h.ListServicePlans)

	r.Route("/actions", func(r chi.Router) {
		r.Post("/update-app-service-plan-sku", h.UpdatePlanSKU)
		r.Post("/delete-app-service-plan", h.DeletePlan)
		r.Post("/delete-public-ip", h.DeletePublicIP)
	})

	return r
}

// NewServer creates a new HTTP server for the REST API.
func NewServer(advisorService advisor.AdvisorService, cfg *config.Config, logger zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           NewRouter(advisorService, cfg, logger),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}
}
