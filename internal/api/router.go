// Package api provides the HTTP API for Clean Air Routes.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/api/handler"
	"github.com/cleanairroutes/cleanairroutes/internal/api/middleware"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	ServiceName       string
	Metrics           *middleware.Metrics
	DB                handler.Pinger
	Sampler           *pollution.Sampler
	RoutingService    *routing.Service
	SavedRouteService *savedroute.Service
	AlertService      *alert.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "cleanair-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB)
	routeHandler := handler.NewRouteHandler(cfg.RoutingService, cfg.Logger)
	pollutionHandler := handler.NewPollutionHandler(cfg.Sampler)
	savedRouteHandler := handler.NewSavedRouteHandler(cfg.SavedRouteService, cfg.Logger)
	alertHandler := handler.NewAlertHandler(cfg.AlertService, cfg.Logger)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Route computation - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/routes:compute", routeHandler.ComputeRoutes)

		// Pollution data endpoints - standard rate limiting
		r.Route("/pollution", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/current", pollutionHandler.GetCurrent)
			r.Get("/heatmap", pollutionHandler.GetHeatmap)
		})

		// Saved routes - standard rate limiting
		r.Route("/routes", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/save", savedRouteHandler.SaveRoute)
			r.Get("/saved/{userId}", savedRouteHandler.ListSavedRoutes)
			r.Delete("/saved/{routeId}", savedRouteHandler.DeleteSavedRoute)
		})

		// Pollution alerts - standard rate limiting
		r.With(standardRateLimit).Get("/alerts/{userId}", alertHandler.GetAlerts)
	})

	return r
}
