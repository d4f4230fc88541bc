// Package main provides the entrypoint for the Clean Air Routes API server.
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/api"
	"github.com/cleanairroutes/cleanairroutes/internal/api/handler"
	"github.com/cleanairroutes/cleanairroutes/internal/api/middleware"
	"github.com/cleanairroutes/cleanairroutes/internal/cities"
	"github.com/cleanairroutes/cleanairroutes/internal/database"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
	"github.com/cleanairroutes/cleanairroutes/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "cleanair-api"

	// Load .env for local development; ignore absence.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Clean Air Routes API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryCfg := telemetry.ConfigFromEnv(serviceName)
	telemetryCfg.ServiceVersion = Version

	tp, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryCfg.Enabled {
		log.Info().
			Str("otlp_endpoint", telemetryCfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Initialize saved-route storage
	var (
		savedRouteRepo savedroute.Repository
		dbPinger       handler.Pinger
	)

	if os.Getenv("STORAGE_BACKEND") == "memory" {
		savedRouteRepo = savedroute.NewInMemoryRepository()
		log.Warn().Msg("using in-memory storage - saved routes will not survive restarts")
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")

		savedRouteRepo = savedroute.NewPostgresRepository(pool)
		dbPinger = pool
	}

	// Initialize core pipeline: sampler, corridor selector, synthesizer.
	// The profile pipelines sample and jitter concurrently under separate
	// locks, so the two components must not share a rand source.
	seed := time.Now().UnixNano()
	sampler := pollution.NewSampler(rand.New(rand.NewSource(seed))) //nolint:gosec // simulation noise, not security
	selector := cities.NewSelector(cities.DefaultCatalog(), cities.DefaultSelectorConfig())
	synthesizer := routing.NewSynthesizer(sampler, selector, rand.New(rand.NewSource(seed+1))) //nolint:gosec // simulation noise, not security
	portfolio := routing.NewPortfolioBuilder(synthesizer)

	routingService := routing.NewService(portfolio)
	log.Info().Msg("routing service initialized")

	savedRouteService := savedroute.NewService(savedRouteRepo)
	log.Info().Msg("saved-route service initialized")

	alertService := alert.NewService(savedRouteRepo, alert.NewEvaluator(sampler))
	log.Info().Msg("alert service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		BuildTime:         BuildTime,
		Logger:            log,
		ServiceName:       serviceName,
		Metrics:           metrics,
		DB:                dbPinger,
		Sampler:           sampler,
		RoutingService:    routingService,
		SavedRouteService: savedRouteService,
		AlertService:      alertService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
