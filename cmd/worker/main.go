// Package main provides the entrypoint for the Clean Air Routes worker.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/api/middleware"
	"github.com/cleanairroutes/cleanairroutes/internal/database"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
	"github.com/cleanairroutes/cleanairroutes/internal/telemetry"
	"github.com/cleanairroutes/cleanairroutes/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "cleanair-worker"

	// Load .env for local development; ignore absence.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Clean Air Routes worker")

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry
	tp, err := telemetry.Init(ctx, telemetry.ConfigFromEnv(serviceName))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize saved-route storage
	var savedRouteRepo savedroute.Repository
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		savedRouteRepo = savedroute.NewInMemoryRepository()
		log.Warn().Msg("using in-memory storage - sweeps will see no routes")
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		savedRouteRepo = savedroute.NewPostgresRepository(pool)
		log.Info().
			Str("host", dbConfig.Host).
			Str("database", dbConfig.Database).
			Msg("database connected")
	}

	// Initialize the evaluation pipeline
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // simulation noise, not security
	sampler := pollution.NewSampler(rng)
	evaluator := alert.NewEvaluator(sampler)

	sweepMetrics, err := middleware.NewEvaluationMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize sweep metrics")
	}

	evaluateJob := worker.NewEvaluateJob(worker.EvaluateJobConfig{
		Config:    worker.DefaultEvaluateConfig(),
		Logger:    log,
		Repo:      savedRouteRepo,
		Evaluator: evaluator,
		Recorder:  sweepMetrics,
	})

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Prefer Pub/Sub-driven jobs when configured, fall back to a timer.
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	subscription := os.Getenv("PUBSUB_SUBSCRIPTION")

	if projectID != "" && subscription != "" {
		pubsubHandler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
			ProjectID:        projectID,
			SubscriptionName: subscription,
			EvaluateJob:      evaluateJob,
			Logger:           log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create pubsub handler")
		}
		defer func() {
			if closeErr := pubsubHandler.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close pubsub handler")
			}
		}()

		go func() {
			if err := pubsubHandler.Start(ctx); err != nil && ctx.Err() == nil {
				log.Fatal().Err(err).Msg("pubsub handler error")
			}
		}()
	} else {
		log.Warn().Msg("pubsub not configured - running on a fixed schedule")

		interval := 15 * time.Minute
		if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
			if parsed, parseErr := time.ParseDuration(raw); parseErr == nil {
				interval = parsed
			}
		}

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, sweepErr := evaluateJob.Run(ctx); sweepErr != nil {
						log.Error().Err(sweepErr).Msg("scheduled sweep failed")
					}
				}
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
