package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

// SweepRecorder records telemetry for completed evaluation sweeps.
type SweepRecorder interface {
	RecordSweep(duration time.Duration, routes, alerts int, err error)
}

// EvaluateJob sweeps all alert-enabled saved routes and evaluates them
// for pollution alerts.
type EvaluateJob struct {
	config    EvaluateConfig
	logger    zerolog.Logger
	repo      savedroute.Repository
	evaluator *alert.Evaluator
	recorder  SweepRecorder

	metrics *EvaluateMetrics
}

// EvaluateMetrics tracks evaluation sweep statistics.
type EvaluateMetrics struct {
	mu sync.RWMutex

	TotalSweeps     int64
	RoutesEvaluated int64
	AlertsRaised    int64

	LastSweepAt       time.Time
	LastSweepDuration time.Duration
	TotalDuration     time.Duration
}

// EvaluateJobConfig holds configuration for creating an EvaluateJob.
type EvaluateJobConfig struct {
	Config    EvaluateConfig
	Logger    zerolog.Logger
	Repo      savedroute.Repository
	Evaluator *alert.Evaluator
	// Recorder is optional; nil disables sweep telemetry.
	Recorder SweepRecorder
}

// NewEvaluateJob creates a new alert evaluation job processor.
func NewEvaluateJob(cfg EvaluateJobConfig) *EvaluateJob {
	return &EvaluateJob{
		config:    cfg.Config.normalized(),
		logger:    cfg.Logger,
		repo:      cfg.Repo,
		evaluator: cfg.Evaluator,
		recorder:  cfg.Recorder,
		metrics:   &EvaluateMetrics{},
	}
}

// EvaluateResult contains the result of one evaluation sweep.
type EvaluateResult struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalRoutes int
	Alerts      []alert.Alert
}

// Run executes one evaluation sweep over every alert-enabled saved route.
func (j *EvaluateJob) Run(ctx context.Context) (*EvaluateResult, error) {
	startTime := time.Now()
	result := &EvaluateResult{StartTime: startTime}

	routes, err := j.repo.ListAllAlertsEnabled(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to list alert-enabled routes")
		if j.recorder != nil {
			j.recorder.RecordSweep(time.Since(startTime), 0, 0, err)
		}
		return nil, err
	}

	result.TotalRoutes = len(routes)

	j.logger.Info().
		Int("total_routes", result.TotalRoutes).
		Int("concurrency", j.config.Concurrency).
		Msg("starting alert evaluation sweep")

	routesChan := make(chan *savedroute.SavedRoute, len(routes))
	alertsChan := make(chan []alert.Alert, len(routes))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.evaluateWorker(ctx, routesChan, alertsChan)
		}()
	}

	for _, route := range routes {
		routesChan <- route
	}
	close(routesChan)

	go func() {
		wg.Wait()
		close(alertsChan)
	}()

	for alerts := range alertsChan {
		result.Alerts = append(result.Alerts, alerts...)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)
	if j.recorder != nil {
		j.recorder.RecordSweep(result.Duration, result.TotalRoutes, len(result.Alerts), nil)
	}

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("routes_evaluated", result.TotalRoutes).
		Int("alerts_raised", len(result.Alerts)).
		Msg("alert evaluation sweep completed")

	return result, nil
}

func (j *EvaluateJob) evaluateWorker(ctx context.Context, routes <-chan *savedroute.SavedRoute, results chan<- []alert.Alert) {
	for route := range routes {
		select {
		case <-ctx.Done():
			return
		default:
			routeCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
			alerts := j.evaluator.Evaluate(routeCtx, []*savedroute.SavedRoute{route})
			cancel()

			for _, a := range alerts {
				j.logger.Info().
					Str("route_id", a.RouteID).
					Str("severity", a.Severity).
					Msg("pollution alert raised")
			}
			results <- alerts
		}
	}
}

func (j *EvaluateJob) updateMetrics(result *EvaluateResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalSweeps++
	j.metrics.RoutesEvaluated += int64(result.TotalRoutes)
	j.metrics.AlertsRaised += int64(len(result.Alerts))
	j.metrics.LastSweepAt = result.EndTime
	j.metrics.LastSweepDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *EvaluateJob) GetMetrics() EvaluateMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return EvaluateMetrics{
		TotalSweeps:       j.metrics.TotalSweeps,
		RoutesEvaluated:   j.metrics.RoutesEvaluated,
		AlertsRaised:      j.metrics.AlertsRaised,
		LastSweepAt:       j.metrics.LastSweepAt,
		LastSweepDuration: j.metrics.LastSweepDuration,
		TotalDuration:     j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *EvaluateJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_sweeps":        m.TotalSweeps,
		"routes_evaluated":    m.RoutesEvaluated,
		"alerts_raised":       m.AlertsRaised,
		"last_sweep_at":       m.LastSweepAt,
		"last_sweep_duration": m.LastSweepDuration.String(),
		"total_duration":      m.TotalDuration.String(),
	}
}
