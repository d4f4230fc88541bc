// Package alert evaluates pollution alerts for saved routes.
package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

// Alert thresholds. A route alerts when the AQI at its source exceeds
// AlertThresholdAQI; at ExtremeThresholdAQI and above the severity
// escalates.
const (
	AlertThresholdAQI   = 100.0
	ExtremeThresholdAQI = 150.0
)

// Alert kinds and severities.
const (
	KindHighPollution = "high_pollution"

	SeverityHigh    = "high"
	SeverityExtreme = "extreme"
)

// PollutionSampler supplies current readings for a coordinate.
type PollutionSampler interface {
	Sample(lat, lng float64) pollution.Reading
}

// Alert is a pollution alert raised for one saved route.
type Alert struct {
	ID        string
	RouteID   string
	Kind      string
	Severity  string
	Message   string
	CreatedAt time.Time
}

// Evaluator derives alerts from fresh readings at saved-route sources.
// Alerts are computed on demand and never persisted.
type Evaluator struct {
	sampler PollutionSampler
	now     func() time.Time
}

// NewEvaluator creates a new alert evaluator.
func NewEvaluator(sampler PollutionSampler) *Evaluator {
	return &Evaluator{sampler: sampler, now: time.Now}
}

// Evaluate resamples each route's source and returns an alert for every
// route whose current AQI exceeds the alert threshold. Routes below the
// threshold contribute nothing. Evaluation stops early once ctx is done,
// returning the alerts gathered so far.
func (e *Evaluator) Evaluate(ctx context.Context, routes []*savedroute.SavedRoute) []Alert {
	alerts := make([]Alert, 0, len(routes))
	for _, route := range routes {
		if ctx.Err() != nil {
			return alerts
		}

		reading := e.sampler.Sample(route.Source.Lat, route.Source.Lng)
		if reading.AQI <= AlertThresholdAQI {
			continue
		}

		severity := SeverityHigh
		if reading.AQI >= ExtremeThresholdAQI {
			severity = SeverityExtreme
		}

		alerts = append(alerts, Alert{
			ID:        "alr_" + uuid.New().String()[:12],
			RouteID:   route.ID,
			Kind:      KindHighPollution,
			Severity:  severity,
			Message:   fmt.Sprintf("High pollution alert for route '%s' - AQI: %.1f", route.RouteName, reading.AQI),
			CreatedAt: e.now().UTC(),
		})
	}
	return alerts
}
