package alert_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

func TestService_ForUser(t *testing.T) {
	repo := savedroute.NewInMemoryRepository()
	ctx := context.Background()

	polluted := routeAt("svd_polluted", "Downtown", 41.0)
	polluted.AlertsEnabled = true
	require.NoError(t, repo.Insert(ctx, polluted))

	clean := routeAt("svd_clean", "Park Loop", 40.0)
	clean.AlertsEnabled = true
	require.NoError(t, repo.Insert(ctx, clean))

	// Alerting disabled: never evaluated, even with a bad reading.
	muted := routeAt("svd_muted", "Industrial", 42.0)
	require.NoError(t, repo.Insert(ctx, muted))

	sampler := &aqiSampler{byLat: map[float64]float64{
		40.0: 50.0,
		41.0: 130.0,
		42.0: 300.0,
	}}
	svc := alert.NewService(repo, alert.NewEvaluator(sampler))

	resp, err := svc.ForUser(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Equal(t, "svd_polluted", item.RouteID)
	assert.Equal(t, alert.KindHighPollution, item.AlertType)
	assert.Equal(t, alert.SeverityHigh, item.Severity)
	assert.Contains(t, item.Message, "Downtown")
}

func TestService_ForUser_NoRoutes(t *testing.T) {
	repo := savedroute.NewInMemoryRepository()
	svc := alert.NewService(repo, alert.NewEvaluator(&aqiSampler{byLat: map[float64]float64{}}))

	resp, err := svc.ForUser(context.Background(), "user-none")
	require.NoError(t, err)

	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}
