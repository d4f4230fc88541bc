package alert

import (
	"context"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

// Service provides alert operations.
type Service struct {
	repo      savedroute.Repository
	evaluator *Evaluator
}

// NewService creates a new alert service.
func NewService(repo savedroute.Repository, evaluator *Evaluator) *Service {
	return &Service{repo: repo, evaluator: evaluator}
}

// ForUser evaluates alerts for all of a user's alert-enabled saved routes.
// A user with no saved routes, or none with alerting on, gets an empty
// list.
func (s *Service) ForUser(ctx context.Context, userID string) (*models.AlertsResponse, error) {
	routes, err := s.repo.ListAlertsEnabled(ctx, userID)
	if err != nil {
		return nil, err
	}

	alerts := s.evaluator.Evaluate(ctx, routes)

	items := make([]models.PollutionAlert, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, models.PollutionAlert{
			ID:        a.ID,
			RouteID:   a.RouteID,
			AlertType: a.Kind,
			Severity:  a.Severity,
			Message:   a.Message,
			CreatedAt: models.Timestamp(a.CreatedAt),
		})
	}

	return &models.AlertsResponse{Items: items}, nil
}
