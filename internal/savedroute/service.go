package savedroute

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

// Validation constants.
const (
	MaxRouteNameLength = 80
	MaxUserIDLength    = 64
)

// Service provides saved-route operations.
type Service struct {
	repo Repository
}

// NewService creates a new saved-route service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save persists a chosen route option for a user.
func (s *Service) Save(ctx context.Context, input *models.SaveRouteRequest) (*models.SavedRoute, error) {
	if fieldErrors := s.validateSaveInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	route := &SavedRoute{
		ID:            "svd_" + uuid.New().String()[:22],
		UserID:        input.UserID,
		RouteName:     input.RouteName,
		Source:        routing.FromAPILocation(input.Source),
		Destination:   routing.FromAPILocation(input.Destination),
		SelectedRoute: routing.FromAPIRouteOption(input.SelectedRoute),
		AlertsEnabled: input.AlertsEnabled,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Insert(ctx, route); err != nil {
		return nil, err
	}

	result := s.toAPISavedRoute(route)
	return &result, nil
}

// List retrieves all saved routes for a user, newest first.
func (s *Service) List(ctx context.Context, userID string) (*models.SavedRoutesResponse, error) {
	routes, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.SavedRoute, 0, len(routes))
	for _, sr := range routes {
		items = append(items, s.toAPISavedRoute(sr))
	}

	return &models.SavedRoutesResponse{Items: items}, nil
}

// Delete removes a saved route by ID.
func (s *Service) Delete(ctx context.Context, routeID string) error {
	err := s.repo.DeleteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			return ErrRouteNotFound
		}
		return err
	}
	return nil
}

// validateSaveInput validates the save route input.
func (s *Service) validateSaveInput(input *models.SaveRouteRequest) []models.FieldError {
	var errs []models.FieldError

	if input.UserID == "" {
		errs = append(errs, models.FieldError{Field: "userId", Message: "is required"})
	} else if len(input.UserID) > MaxUserIDLength {
		errs = append(errs, models.FieldError{Field: "userId", Message: "must be at most 64 characters"})
	}

	if input.RouteName == "" {
		errs = append(errs, models.FieldError{Field: "routeName", Message: "is required"})
	} else if len(input.RouteName) > MaxRouteNameLength {
		errs = append(errs, models.FieldError{Field: "routeName", Message: "must be at most 80 characters"})
	}

	errs = append(errs, s.validateLocation(input.Source, "source")...)
	errs = append(errs, s.validateLocation(input.Destination, "destination")...)

	return errs
}

// validateLocation validates a route endpoint.
func (s *Service) validateLocation(loc models.Location, prefix string) []models.FieldError {
	var errs []models.FieldError

	if loc.Lat < -90 || loc.Lat > 90 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lat",
			Message: "must be between -90 and 90",
		})
	}

	if loc.Lng < -180 || loc.Lng > 180 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lng",
			Message: "must be between -180 and 180",
		})
	}

	return errs
}

// toAPISavedRoute converts a domain SavedRoute to an API SavedRoute.
func (s *Service) toAPISavedRoute(sr *SavedRoute) models.SavedRoute {
	return models.SavedRoute{
		ID:            sr.ID,
		UserID:        sr.UserID,
		RouteName:     sr.RouteName,
		Source:        routing.ToAPILocation(sr.Source),
		Destination:   routing.ToAPILocation(sr.Destination),
		SelectedRoute: routing.ToAPIRouteOption(sr.SelectedRoute),
		AlertsEnabled: sr.AlertsEnabled,
		CreatedAt:     models.Timestamp(sr.CreatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
