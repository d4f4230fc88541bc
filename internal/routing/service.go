package routing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
)

// Service provides route computation operations.
type Service struct {
	portfolio *PortfolioBuilder
}

// NewService creates a new routing service.
func NewService(portfolio *PortfolioBuilder) *Service {
	return &Service{portfolio: portfolio}
}

// Compute builds the full route portfolio for a source/destination pair.
func (s *Service) Compute(_ context.Context, input *models.RouteRequest) (*models.RouteResponse, error) {
	if fieldErrors := s.validateComputeInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	source := FromAPILocation(input.Source)
	dest := FromAPILocation(input.Destination)

	options := s.portfolio.Build(source, dest)

	routes := make([]models.RouteOption, 0, len(options))
	for _, opt := range options {
		routes = append(routes, ToAPIRouteOption(opt))
	}

	return &models.RouteResponse{
		RequestID:   "req_" + uuid.New().String()[:22],
		Source:      input.Source,
		Destination: input.Destination,
		Routes:      routes,
		CreatedAt:   models.Timestamp(time.Now()),
	}, nil
}

// validateComputeInput validates the route computation input.
func (s *Service) validateComputeInput(input *models.RouteRequest) []models.FieldError {
	var errs []models.FieldError
	errs = append(errs, validateCoordinates(input.Source, "source")...)
	errs = append(errs, validateCoordinates(input.Destination, "destination")...)
	return errs
}

// validateCoordinates validates a route endpoint.
func validateCoordinates(loc models.Location, prefix string) []models.FieldError {
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

// FromAPILocation converts an API Location to the domain representation.
func FromAPILocation(loc models.Location) Location {
	return Location{Lat: loc.Lat, Lng: loc.Lng, Address: loc.Address}
}

// ToAPILocation converts a domain Location to the API representation.
func ToAPILocation(loc Location) models.Location {
	return models.Location{Lat: loc.Lat, Lng: loc.Lng, Address: loc.Address}
}

// ToAPIRouteOption converts a domain route option to its API representation.
func ToAPIRouteOption(opt RouteOption) models.RouteOption {
	waypoints := make([]models.Waypoint, 0, len(opt.Waypoints))
	for _, wp := range opt.Waypoints {
		waypoints = append(waypoints, models.Waypoint{
			Lat:     wp.Lat,
			Lng:     wp.Lng,
			Label:   wp.Label,
			Kind:    string(wp.Kind),
			Reading: ToAPIReading(wp.Reading),
		})
	}

	return models.RouteOption{
		ID:              opt.ID,
		RouteName:       opt.Name,
		Profile:         opt.Profile,
		DistanceKm:      opt.DistanceKm,
		DurationMinutes: opt.DurationMinutes,
		PollutionScore:  opt.PollutionScore,
		Waypoints:       waypoints,
		PollutantLevels: models.PollutantLevels{
			NO2:     opt.PollutantLevels.NO2,
			O3:      opt.PollutantLevels.O3,
			SO2:     opt.PollutantLevels.SO2,
			CO2:     opt.PollutantLevels.CO2,
			Methane: opt.PollutantLevels.Methane,
		},
		Advisories: opt.Advisories,
	}
}

// FromAPIRouteOption converts an API route option to the domain
// representation.
func FromAPIRouteOption(opt models.RouteOption) RouteOption {
	waypoints := make([]Waypoint, 0, len(opt.Waypoints))
	for _, wp := range opt.Waypoints {
		waypoints = append(waypoints, Waypoint{
			Lat:     wp.Lat,
			Lng:     wp.Lng,
			Label:   wp.Label,
			Kind:    WaypointKind(wp.Kind),
			Reading: FromAPIReading(wp.Reading),
		})
	}

	return RouteOption{
		ID:              opt.ID,
		Name:            opt.RouteName,
		Profile:         opt.Profile,
		DistanceKm:      opt.DistanceKm,
		DurationMinutes: opt.DurationMinutes,
		PollutionScore:  opt.PollutionScore,
		Waypoints:       waypoints,
		PollutantLevels: pollution.Averages{
			NO2:     opt.PollutantLevels.NO2,
			O3:      opt.PollutantLevels.O3,
			SO2:     opt.PollutantLevels.SO2,
			CO2:     opt.PollutantLevels.CO2,
			Methane: opt.PollutantLevels.Methane,
		},
		Advisories: opt.Advisories,
	}
}

// ToAPIReading converts a domain pollutant reading to the API
// representation.
func ToAPIReading(r pollution.Reading) models.PollutantReading {
	return models.PollutantReading{
		NO2:       r.NO2,
		O3:        r.O3,
		SO2:       r.SO2,
		CO2:       r.CO2,
		Methane:   r.Methane,
		AQI:       r.AQI,
		Timestamp: models.Timestamp(r.CapturedAt),
	}
}

// FromAPIReading converts an API pollutant reading to the domain
// representation.
func FromAPIReading(r models.PollutantReading) pollution.Reading {
	return pollution.Reading{
		NO2:        r.NO2,
		O3:         r.O3,
		SO2:        r.SO2,
		CO2:        r.CO2,
		Methane:    r.Methane,
		AQI:        r.AQI,
		CapturedAt: r.Timestamp.Time(),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
