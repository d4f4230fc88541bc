package handler

import (
	"net/http"
	"strconv"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/api/response"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

// PollutionHandler handles pollution data endpoints.
type PollutionHandler struct {
	sampler *pollution.Sampler
}

// NewPollutionHandler creates a new PollutionHandler.
func NewPollutionHandler(sampler *pollution.Sampler) *PollutionHandler {
	return &PollutionHandler{sampler: sampler}
}

// GetCurrent handles GET /v1/pollution/current - current reading at a
// coordinate.
func (h *PollutionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	lat, latErrs := parseCoordinate(r.URL.Query().Get("lat"), "lat", -90, 90)
	lng, lngErrs := parseCoordinate(r.URL.Query().Get("lng"), "lng", -180, 180)

	if errs := append(latErrs, lngErrs...); len(errs) > 0 {
		response.BadRequest(w, r, "invalid coordinates", errs)
		return
	}

	reading := h.sampler.Sample(lat, lng)
	response.JSON(w, r, http.StatusOK, routing.ToAPIReading(reading))
}

// GetHeatmap handles GET /v1/pollution/heatmap - grid of readings across
// a bounding box.
func (h *PollutionHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	bbox := r.URL.Query().Get("bounds")
	if bbox == "" {
		response.BadRequest(w, r, "bounds query parameter is required", []models.FieldError{
			{Field: "bounds", Message: "is required"},
		})
		return
	}

	bounds, err := pollution.ParseBounds(bbox)
	if err != nil {
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "bounds", Message: "must be lat1,lng1,lat2,lng2"},
		})
		return
	}

	grid := h.sampler.Heatmap(bounds)

	points := make([]models.HeatmapPoint, 0, len(grid))
	for _, p := range grid {
		points = append(points, models.HeatmapPoint{
			Lat:       p.Lat,
			Lng:       p.Lng,
			Intensity: p.Intensity,
			Reading:   routing.ToAPIReading(p.Reading),
		})
	}

	response.JSON(w, r, http.StatusOK, models.HeatmapResponse{
		GridSize: pollution.GridSize,
		Points:   points,
	})
}

// parseCoordinate parses and range-checks a coordinate query parameter.
func parseCoordinate(raw, field string, lo, hi float64) (float64, []models.FieldError) {
	if raw == "" {
		return 0, []models.FieldError{{Field: field, Message: "is required"}}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, []models.FieldError{{Field: field, Message: "must be a number"}}
	}

	if v < lo || v > hi {
		return 0, []models.FieldError{{
			Field:   field,
			Message: "must be between " + strconv.FormatFloat(lo, 'f', -1, 64) + " and " + strconv.FormatFloat(hi, 'f', -1, 64),
		}}
	}

	return v, nil
}
