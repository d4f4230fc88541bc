package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/api/response"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

// RouteHandler handles route computation endpoints.
type RouteHandler struct {
	service *routing.Service
	logger  zerolog.Logger
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *routing.Service, logger zerolog.Logger) *RouteHandler {
	return &RouteHandler{service: service, logger: logger}
}

// ComputeRoutes handles POST /v1/routes:compute - compute route options
// with pollution annotations.
func (h *RouteHandler) ComputeRoutes(w http.ResponseWriter, r *http.Request) {
	var input models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.service.Compute(r.Context(), &input)
	if err != nil {
		var validationErr *routing.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "invalid route request", validationErr.Errors)
			return
		}

		h.logger.Error().Err(err).Msg("route computation failed")
		response.InternalError(w, r, "failed to compute routes")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}
