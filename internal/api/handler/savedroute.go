package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/api/models"
	"github.com/cleanairroutes/cleanairroutes/internal/api/response"
	"github.com/cleanairroutes/cleanairroutes/internal/savedroute"
)

// SavedRouteHandler handles saved-route endpoints.
type SavedRouteHandler struct {
	service *savedroute.Service
	logger  zerolog.Logger
}

// NewSavedRouteHandler creates a new SavedRouteHandler.
func NewSavedRouteHandler(service *savedroute.Service, logger zerolog.Logger) *SavedRouteHandler {
	return &SavedRouteHandler{service: service, logger: logger}
}

// SaveRoute handles POST /v1/routes/save - bookmark a chosen route.
func (h *SavedRouteHandler) SaveRoute(w http.ResponseWriter, r *http.Request) {
	var input models.SaveRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	saved, err := h.service.Save(r.Context(), &input)
	if err != nil {
		var validationErr *savedroute.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "invalid save request", validationErr.Errors)
			return
		}

		h.logger.Error().Err(err).Msg("failed to save route")
		response.InternalError(w, r, "failed to save route")
		return
	}

	location := fmt.Sprintf("/v1/routes/saved/%s", saved.ID)
	response.Created(w, r, location, saved)
}

// ListSavedRoutes handles GET /v1/routes/saved/{userId} - list a user's
// saved routes.
func (h *SavedRouteHandler) ListSavedRoutes(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, r, "userId is required", nil)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list saved routes")
		response.InternalError(w, r, "failed to list saved routes")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// DeleteSavedRoute handles DELETE /v1/routes/saved/{routeId} - delete a
// saved route.
func (h *SavedRouteHandler) DeleteSavedRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeId")
	if routeID == "" {
		response.BadRequest(w, r, "routeId is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), routeID); err != nil {
		if errors.Is(err, savedroute.ErrRouteNotFound) {
			response.NotFound(w, r, "saved route not found")
			return
		}

		h.logger.Error().Err(err).Str("route_id", routeID).Msg("failed to delete saved route")
		response.InternalError(w, r, "failed to delete saved route")
		return
	}

	response.NoContent(w, r)
}
