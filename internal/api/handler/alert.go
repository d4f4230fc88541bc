package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cleanairroutes/cleanairroutes/internal/alert"
	"github.com/cleanairroutes/cleanairroutes/internal/api/response"
)

// AlertHandler handles pollution alert endpoints.
type AlertHandler struct {
	service *alert.Service
	logger  zerolog.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(service *alert.Service, logger zerolog.Logger) *AlertHandler {
	return &AlertHandler{service: service, logger: logger}
}

// GetAlerts handles GET /v1/alerts/{userId} - evaluate alerts for a
// user's alert-enabled saved routes.
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, r, "userId is required", nil)
		return
	}

	result, err := h.service.ForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("failed to evaluate alerts")
		response.InternalError(w, r, "failed to evaluate alerts")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}
