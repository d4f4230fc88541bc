package models

// PollutionAlert is an on-demand alert for a saved route.
type PollutionAlert struct {
	ID        string    `json:"id"`
	RouteID   string    `json:"routeId"`
	AlertType string    `json:"alertType"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"createdAt"`
}

// AlertsResponse wraps the alerts computed for a user's saved routes.
type AlertsResponse struct {
	Items []PollutionAlert `json:"items"`
}
