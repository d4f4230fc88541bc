package models

// SaveRouteRequest is the request body for saving a chosen route.
type SaveRouteRequest struct {
	UserID        string      `json:"userId"`
	RouteName     string      `json:"routeName"`
	Source        Location    `json:"source"`
	Destination   Location    `json:"destination"`
	SelectedRoute RouteOption `json:"selectedRoute"`
	AlertsEnabled bool        `json:"alertsEnabled"`
}

// SavedRoute is a persisted route bookmark.
type SavedRoute struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	RouteName     string      `json:"routeName"`
	Source        Location    `json:"source"`
	Destination   Location    `json:"destination"`
	SelectedRoute RouteOption `json:"selectedRoute"`
	AlertsEnabled bool        `json:"alertsEnabled"`
	CreatedAt     Timestamp   `json:"createdAt"`
}

// SavedRoutesResponse wraps a user's saved routes.
type SavedRoutesResponse struct {
	Items []SavedRoute `json:"items"`
}
