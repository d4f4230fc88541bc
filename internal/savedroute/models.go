// Package savedroute provides saved-route persistence and management.
package savedroute

import (
	"errors"
	"time"

	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

// Repository errors.
var (
	ErrRouteNotFound = errors.New("saved route not found")
)

// SavedRoute is a route bookmark owned by a user. The selected route is a
// snapshot of the option chosen at save time.
type SavedRoute struct {
	ID            string
	UserID        string
	RouteName     string
	Source        routing.Location
	Destination   routing.Location
	SelectedRoute routing.RouteOption
	AlertsEnabled bool
	CreatedAt     time.Time
}
