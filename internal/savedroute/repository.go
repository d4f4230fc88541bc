package savedroute

import "context"

// Repository defines the interface for saved-route persistence.
type Repository interface {
	// Insert stores a new saved route.
	Insert(ctx context.Context, route *SavedRoute) error

	// FindByUserID retrieves all saved routes for a user.
	FindByUserID(ctx context.Context, userID string) ([]*SavedRoute, error)

	// FindByID retrieves a saved route by ID.
	// Returns ErrRouteNotFound if no such route exists.
	FindByID(ctx context.Context, id string) (*SavedRoute, error)

	// DeleteByID deletes a saved route by ID.
	// Returns ErrRouteNotFound if no such route exists; deleting a missing
	// route is a reportable condition, not a no-op.
	DeleteByID(ctx context.Context, id string) error

	// ListAlertsEnabled retrieves a user's saved routes with alerting on.
	ListAlertsEnabled(ctx context.Context, userID string) ([]*SavedRoute, error)

	// ListAllAlertsEnabled retrieves every saved route with alerting on,
	// across all users. Used by the background evaluation sweep.
	ListAllAlertsEnabled(ctx context.Context) ([]*SavedRoute, error)
}
