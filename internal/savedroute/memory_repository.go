package savedroute

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu     sync.RWMutex
	routes map[string]*SavedRoute
}

// NewInMemoryRepository creates a new in-memory saved-route repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		routes: make(map[string]*SavedRoute),
	}
}

// Insert stores a new saved route.
func (r *InMemoryRepository) Insert(_ context.Context, route *SavedRoute) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *route
	r.routes[route.ID] = &cpy
	return nil
}

// FindByUserID retrieves all saved routes for a user.
func (r *InMemoryRepository) FindByUserID(_ context.Context, userID string) ([]*SavedRoute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var routes []*SavedRoute
	for _, sr := range r.routes {
		if sr.UserID == userID {
			cpy := *sr
			routes = append(routes, &cpy)
		}
	}
	sortNewestFirst(routes)
	return routes, nil
}

// FindByID retrieves a saved route by ID.
func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*SavedRoute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sr, ok := r.routes[id]
	if !ok {
		return nil, ErrRouteNotFound
	}

	cpy := *sr
	return &cpy, nil
}

// DeleteByID deletes a saved route by ID.
func (r *InMemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[id]; !ok {
		return ErrRouteNotFound
	}

	delete(r.routes, id)
	return nil
}

// ListAlertsEnabled retrieves a user's saved routes with alerting on.
func (r *InMemoryRepository) ListAlertsEnabled(_ context.Context, userID string) ([]*SavedRoute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var routes []*SavedRoute
	for _, sr := range r.routes {
		if sr.UserID == userID && sr.AlertsEnabled {
			cpy := *sr
			routes = append(routes, &cpy)
		}
	}
	sortNewestFirst(routes)
	return routes, nil
}

// ListAllAlertsEnabled retrieves every saved route with alerting on.
func (r *InMemoryRepository) ListAllAlertsEnabled(_ context.Context) ([]*SavedRoute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var routes []*SavedRoute
	for _, sr := range r.routes {
		if sr.AlertsEnabled {
			cpy := *sr
			routes = append(routes, &cpy)
		}
	}
	sortNewestFirst(routes)
	return routes, nil
}

// sortNewestFirst orders routes by creation time descending, matching the
// Postgres repository's listing order.
func sortNewestFirst(routes []*SavedRoute) {
	sort.Slice(routes, func(a, b int) bool {
		return routes[a].CreatedAt.After(routes[b].CreatedAt)
	})
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
