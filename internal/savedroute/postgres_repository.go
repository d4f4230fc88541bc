package savedroute

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

// PostgresRepository is a PostgreSQL implementation of Repository. The
// selected route snapshot is stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL saved-route repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const savedRouteColumns = `
	id, user_id, route_name,
	source_lat, source_lng, source_address,
	destination_lat, destination_lng, destination_address,
	selected_route, alerts_enabled, created_at
`

// Insert stores a new saved route.
func (r *PostgresRepository) Insert(ctx context.Context, route *SavedRoute) error {
	snapshot, err := json.Marshal(route.SelectedRoute)
	if err != nil {
		return fmt.Errorf("marshal route snapshot: %w", err)
	}

	query := `
		INSERT INTO saved_routes (` + savedRouteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.pool.Exec(ctx, query,
		route.ID,
		route.UserID,
		route.RouteName,
		route.Source.Lat,
		route.Source.Lng,
		route.Source.Address,
		route.Destination.Lat,
		route.Destination.Lng,
		route.Destination.Address,
		snapshot,
		route.AlertsEnabled,
		route.CreatedAt,
	)
	return err
}

// FindByUserID retrieves all saved routes for a user.
func (r *PostgresRepository) FindByUserID(ctx context.Context, userID string) ([]*SavedRoute, error) {
	query := `
		SELECT ` + savedRouteColumns + `
		FROM saved_routes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRoutes(ctx, query, userID)
}

// FindByID retrieves a saved route by ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*SavedRoute, error) {
	query := `
		SELECT ` + savedRouteColumns + `
		FROM saved_routes
		WHERE id = $1
	`

	route, err := r.scanRoute(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return route, nil
}

// DeleteByID deletes a saved route by ID.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM saved_routes WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// ListAlertsEnabled retrieves a user's saved routes with alerting on.
func (r *PostgresRepository) ListAlertsEnabled(ctx context.Context, userID string) ([]*SavedRoute, error) {
	query := `
		SELECT ` + savedRouteColumns + `
		FROM saved_routes
		WHERE user_id = $1 AND alerts_enabled = TRUE
		ORDER BY created_at DESC
	`
	return r.queryRoutes(ctx, query, userID)
}

// ListAllAlertsEnabled retrieves every saved route with alerting on.
func (r *PostgresRepository) ListAllAlertsEnabled(ctx context.Context) ([]*SavedRoute, error) {
	query := `
		SELECT ` + savedRouteColumns + `
		FROM saved_routes
		WHERE alerts_enabled = TRUE
		ORDER BY created_at DESC
	`
	return r.queryRoutes(ctx, query)
}

// queryRoutes runs a multi-row saved-route query.
func (r *PostgresRepository) queryRoutes(ctx context.Context, query string, args ...interface{}) ([]*SavedRoute, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*SavedRoute
	for rows.Next() {
		route, err := r.scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}

// scanRoute scans a saved route from a row.
func (r *PostgresRepository) scanRoute(row pgx.Row) (*SavedRoute, error) {
	var (
		route    SavedRoute
		snapshot []byte
	)

	err := row.Scan(
		&route.ID,
		&route.UserID,
		&route.RouteName,
		&route.Source.Lat,
		&route.Source.Lng,
		&route.Source.Address,
		&route.Destination.Lat,
		&route.Destination.Lng,
		&route.Destination.Address,
		&snapshot,
		&route.AlertsEnabled,
		&route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	var selected routing.RouteOption
	if err := json.Unmarshal(snapshot, &selected); err != nil {
		return nil, fmt.Errorf("unmarshal route snapshot: %w", err)
	}
	route.SelectedRoute = selected

	return &route, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
