package routing

import (
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
)

// Location is an immutable geographic input value.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// WaypointKind labels a waypoint's role in the route sequence.
type WaypointKind string

const (
	WaypointSource       WaypointKind = "source"
	WaypointIntermediate WaypointKind = "intermediate"
	WaypointDestination  WaypointKind = "destination"
)

// Waypoint is a point along a synthesized route together with the
// pollutant reading sampled there. Waypoint detail is part of the route
// from construction, never attached afterwards.
type Waypoint struct {
	Lat     float64
	Lng     float64
	Label   string
	Kind    WaypointKind
	Reading pollution.Reading
}

// RouteOption is a single synthesized route alternative. It is created
// once per portfolio build and immutable thereafter.
type RouteOption struct {
	ID              string
	Name            string
	Profile         string
	DistanceKm      float64
	DurationMinutes int
	PollutionScore  float64 // 0-100, lower is better
	Waypoints       []Waypoint
	PollutantLevels pollution.Averages
	Advisories      []string
}
