package models

// RouteRequest is the request body for computing route options.
type RouteRequest struct {
	Source      Location               `json:"source"`
	Destination Location               `json:"destination"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}

// RouteResponse is the response for route computation.
type RouteResponse struct {
	RequestID   string        `json:"requestId"`
	Source      Location      `json:"source"`
	Destination Location      `json:"destination"`
	Routes      []RouteOption `json:"routes"`
	CreatedAt   Timestamp     `json:"createdAt"`
}

// RouteOption represents a single route alternative with its pollution
// annotation.
type RouteOption struct {
	ID              string           `json:"id"`
	RouteName       string           `json:"routeName"`
	Profile         string           `json:"profile"`
	DistanceKm      float64          `json:"distanceKm"`
	DurationMinutes int              `json:"durationMinutes"`
	PollutionScore  float64          `json:"pollutionScore"`
	Waypoints       []Waypoint       `json:"waypoints"`
	PollutantLevels PollutantLevels  `json:"pollutantLevels"`
	Advisories      []string         `json:"advisories"`
}

// Waypoint is a point along a route together with its sampled reading.
type Waypoint struct {
	Lat     float64          `json:"lat"`
	Lng     float64          `json:"lng"`
	Label   string           `json:"label,omitempty"`
	Kind    string           `json:"kind"`
	Reading PollutantReading `json:"reading"`
}

// PollutantLevels holds route-averaged pollutant values.
type PollutantLevels struct {
	NO2     float64 `json:"no2"`
	O3      float64 `json:"o3"`
	SO2     float64 `json:"so2"`
	CO2     float64 `json:"co2"`
	Methane float64 `json:"methane"`
}
