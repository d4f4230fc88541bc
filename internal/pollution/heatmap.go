package pollution

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GridSize is the fixed number of samples per heatmap axis.
const GridSize = 10

// ErrInvalidBounds indicates a malformed or out-of-range bounding box.
var ErrInvalidBounds = errors.New("invalid bounding box")

// Bounds is a geographic bounding box for heatmap sampling.
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// ParseBounds parses a "lat1,lng1,lat2,lng2" bounding box string.
// Corners may be given in any order; the parsed bounds are normalized.
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("%w: expected 4 comma-separated values, got %d", ErrInvalidBounds, len(parts))
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("%w: %q is not a number", ErrInvalidBounds, p)
		}
		vals[i] = v
	}

	b := Bounds{
		MinLat: min(vals[0], vals[2]),
		MaxLat: max(vals[0], vals[2]),
		MinLng: min(vals[1], vals[3]),
		MaxLng: max(vals[1], vals[3]),
	}

	if b.MinLat < -90 || b.MaxLat > 90 {
		return Bounds{}, fmt.Errorf("%w: latitude out of range [-90, 90]", ErrInvalidBounds)
	}
	if b.MinLng < -180 || b.MaxLng > 180 {
		return Bounds{}, fmt.Errorf("%w: longitude out of range [-180, 180]", ErrInvalidBounds)
	}

	return b, nil
}

// HeatmapPoint is a single sampled cell of the heatmap grid.
type HeatmapPoint struct {
	Lat       float64
	Lng       float64
	Intensity float64 // aqi / 100
	Reading   Reading
}

// Heatmap samples a fixed GridSize x GridSize grid across the bounds,
// row-major from the south-west corner.
func (s *Sampler) Heatmap(b Bounds) []HeatmapPoint {
	latStep := (b.MaxLat - b.MinLat) / float64(GridSize-1)
	lngStep := (b.MaxLng - b.MinLng) / float64(GridSize-1)

	points := make([]HeatmapPoint, 0, GridSize*GridSize)
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			lat := b.MinLat + float64(i)*latStep
			lng := b.MinLng + float64(j)*lngStep
			reading := s.Sample(lat, lng)
			points = append(points, HeatmapPoint{
				Lat:       lat,
				Lng:       lng,
				Intensity: round3(reading.AQI / 100),
				Reading:   reading,
			})
		}
	}
	return points
}
