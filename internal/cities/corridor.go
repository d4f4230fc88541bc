package cities

import (
	"sort"

	"github.com/paulmach/orb"
)

// SelectorConfig holds the corridor geometry constants. The margin and
// projection band are empirical; treat them as tunables, not derived values.
type SelectorConfig struct {
	// BoxMargin expands each axis of the endpoint bounding box by this
	// fraction of its span. Default: 0.3.
	BoxMargin float64

	// MinProjection and MaxProjection bound the projection parameter t of
	// retained cities, excluding candidates too close to either endpoint.
	// Defaults: 0.1 and 0.9.
	MinProjection float64
	MaxProjection float64
}

// DefaultSelectorConfig returns the default corridor configuration.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		BoxMargin:     0.3,
		MinProjection: 0.1,
		MaxProjection: 0.9,
	}
}

// Selector picks intermediate landmark cities inside the corridor between
// a source and destination point.
type Selector struct {
	catalog *Catalog
	config  SelectorConfig
}

// NewSelector creates a Selector over the given catalog.
func NewSelector(catalog *Catalog, config SelectorConfig) *Selector {
	if config.BoxMargin <= 0 {
		config.BoxMargin = DefaultSelectorConfig().BoxMargin
	}
	if config.MaxProjection <= config.MinProjection {
		config.MinProjection = DefaultSelectorConfig().MinProjection
		config.MaxProjection = DefaultSelectorConfig().MaxProjection
	}
	return &Selector{catalog: catalog, config: config}
}

// candidate pairs a city with its projection parameter along the segment.
type candidate struct {
	city City
	t    float64
}

// SelectCities returns up to maxCities catalog cities inside the corridor,
// ordered by their position along the source→destination segment. A
// zero-length segment has no defined projection and yields no cities.
func (s *Selector) SelectCities(srcLat, srcLng, dstLat, dstLng float64, maxCities int) []City {
	if maxCities <= 0 {
		return nil
	}

	dLat := dstLat - srcLat
	dLng := dstLng - srcLng
	segLenSq := dLat*dLat + dLng*dLng
	if segLenSq == 0 {
		return nil
	}

	box := s.corridorBound(srcLat, srcLng, dstLat, dstLng)

	var candidates []candidate
	for _, city := range s.catalog.cities {
		if !box.Contains(orb.Point{city.Lng, city.Lat}) {
			continue
		}

		// Scalar projection of the city onto the segment, 0 = source, 1 = destination.
		t := (dLat*(city.Lat-srcLat) + dLng*(city.Lng-srcLng)) / segLenSq
		if t < s.config.MinProjection || t > s.config.MaxProjection {
			continue
		}

		candidates = append(candidates, candidate{city: city, t: t})
	}

	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].t < candidates[b].t
	})

	if len(candidates) > maxCities {
		candidates = candidates[:maxCities]
	}

	selected := make([]City, 0, len(candidates))
	for _, c := range candidates {
		selected = append(selected, c.city)
	}
	return selected
}

// corridorBound is the endpoint bounding box expanded by the margin.
func (s *Selector) corridorBound(srcLat, srcLng, dstLat, dstLng float64) orb.Bound {
	minLat := min(srcLat, dstLat)
	maxLat := max(srcLat, dstLat)
	minLng := min(srcLng, dstLng)
	maxLng := max(srcLng, dstLng)

	latMargin := (maxLat - minLat) * s.config.BoxMargin
	lngMargin := (maxLng - minLng) * s.config.BoxMargin

	return orb.Bound{
		Min: orb.Point{minLng - lngMargin, minLat - latMargin},
		Max: orb.Point{maxLng + lngMargin, maxLat + latMargin},
	}
}
