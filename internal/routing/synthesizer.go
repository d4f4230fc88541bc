package routing

import (
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/cleanairroutes/cleanairroutes/internal/cities"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
)

// Scoring weights for the pollution score base term.
const (
	scoreWeightNO2 = 2.0
	scoreWeightO3  = 1.5
	scoreWeightSO2 = 4.0
	scoreWeightCO2 = 0.1 // applied to (co2 - 400)
)

// kmPerDegree converts flat-earth degree distance to kilometres. Coarse,
// but the system only targets city-to-city scale.
const kmPerDegree = 111.0

// minutesPerKm is the fixed effective-speed assumption for durations.
const minutesPerKm = 1.3

// PollutionSampler samples a pollutant reading at a coordinate.
type PollutionSampler interface {
	Sample(lat, lng float64) pollution.Reading
}

// CitySelector picks intermediate cities between two points.
type CitySelector interface {
	SelectCities(srcLat, srcLng, dstLat, dstLng float64, maxCities int) []cities.City
}

// Synthesizer composes waypoint sequences and scores them for pollution.
// The randomness source drives waypoint jitter and is injected so tests
// can seed it; a Synthesizer is safe for concurrent use.
type Synthesizer struct {
	sampler  PollutionSampler
	selector CitySelector

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(sampler PollutionSampler, selector CitySelector, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{sampler: sampler, selector: selector, rng: rng}
}

// Synthesize builds a single route option for the given profile. The
// waypoint sequence always starts at source and ends at destination.
func (s *Synthesizer) Synthesize(source, dest Location, profile Profile) RouteOption {
	intermediate := s.selector.SelectCities(source.Lat, source.Lng, dest.Lat, dest.Lng, profile.MaxCities)

	waypoints := make([]Waypoint, 0, len(intermediate)+2)
	waypoints = append(waypoints, Waypoint{
		Lat:   source.Lat,
		Lng:   source.Lng,
		Label: source.Address,
		Kind:  WaypointSource,
	})
	for _, city := range intermediate {
		lat, lng := s.jitter(city.Lat, city.Lng, profile.JitterDegrees)
		waypoints = append(waypoints, Waypoint{
			Lat:   lat,
			Lng:   lng,
			Label: city.Name,
			Kind:  WaypointIntermediate,
		})
	}
	waypoints = append(waypoints, Waypoint{
		Lat:   dest.Lat,
		Lng:   dest.Lng,
		Label: dest.Address,
		Kind:  WaypointDestination,
	})

	readings := make([]pollution.Reading, len(waypoints))
	for i := range waypoints {
		readings[i] = s.sampler.Sample(waypoints[i].Lat, waypoints[i].Lng)
		waypoints[i].Reading = readings[i]
	}

	levels := pollution.AverageReadings(readings)
	score := pollutionScore(levels, profile.PollutionMultiplier)
	distance := routeDistance(waypoints, profile.DistanceMultiplier)
	duration := int(math.Round(distance * minutesPerKm))

	return RouteOption{
		ID:              "rte_" + uuid.New().String()[:12],
		Name:            profile.Name,
		Profile:         profile.Key,
		DistanceKm:      distance,
		DurationMinutes: duration,
		PollutionScore:  score,
		Waypoints:       waypoints,
		PollutantLevels: levels,
		Advisories:      advisories(score, levels),
	}
}

// jitter offsets a coordinate by up to ±amplitude degrees on each axis.
func (s *Synthesizer) jitter(lat, lng, amplitude float64) (float64, float64) {
	if amplitude == 0 {
		return lat, lng
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lat + (s.rng.Float64()*2-1)*amplitude,
		lng + (s.rng.Float64()*2-1)*amplitude
}

// pollutionScore derives the 0-100 score (lower is better) from averaged
// pollutant levels and the profile multiplier.
func pollutionScore(levels pollution.Averages, multiplier float64) float64 {
	base := levels.NO2*scoreWeightNO2 +
		levels.O3*scoreWeightO3 +
		levels.SO2*scoreWeightSO2 +
		(levels.CO2-400)*scoreWeightCO2
	score := math.Min(100, math.Max(0, base*multiplier))
	return math.Round(score*10) / 10
}

// routeDistance sums flat-earth segment lengths between consecutive
// waypoints, scaled by the profile distance multiplier.
func routeDistance(waypoints []Waypoint, multiplier float64) float64 {
	var total float64
	for i := 1; i < len(waypoints); i++ {
		dLat := waypoints[i].Lat - waypoints[i-1].Lat
		dLng := waypoints[i].Lng - waypoints[i-1].Lng
		total += kmPerDegree * math.Sqrt(dLat*dLat+dLng*dLng)
	}
	total *= multiplier
	return math.Round(total*10) / 10
}

// Advisory thresholds for pollutant-specific warnings.
const (
	advisoryNO2Threshold = 25.0
	advisoryO3Threshold  = 60.0
	advisorySO2Threshold = 10.0
)

// advisories builds the tiered advisory list for a route. Pollutant
// warnings append to the tier list, never replace it.
func advisories(score float64, levels pollution.Averages) []string {
	var recs []string
	switch {
	case score > 70:
		recs = append(recs,
			"High pollution detected: consider wearing an N95 mask",
			"Keep windows closed if driving",
			"Avoid outdoor exercise along this route",
			"Travel early in the morning to reduce exposure",
		)
	case score > 50:
		recs = append(recs,
			"Moderate pollution: sensitive individuals should take precautions",
			"Consider an alternative route if you have respiratory conditions",
			"Limit time spent outdoors at stops",
		)
	default:
		recs = append(recs,
			"Good air quality along this route",
			"No special precautions needed",
		)
	}

	if levels.NO2 > advisoryNO2Threshold {
		recs = append(recs, "High NO2 levels: avoid peak traffic hours")
	}
	if levels.O3 > advisoryO3Threshold {
		recs = append(recs, "High ozone levels: best to travel in early morning or evening")
	}
	if levels.SO2 > advisorySO2Threshold {
		recs = append(recs, "Elevated SO2: industrial areas along this route")
	}
	return recs
}
