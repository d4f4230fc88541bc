package pollution

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// AQI component weights. The index is derived from the same NO2/O3/SO2
// draws as the reading itself, never from an independent sample.
const (
	aqiWeightNO2 = 2.5
	aqiWeightO3  = 1.2
	aqiWeightSO2 = 5.0
)

// Physical floors for each pollutant.
const (
	minNO2     = 5.0
	minO3      = 10.0
	minSO2     = 1.0
	minCO2     = 380.0
	minMethane = 1.8
)

// Sampler produces synthetic pollutant readings for a coordinate.
// The randomness source is injected so tests can seed it; a Sampler is
// safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSampler creates a Sampler backed by the given randomness source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng, now: time.Now}
}

// Sample returns a pollutant reading at the given coordinate. It never
// fails: any internal fault is absorbed and the fixed fallback reading
// is returned instead, so callers need no error handling. Longitude
// carries no systematic term in the simulation; only latitude does.
func (s *Sampler) Sample(lat, lng float64) (reading Reading) {
	defer func() {
		if r := recover(); r != nil {
			reading = FallbackReading(s.now())
		}
	}()

	s.mu.Lock()
	no2Noise := s.uniform(-8, 12)
	o3Noise := s.uniform(-15, 25)
	so2Noise := s.uniform(-4, 8)
	co2Noise := s.uniform(-20, 30)
	methaneNoise := s.uniform(-0.2, 0.3)
	s.mu.Unlock()

	// NO2 rises with distance from the 40th parallel.
	no2 := math.Max(minNO2, 15.0+no2Noise+math.Abs(lat-40)*0.5)
	o3 := math.Max(minO3, 35.0+o3Noise)
	so2 := math.Max(minSO2, 8.0+so2Noise)
	co2 := math.Max(minCO2, 410.0+co2Noise)
	methane := math.Max(minMethane, 1.9+methaneNoise)

	aqi := clamp(0, 500, no2*aqiWeightNO2+o3*aqiWeightO3+so2*aqiWeightSO2)

	return Reading{
		NO2:        round2(no2),
		O3:         round2(o3),
		SO2:        round2(so2),
		CO2:        round2(co2),
		Methane:    round3(methane),
		AQI:        round1(aqi),
		CapturedAt: s.now().UTC(),
	}
}

// FallbackReading is the fixed reading substituted when sampling faults.
func FallbackReading(now time.Time) Reading {
	return Reading{
		NO2:        12.5,
		O3:         32.0,
		SO2:        5.5,
		CO2:        415.0,
		Methane:    1.85,
		AQI:        65.0,
		CapturedAt: now.UTC(),
	}
}

// uniform draws from [lo, hi). Callers must hold s.mu.
func (s *Sampler) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func clamp(lo, hi, v float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
