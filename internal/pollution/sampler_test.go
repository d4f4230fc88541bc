package pollution_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
)

func newSeededSampler(seed int64) *pollution.Sampler {
	return pollution.NewSampler(rand.New(rand.NewSource(seed)))
}

func TestSampler_Sample_RespectsFloors(t *testing.T) {
	s := newSeededSampler(1)

	for i := 0; i < 200; i++ {
		r := s.Sample(40.7128, -74.0060)

		assert.GreaterOrEqual(t, r.NO2, 5.0)
		assert.GreaterOrEqual(t, r.O3, 10.0)
		assert.GreaterOrEqual(t, r.SO2, 1.0)
		assert.GreaterOrEqual(t, r.CO2, 380.0)
		assert.GreaterOrEqual(t, r.Methane, 1.8)
	}
}

func TestSampler_Sample_AQIRange(t *testing.T) {
	s := newSeededSampler(2)

	for i := 0; i < 200; i++ {
		r := s.Sample(34.0522, -118.2437)
		assert.GreaterOrEqual(t, r.AQI, 0.0)
		assert.LessOrEqual(t, r.AQI, 500.0)
	}
}

func TestSampler_Sample_AQIDerivedFromComponents(t *testing.T) {
	s := newSeededSampler(3)

	r := s.Sample(40.0, -75.0)

	// Components are rounded after the AQI is computed, so allow a small
	// tolerance when recomputing from the published values.
	want := r.NO2*2.5 + r.O3*1.2 + r.SO2*5.0
	want = math.Min(500, math.Max(0, want))
	assert.InDelta(t, want, r.AQI, 0.5)
}

func TestSampler_Sample_LatitudeRaisesNO2(t *testing.T) {
	// Same seed means the same noise draws, so the latitude term is the
	// only difference between the two readings.
	atParallel := newSeededSampler(7).Sample(40.0, -80.0)
	farNorth := newSeededSampler(7).Sample(60.0, -80.0)

	assert.InDelta(t, 10.0, farNorth.NO2-atParallel.NO2, 0.01)
}

func TestSampler_Sample_Deterministic(t *testing.T) {
	a := newSeededSampler(42).Sample(41.8781, -87.6298)
	b := newSeededSampler(42).Sample(41.8781, -87.6298)

	assert.Equal(t, a.NO2, b.NO2)
	assert.Equal(t, a.O3, b.O3)
	assert.Equal(t, a.SO2, b.SO2)
	assert.Equal(t, a.CO2, b.CO2)
	assert.Equal(t, a.Methane, b.Methane)
	assert.Equal(t, a.AQI, b.AQI)
}

func TestSampler_Sample_Rounding(t *testing.T) {
	s := newSeededSampler(11)

	r := s.Sample(39.7392, -104.9903)

	assert.Equal(t, math.Round(r.NO2*100)/100, r.NO2)
	assert.Equal(t, math.Round(r.O3*100)/100, r.O3)
	assert.Equal(t, math.Round(r.SO2*100)/100, r.SO2)
	assert.Equal(t, math.Round(r.CO2*100)/100, r.CO2)
	assert.Equal(t, math.Round(r.Methane*1000)/1000, r.Methane)
	assert.Equal(t, math.Round(r.AQI*10)/10, r.AQI)
}

func TestFallbackReading(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r := pollution.FallbackReading(now)

	assert.Equal(t, 12.5, r.NO2)
	assert.Equal(t, 32.0, r.O3)
	assert.Equal(t, 5.5, r.SO2)
	assert.Equal(t, 415.0, r.CO2)
	assert.Equal(t, 1.85, r.Methane)
	assert.Equal(t, 65.0, r.AQI)
	assert.Equal(t, now, r.CapturedAt)
}

func TestAverageReadings(t *testing.T) {
	readings := []pollution.Reading{
		{NO2: 10, O3: 30, SO2: 4, CO2: 400, Methane: 1.8},
		{NO2: 20, O3: 50, SO2: 8, CO2: 420, Methane: 2.0},
	}

	avg := pollution.AverageReadings(readings)

	assert.Equal(t, 15.0, avg.NO2)
	assert.Equal(t, 40.0, avg.O3)
	assert.Equal(t, 6.0, avg.SO2)
	assert.Equal(t, 410.0, avg.CO2)
	assert.Equal(t, 1.9, avg.Methane)
}

func TestAverageReadings_Empty(t *testing.T) {
	avg := pollution.AverageReadings(nil)
	require.Equal(t, pollution.Averages{}, avg)
}
