// Package pollution provides synthetic pollutant sampling and aggregation.
package pollution

import "time"

// Reading represents a pollutant reading at a single coordinate.
// All values are populated; a Reading is never mutated after creation.
type Reading struct {
	NO2        float64
	O3         float64
	SO2        float64
	CO2        float64
	Methane    float64
	AQI        float64
	CapturedAt time.Time
}

// Averages holds route-averaged pollutant levels.
type Averages struct {
	NO2     float64
	O3      float64
	SO2     float64
	CO2     float64
	Methane float64
}

// AverageReadings computes the per-pollutant mean across readings.
// Returns the zero value when readings is empty.
func AverageReadings(readings []Reading) Averages {
	if len(readings) == 0 {
		return Averages{}
	}

	var avg Averages
	for _, r := range readings {
		avg.NO2 += r.NO2
		avg.O3 += r.O3
		avg.SO2 += r.SO2
		avg.CO2 += r.CO2
		avg.Methane += r.Methane
	}

	n := float64(len(readings))
	avg.NO2 = round2(avg.NO2 / n)
	avg.O3 = round2(avg.O3 / n)
	avg.SO2 = round2(avg.SO2 / n)
	avg.CO2 = round2(avg.CO2 / n)
	avg.Methane = round3(avg.Methane / n)
	return avg
}
