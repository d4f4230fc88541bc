package models

// PollutantReading is a sampled pollutant snapshot at one coordinate.
type PollutantReading struct {
	NO2       float64   `json:"no2"`
	O3        float64   `json:"o3"`
	SO2       float64   `json:"so2"`
	CO2       float64   `json:"co2"`
	Methane   float64   `json:"methane"`
	AQI       float64   `json:"aqi"`
	Timestamp Timestamp `json:"timestamp"`
}

// HeatmapPoint is one cell of the pollution heatmap grid.
type HeatmapPoint struct {
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	Intensity float64          `json:"intensity"` // aqi normalized by 100
	Reading   PollutantReading `json:"reading"`
}

// HeatmapResponse is the response for a heatmap lookup.
type HeatmapResponse struct {
	GridSize int            `json:"gridSize"`
	Points   []HeatmapPoint `json:"points"`
}
