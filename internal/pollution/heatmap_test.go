package pollution_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    pollution.Bounds
		wantErr bool
	}{
		{
			name:  "valid bounds",
			input: "40.5,-74.2,41.0,-73.5",
			want:  pollution.Bounds{MinLat: 40.5, MinLng: -74.2, MaxLat: 41.0, MaxLng: -73.5},
		},
		{
			name:  "corners given in reverse order are normalized",
			input: "41.0,-73.5,40.5,-74.2",
			want:  pollution.Bounds{MinLat: 40.5, MinLng: -74.2, MaxLat: 41.0, MaxLng: -73.5},
		},
		{
			name:  "whitespace around values",
			input: " 40.5 , -74.2 , 41.0 , -73.5 ",
			want:  pollution.Bounds{MinLat: 40.5, MinLng: -74.2, MaxLat: 41.0, MaxLng: -73.5},
		},
		{
			name:    "too few values",
			input:   "40.5,-74.2,41.0",
			wantErr: true,
		},
		{
			name:    "too many values",
			input:   "40.5,-74.2,41.0,-73.5,1.0",
			wantErr: true,
		},
		{
			name:    "non-numeric value",
			input:   "40.5,-74.2,north,-73.5",
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			input:   "40.5,-74.2,95.0,-73.5",
			wantErr: true,
		},
		{
			name:    "longitude out of range",
			input:   "40.5,-190.0,41.0,-73.5",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pollution.ParseBounds(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, pollution.ErrInvalidBounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampler_Heatmap(t *testing.T) {
	s := pollution.NewSampler(rand.New(rand.NewSource(5)))

	b := pollution.Bounds{MinLat: 40.0, MinLng: -75.0, MaxLat: 41.0, MaxLng: -74.0}
	points := s.Heatmap(b)

	require.Len(t, points, pollution.GridSize*pollution.GridSize)

	// Row-major from the south-west corner.
	assert.Equal(t, 40.0, points[0].Lat)
	assert.Equal(t, -75.0, points[0].Lng)
	assert.InDelta(t, -74.0, points[pollution.GridSize-1].Lng, 1e-9)

	last := points[len(points)-1]
	assert.InDelta(t, 41.0, last.Lat, 1e-9)
	assert.InDelta(t, -74.0, last.Lng, 1e-9)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Lat, b.MinLat)
		assert.LessOrEqual(t, p.Lat, b.MaxLat+1e-9)
		assert.GreaterOrEqual(t, p.Lng, b.MinLng)
		assert.LessOrEqual(t, p.Lng, b.MaxLng+1e-9)
		assert.InDelta(t, math.Round(p.Reading.AQI/100*1000)/1000, p.Intensity, 1e-9)
	}
}

func TestSampler_Heatmap_ZeroAreaBounds(t *testing.T) {
	s := pollution.NewSampler(rand.New(rand.NewSource(9)))

	// Degenerate box collapses every cell to the same coordinate.
	b := pollution.Bounds{MinLat: 40.0, MinLng: -75.0, MaxLat: 40.0, MaxLng: -75.0}
	points := s.Heatmap(b)

	require.Len(t, points, pollution.GridSize*pollution.GridSize)
	for _, p := range points {
		assert.Equal(t, 40.0, p.Lat)
		assert.Equal(t, -75.0, p.Lng)
	}
}
