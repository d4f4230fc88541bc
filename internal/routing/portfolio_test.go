package routing_test

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanairroutes/cleanairroutes/internal/cities"
	"github.com/cleanairroutes/cleanairroutes/internal/pollution"
	"github.com/cleanairroutes/cleanairroutes/internal/routing"
)

func newTestPortfolio() *routing.PortfolioBuilder {
	sampler := pollution.NewSampler(rand.New(rand.NewSource(3)))
	selector := cities.NewSelector(cities.DefaultCatalog(), cities.DefaultSelectorConfig())
	return routing.NewPortfolioBuilder(routing.NewSynthesizer(sampler, selector, rand.New(rand.NewSource(4))))
}

func TestPortfolioBuilder_Build_OneOptionPerProfile(t *testing.T) {
	b := newTestPortfolio()

	options := b.Build(
		routing.Location{Lat: 40.7128, Lng: -74.0060, Address: "New York, NY"},
		routing.Location{Lat: 34.0522, Lng: -118.2437, Address: "Los Angeles, CA"},
	)

	require.Len(t, options, 3)

	profiles := make(map[string]bool)
	for _, opt := range options {
		profiles[opt.Profile] = true
	}
	assert.True(t, profiles["fastest"])
	assert.True(t, profiles["cleanest"])
	assert.True(t, profiles["balanced"])
}

func TestPortfolioBuilder_Build_SortedByPollutionScore(t *testing.T) {
	b := newTestPortfolio()

	options := b.Build(
		routing.Location{Lat: 40.7128, Lng: -74.0060},
		routing.Location{Lat: 34.0522, Lng: -118.2437},
	)

	require.Len(t, options, 3)
	assert.True(t, sort.SliceIsSorted(options, func(a, b int) bool {
		return options[a].PollutionScore < options[b].PollutionScore
	}), "options not sorted ascending by pollution score")
}

func TestPortfolioBuilder_Build_CrossCountryDistances(t *testing.T) {
	b := newTestPortfolio()

	options := b.Build(
		routing.Location{Lat: 40.7128, Lng: -74.0060, Address: "New York, NY"},
		routing.Location{Lat: 34.0522, Lng: -118.2437, Address: "Los Angeles, CA"},
	)

	require.Len(t, options, 3)
	for _, opt := range options {
		assert.Greater(t, opt.DistanceKm, 3000.0, "profile %s", opt.Profile)
	}
}

func TestPortfolioBuilder_Build_Concurrent(t *testing.T) {
	b := newTestPortfolio()

	source := routing.Location{Lat: 40.7128, Lng: -74.0060}
	dest := routing.Location{Lat: 34.0522, Lng: -118.2437}

	// Each build fans out across profiles, so overlapping builds exercise
	// the sampler and jitter paths concurrently.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				options := b.Build(source, dest)
				if len(options) != 3 {
					t.Errorf("Build() returned %d options, want 3", len(options))
				}
			}
		}()
	}
	wg.Wait()
}

func TestPortfolioBuilder_Build_UniqueIDs(t *testing.T) {
	b := newTestPortfolio()

	options := b.Build(
		routing.Location{Lat: 40.7128, Lng: -74.0060},
		routing.Location{Lat: 41.8781, Lng: -87.6298},
	)

	seen := make(map[string]bool)
	for _, opt := range options {
		assert.Regexp(t, `^rte_`, opt.ID)
		assert.False(t, seen[opt.ID], "duplicate route ID %s", opt.ID)
		seen[opt.ID] = true
	}
}
