package routing

import (
	"sort"
	"sync"
)

// PortfolioBuilder runs the synthesizer once per fixed profile and orders
// the results by pollution score.
type PortfolioBuilder struct {
	synthesizer *Synthesizer
}

// NewPortfolioBuilder creates a PortfolioBuilder.
func NewPortfolioBuilder(synthesizer *Synthesizer) *PortfolioBuilder {
	return &PortfolioBuilder{synthesizer: synthesizer}
}

// Build returns exactly one route option per profile, sorted ascending by
// pollution score. Profiles are computed concurrently; each pipeline is
// independent and results keep their profile slot until the final sort,
// so completion order never affects the outcome. The sort is stable:
// ties keep profile declaration order.
func (b *PortfolioBuilder) Build(source, dest Location) []RouteOption {
	profiles := Profiles()
	options := make([]RouteOption, len(profiles))

	var wg sync.WaitGroup
	for i, profile := range profiles {
		wg.Add(1)
		go func(slot int, p Profile) {
			defer wg.Done()
			options[slot] = b.synthesizer.Synthesize(source, dest, p)
		}(i, profile)
	}
	wg.Wait()

	sort.SliceStable(options, func(a, b int) bool {
		return options[a].PollutionScore < options[b].PollutionScore
	})

	return options
}
