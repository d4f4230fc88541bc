// Package routing synthesizes pollution-scored route options.
package routing

// Profile is one of the three fixed route-generation strategies. Each
// binds a pollution multiplier, a distance multiplier, the maximum number
// of intermediate cities, and a waypoint jitter amplitude in degrees.
type Profile struct {
	Key                 string
	Name                string
	PollutionMultiplier float64
	DistanceMultiplier  float64
	MaxCities           int
	JitterDegrees       float64
}

// The fixed route profiles, in declaration order. Ties in pollution score
// keep this order after sorting.
var (
	ProfileFastest = Profile{
		Key:                 "fastest",
		Name:                "Fastest Route",
		PollutionMultiplier: 1.2,
		DistanceMultiplier:  1.0,
		MaxCities:           2,
		JitterDegrees:       0, // straightest waypoints, no jitter
	}

	ProfileCleanest = Profile{
		Key:                 "cleanest",
		Name:                "Cleanest Air Route",
		PollutionMultiplier: 0.6,
		DistanceMultiplier:  1.15,
		MaxCities:           4,
		JitterDegrees:       0.01,
	}

	ProfileBalanced = Profile{
		Key:                 "balanced",
		Name:                "Balanced Route",
		PollutionMultiplier: 0.8,
		DistanceMultiplier:  1.08,
		MaxCities:           3,
		JitterDegrees:       0.01,
	}
)

// Profiles returns the fixed profiles in declaration order.
func Profiles() []Profile {
	return []Profile{ProfileFastest, ProfileCleanest, ProfileBalanced}
}
