package planner

// Profile names one configuration of the planner. The reference behavior has
// two near-duplicate variants; they are one component with two settings here.
type Profile string

const (
	// ProfileDetailed: seven estimator bands, up to 5 attractions/day, up to
	// 3 extra on-the-way stops, source-anchor support. The default.
	ProfileDetailed Profile = "detailed"

	// ProfileClassic: four estimator bands, up to 6 attractions/day, no
	// extras, destination only.
	ProfileClassic Profile = "classic"
)

type ProfileConfig struct {
	PlacesPerDayCap     int
	ExtrasPerDay        int
	ExtraDistanceFactor float64
}

func (p Profile) Config() ProfileConfig {
	if p == ProfileClassic {
		return ProfileConfig{PlacesPerDayCap: 6, ExtrasPerDay: 0, ExtraDistanceFactor: 0.5}
	}
	return ProfileConfig{PlacesPerDayCap: 5, ExtrasPerDay: 3, ExtraDistanceFactor: 0.5}
}

// ParseProfile falls back to the default for unknown or empty input.
func ParseProfile(s string) Profile {
	if Profile(s) == ProfileClassic {
		return ProfileClassic
	}
	return ProfileDetailed
}
