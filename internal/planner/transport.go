package planner

import "wayfare/pkg/utils"

type TransportMode string

const (
	ModeWalking      TransportMode = "Walking"
	ModeBicycleTaxi  TransportMode = "Bicycle or Taxi"
	ModeTaxiPublic   TransportMode = "Taxi or Public Transport"
	ModePublicInter  TransportMode = "Public Transport or Intercity Travel"
	ModeIntercity    TransportMode = "Intercity Bus/Train"
	ModeLongDistance TransportMode = "Long-Distance Travel Mode (Flight)"
)

// TravelEstimate is one sampled travel leg: minutes are drawn uniformly
// within the band, so repeated calls with the same distance differ.
type TravelEstimate struct {
	Minutes int
	Mode    TransportMode
}

type band struct {
	upperKm    float64 // exclusive; lower bound is the previous band's upper
	mode       TransportMode
	minMinutes int
	maxMinutes int
}

// detailedBands is the full seven-band table.
var detailedBands = []band{
	{1, ModeWalking, 5, 15},
	{3, ModeBicycleTaxi, 10, 30},
	{10, ModeTaxiPublic, 20, 60},
	{30, ModePublicInter, 60, 120},
	{100, ModeIntercity, 120, 180},
	{200, ModeIntercity, 180, 240},
	{0, ModeLongDistance, 240, 300}, // upperKm 0 = open-ended
}

// classicBands merges everything from 10 km up into a single band.
var classicBands = []band{
	{1, ModeWalking, 5, 15},
	{3, ModeBicycleTaxi, 10, 30},
	{10, ModeTaxiPublic, 20, 60},
	{0, ModeIntercity, 60, 120},
}

// Estimator maps a distance to a transport mode and a sampled travel time.
// It stands in for a real routing query.
type Estimator struct {
	bands []band
	rng   RandSource
}

func NewEstimator(profile Profile, rng RandSource) *Estimator {
	bands := detailedBands
	if profile == ProfileClassic {
		bands = classicBands
	}
	return &Estimator{bands: bands, rng: rng}
}

func (e *Estimator) Estimate(distanceKm float64) (TravelEstimate, error) {
	if distanceKm < 0 {
		return TravelEstimate{}, utils.ErrInvalidDistance
	}
	b := e.bands[len(e.bands)-1]
	for _, candidate := range e.bands {
		if candidate.upperKm > 0 && distanceKm < candidate.upperKm {
			b = candidate
			break
		}
	}
	return TravelEstimate{
		Minutes: sampleBetween(e.rng, b.minMinutes, b.maxMinutes),
		Mode:    b.mode,
	}, nil
}

// SampleVisitDuration estimates how long a visitor spends at an attraction.
func (e *Estimator) SampleVisitDuration() int {
	return sampleBetween(e.rng, visitMinMinutes, visitMaxMinutes)
}

const (
	visitMinMinutes = 30
	visitMaxMinutes = 120
)
