package planner

import (
	"errors"
	"time"

	"wayfare/pkg/utils"
)

// TripRequest carries everything one itinerary run needs. Pools are built by
// the fetch step and are read-only here.
type TripRequest struct {
	Start  time.Time
	End    time.Time
	Budget float64

	Destination Anchor
	Pool        Pool

	// Source, when present, contributes a single pre-trip leg and a bounded
	// allowance of stops. It never participates in the day loop.
	Source     *Anchor
	SourcePool Pool

	Profile Profile
}

// SourceLeg is the one-time source-to-destination segment.
type SourceLeg struct {
	FromName   string
	ToName     string
	DistanceKm float64
	Minutes    int
	Mode       TransportMode

	// Stops are up to three source-side POIs, farthest first, treated as a
	// pre-trip allowance independent of the visited set.
	Stops []ExtraSlot
}

type Itinerary struct {
	Start  time.Time
	End    time.Time
	Days   int
	Budget float64

	Stay   *Place
	NoStay bool

	SourceLeg *SourceLeg

	DayPlans []DayPlan

	// AttractionsExhausted is set when a day's attraction selection came up
	// empty and the remaining days were abandoned. Day plans up to that
	// point are still returned.
	AttractionsExhausted bool
	ExhaustedAtDay       int
}

const sourceStopAllowance = 3

// Planner builds itineraries. It owns no I/O; randomness comes from the
// injected source.
type Planner struct {
	rng RandSource
}

func NewPlanner(rng RandSource) *Planner {
	return &Planner{rng: rng}
}

// BuildItinerary validates the trip, picks a stay, optionally computes the
// source leg, then assembles each day until the range ends or attractions
// run out.
func (p *Planner) BuildItinerary(req TripRequest) (*Itinerary, error) {
	days := TripDays(req.Start, req.End)
	if days < 1 {
		return nil, utils.ErrInvalidTripDuration
	}
	if req.Pool.Len() == 0 {
		return nil, utils.ErrEmptyPool
	}

	cfg := req.Profile.Config()
	estimator := NewEstimator(req.Profile, p.rng)

	out := &Itinerary{
		Start:  req.Start,
		End:    req.End,
		Days:   days,
		Budget: req.Budget,
	}

	stay := pickStay(req.Pool)
	out.Stay = stay
	out.NoStay = stay == nil

	if req.Source != nil {
		leg, err := p.sourceLeg(req, estimator, cfg)
		if err != nil {
			return nil, err
		}
		out.SourceLeg = leg
	}

	placesPerDay := clamp(req.Pool.Len()/days, 1, cfg.PlacesPerDayCap)
	asm := &assembler{
		pool:         req.Pool,
		visited:      NewVisitedSet(),
		estimator:    estimator,
		cfg:          cfg,
		placesPerDay: placesPerDay,
		stay:         stay,
	}

	for day := 1; day <= days; day++ {
		date := req.Start.AddDate(0, 0, day-1)
		plan, err := asm.assembleDay(day, date)
		if err != nil {
			if errors.Is(err, utils.ErrAttractionExhaustion) {
				out.AttractionsExhausted = true
				out.ExhaustedAtDay = day
				break
			}
			return nil, err
		}
		out.DayPlans = append(out.DayPlans, plan)
	}

	return out, nil
}

// TripDays is the whole-day span between two dates; a same-day trip is zero.
func TripDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// pickStay returns the nearest stay-classified candidate, or nil.
func pickStay(pool Pool) *Place {
	best := -1
	for i := 0; i < pool.Len(); i++ {
		if !IsStay(pool.At(i).Category) {
			continue
		}
		if best == -1 || pool.At(i).DistanceKm < pool.At(best).DistanceKm {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	place := pool.At(best)
	return &place
}

func (p *Planner) sourceLeg(req TripRequest, estimator *Estimator, cfg ProfileConfig) (*SourceLeg, error) {
	distance := FlatDistanceKm(req.Source.Coordinate, req.Destination.Coordinate)
	est, err := estimator.Estimate(distance)
	if err != nil {
		return nil, err
	}
	leg := &SourceLeg{
		FromName:   req.Source.Name,
		ToName:     req.Destination.Name,
		DistanceKm: distance,
		Minutes:    est.Minutes,
		Mode:       est.Mode,
	}

	for i := 0; i < req.SourcePool.Len() && i < sourceStopAllowance; i++ {
		place := req.SourcePool.At(i)
		stopEst, err := estimator.Estimate(place.DistanceKm * cfg.ExtraDistanceFactor)
		if err != nil {
			return nil, err
		}
		leg.Stops = append(leg.Stops, ExtraSlot{
			Place: place,
			Leg: Leg{
				FromName:   req.Source.Name,
				HasFrom:    true,
				DistanceKm: place.DistanceKm * cfg.ExtraDistanceFactor,
				Minutes:    stopEst.Minutes,
				Mode:       stopEst.Mode,
			},
		})
	}

	return leg, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
