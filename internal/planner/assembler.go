package planner

import (
	"time"

	"wayfare/pkg/utils"
)

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

var mealOrder = []MealType{MealBreakfast, MealLunch, MealDinner}

// Leg is one from->to travel segment. HasFrom is false (and Warning true)
// when no stay place could anchor the first segment of a day.
type Leg struct {
	FromName   string
	HasFrom    bool
	Warning    bool
	DistanceKm float64
	Minutes    int
	Mode       TransportMode
}

type AttractionSlot struct {
	Place        Place
	Leg          Leg
	VisitMinutes int
}

// ExtraSlot is an on-the-way stop; its leg distance is halved relative to
// the candidate's anchor distance.
type ExtraSlot struct {
	Place Place
	Leg   Leg
}

type MealSlot struct {
	Meal  MealType
	Place Place
	Leg   Leg
}

type DayPlan struct {
	Day         int
	Date        time.Time
	Attractions []AttractionSlot
	Extras      []ExtraSlot
	Meals       []MealSlot

	// MealsMissing counts unfilled meal slots for the day (0-3).
	MealsMissing int
}

// assembler holds the per-run state shared across days.
type assembler struct {
	pool         Pool
	visited      VisitedSet
	estimator    *Estimator
	cfg          ProfileConfig
	placesPerDay int
	stay         *Place
}

// available returns pool ids not yet visited, in pool order. Recomputed
// before every selection step so no two steps see a stale view.
func (a *assembler) available() []int {
	ids := make([]int, 0, a.pool.Len())
	for i := 0; i < a.pool.Len(); i++ {
		if !a.visited.Contains(i) {
			ids = append(ids, i)
		}
	}
	return ids
}

// assembleDay runs one day of the state machine. It returns
// ErrAttractionExhaustion when the attraction step comes up empty, which
// terminates the whole multi-day loop.
func (a *assembler) assembleDay(day int, date time.Time) (DayPlan, error) {
	plan := DayPlan{Day: day, Date: date}

	// Attractions: nearest unvisited attraction-classified candidates.
	picked := make([]int, 0, a.placesPerDay)
	for _, id := range a.available() {
		if len(picked) == a.placesPerDay {
			break
		}
		tag := a.pool.At(id).Category
		if IsAttraction(tag) {
			picked = append(picked, id)
		}
	}
	if len(picked) == 0 {
		return DayPlan{}, utils.ErrAttractionExhaustion
	}
	for _, id := range picked {
		a.visited.Mark(id)
	}

	prev := a.stay
	for _, id := range picked {
		place := a.pool.At(id)
		leg, err := a.leg(prev, place.DistanceKm)
		if err != nil {
			return DayPlan{}, err
		}
		plan.Attractions = append(plan.Attractions, AttractionSlot{
			Place:        place,
			Leg:          leg,
			VisitMinutes: a.estimator.SampleVisitDuration(),
		})
		p := place
		prev = &p
	}

	// Extras: a bounded on-the-way allowance at halved display distance.
	extras := make([]int, 0, a.cfg.ExtrasPerDay)
	for _, id := range a.available() {
		if len(extras) == a.cfg.ExtrasPerDay {
			break
		}
		if IsAttraction(a.pool.At(id).Category) {
			extras = append(extras, id)
		}
	}
	for _, id := range extras {
		a.visited.Mark(id)
		place := a.pool.At(id)
		leg, err := a.leg(a.stay, place.DistanceKm*a.cfg.ExtraDistanceFactor)
		if err != nil {
			return DayPlan{}, err
		}
		plan.Extras = append(plan.Extras, ExtraSlot{Place: place, Leg: leg})
	}

	// Meals: breakfast, lunch, dinner in ascending-distance order, each with
	// its own leg from the anchor. Shortages are reported, not fatal.
	meals := make([]int, 0, len(mealOrder))
	for _, id := range a.available() {
		if len(meals) == len(mealOrder) {
			break
		}
		if IsMeal(a.pool.At(id).Category) {
			meals = append(meals, id)
		}
	}
	for i, id := range meals {
		a.visited.Mark(id)
		place := a.pool.At(id)
		leg, err := a.leg(a.stay, place.DistanceKm)
		if err != nil {
			return DayPlan{}, err
		}
		plan.Meals = append(plan.Meals, MealSlot{Meal: mealOrder[i], Place: place, Leg: leg})
	}
	plan.MealsMissing = len(mealOrder) - len(meals)

	return plan, nil
}

func (a *assembler) leg(from *Place, distanceKm float64) (Leg, error) {
	est, err := a.estimator.Estimate(distanceKm)
	if err != nil {
		return Leg{}, err
	}
	leg := Leg{DistanceKm: distanceKm, Minutes: est.Minutes, Mode: est.Mode}
	if from != nil {
		leg.FromName = from.Name
		leg.HasFrom = true
	} else {
		leg.Warning = true
	}
	return leg, nil
}
