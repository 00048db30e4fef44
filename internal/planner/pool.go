package planner

import (
	"math"
	"sort"
)

// KmPerDegree is the flat degrees-to-kilometres approximation the source leg
// uses instead of real routing.
const KmPerDegree = 111.0

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Anchor is the reference point distances are computed against.
type Anchor struct {
	Name string
	Coordinate
}

// RawPlace is one POI tuple as delivered by the fetch collaborator:
// already deduplicated, capped per category and stripped of sentinel
// records. The pool builder does not re-validate those invariants.
type RawPlace struct {
	Name      string
	Category  string
	Latitude  float64
	Longitude float64
}

// Place is a pool candidate. Identity is the index into its pool.
type Place struct {
	Name       string
	Category   string
	Latitude   float64
	Longitude  float64
	DistanceKm float64
}

// Pool is an ordered candidate list for one anchor. The destination pool is
// ascending by distance; a source pool is descending (farthest first), since
// it is a one-time trip-out allowance rather than a daily-return pool.
type Pool struct {
	places []Place
}

func (p Pool) Len() int        { return len(p.places) }
func (p Pool) At(i int) Place  { return p.places[i] }
func (p Pool) Places() []Place { return p.places }

// BuildPool normalizes raw places against an anchor and sorts ascending by
// great-circle distance.
func BuildPool(raw []RawPlace, anchor Coordinate) Pool {
	return buildPool(raw, anchor, false)
}

// BuildSourcePool sorts descending by distance.
func BuildSourcePool(raw []RawPlace, anchor Coordinate) Pool {
	return buildPool(raw, anchor, true)
}

func buildPool(raw []RawPlace, anchor Coordinate, descending bool) Pool {
	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		places = append(places, Place{
			Name:       r.Name,
			Category:   r.Category,
			Latitude:   r.Latitude,
			Longitude:  r.Longitude,
			DistanceKm: HaversineKm(anchor, Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}),
		})
	}
	sort.SliceStable(places, func(i, j int) bool {
		if descending {
			return places[i].DistanceKm > places[j].DistanceKm
		}
		return places[i].DistanceKm < places[j].DistanceKm
	})
	return Pool{places: places}
}

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b Coordinate) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FlatDistanceKm is the original degree-space approximation, kept for the
// source-to-destination leg.
func FlatDistanceKm(a, b Coordinate) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	return math.Sqrt(dLat*dLat+dLon*dLon) * KmPerDegree
}

// VisitedSet tracks pool indices already assigned to a slot. It only grows
// during one itinerary run and is discarded afterwards.
type VisitedSet map[int]struct{}

func NewVisitedSet() VisitedSet { return make(VisitedSet) }

func (v VisitedSet) Mark(id int)          { v[id] = struct{}{} }
func (v VisitedSet) Contains(id int) bool { _, ok := v[id]; return ok }
func (v VisitedSet) Len() int             { return len(v) }
