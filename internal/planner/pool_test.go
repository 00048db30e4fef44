package planner

import (
	"math"
	"reflect"
	"testing"
)

func testRawPlaces() []RawPlace {
	return []RawPlace{
		{Name: "Far Museum", Category: "museum", Latitude: 0.03, Longitude: 0},
		{Name: "Near Cafe", Category: "cafe", Latitude: 0.001, Longitude: 0},
		{Name: "Mid Hotel", Category: "hotel", Latitude: 0.01, Longitude: 0},
	}
}

func TestBuildPoolAscending(t *testing.T) {
	pool := BuildPool(testRawPlaces(), Coordinate{})

	if pool.Len() != 3 {
		t.Fatalf("pool len = %d, want 3", pool.Len())
	}
	want := []string{"Near Cafe", "Mid Hotel", "Far Museum"}
	for i, name := range want {
		if pool.At(i).Name != name {
			t.Errorf("pool[%d] = %q, want %q", i, pool.At(i).Name, name)
		}
	}
	for i := 1; i < pool.Len(); i++ {
		if pool.At(i).DistanceKm < pool.At(i-1).DistanceKm {
			t.Errorf("pool not ascending at %d", i)
		}
	}
}

func TestBuildSourcePoolDescending(t *testing.T) {
	pool := BuildSourcePool(testRawPlaces(), Coordinate{})

	if pool.At(0).Name != "Far Museum" {
		t.Errorf("source pool[0] = %q, want farthest first", pool.At(0).Name)
	}
	for i := 1; i < pool.Len(); i++ {
		if pool.At(i).DistanceKm > pool.At(i-1).DistanceKm {
			t.Errorf("source pool not descending at %d", i)
		}
	}
}

func TestBuildPoolIdempotent(t *testing.T) {
	anchor := Coordinate{Latitude: 12.97, Longitude: 77.59}
	a := BuildPool(testRawPlaces(), anchor)
	b := BuildPool(testRawPlaces(), anchor)

	if !reflect.DeepEqual(a.Places(), b.Places()) {
		t.Error("pools from identical input differ")
	}
}

func TestHaversineKm(t *testing.T) {
	if d := HaversineKm(Coordinate{Latitude: 1, Longitude: 2}, Coordinate{Latitude: 1, Longitude: 2}); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	// One degree of latitude is roughly 111 km.
	d := HaversineKm(Coordinate{}, Coordinate{Latitude: 1})
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("one degree latitude = %v km, want ~111.19", d)
	}
}

func TestFlatDistanceKm(t *testing.T) {
	d := FlatDistanceKm(Coordinate{}, Coordinate{Latitude: 1})
	if math.Abs(d-KmPerDegree) > 1e-9 {
		t.Errorf("flat distance = %v, want %v", d, KmPerDegree)
	}
}

func TestVisitedSet(t *testing.T) {
	v := NewVisitedSet()
	if v.Contains(2) {
		t.Error("fresh set contains 2")
	}
	v.Mark(2)
	v.Mark(2)
	if !v.Contains(2) {
		t.Error("marked id missing")
	}
	if v.Len() != 1 {
		t.Errorf("len = %d, want 1", v.Len())
	}
}
