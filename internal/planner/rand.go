package planner

import (
	"math/rand"
	"time"
)

// RandSource is the single source of non-determinism in the planner.
// Tests inject a fixed stream; production wraps math/rand.
type RandSource interface {
	Intn(n int) int
}

func NewRand() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// sampleBetween returns a uniform value in [min, max] inclusive.
func sampleBetween(rng RandSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
