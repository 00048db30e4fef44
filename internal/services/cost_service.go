package services

import "wayfare/internal/planner"

// CostServiceInterface estimates the nightly cost of the stay. It stands in
// for a real pricing query, the way the travel-time estimator stands in for
// routing.
type CostServiceInterface interface {
	StayCostPerDay(budget float64, days int) float64
}

type CostService struct {
	rng planner.RandSource
}

func NewCostService(rng planner.RandSource) CostServiceInterface {
	return &CostService{rng: rng}
}

const (
	minCostRate = 10
	maxCostRate = 20
)

// StayCostPerDay allocates a sampled 10-20% share of the budget across the
// trip: budget * r / (days * 100).
func (c *CostService) StayCostPerDay(budget float64, days int) float64 {
	if days < 1 {
		return 0
	}
	rate := minCostRate + c.rng.Intn(maxCostRate-minCostRate+1)
	return budget * float64(rate) / (float64(days) * 100)
}
