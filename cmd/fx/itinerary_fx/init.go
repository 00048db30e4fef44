package itinerary_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
	"wayfare/internal/config"
	"wayfare/internal/planner"
	"wayfare/internal/services"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(
	provideCostService, provideItineraryService, provideItineraryController)

func provideCostService(rng planner.RandSource) services.CostServiceInterface {
	return services.NewCostService(rng)
}

func provideItineraryService(
	sessions mem.SessionStore,
	cost services.CostServiceInterface,
	rng planner.RandSource,
	cfg config.Config,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(sessions, cost, rng, cfg)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
