package places_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
	"wayfare/internal/config"
	"wayfare/internal/services"
	mem "wayfare/pkg/memcache"
)

var Module = fx.Provide(
	provideGeocoder, provideFetcher, providePlacesService, providePlacesController)

func provideGeocoder(cfg config.Config) services.GeocodingServiceInterface {
	return services.NewNominatimClient(cfg.Upstream)
}

func provideFetcher(cfg config.Config) services.POIFetcherInterface {
	return services.NewOverpassClient(cfg.Upstream)
}

func providePlacesService(
	geocoder services.GeocodingServiceInterface,
	fetcher services.POIFetcherInterface,
	sessions mem.SessionStore,
	cfg config.Config,
) services.PlacesServiceInterface {
	return services.NewPlacesService(geocoder, fetcher, sessions, cfg)
}

func providePlacesController(placesService services.PlacesServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService)
}
