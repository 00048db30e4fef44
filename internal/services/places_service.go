package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wayfare/internal/config"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/planner"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

type PlacesServiceInterface interface {
	FetchPlaces(ctx context.Context, req request_models.FetchPlacesRequest) (*response_models.FetchPlacesResponse, error)
	GetPlaces(sessionID string) ([]response_models.Place, error)
	ExportCSV(sessionID string) ([]byte, error)
}

type PlacesService struct {
	geocoder GeocodingServiceInterface
	fetcher  POIFetcherInterface
	sessions mem.SessionStore
	cfg      config.Config
}

func NewPlacesService(
	geocoder GeocodingServiceInterface,
	fetcher POIFetcherInterface,
	sessions mem.SessionStore,
	cfg config.Config,
) PlacesServiceInterface {
	return &PlacesService{
		geocoder: geocoder,
		fetcher:  fetcher,
		sessions: sessions,
		cfg:      cfg,
	}
}

// FetchPlaces geocodes the destination, pulls POIs around it, builds the
// candidate pool and stores it under a fresh session id. A destination
// failure is fatal; a source failure only skips the source side.
func (p *PlacesService) FetchPlaces(ctx context.Context, req request_models.FetchPlacesRequest) (*response_models.FetchPlacesResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	radius := req.RadiusKm
	if radius <= 0 {
		radius = p.cfg.Upstream.RadiusKm
	}

	destCoord, err := p.geocoder.Geocode(ctx, req.Destination)
	if err != nil {
		return nil, err
	}

	raw, err := p.fetcher.FetchPlaces(ctx, destCoord, radius, req.Categories)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, utils.ErrEmptyPool
	}

	session := mem.Session{
		ID: uuid.New().String(),
		Destination: planner.Anchor{
			Name:       req.Destination,
			Coordinate: destCoord,
		},
		Pool: planner.BuildPool(raw, destCoord),
	}

	out := &response_models.FetchPlacesResponse{
		SessionID: session.ID,
		Destination: response_models.AnchorInfo{
			Name:      req.Destination,
			Latitude:  destCoord.Latitude,
			Longitude: destCoord.Longitude,
		},
	}

	if req.Source != "" {
		sourceCoord, err := p.geocoder.Geocode(ctx, req.Source)
		if err != nil {
			// Only the pre-trip leg depends on the source anchor.
			log.Printf("Skipping source %q: %v", req.Source, err)
			out.SourceSkipped = true
		} else {
			sourceRaw, err := p.fetcher.FetchPlaces(ctx, sourceCoord, radius, req.Categories)
			if err != nil {
				log.Printf("Skipping source POIs for %q: %v", req.Source, err)
				out.SourceSkipped = true
			} else {
				session.Source = &planner.Anchor{
					Name:       req.Source,
					Coordinate: sourceCoord,
				}
				session.SourcePool = planner.BuildSourcePool(sourceRaw, sourceCoord)
				out.Source = &response_models.AnchorInfo{
					Name:      req.Source,
					Latitude:  sourceCoord.Latitude,
					Longitude: sourceCoord.Longitude,
				}
			}
		}
	}

	p.sessions.Put(session, p.cfg.Planner.SessionTTL)
	out.Places = toPlaceResponses(session.Pool)

	return out, nil
}

func (p *PlacesService) GetPlaces(sessionID string) ([]response_models.Place, error) {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return toPlaceResponses(session.Pool), nil
}

func (p *PlacesService) ExportCSV(sessionID string) ([]byte, error) {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	records := make([]utils.CSVRecord, 0, session.Pool.Len())
	for _, place := range session.Pool.Places() {
		records = append(records, utils.CSVRecord{
			Name:      place.Name,
			Category:  planner.DisplayCategory(place.Category),
			Latitude:  place.Latitude,
			Longitude: place.Longitude,
		})
	}
	return utils.PlacesToCSV(records)
}

func toPlaceResponses(pool planner.Pool) []response_models.Place {
	out := make([]response_models.Place, 0, pool.Len())
	for _, place := range pool.Places() {
		out = append(out, response_models.Place{
			Name:        place.Name,
			Category:    planner.DisplayCategory(place.Category),
			RawCategory: place.Category,
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
			DistanceKm:  place.DistanceKm,
		})
	}
	return out
}
