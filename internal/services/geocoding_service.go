package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"wayfare/internal/config"
	"wayfare/internal/planner"
	"wayfare/pkg/utils"
)

type GeocodingServiceInterface interface {
	// Geocode resolves a free-text place query to coordinates. Zero results
	// map to ErrLocationNotFound.
	Geocode(ctx context.Context, query string) (planner.Coordinate, error)
}

// NominatimClient is the forward-geocoding collaborator. Nominatim requires
// an identifying User-Agent on every request.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewNominatimClient(cfg config.UpstreamConfig) GeocodingServiceInterface {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.NominatimURL,
		userAgent:  cfg.UserAgent,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (n *NominatimClient) Geocode(ctx context.Context, query string) (planner.Coordinate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return planner.Coordinate{}, fmt.Errorf("%w: %v", utils.ErrUpstreamError, err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return planner.Coordinate{}, fmt.Errorf("%w: %v", utils.ErrUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return planner.Coordinate{}, fmt.Errorf("%w: nominatim status %s", utils.ErrUpstreamError, resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return planner.Coordinate{}, fmt.Errorf("%w: nominatim decode: %v", utils.ErrUpstreamError, err)
	}
	if len(results) == 0 {
		return planner.Coordinate{}, utils.ErrLocationNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return planner.Coordinate{}, fmt.Errorf("%w: nominatim coordinates", utils.ErrUpstreamError)
	}

	return planner.Coordinate{Latitude: lat, Longitude: lon}, nil
}
