package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wayfare/internal/config"
	"wayfare/internal/planner"
	"wayfare/pkg/utils"
)

// poiTypeKeys are the raw OSM tag keys queried, in the order a category is
// resolved from an element's tags.
var poiTypeKeys = []string{
	"tourism", "amenity", "leisure", "shop", "natural", "transport", "cultural",
}

type POIFetcherInterface interface {
	// FetchPlaces returns normalized POI tuples around the anchor:
	// deduplicated by arrival, sentinel records dropped, capped per raw
	// category tag. An optional category filter keeps only the given raw
	// tags.
	FetchPlaces(ctx context.Context, anchor planner.Coordinate, radiusKm float64, categories []string) ([]planner.RawPlace, error)
}

// OverpassClient queries the Overpass interpreter for nodes, ways and
// relations carrying any of the POI type keys within a radius.
type OverpassClient struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	maxPerCategory int
}

func NewOverpassClient(cfg config.UpstreamConfig) POIFetcherInterface {
	return &OverpassClient{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        cfg.OverpassURL,
		userAgent:      cfg.UserAgent,
		maxPerCategory: cfg.MaxPerCategory,
	}
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func (o *OverpassClient) FetchPlaces(ctx context.Context, anchor planner.Coordinate, radiusKm float64, categories []string) ([]planner.RawPlace, error) {
	query := buildOverpassQuery(anchor, radiusKm)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamError, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", o.userAgent)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: overpass status %s", utils.ErrUpstreamError, resp.Status)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: overpass decode: %v", utils.ErrUpstreamError, err)
	}

	return normalizeElements(payload.Elements, categories, o.maxPerCategory), nil
}

func buildOverpassQuery(anchor planner.Coordinate, radiusKm float64) string {
	radiusM := int(radiusKm * 1000)

	var b strings.Builder
	b.WriteString("[out:json];\n(\n")
	for _, key := range poiTypeKeys {
		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "%s[\"%s\"](around:%d,%f,%f);\n", kind, key, radiusM, anchor.Latitude, anchor.Longitude)
		}
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

// normalizeElements applies the upstream invariants the planner assumes:
// sentinel names/categories are dropped, coordinates must be present, and at
// most maxPerCategory places survive per raw category tag (in arrival
// order). The filter, when non-empty, keeps only the listed raw tags.
func normalizeElements(elements []overpassElement, categories []string, maxPerCategory int) []planner.RawPlace {
	var wanted map[string]struct{}
	if len(categories) > 0 {
		wanted = make(map[string]struct{}, len(categories))
		for _, c := range categories {
			wanted[strings.ToLower(c)] = struct{}{}
		}
	}

	perCategory := make(map[string]int)
	var out []planner.RawPlace

	for _, el := range elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}

		category := ""
		for _, key := range poiTypeKeys {
			if v := el.Tags[key]; v != "" {
				category = v
				break
			}
		}
		if category == "" {
			continue
		}
		category = strings.ToLower(category)

		if wanted != nil {
			if _, ok := wanted[category]; !ok {
				continue
			}
		}

		lat, lon := el.Lat, el.Lon
		if lat == 0 && lon == 0 && el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}

		if perCategory[category] >= maxPerCategory {
			continue
		}
		perCategory[category]++

		out = append(out, planner.RawPlace{
			Name:      name,
			Category:  category,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return out
}
