package response_models

type Place struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	RawCategory string  `json:"raw_category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DistanceKm  float64 `json:"distance_km"`
}

type AnchorInfo struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FetchPlacesResponse struct {
	SessionID   string      `json:"session_id"`
	Destination AnchorInfo  `json:"destination"`
	Source      *AnchorInfo `json:"source,omitempty"`

	// SourceSkipped is set when a source city was requested but could not
	// be geocoded; the destination flow is unaffected.
	SourceSkipped bool `json:"source_skipped,omitempty"`

	Places []Place `json:"places"`
}
