package request_models

type FetchPlacesRequest struct {
	Destination string `json:"destination" binding:"required"`

	// Source is optional; when set, the response also carries a source-side
	// pool used for the one-time pre-trip leg.
	Source string `json:"source"`

	RadiusKm float64 `json:"radius_km"`

	// Categories filters the fetched places by raw category tag. Empty
	// means keep everything.
	Categories []string `json:"categories"`
}
