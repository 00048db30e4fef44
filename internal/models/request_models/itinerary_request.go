package request_models

type GenerateItineraryRequest struct {
	SessionID string `json:"session_id" binding:"required"`

	// Dates are calendar days, formatted 2006-01-02. The end date must be
	// strictly after the start date.
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	Budget float64 `json:"budget" binding:"required"`

	// Profile selects a planner configuration ("detailed" or "classic");
	// empty falls back to the server default.
	Profile string `json:"profile"`
}
