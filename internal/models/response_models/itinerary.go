package response_models

type LegInfo struct {
	From       string  `json:"from,omitempty"`
	Warning    bool    `json:"warning,omitempty"`
	DistanceKm float64 `json:"distance_km"`
	Minutes    int     `json:"travel_minutes"`
	Mode       string  `json:"mode"`
}

type AttractionSlot struct {
	Place        Place   `json:"place"`
	Leg          LegInfo `json:"leg"`
	VisitMinutes int     `json:"visit_minutes"`
}

type ExtraSlot struct {
	Place Place   `json:"place"`
	Leg   LegInfo `json:"leg"`
}

type MealSlot struct {
	Meal  string  `json:"meal"`
	Place Place   `json:"place"`
	Leg   LegInfo `json:"leg"`
}

type DayPlan struct {
	Day          int              `json:"day"`
	Date         string           `json:"date"`
	Attractions  []AttractionSlot `json:"attractions"`
	Extras       []ExtraSlot      `json:"extras,omitempty"`
	Meals        []MealSlot       `json:"meals"`
	MealsMissing int              `json:"meals_missing,omitempty"`
}

type StayInfo struct {
	Place      Place   `json:"place"`
	CostPerDay float64 `json:"cost_per_day"`
}

type SourceLeg struct {
	From       string      `json:"from"`
	To         string      `json:"to"`
	DistanceKm float64     `json:"distance_km"`
	Minutes    int         `json:"travel_minutes"`
	Mode       string      `json:"mode"`
	Stops      []ExtraSlot `json:"stops,omitempty"`
}

type Itinerary struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      int     `json:"days"`
	Budget    float64 `json:"budget"`
	Profile   string  `json:"profile"`

	Stay          *StayInfo `json:"stay,omitempty"`
	NoStayWarning bool      `json:"no_stay_warning,omitempty"`

	SourceLeg *SourceLeg `json:"source_leg,omitempty"`

	DayPlans []DayPlan `json:"day_plans"`

	// AttractionsExhaustedAtDay reports the day whose attraction selection
	// came up empty, ending the run early. Zero when the whole range was
	// planned.
	AttractionsExhaustedAtDay int `json:"attractions_exhausted_at_day,omitempty"`
}
