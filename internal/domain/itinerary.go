package domain

// Activity is a single scheduled stop within a day.
// All fields are display strings and remain independently editable after
// generation; edits are not re-validated against any schema.
type Activity struct {
	// Time is a display string such as "09:00", not a validated time value.
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	// Location is the venue name; Address is the real street address.
	Location string `json:"location"`
	Address  string `json:"address"`
	// Transport describes how to reach this activity from the previous one.
	// Empty for the first activity of a day (assumed to depart from the hotel).
	Transport    string `json:"transport"`
	CostEstimate string `json:"costEstimate,omitempty"`
}

// DayPlan is one day of the itinerary. Activity order is itinerary
// chronology and is significant. DayNumber is expected to be contiguous
// starting at 1 across a trip, but is not validated.
type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// ItineraryData is the canonical shape of a generated trip plan.
// AI output is repaired/validated into this shape on ingest and implicitly
// trusted thereafter.
//
// Duration here is a display string ("3 天"), distinct from the numeric
// TripInput.Duration it was generated from.
type ItineraryData struct {
	TripTitle            string    `json:"tripTitle"`
	Summary              string    `json:"summary"`
	Destination          string    `json:"destination"`
	Duration             string    `json:"duration"`
	BudgetEstimate       string    `json:"budgetEstimate"`
	Days                 []DayPlan `json:"days"`
	PackingTips          []string  `json:"packingTips"`
	LocalFoodSuggestions []string  `json:"localFoodSuggestions,omitempty"`
}
