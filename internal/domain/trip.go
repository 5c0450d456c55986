// Package domain contains the core data types for the WanderAI planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, store, genai, planner, handler).
package domain

// TripInput is the user's trip request as submitted from the planner form.
// It is immutable once submitted: the planner holds it for the duration of a
// generation request and stores a copy in the resulting SavedTrip.
type TripInput struct {
	// Destination is free text and must be non-empty for submission.
	Destination string `json:"destination"`
	// Duration is the trip length in days. The form constrains it to 1–14;
	// out-of-range values are passed through to the generation request uncorrected.
	Duration int `json:"duration"`
	// Travelers is one of a fixed set of traveler-type labels (e.g. "情侣/夫妻").
	Travelers string `json:"travelers"`
	// Budget is one of a fixed set of budget-tier labels (e.g. "适中").
	Budget string `json:"budget"`
	// Interests is an order-preserving list of free-form tags.
	// Duplicates are not prevented.
	Interests []string `json:"interests"`
}

// SavedTrip is one record in the persisted plan collection: the originating
// input paired with the generated itinerary. A SavedTrip is created exactly
// once per successful generation — never on edit. Edits replace Data in place.
type SavedTrip struct {
	// ID is an opaque unique identifier assigned at save time.
	ID string `json:"id"`
	// CreatedAt is the creation timestamp in milliseconds since the epoch.
	CreatedAt int64         `json:"createdAt"`
	Input     TripInput     `json:"input"`
	Data      ItineraryData `json:"data"`
}
