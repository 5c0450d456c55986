package genai

// itinerarySchema returns the JSON schema the service is asked to constrain
// its output to. It mirrors domain.ItineraryData field for field; the
// per-field descriptions double as generation hints (concrete addresses,
// transport from the previous stop).
//
// localFoodSuggestions and costEstimate are deliberately not required — the
// contract marks them optional.
func itinerarySchema() map[string]any {
	activity := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"time":         map[string]any{"type": "string", "description": "Time of day, e.g., '09:00'"},
			"activity":     map[string]any{"type": "string", "description": "Name of the activity"},
			"description":  map[string]any{"type": "string", "description": "Concise description of what to do"},
			"location":     map[string]any{"type": "string", "description": "Name of the specific place/venue"},
			"address":      map[string]any{"type": "string", "description": "Real, specific street address in Chinese/Local language"},
			"transport":    map[string]any{"type": "string", "description": "Specific transport instruction from previous spot (e.g. '乘坐地铁1号线至XX站B口出，步行5分钟')"},
			"costEstimate": map[string]any{"type": "string", "description": "Estimated cost"},
		},
		"required": []string{"time", "activity", "description", "location", "address", "transport"},
	}

	day := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dayNumber": map[string]any{"type": "integer"},
			"theme":     map[string]any{"type": "string", "description": "A short theme for the day"},
			"activities": map[string]any{
				"type":  "array",
				"items": activity,
			},
		},
		"required": []string{"dayNumber", "theme", "activities"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tripTitle":      map[string]any{"type": "string"},
			"summary":        map[string]any{"type": "string"},
			"destination":    map[string]any{"type": "string"},
			"duration":       map[string]any{"type": "string"},
			"budgetEstimate": map[string]any{"type": "string"},
			"days": map[string]any{
				"type":  "array",
				"items": day,
			},
			"packingTips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"localFoodSuggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"tripTitle", "summary", "destination", "days", "packingTips"},
	}
}
