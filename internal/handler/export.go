package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lic521/wanderai/internal/export"
)

// ExportPlan handles GET /plans/{id}/export.
// The itinerary has day numbers but no absolute dates, so the iCalendar
// export anchors day 1 at ?start=YYYY-MM-DD (default: today).
func (s *Server) ExportPlan(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.plans.Get(chi.URLParam(r, "id"))
	if !ok {
		respondJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}

	if r.URL.Query().Get("format") != "ics" {
		respondJSON(w, http.StatusOK, trip)
		return
	}

	start := time.Now().UTC()
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondJSON(w, http.StatusUnprocessableEntity, requestBody("start must be formatted YYYY-MM-DD"))
			return
		}
		start = parsed
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	_, _ = w.Write([]byte(export.BuildCalendar(trip, start)))
}
