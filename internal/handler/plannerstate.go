package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/planner"
)

// plannerStateResponse is the view-state snapshot the presentation layer
// renders from: which screen to show and, in the result state, which plan.
type plannerStateResponse struct {
	State     planner.State     `json:"state"`
	CurrentID string            `json:"currentId,omitempty"`
	Current   *domain.SavedTrip `json:"current,omitempty"`
}

// GetPlannerState handles GET /planner.
func (s *Server) GetPlannerState(w http.ResponseWriter, _ *http.Request) {
	resp := plannerStateResponse{State: s.planner.State()}
	if trip, ok := s.planner.Current(); ok {
		resp.CurrentID = trip.ID
		resp.Current = &trip
	}
	respondJSON(w, http.StatusOK, resp)
}

// SelectPlan handles POST /planner/select/{id}: loading a history entry as
// the current plan.
func (s *Server) SelectPlan(w http.ResponseWriter, r *http.Request) {
	trip, err := s.planner.Select(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
			return
		}
		respondJSON(w, http.StatusInternalServerError, errorBody("internal_error", err))
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// ResetPlanner handles POST /planner/reset: the "new plan" transition,
// clearing the current plan from any state.
func (s *Server) ResetPlanner(w http.ResponseWriter, _ *http.Request) {
	s.planner.Reset()
	respondJSON(w, http.StatusOK, plannerStateResponse{State: s.planner.State()})
}
