package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/genai"
	"github.com/lic521/wanderai/internal/planner"
)

// CreatePlan handles POST /plans: the form-submit transition. The body is a
// TripInput; a successful generation is saved immediately and returned as
// the new SavedTrip. Failure bodies carry the user-displayable notification
// message.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var input domain.TripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be a trip input"))
		return
	}

	trip, err := s.planner.Submit(r.Context(), input)
	if err != nil {
		status, body := generationError(err)
		respondJSON(w, status, body)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// ListPlans handles GET /plans.
// History is returned in display order: most recently created first.
func (s *Server) ListPlans(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.plans.History())
}

// GetPlan handles GET /plans/{id}.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.plans.Get(chi.URLParam(r, "id"))
	if !ok {
		respondJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdatePlan handles PUT /plans/{id}: the edit transition. The body is the
// full edited ItineraryData; edits are not re-validated against the contract.
func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var data domain.ItineraryData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("request body must be an itinerary"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.planner.UpdatePlan(r.Context(), id, data); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notFoundBody("plan not found"))
			return
		}
		respondJSON(w, http.StatusInternalServerError, errorBody("storage_error", err))
		return
	}

	trip, _ := s.plans.Get(id)
	respondJSON(w, http.StatusOK, trip)
}

// DeletePlan handles DELETE /plans/{id}?confirm=true.
// The confirm parameter stands in for the confirmation dialog: without it the
// request is rejected and nothing is removed. Deleting the currently
// displayed plan returns the planner to the form state. Unknown ids are a
// no-op and still return 204.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody("deletion requires confirm=true"))
		return
	}

	if err := s.planner.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondJSON(w, http.StatusInternalServerError, errorBody("storage_error", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// generationError maps a Submit failure to its HTTP status and error body,
// following the generation error taxonomy: configuration, response shape,
// service, validation, single-flight conflict.
func generationError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, validationBody(err)
	case errors.Is(err, planner.ErrGenerationInFlight):
		return http.StatusConflict, errorBody("generation_in_flight", err)
	case errors.Is(err, genai.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, errorBody("configuration_error", err)
	case errors.Is(err, genai.ErrEmptyResponse), errors.Is(err, genai.ErrMalformedResponse):
		return http.StatusBadGateway, errorBody("response_shape_error", err)
	case errors.Is(err, genai.ErrService):
		return http.StatusBadGateway, errorBody("service_error", err)
	default:
		return http.StatusInternalServerError, errorBody("internal_error", err)
	}
}
