// Package handler implements the HTTP handlers for the WanderAI planner API.
// All handlers are methods on Server; they are split into resource-specific
// files (health.go, plan.go, plannerstate.go, export.go) but share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/planner"
)

// PlannerService defines the controller operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the generation client or the store.
type PlannerService interface {
	Submit(ctx context.Context, input domain.TripInput) (domain.SavedTrip, error)
	UpdatePlan(ctx context.Context, id string, data domain.ItineraryData) error
	Select(id string) (domain.SavedTrip, error)
	Delete(ctx context.Context, id string) error
	Reset()
	State() planner.State
	Current() (domain.SavedTrip, bool)
}

// PlanCollection is the read side of the plan store the handlers need for
// history listing and lookups.
type PlanCollection interface {
	History() []domain.SavedTrip
	Get(id string) (domain.SavedTrip, bool)
}

// Server holds the handler dependencies. Wire it in main.go via Routes().
type Server struct {
	planner PlannerService
	plans   PlanCollection
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerService, plans PlanCollection) *Server {
	return &Server{planner: planner, plans: plans}
}

// Routes returns the chi router covering the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.CreatePlan)
		r.Get("/", s.ListPlans)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetPlan)
			r.Put("/", s.UpdatePlan)
			r.Delete("/", s.DeletePlan)
			r.Get("/export", s.ExportPlan)
		})
	})

	r.Route("/planner", func(r chi.Router) {
		r.Get("/", s.GetPlannerState)
		r.Post("/select/{id}", s.SelectPlan)
		r.Post("/reset", s.ResetPlanner)
	})

	return r
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
