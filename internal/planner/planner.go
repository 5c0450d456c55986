// Package planner implements the application controller: the explicit
// Form → Loading → Result state machine that wires form submission to the
// generation client and edits to the plan store. Modeling the flow as one
// state value prevents impossible combinations such as loading with a stale
// current plan.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/genai"
)

// State is the planner's view state.
type State string

const (
	// StateForm is the initial state: the trip input form is shown.
	StateForm State = "FORM"
	// StateLoading means a generation request is in flight.
	StateLoading State = "LOADING"
	// StateResult means an itinerary is displayed as the current plan.
	StateResult State = "RESULT"
)

// ErrGenerationInFlight is returned by Submit while a previous generation is
// still running. Only one generation runs at a time.
// Handlers should map this to HTTP 409.
var ErrGenerationInFlight = errors.New("a generation request is already in flight")

// Store defines the plan-collection operations the planner depends on.
// Satisfied by *store.PlanStore; tests inject an in-memory double.
type Store interface {
	Add(ctx context.Context, trip domain.SavedTrip) error
	Update(ctx context.Context, id string, data domain.ItineraryData) error
	Remove(ctx context.Context, id string) error
	Get(id string) (domain.SavedTrip, bool)
}

// Planner orchestrates the generation flow and owns the current plan pointer.
// The store and generator are injected dependencies; the planner itself holds
// no durable state.
type Planner struct {
	gen   genai.Generator
	store Store
	log   *slog.Logger

	// mu guards state and current. It is never held across the network
	// round trip — Submit transitions to Loading, releases, and re-checks
	// the state once the response arrives.
	mu      sync.Mutex
	state   State
	current *domain.SavedTrip // set only in StateResult
}

// New constructs a Planner in the initial form state.
func New(gen genai.Generator, store Store, log *slog.Logger) *Planner {
	return &Planner{
		gen:   gen,
		store: store,
		log:   log,
		state: StateForm,
	}
}

// Submit runs the full generation flow for input: Form/Result → Loading →
// Result on success, back to Form on failure. On success a new SavedTrip is
// built (fresh id, current timestamp), appended to the store, and set as the
// current plan. On failure nothing is saved and the error message is suitable
// for user display.
func (p *Planner) Submit(ctx context.Context, input domain.TripInput) (domain.SavedTrip, error) {
	if strings.TrimSpace(input.Destination) == "" {
		return domain.SavedTrip{}, fmt.Errorf("planner.Planner.Submit: %w: destination is required", domain.ErrValidation)
	}

	p.mu.Lock()
	if p.state == StateLoading {
		p.mu.Unlock()
		return domain.SavedTrip{}, fmt.Errorf("planner.Planner.Submit: %w", ErrGenerationInFlight)
	}
	p.state = StateLoading
	p.mu.Unlock()

	data, err := p.gen.Generate(ctx, input)
	if err != nil {
		p.abandonLoading()
		return domain.SavedTrip{}, fmt.Errorf("planner.Planner.Submit: %w", err)
	}

	trip := domain.SavedTrip{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Input:     input,
		Data:      data,
	}

	// Successful generations are saved immediately. A write-through failure
	// discards the attempt entirely — no partial state is kept.
	if err := p.store.Add(ctx, trip); err != nil {
		p.abandonLoading()
		return domain.SavedTrip{}, fmt.Errorf("planner.Planner.Submit: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateLoading {
		// The user navigated away (Reset) while the request was in flight.
		// The plan stays in history but is not forced onto the screen.
		return trip, nil
	}
	p.current = &trip
	p.state = StateResult
	p.log.Info("itinerary generated", "id", trip.ID, "destination", input.Destination, "days", len(data.Days))
	return trip, nil
}

// abandonLoading returns to the form state after a failed attempt, unless
// the user already navigated away.
func (p *Planner) abandonLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateLoading {
		p.state = StateForm
	}
}

// UpdatePlan applies an edit to the stored record matching id. When the
// edited record is the currently displayed plan, the in-memory current plan
// is updated too. Returns domain.ErrNotFound for an unknown id.
func (p *Planner) UpdatePlan(ctx context.Context, id string, data domain.ItineraryData) error {
	if _, ok := p.store.Get(id); !ok {
		return fmt.Errorf("planner.Planner.UpdatePlan: %w", domain.ErrNotFound)
	}
	if err := p.store.Update(ctx, id, data); err != nil {
		return fmt.Errorf("planner.Planner.UpdatePlan: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil && p.current.ID == id {
		p.current.Data = data
	}
	return nil
}

// Select makes the history record matching id the current plan and shows the
// result view. Returns domain.ErrNotFound for an unknown id.
func (p *Planner) Select(id string) (domain.SavedTrip, error) {
	trip, ok := p.store.Get(id)
	if !ok {
		return domain.SavedTrip{}, fmt.Errorf("planner.Planner.Select: %w", domain.ErrNotFound)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &trip
	p.state = StateResult
	return trip, nil
}

// Delete removes the record matching id from the store. Deleting the
// currently displayed plan returns the planner to the form state with no
// current plan; deleting any other plan leaves the view untouched.
// Unknown ids are a no-op, mirroring the store.
func (p *Planner) Delete(ctx context.Context, id string) error {
	if err := p.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("planner.Planner.Delete: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current != nil && p.current.ID == id {
		p.current = nil
		p.state = StateForm
	}
	return nil
}

// Reset clears the current plan and returns to the form, from any state.
// A generation still in flight will complete into history but not take over
// the screen.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
	p.state = StateForm
}

// State returns the current view state.
func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Current returns a copy of the currently displayed plan, if any.
func (p *Planner) Current() (domain.SavedTrip, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return domain.SavedTrip{}, false
	}
	return *p.current, true
}
