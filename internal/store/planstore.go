// Package store implements the durable plan collection: an append-biased,
// user-editable list of saved trips persisted as one JSON document under a
// fixed storage key. Every mutation synchronously writes the full collection
// through to the document repo — no batching, no debounce.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/repo"
)

// StorageKey is the fixed key the whole plan collection is stored under.
const StorageKey = "wanderai_plans"

// PlanStore owns the persisted collection of saved trips. It keeps the
// collection in memory and writes through on every mutation, so the durable
// copy never lags the in-memory one. Mutations that fail to persist are
// rolled back in memory and the error is returned to the caller.
//
// HTTP handlers mutate the collection concurrently, so it is mutex-guarded.
type PlanStore struct {
	mu    sync.Mutex
	docs  repo.DocumentRepo
	log   *slog.Logger
	trips []domain.SavedTrip
}

// NewPlanStore constructs a PlanStore backed by the provided document repo.
// Call Load once at startup to populate it from durable storage.
func NewPlanStore(docs repo.DocumentRepo, log *slog.Logger) *PlanStore {
	return &PlanStore{docs: docs, log: log}
}

// Load reads and deserializes the stored collection. A missing document means
// no prior history and yields an empty collection. A malformed document is
// treated the same way — the failure is logged, never propagated — so a
// corrupt history can never prevent the app from starting.
func (s *PlanStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.docs.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.trips = nil
			return nil
		}
		return fmt.Errorf("store.PlanStore.Load: %w", err)
	}

	var trips []domain.SavedTrip
	if err := json.Unmarshal(doc, &trips); err != nil {
		s.log.Warn("stored plan history is malformed, starting with empty history", "error", err)
		s.trips = nil
		return nil
	}
	s.trips = trips
	return nil
}

// Add appends trip to the end of the collection (insertion order is
// chronological creation order) and writes through.
func (s *PlanStore) Add(ctx context.Context, trip domain.SavedTrip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.trips
	s.trips = append(s.trips, trip)
	if err := s.persist(ctx); err != nil {
		s.trips = prev
		return fmt.Errorf("store.PlanStore.Add: %w", err)
	}
	return nil
}

// Update replaces the data of the record matching id and writes through.
// A no-op when no record matches: nothing is written and no error returned.
func (s *PlanStore) Update(ctx context.Context, id string, data domain.ItineraryData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.trips, func(t domain.SavedTrip) bool { return t.ID == id })
	if !ok {
		return nil
	}

	prevData := s.trips[idx].Data
	s.trips[idx].Data = data
	if err := s.persist(ctx); err != nil {
		s.trips[idx].Data = prevData
		return fmt.Errorf("store.PlanStore.Update: %w", err)
	}
	return nil
}

// Remove deletes the record matching id and writes through.
// A no-op when no record matches.
func (s *PlanStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.trips, func(t domain.SavedTrip) bool { return t.ID == id })
	if !ok {
		return nil
	}

	prev := s.trips
	s.trips = append(append([]domain.SavedTrip{}, s.trips[:idx]...), s.trips[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		s.trips = prev
		return fmt.Errorf("store.PlanStore.Remove: %w", err)
	}
	return nil
}

// Get returns the record matching id, if present.
func (s *PlanStore) Get(id string) (domain.SavedTrip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Find(s.trips, func(t domain.SavedTrip) bool { return t.ID == id })
}

// List returns a snapshot of the collection in storage order
// (oldest first). Always non-nil.
func (s *PlanStore) List() []domain.SavedTrip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SavedTrip, len(s.trips))
	copy(out, s.trips)
	return out
}

// History returns a snapshot in display order: most recently created first.
// Display ordering is a view concern — storage order stays chronological.
func (s *PlanStore) History() []domain.SavedTrip {
	out := s.List()
	lo.Reverse(out)
	return out
}

// persist serializes the full collection and replaces the stored document.
// Callers must hold s.mu. An empty collection is stored as "[]", not null.
func (s *PlanStore) persist(ctx context.Context) error {
	trips := s.trips
	if trips == nil {
		trips = []domain.SavedTrip{}
	}
	doc, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	return s.docs.Put(ctx, StorageKey, doc)
}
