package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic521/wanderai/internal/domain"
	"github.com/lic521/wanderai/internal/store"
)

// memDocumentRepo is an in-memory test double for repo.DocumentRepo.
// putErr, when set, makes every Put fail — used to test write-through rollback.
type memDocumentRepo struct {
	docs   map[string][]byte
	puts   int
	putErr error
}

func newMemDocumentRepo() *memDocumentRepo {
	return &memDocumentRepo{docs: map[string][]byte{}}
}

func (m *memDocumentRepo) Get(_ context.Context, key string) ([]byte, error) {
	doc, ok := m.docs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (m *memDocumentRepo) Put(_ context.Context, key string, doc []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.docs[key] = append([]byte(nil), doc...)
	return nil
}

// ---- helpers ---------------------------------------------------------------

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tripFixture(id string) domain.SavedTrip {
	return domain.SavedTrip{
		ID:        id,
		CreatedAt: 1_700_000_000_000,
		Input: domain.TripInput{
			Destination: "东京",
			Duration:    3,
			Travelers:   "情侣/夫妻",
			Budget:      "适中",
			Interests:   []string{"美食探店"},
		},
		Data: domain.ItineraryData{
			TripTitle:   "东京三日游",
			Summary:     "紧凑但从容的行程",
			Destination: "东京",
			Duration:    "3 天",
			Days:        []domain.DayPlan{{DayNumber: 1, Theme: "浅草"}},
			PackingTips: []string{"舒适的步行鞋"},
		},
	}
}

func newStore(t *testing.T, docs *memDocumentRepo) *store.PlanStore {
	t.Helper()
	s := store.NewPlanStore(docs, testLogger())
	require.NoError(t, s.Load(context.Background()))
	return s
}

// ---- Load ------------------------------------------------------------------

func TestPlanStore_Load_NoPriorData(t *testing.T) {
	s := newStore(t, newMemDocumentRepo())

	assert.Empty(t, s.List())
}

func TestPlanStore_Load_MalformedDocumentIsEmptyHistory(t *testing.T) {
	docs := newMemDocumentRepo()
	docs.docs[store.StorageKey] = []byte(`{"not":"an array"`)

	s := store.NewPlanStore(docs, testLogger())

	// Malformed history is fail-soft: no error, empty collection.
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.List())
}

// TestPlanStore_RoundTrip verifies load(persist(T)) == T: after a sequence of
// mutations, a fresh store loading the same document sees an equivalent
// collection.
func TestPlanStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)

	require.NoError(t, s.Add(ctx, tripFixture("a")))
	require.NoError(t, s.Add(ctx, tripFixture("b")))
	updated := tripFixture("a").Data
	updated.TripTitle = "改过的标题"
	require.NoError(t, s.Update(ctx, "a", updated))
	require.NoError(t, s.Remove(ctx, "b")) // leaves only "a"
	require.NoError(t, s.Add(ctx, tripFixture("c")))

	reloaded := newStore(t, docs)

	assert.Equal(t, s.List(), reloaded.List())
}

// ---- Add / Remove ----------------------------------------------------------

func TestPlanStore_Add_AppendsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newMemDocumentRepo())

	require.NoError(t, s.Add(ctx, tripFixture("first")))
	require.NoError(t, s.Add(ctx, tripFixture("second")))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].ID)
	assert.Equal(t, "second", list[1].ID)
}

func TestPlanStore_AddThenRemove_RestoresPriorState(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newMemDocumentRepo())
	require.NoError(t, s.Add(ctx, tripFixture("keep")))

	before := s.List()
	require.NoError(t, s.Add(ctx, tripFixture("transient")))
	require.NoError(t, s.Remove(ctx, "transient"))

	assert.Equal(t, before, s.List())
}

func TestPlanStore_Remove_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)
	require.NoError(t, s.Add(ctx, tripFixture("a")))

	putsBefore := docs.puts
	require.NoError(t, s.Remove(ctx, "ghost"))

	assert.Len(t, s.List(), 1)
	assert.Equal(t, putsBefore, docs.puts, "no-op must not write through")
}

// ---- Update ----------------------------------------------------------------

func TestPlanStore_Update_ReplacesDataInPlace(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newMemDocumentRepo())
	require.NoError(t, s.Add(ctx, tripFixture("a")))

	data := tripFixture("a").Data
	data.TripTitle = "新标题"
	require.NoError(t, s.Update(ctx, "a", data))

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "新标题", got.Data.TripTitle)
	// Update never touches id, creation time, or the originating input.
	assert.Equal(t, tripFixture("a").CreatedAt, got.CreatedAt)
	assert.Equal(t, tripFixture("a").Input, got.Input)
}

func TestPlanStore_Update_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)
	require.NoError(t, s.Add(ctx, tripFixture("a")))

	before := s.List()
	putsBefore := docs.puts

	data := tripFixture("a").Data
	data.TripTitle = "不该出现"
	require.NoError(t, s.Update(ctx, "ghost", data))

	assert.Equal(t, before, s.List())
	assert.Equal(t, putsBefore, docs.puts, "no-op must not write through")
}

// ---- write-through failure -------------------------------------------------

func TestPlanStore_Add_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)

	docs.putErr = errors.New("quota exceeded")
	err := s.Add(ctx, tripFixture("a"))

	assert.Error(t, err)
	assert.Empty(t, s.List(), "failed write must not leave the record in memory")
}

func TestPlanStore_Update_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)
	require.NoError(t, s.Add(ctx, tripFixture("a")))

	docs.putErr = errors.New("quota exceeded")
	data := tripFixture("a").Data
	data.TripTitle = "不该保留"
	err := s.Update(ctx, "a", data)

	assert.Error(t, err)
	got, _ := s.Get("a")
	assert.Equal(t, tripFixture("a").Data.TripTitle, got.Data.TripTitle)
}

func TestPlanStore_Remove_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocumentRepo()
	s := newStore(t, docs)
	require.NoError(t, s.Add(ctx, tripFixture("a")))
	require.NoError(t, s.Add(ctx, tripFixture("b")))

	docs.putErr = errors.New("quota exceeded")
	err := s.Remove(ctx, "a")

	assert.Error(t, err)
	require.Len(t, s.List(), 2, "failed write must restore the removed record")
	_, ok := s.Get("a")
	assert.True(t, ok)
}

// ---- History ---------------------------------------------------------------

func TestPlanStore_History_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, newMemDocumentRepo())
	require.NoError(t, s.Add(ctx, tripFixture("older")))
	require.NoError(t, s.Add(ctx, tripFixture("newer")))

	history := s.History()

	require.Len(t, history, 2)
	assert.Equal(t, "newer", history[0].ID)
	assert.Equal(t, "older", history[1].ID)

	// Storage order is untouched.
	assert.Equal(t, "older", s.List()[0].ID)
}
