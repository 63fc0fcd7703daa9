package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
)

type fakeOrchestrator struct {
	mu      sync.Mutex
	ran     []int
	results map[int]*pipeline.Result
	block   chan struct{}
}

func (f *fakeOrchestrator) Run(ctx context.Context, docID int, _ events.Sink) *pipeline.Result {
	f.mu.Lock()
	f.ran = append(f.ran, docID)
	f.mu.Unlock()
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return &pipeline.Result{DocID: docID, Error: ctx.Err().Error()}
		}
	}
	if res, ok := f.results[docID]; ok {
		return res
	}
	return &pipeline.Result{DocID: docID, Success: true}
}

func (f *fakeOrchestrator) processed() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.ran))
	copy(out, f.ran)
	return out
}

type fakeSchedDMS struct {
	docs    []*models.Document
	removed []string
}

func (f *fakeSchedDMS) ListCandidates(_ context.Context, _ int, exclude map[int]bool) ([]*models.Document, error) {
	var out []*models.Document
	for _, d := range f.docs {
		if !exclude[d.ID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSchedDMS) TagIDForName(_ context.Context, _ string) (int, error) {
	return 999, nil
}

func (f *fakeSchedDMS) RemoveTagByName(_ context.Context, docID int, name string) error {
	f.removed = append(f.removed, name)
	return nil
}

type fakeSchedReviews struct {
	open map[int]bool
}

func (f *fakeSchedReviews) ListOpenDocIDs(_ context.Context) (map[int]bool, error) {
	if f.open == nil {
		return map[int]bool{}, nil
	}
	return f.open, nil
}

type memJobStates struct {
	mu     sync.Mutex
	states map[string]*models.JobStateResponse
}

func newMemJobStates() *memJobStates {
	return &memJobStates{states: map[string]*models.JobStateResponse{}}
}

func (m *memJobStates) Update(_ context.Context, jobName string, mutate func(*models.JobStateResponse)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	js, ok := m.states[jobName]
	if !ok {
		js = &models.JobStateResponse{JobName: jobName}
		m.states[jobName] = js
	}
	mutate(js)
	return nil
}

func (m *memJobStates) get(jobName string) models.JobStateResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	if js, ok := m.states[jobName]; ok {
		return *js
	}
	return models.JobStateResponse{}
}

func testScheduler(orch Orchestrator, dms DMS, reviews Reviews, jobs JobStates) *Scheduler {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	return New(orch, dms, reviews, jobs, nil, NewActivityTracker(), cfg, config.DefaultWorkflowTagConfig())
}

func TestTickProcessesOldestFirst(t *testing.T) {
	orch := &fakeOrchestrator{results: map[int]*pipeline.Result{}}
	dms := &fakeSchedDMS{docs: []*models.Document{
		{ID: 2, CreatedAt: "2024-01-02", TagNames: []string{"llm-pending"}},
		{ID: 1, CreatedAt: "2024-01-01", TagNames: []string{"llm-pending"}},
	}}
	jobs := newMemJobStates()
	s := testScheduler(orch, dms, &fakeSchedReviews{}, jobs)

	require.NoError(t, s.Tick(context.Background()))

	// Ordering is the DMS adapter's concern (oldest first); the scheduler
	// preserves the order it is handed.
	assert.Equal(t, []int{2, 1}, orch.processed())
	assert.Equal(t, 2, jobs.get(jobAdmission).ProcessedSinceStart)
}

func TestTickSkipsOnUserActivity(t *testing.T) {
	orch := &fakeOrchestrator{}
	dms := &fakeSchedDMS{docs: []*models.Document{{ID: 1, TagNames: []string{"llm-pending"}}}}
	jobs := newMemJobStates()
	s := testScheduler(orch, dms, &fakeSchedReviews{}, jobs)

	s.activity.Touch()
	require.NoError(t, s.Tick(context.Background()))

	// No document events, no counter movement.
	assert.Empty(t, orch.processed())
	assert.Zero(t, jobs.get(jobAdmission).ProcessedSinceStart)
	assert.Zero(t, jobs.get(jobAdmission).ErrorsSinceStart)
}

func TestTickExcludesReviewedAndSidebandedDocs(t *testing.T) {
	orch := &fakeOrchestrator{}
	dms := &fakeSchedDMS{docs: []*models.Document{
		{ID: 1, TagNames: []string{"llm-pending"}},
		{ID: 2, TagNames: []string{"llm-title-done", "llm-manual-review"}},
		{ID: 3, TagNames: []string{"llm-ocr-done", "llm-failed"}},
		{ID: 4, TagNames: []string{"llm-ocr-done"}},
	}}
	s := testScheduler(orch, dms, &fakeSchedReviews{open: map[int]bool{4: true}}, newMemJobStates())

	require.NoError(t, s.Tick(context.Background()))
	assert.Equal(t, []int{1}, orch.processed())
}

func TestTickCountsErrors(t *testing.T) {
	orch := &fakeOrchestrator{results: map[int]*pipeline.Result{
		7: {DocID: 7, Error: "ocr provider down"},
	}}
	dms := &fakeSchedDMS{docs: []*models.Document{{ID: 7, TagNames: []string{"llm-pending"}}}}
	jobs := newMemJobStates()
	s := testScheduler(orch, dms, &fakeSchedReviews{}, jobs)

	require.NoError(t, s.Tick(context.Background()))
	assert.Equal(t, 1, jobs.get(jobAdmission).ErrorsSinceStart)
	assert.Zero(t, jobs.get(jobAdmission).ProcessedSinceStart)
}

func TestCancelCurrentAbortsInFlightDocument(t *testing.T) {
	orch := &fakeOrchestrator{block: make(chan struct{})}
	dms := &fakeSchedDMS{docs: []*models.Document{{ID: 9, TagNames: []string{"llm-pending"}}}}
	s := testScheduler(orch, dms, &fakeSchedReviews{}, newMemJobStates())

	done := make(chan struct{})
	go func() {
		s.Tick(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(orch.processed()) == 1
	}, time.Second, 5*time.Millisecond)

	s.CancelCurrent()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick did not drain after cancellation")
	}
}

func TestActivityTracker(t *testing.T) {
	tr := NewActivityTracker()
	assert.False(t, tr.ActiveWithin(time.Minute))
	tr.Touch()
	assert.True(t, tr.ActiveWithin(time.Minute))
	assert.False(t, tr.ActiveWithin(0))
}

func TestSchemaCleanupMergesDuplicates(t *testing.T) {
	store := &fakeCleanupStore{groups: []models.SimilarGroup{
		{
			Kind:                 models.ReviewKindSchemaSuggestion,
			NormalizedSuggestion: "acme corp",
			Reviews: []models.ReviewResponse{
				{ID: "newer"}, {ID: "older"},
			},
		},
		{
			Kind:                 models.ReviewKindTitle,
			NormalizedSuggestion: "invoice",
			Reviews:              []models.ReviewResponse{{ID: "t1"}, {ID: "t2"}},
		},
	}}

	require.NoError(t, SchemaCleanup(store)(context.Background()))
	// Only the schema_suggestion group is merged, and the oldest survives.
	assert.Equal(t, []string{"newer"}, store.removed)
}

type fakeCleanupStore struct {
	groups  []models.SimilarGroup
	removed []string
}

func (f *fakeCleanupStore) SimilarGroups(_ context.Context) ([]models.SimilarGroup, error) {
	return f.groups, nil
}

func (f *fakeCleanupStore) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}
