package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	"github.com/codeready-toolchain/corvid/pkg/scheduler"
)

type fakeReviewStore struct {
	reviews map[string]*models.ReviewResponse
	blocked []string
}

func (f *fakeReviewStore) GetByID(_ context.Context, id string) (*models.ReviewResponse, error) {
	if r, ok := f.reviews[id]; ok {
		return r, nil
	}
	return nil, reviewqueue.ErrNotFound
}

func (f *fakeReviewStore) List(_ context.Context, filter ReviewListFilter) ([]models.ReviewResponse, error) {
	var out []models.ReviewResponse
	for _, r := range f.reviews {
		if filter.Kind != "" && r.Kind != filter.Kind {
			continue
		}
		if filter.DocID != 0 && r.DocID != filter.DocID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewStore) CountsByKind(_ context.Context) (map[models.ReviewKind]int, error) {
	counts := map[models.ReviewKind]int{}
	for _, r := range f.reviews {
		counts[r.Kind]++
	}
	return counts, nil
}

func (f *fakeReviewStore) SimilarGroups(_ context.Context) ([]models.SimilarGroup, error) {
	return nil, nil
}

func (f *fakeReviewStore) Block(_ context.Context, kind models.ReviewKind, suggestion string) error {
	f.blocked = append(f.blocked, string(kind)+":"+suggestion)
	return nil
}

type fakeResolver struct {
	approved []string
	rejected []string
}

func (f *fakeResolver) Approve(_ context.Context, id string, _ models.ApproveReviewRequest) error {
	f.approved = append(f.approved, id)
	return nil
}

func (f *fakeResolver) Reject(_ context.Context, id string, _ models.RejectReviewRequest) error {
	f.rejected = append(f.rejected, id)
	return nil
}

func (f *fakeResolver) Bulk(_ context.Context, req models.BulkResolveRequest) map[string]error {
	for _, id := range req.IDs {
		if req.Approve {
			f.approved = append(f.approved, id)
		} else {
			f.rejected = append(f.rejected, id)
		}
	}
	return nil
}

type fakeAPIOrchestrator struct{}

func (fakeAPIOrchestrator) Run(_ context.Context, docID int, sink events.Sink) *pipeline.Result {
	sink.Emit(events.Event{Type: events.TypePipelineStart, DocID: docID})
	sink.Emit(events.Event{Type: events.TypeStepStart, DocID: docID, Step: pipeline.StepTitle})
	sink.Emit(events.Event{Type: events.TypeStepComplete, DocID: docID, Step: pipeline.StepTitle})
	sink.Emit(events.Event{Type: events.TypePipelineComplete, DocID: docID})
	return &pipeline.Result{DocID: docID, Success: true}
}

func (fakeAPIOrchestrator) RunStep(_ context.Context, docID int, step string, sink events.Sink) *pipeline.Result {
	sink.Emit(events.Event{Type: events.TypePipelineStart, DocID: docID})
	sink.Emit(events.Event{Type: events.TypeStepStart, DocID: docID, Step: step})
	sink.Emit(events.Event{Type: events.TypeStepComplete, DocID: docID, Step: step})
	sink.Emit(events.Event{Type: events.TypePipelineComplete, DocID: docID})
	return &pipeline.Result{DocID: docID, Success: true}
}

type fakeLogs struct{}

func (fakeLogs) ListByDoc(_ context.Context, docID int) ([]models.LogEntryResponse, error) {
	return []models.LogEntryResponse{{DocID: docID, Step: "title", EventType: "step_complete"}}, nil
}

type fakeJobs struct{}

func (fakeJobs) List(_ context.Context) ([]models.JobStateResponse, error) {
	return []models.JobStateResponse{{JobName: "admission"}}, nil
}

type fakeSettings struct {
	values map[string]string
}

func (f *fakeSettings) All(_ context.Context) (map[string]string, error) {
	return f.values, nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func testServer() (*Server, *fakeReviewStore, *fakeResolver) {
	reviews := &fakeReviewStore{reviews: map[string]*models.ReviewResponse{
		"r-1": {ID: "r-1", DocID: 42, Kind: models.ReviewKindTitle, Suggestion: "Invoice"},
		"r-2": {ID: "r-2", DocID: 7, Kind: models.ReviewKindCorrespondent, Suggestion: "Amazon"},
	}}
	resolver := &fakeResolver{}
	s := NewServer(reviews, resolver, fakeAPIOrchestrator{}, fakeLogs{}, fakeJobs{}, &fakeSettings{values: map[string]string{}})
	return s, reviews, resolver
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListReviewsFiltersByKind(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodGet, "/api/reviews?kind=title", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reviews []models.ReviewResponse `json:"reviews"`
		Count   int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "r-1", resp.Reviews[0].ID)
}

func TestGetReviewNotFound(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodGet, "/api/reviews/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApproveReviewTouchesActivity(t *testing.T) {
	s, _, resolver := testServer()
	tracker := scheduler.NewActivityTracker()
	s.SetActivityTracker(tracker)

	rec := doRequest(s, http.MethodPost, "/api/reviews/r-1/approve", map[string]string{"value": "Amazon Invoice — 2024-01-15"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"r-1"}, resolver.approved)
	assert.True(t, tracker.ActiveWithin(time.Minute))
}

func TestBulkResolveRequiresIDs(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodPost, "/api/reviews/bulk", models.BulkResolveRequest{Approve: true})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkResolve(t *testing.T) {
	s, _, resolver := testServer()
	rec := doRequest(s, http.MethodPost, "/api/reviews/bulk", models.BulkResolveRequest{
		IDs: []string{"r-1", "r-2"}, Approve: false,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"r-1", "r-2"}, resolver.rejected)
}

func TestProcessDocumentStreamsNDJSON(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodPost, "/api/documents/42/process", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 4)

	var first events.Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, events.TypePipelineStart, first.Type)
	assert.Equal(t, 42, first.DocID)

	var last events.Event
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, events.TypePipelineComplete, last.Type)
}

func TestRunStepRejectsUnknownStep(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodPost, "/api/documents/42/steps/frobnicate", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlockSuggestion(t *testing.T) {
	s, reviews, _ := testServer()
	rec := doRequest(s, http.MethodPost, "/api/blocklist", blockRequest{Kind: "title", Suggestion: "Scan"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"title:Scan"}, reviews.blocked)
}

func TestHealthReportsDBFailure(t *testing.T) {
	s, _, _ := testServer()
	s.SetHealthCheck(func(context.Context) error { return assert.AnError })
	rec := doRequest(s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPutSetting(t *testing.T) {
	s, _, _ := testServer()
	rec := doRequest(s, http.MethodPut, "/api/settings/prompt_language", putSettingRequest{Value: "de"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"prompt_language":"de"`)
}
