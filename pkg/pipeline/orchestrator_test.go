package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
	"github.com/codeready-toolchain/corvid/pkg/vectorindex"
)

type stubDMS struct {
	doc         *models.Document
	getErr      error
	transitions []string
	addedTags   []string
}

func (s *stubDMS) GetDocument(_ context.Context, _ int) (*models.Document, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.doc, nil
}

func (s *stubDMS) TransitionTag(_ context.Context, _ int, from, to string) error {
	s.transitions = append(s.transitions, from+"->"+to)
	return nil
}

func (s *stubDMS) AddTagByName(_ context.Context, _ int, name string) error {
	s.addedTags = append(s.addedTags, name)
	return nil
}

func (s *stubDMS) ListEntities(_ context.Context, _ models.EntityKind) ([]models.Entity, error) {
	return nil, nil
}

// stubEngines records the order stages ran in and returns scripted
// results per step name.
type stubEngines struct {
	ran     []string
	tagsFor map[string][2]string
	results map[string]stageengine.Result
	errs    map[string]error
}

func newStubEngines() *stubEngines {
	return &stubEngines{tagsFor: map[string][2]string{}, results: map[string]stageengine.Result{}, errs: map[string]error{}}
}

func (s *stubEngines) outcome(step string) (stageengine.Result, error) {
	s.ran = append(s.ran, step)
	if err := s.errs[step]; err != nil {
		return stageengine.Result{}, err
	}
	if res, ok := s.results[step]; ok {
		return res, nil
	}
	return stageengine.Result{Success: true, Attempts: 1}, nil
}

func (s *stubEngines) RunOCR(_ context.Context, _ *models.Document, source, target string) (stageengine.Result, error) {
	s.tagsFor[StepOCR] = [2]string{source, target}
	return s.outcome(StepOCR)
}
func (s *stubEngines) RunSummary(_ context.Context, _ *models.Document, source, target string) (stageengine.Result, error) {
	s.tagsFor[StepSummary] = [2]string{source, target}
	return s.outcome(StepSummary)
}
func (s *stubEngines) RunSchemaAnalysis(_ context.Context, _ *models.Document) (stageengine.Result, error) {
	return s.outcome(StepSchemaAnalysis)
}
func (s *stubEngines) RunTitle(_ context.Context, _ *models.Document, source, target, _ string) (stageengine.Result, error) {
	s.tagsFor[StepTitle] = [2]string{source, target}
	return s.outcome(StepTitle)
}
func (s *stubEngines) RunCorrespondent(_ context.Context, _ *models.Document, source, target, _ string) (stageengine.Result, error) {
	s.tagsFor[StepCorrespondent] = [2]string{source, target}
	return s.outcome(StepCorrespondent)
}
func (s *stubEngines) RunDocumentType(_ context.Context, _ *models.Document, source, target, _ string) (stageengine.Result, error) {
	s.tagsFor[StepDocumentType] = [2]string{source, target}
	return s.outcome(StepDocumentType)
}
func (s *stubEngines) RunTags(_ context.Context, _ *models.Document, source, target, _ string, _ map[string]bool) (stageengine.Result, error) {
	s.tagsFor[StepTags] = [2]string{source, target}
	return s.outcome(StepTags)
}
func (s *stubEngines) RunCustomFields(_ context.Context, _ *models.Document, _, _ string) (stageengine.Result, error) {
	return s.outcome(StepCustomFields)
}
func (s *stubEngines) RunDocumentLinks(_ context.Context, _ *models.Document, _, _ string) (stageengine.Result, error) {
	return s.outcome(StepDocumentLinks)
}

type stubReviews struct {
	open  []models.ReviewResponse
	added []models.AddReviewRequest
}

func (s *stubReviews) List(_ context.Context, filter ReviewFilter) ([]models.ReviewResponse, error) {
	var out []models.ReviewResponse
	for _, r := range s.open {
		if (filter.Kind == "" || r.Kind == filter.Kind) && (filter.DocID == 0 || r.DocID == filter.DocID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReviews) Add(_ context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error) {
	s.added = append(s.added, req)
	return &models.ReviewResponse{ID: fmt.Sprintf("r-%d", len(s.added))}, nil
}

type stubIndexer struct {
	indexed []vectorindex.Projection
	err     error
}

func (s *stubIndexer) Index(_ context.Context, p vectorindex.Projection) error {
	if s.err != nil {
		return s.err
	}
	s.indexed = append(s.indexed, p)
	return nil
}

func newTestOrchestrator(dms *stubDMS, engines *stubEngines, reviews *stubReviews, indexer Indexer) *Orchestrator {
	return New(dms, engines, reviews, indexer, nil, config.DefaultPipelineConfig(), config.DefaultWorkflowTagConfig(), false)
}

// assertGrammar checks the event-stream grammar: pipeline_start (step_start
// (step_complete|step_error|needs_review))* (pipeline_complete|
// pipeline_paused|error), with schema_review_needed allowed ahead of the
// terminal marker.
func assertGrammar(t *testing.T, evts []events.Event) {
	t.Helper()
	require.NotEmpty(t, evts)
	assert.Equal(t, events.TypePipelineStart, evts[0].Type)

	last := evts[len(evts)-1].Type
	assert.Contains(t, []events.Type{events.TypePipelineComplete, events.TypePipelinePaused, events.TypeError}, last)

	openStep := ""
	for _, e := range evts[1 : len(evts)-1] {
		switch e.Type {
		case events.TypeStepStart:
			assert.Empty(t, openStep, "step_start while %s still open", openStep)
			openStep = e.Step
		case events.TypeStepComplete, events.TypeStepError, events.TypeNeedsReview:
			assert.Equal(t, openStep, e.Step, "%s for step that did not start", e.Type)
			openStep = ""
		case events.TypeSchemaReviewNeeded:
			// pipeline-level marker, allowed anywhere before the terminal
		default:
			t.Fatalf("unexpected mid-stream event %s", e.Type)
		}
	}
}

func pendingDoc() *models.Document {
	return &models.Document{ID: 42, Title: "scan_001.pdf", Content: "", TagNames: []string{"llm-pending"}}
}

func TestRunHappyPathFromPending(t *testing.T) {
	dms := &stubDMS{doc: pendingDoc()}
	engines := newStubEngines()
	reviews := &stubReviews{}
	indexer := &stubIndexer{}
	o := newTestOrchestrator(dms, engines, reviews, indexer)

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 42, sink)

	assert.True(t, result.Success)
	assert.False(t, result.NeedsReview)
	assert.Empty(t, result.Error)

	assert.Equal(t, []string{
		StepOCR, StepSummary, StepSchemaAnalysis, StepTitle, StepCorrespondent,
		StepDocumentType, StepTags, StepCustomFields, StepDocumentLinks,
	}, engines.ran)

	// The terminal transition goes from the last stage-done tag the
	// document actually carries (tags_done) to processed.
	require.NotEmpty(t, dms.transitions)
	assert.Equal(t, "llm-tags-done->llm-processed", dms.transitions[len(dms.transitions)-1])

	require.Len(t, indexer.indexed, 1)
	assert.Equal(t, 42, indexer.indexed[0].DocID)

	evts := sink.Events()
	assertGrammar(t, evts)
	assert.Equal(t, events.TypePipelineComplete, evts[len(evts)-1].Type)
}

func TestRunResumesFromCorrespondentDone(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 7, TagNames: []string{"llm-correspondent-done"}}}
	engines := newStubEngines()
	o := newTestOrchestrator(dms, engines, &stubReviews{}, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 7, sink)

	assert.True(t, result.Success)
	// OCR, summary, schema analysis, title, and correspondent are never
	// invoked on resume.
	assert.Equal(t, []string{StepDocumentType, StepTags, StepCustomFields, StepDocumentLinks}, engines.ran)

	evts := sink.Events()
	assertGrammar(t, evts)
	require.Greater(t, len(evts), 1)
	assert.Equal(t, events.TypeStepStart, evts[1].Type)
	assert.Equal(t, StepDocumentType, evts[1].Step)
}

func TestRunSchemaAnalysisPauses(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 9, TagNames: []string{"llm-ocr-done"}}}
	engines := newStubEngines()
	engines.results[StepSchemaAnalysis] = stageengine.Result{
		NeedsReview: true, SchemaReviewNeeded: true, Attempts: 1, ReviewIDs: []string{"r-1"},
	}
	o := newTestOrchestrator(dms, engines, &stubReviews{}, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 9, sink)

	assert.False(t, result.Success)
	assert.True(t, result.SchemaReviewNeeded)

	evts := sink.Events()
	assertGrammar(t, evts)
	types := make([]events.Type, 0, len(evts))
	for _, e := range evts {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, events.TypeSchemaReviewNeeded)
	assert.Equal(t, events.TypePipelinePaused, types[len(types)-1])

	// The document was not advanced past ocr_done: the summary stage ran
	// first (it is ordered before schema analysis), but no transition to
	// title_done or beyond happened.
	for _, tr := range dms.transitions {
		assert.NotContains(t, tr, "llm-title-done")
	}
}

func TestRunOpenSchemaReviewsPauseWithoutModelCalls(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 9, TagNames: []string{"llm-summary-done"}}}
	engines := newStubEngines()
	reviews := &stubReviews{open: []models.ReviewResponse{
		{ID: "r-1", DocID: 9, Kind: models.ReviewKindSchemaSuggestion},
	}}
	o := newTestOrchestrator(dms, engines, reviews, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 9, sink)

	assert.True(t, result.SchemaReviewNeeded)
	assert.Empty(t, engines.ran)
	evts := sink.Events()
	assert.Equal(t, events.TypePipelinePaused, evts[len(evts)-1].Type)
}

func TestRunNeedsReviewTerminates(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 5, TagNames: []string{"llm-summary-done"}}}
	engines := newStubEngines()
	engines.results[StepTitle] = stageengine.Result{NeedsReview: true, Attempts: 3}
	o := newTestOrchestrator(dms, engines, &stubReviews{}, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 5, sink)

	assert.False(t, result.Success)
	assert.True(t, result.NeedsReview)
	// No stage after title runs.
	assert.Equal(t, []string{StepSchemaAnalysis, StepTitle}, engines.ran)

	evts := sink.Events()
	assertGrammar(t, evts)
	assert.Equal(t, events.TypePipelineComplete, evts[len(evts)-1].Type)
}

func TestRunOCRErrorAbortsWithFailedTag(t *testing.T) {
	dms := &stubDMS{doc: pendingDoc()}
	engines := newStubEngines()
	engines.errs[StepOCR] = errors.New("ocr provider down")
	o := newTestOrchestrator(dms, engines, &stubReviews{}, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 42, sink)

	assert.NotEmpty(t, result.Error)
	assert.Contains(t, dms.addedTags, "llm-failed")

	evts := sink.Events()
	assertGrammar(t, evts)
	assert.Equal(t, events.TypeError, evts[len(evts)-1].Type)
}

func TestRunLLMStageErrorEscalatesToReview(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 5, TagNames: []string{"llm-title-done"}}}
	engines := newStubEngines()
	engines.errs[StepCorrespondent] = errors.New("model endpoint 500")
	reviews := &stubReviews{}
	o := newTestOrchestrator(dms, engines, reviews, &stubIndexer{})

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 5, sink)

	assert.True(t, result.NeedsReview)
	assert.Empty(t, result.Error)
	require.Len(t, reviews.added, 1)
	assert.Equal(t, models.ReviewKindCorrespondent, reviews.added[0].Kind)
	assert.Contains(t, dms.addedTags, "llm-manual-review")
}

func TestRunIndexFailureStillTransitionsToProcessed(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 6, TagNames: []string{"llm-document-links-done"}}}
	engines := newStubEngines()
	indexer := &stubIndexer{err: errors.New("qdrant unavailable")}
	o := newTestOrchestrator(dms, engines, &stubReviews{}, indexer)

	sink := events.NewRecordingSink()
	result := o.Run(context.Background(), 6, sink)

	assert.True(t, result.Success)
	assert.Equal(t, []string{"llm-document-links-done->llm-processed"}, dms.transitions)

	evts := sink.Events()
	assertGrammar(t, evts)
	assert.Equal(t, events.TypePipelineComplete, evts[len(evts)-1].Type)
}

func TestRunDisabledStagesAreSkippedButMachineAdvances(t *testing.T) {
	dms := &stubDMS{doc: &models.Document{ID: 8, TagNames: []string{"llm-summary-done"}}}
	engines := newStubEngines()
	cfg := config.DefaultPipelineConfig()
	cfg.Title = false
	cfg.Correspondent = false
	o := New(dms, engines, &stubReviews{}, &stubIndexer{}, nil, cfg, config.DefaultWorkflowTagConfig(), false)

	result := o.Run(context.Background(), 8, events.NewRecordingSink())

	assert.True(t, result.Success)
	assert.True(t, result.Steps[StepTitle].Skipped)
	assert.True(t, result.Steps[StepCorrespondent].Skipped)
	// Document type transitions directly from the summary-done tag, the
	// last tag actually on the document.
	assert.Equal(t, [2]string{"llm-summary-done", "llm-document-type-done"}, engines.tagsFor[StepDocumentType])
}
