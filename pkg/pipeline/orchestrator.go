package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/corvid/internal/pipelineerrors"
	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/dmsclient"
	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
	"github.com/codeready-toolchain/corvid/pkg/vectorindex"
	"github.com/codeready-toolchain/corvid/pkg/workflow"
)

// Orchestrator drives one document at a time through the stage machine.
// It holds no per-run state; a single instance is shared by the scheduler
// and the API's ad-hoc invocations.
type Orchestrator struct {
	dms     DMS
	engines Engines
	reviews Reviews
	indexer Indexer
	log     ProcessingLog

	pipelineCfg *config.PipelineConfig
	tags        *config.WorkflowTagConfig
	tagNames    workflow.TagNames
	workflowTag map[string]bool

	saveHistory bool
	logger      *slog.Logger
}

// New constructs an Orchestrator. indexer and log may be nil (vector
// indexing disabled / history off).
func New(dms DMS, engines Engines, reviews Reviews, indexer Indexer, log ProcessingLog, pipelineCfg *config.PipelineConfig, tags *config.WorkflowTagConfig, saveHistory bool) *Orchestrator {
	tagNames := tags.ToTagNames()
	workflowTag := make(map[string]bool, len(tagNames)+2)
	for _, name := range tagNames {
		workflowTag[name] = true
	}
	workflowTag[tags.Pending] = true
	workflowTag[tags.ManualReview] = true
	workflowTag[tags.Failed] = true

	return &Orchestrator{
		dms:         dms,
		engines:     engines,
		reviews:     reviews,
		indexer:     indexer,
		log:         log,
		pipelineCfg: pipelineCfg,
		tags:        tags,
		tagNames:    tagNames,
		workflowTag: workflowTag,
		saveHistory: saveHistory,
		logger:      slog.Default().With("component", "pipeline"),
	}
}

// run bundles one invocation's emit plumbing.
type run struct {
	o      *Orchestrator
	ctx    context.Context
	docID  int
	sink   events.Sink
	result *Result
}

func (r *run) emit(eventType events.Type, step string, data map[string]any, message string) {
	if r.sink != nil {
		r.sink.Emit(events.Event{Type: eventType, DocID: r.docID, Step: step, Data: data, Message: message})
	}
	if r.o.saveHistory && r.o.log != nil {
		logStep := step
		if logStep == "" {
			logStep = "pipeline"
		}
		if data == nil && message != "" {
			data = map[string]any{"message": message}
		}
		r.o.log.Append(r.ctx, r.docID, logStep, string(eventType), data)
	}
}

func (r *run) record(step string, sr StepResult) {
	sr.Step = step
	r.result.Steps[step] = sr
}

// Run executes the state machine for docID, emitting events to sink (which
// may be nil for pure batch use) and returning the batch summary. The run
// always terminates the event stream with exactly one of
// pipeline_complete, pipeline_paused, or error.
func (o *Orchestrator) Run(ctx context.Context, docID int, sink events.Sink) *Result {
	r := &run{o: o, ctx: ctx, docID: docID, sink: sink, result: &Result{DocID: docID, Steps: map[string]StepResult{}}}

	doc, err := o.dms.GetDocument(ctx, docID)
	if err != nil {
		r.emit(events.TypePipelineStart, "", nil, "")
		r.emit(events.TypeError, "", nil, fmt.Sprintf("read document: %v", err))
		r.result.Error = err.Error()
		if errors.Is(err, dmsclient.ErrDocumentNotFound) {
			o.logger.Warn("document vanished from DMS, abandoning", "doc_id", docID)
		}
		return r.result
	}

	r.emit(events.TypePipelineStart, "", nil, "")
	o.execute(r, doc)
	return r.result
}

// execute walks the stage machine from the document's derived stage to a
// terminal event. It returns after emitting that terminal event.
func (o *Orchestrator) execute(r *run, doc *models.Document) {
	stage := o.deriveStage(doc)
	currentTag := o.currentTagName(stage)

	// OCR
	if stage == workflow.StagePending {
		if !o.runFatalStage(r, StepOCR, func() (stageengine.Result, error) {
			return o.engines.RunOCR(r.ctx, doc, o.tags.Pending, o.tags.OCRDone)
		}) {
			return
		}
		stage = workflow.StageOCRDone
		currentTag = o.tags.OCRDone
	}

	// Summary
	if stage == workflow.StageOCRDone {
		if o.pipelineCfg.Summary {
			if !o.runFatalStage(r, StepSummary, func() (stageengine.Result, error) {
				return o.engines.RunSummary(r.ctx, doc, currentTag, o.tags.SummaryDone)
			}) {
				return
			}
			currentTag = o.tags.SummaryDone
		} else {
			r.record(StepSummary, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageSummaryDone
	}

	// Schema analysis gate
	if stage == workflow.StageSummaryDone || stage == workflow.StageSchemaReview {
		if paused := o.schemaGate(r, doc); paused {
			return
		}
		stage = workflow.StageSchemaAnalysisDone
		if o.schemaTagDistinct() {
			if err := o.dms.TransitionTag(r.ctx, doc.ID, currentTag, o.tags.SchemaAnalysisDone); err != nil {
				o.abortDocument(r, StepSchemaAnalysis, err)
				return
			}
			currentTag = o.tags.SchemaAnalysisDone
		}
	}

	// Title
	if stage == workflow.StageSchemaAnalysisDone {
		if o.pipelineCfg.Title {
			if !o.runConfirmStage(r, StepTitle, models.ReviewKindTitle, func() (stageengine.Result, error) {
				return o.engines.RunTitle(r.ctx, doc, currentTag, o.tags.TitleDone, o.tags.ManualReview)
			}) {
				return
			}
			currentTag = o.tags.TitleDone
		} else {
			r.record(StepTitle, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageTitleDone
	}

	// Correspondent
	if stage == workflow.StageTitleDone {
		if o.pipelineCfg.Correspondent {
			if !o.runConfirmStage(r, StepCorrespondent, models.ReviewKindCorrespondent, func() (stageengine.Result, error) {
				return o.engines.RunCorrespondent(r.ctx, doc, currentTag, o.tags.CorrespondentDone, o.tags.ManualReview)
			}) {
				return
			}
			currentTag = o.tags.CorrespondentDone
		} else {
			r.record(StepCorrespondent, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageCorrespondentDone
	}

	// Document type
	if stage == workflow.StageCorrespondentDone {
		if o.pipelineCfg.DocumentType {
			if !o.runConfirmStage(r, StepDocumentType, models.ReviewKindDocumentType, func() (stageengine.Result, error) {
				return o.engines.RunDocumentType(r.ctx, doc, currentTag, o.tags.DocumentTypeDone, o.tags.ManualReview)
			}) {
				return
			}
			currentTag = o.tags.DocumentTypeDone
		} else {
			r.record(StepDocumentType, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageDocumentTypeDone
	}

	// Tags
	if stage == workflow.StageDocumentTypeDone {
		if o.pipelineCfg.Tags {
			if !o.runConfirmStage(r, StepTags, models.ReviewKindTag, func() (stageengine.Result, error) {
				return o.engines.RunTags(r.ctx, doc, currentTag, o.tags.TagsDone, o.tags.ManualReview, o.workflowTag)
			}) {
				return
			}
			currentTag = o.tags.TagsDone
		} else {
			r.record(StepTags, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageTagsDone
	}

	// Custom fields (no tag transition of its own)
	if stage == workflow.StageTagsDone {
		if o.pipelineCfg.CustomFields {
			if !o.runConfirmStage(r, StepCustomFields, models.ReviewKindCustomField, func() (stageengine.Result, error) {
				return o.engines.RunCustomFields(r.ctx, doc, o.tags.CustomFieldsDone, o.tags.ManualReview)
			}) {
				return
			}
		} else {
			r.record(StepCustomFields, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageCustomFieldsDone
	}

	// Document links (no tag transition of its own)
	if stage == workflow.StageCustomFieldsDone {
		if o.pipelineCfg.DocumentLinks {
			if !o.runConfirmStage(r, StepDocumentLinks, models.ReviewKindDocumentLink, func() (stageengine.Result, error) {
				return o.engines.RunDocumentLinks(r.ctx, doc, o.tags.DocumentLinksDone, o.tags.ManualReview)
			}) {
				return
			}
		} else {
			r.record(StepDocumentLinks, StepResult{Success: true, Skipped: true})
		}
		stage = workflow.StageDocumentLinksDone
	}

	// Vector indexing runs before the processed transition, so that
	// processed implies "indexed or index-attempted".
	if stage == workflow.StageDocumentLinksDone {
		o.indexDocument(r, doc)
		if err := o.dms.TransitionTag(r.ctx, doc.ID, currentTag, o.tags.Processed); err != nil {
			o.abortDocument(r, StepVectorIndex, err)
			return
		}
		stage = workflow.StageProcessed
	}

	r.result.Success = !r.result.NeedsReview
	r.emit(events.TypePipelineComplete, "", map[string]any{"stage": string(stage)}, "")
}

// runFatalStage runs OCR/Summary-class stages, whose errors abort the
// document with the failed tag. Returns false when the run must
// terminate.
func (o *Orchestrator) runFatalStage(r *run, step string, invoke func() (stageengine.Result, error)) bool {
	if r.ctx.Err() != nil {
		o.abortCancelled(r, step)
		return false
	}
	r.emit(events.TypeStepStart, step, nil, "")
	res, err := invoke()
	if err != nil {
		o.abortDocument(r, step, err)
		return false
	}
	r.record(step, StepResult{Success: true, Attempts: res.Attempts, Value: res.Value})
	r.emit(events.TypeStepComplete, step, map[string]any{"attempts": res.Attempts}, "")
	return true
}

// runConfirmStage runs an LLM-driven stage through the shared handling:
// success advances, needs-review terminates the run with a review queued,
// and errors escalate to a PendingReview rather than failing the document.
func (o *Orchestrator) runConfirmStage(r *run, step string, kind models.ReviewKind, invoke func() (stageengine.Result, error)) bool {
	if r.ctx.Err() != nil {
		o.abortCancelled(r, step)
		return false
	}
	r.emit(events.TypeStepStart, step, nil, "")

	res, err := invoke()
	if err != nil {
		if errors.Is(err, pipelineerrors.ErrInvariantViolation) {
			o.abortDocument(r, step, err)
			return false
		}
		o.escalateStageError(r, step, kind, err)
		return false
	}

	if res.NeedsReview {
		r.record(step, StepResult{NeedsReview: true, Attempts: res.Attempts})
		r.result.NeedsReview = true
		r.emit(events.TypeNeedsReview, step, map[string]any{"attempts": res.Attempts, "review_ids": res.ReviewIDs}, "")
		if res.SchemaReviewNeeded {
			r.result.SchemaReviewNeeded = true
			r.emit(events.TypeSchemaReviewNeeded, step, nil, "")
			r.emit(events.TypePipelinePaused, "", nil, "awaiting schema review")
		} else {
			r.emit(events.TypePipelineComplete, "", nil, "")
		}
		return false
	}

	r.record(step, StepResult{Success: true, Attempts: res.Attempts, Value: res.Value})
	r.emit(events.TypeStepComplete, step, map[string]any{"attempts": res.Attempts}, "")
	return true
}

// schemaGate runs the schema-analysis stage and its pause semantics:
// an open schema-suggestion review for the document pauses the
// run before any model call; a fresh run that proposes suggestions
// enqueues them and pauses. Returns true when the run terminated.
func (o *Orchestrator) schemaGate(r *run, doc *models.Document) bool {
	open, err := o.reviews.List(r.ctx, ReviewFilter{Kind: models.ReviewKindSchemaSuggestion, DocID: doc.ID})
	if err != nil {
		o.abortDocument(r, StepSchemaAnalysis, err)
		return true
	}
	if len(open) > 0 {
		r.result.SchemaReviewNeeded = true
		r.emit(events.TypeSchemaReviewNeeded, StepSchemaAnalysis, map[string]any{"open_reviews": len(open)}, "")
		r.emit(events.TypePipelinePaused, "", nil, "awaiting schema review")
		return true
	}

	if !o.pipelineCfg.SchemaAnalysis {
		r.record(StepSchemaAnalysis, StepResult{Success: true, Skipped: true})
		return false
	}

	if r.ctx.Err() != nil {
		o.abortCancelled(r, StepSchemaAnalysis)
		return true
	}
	r.emit(events.TypeStepStart, StepSchemaAnalysis, nil, "")
	res, err := o.engines.RunSchemaAnalysis(r.ctx, doc)
	if err != nil {
		o.escalateStageError(r, StepSchemaAnalysis, models.ReviewKindSchemaSuggestion, err)
		return true
	}
	if res.SchemaReviewNeeded {
		r.record(StepSchemaAnalysis, StepResult{NeedsReview: true, Attempts: res.Attempts})
		r.result.NeedsReview = true
		r.result.SchemaReviewNeeded = true
		r.emit(events.TypeNeedsReview, StepSchemaAnalysis, map[string]any{"review_ids": res.ReviewIDs}, "")
		r.emit(events.TypeSchemaReviewNeeded, StepSchemaAnalysis, nil, "")
		r.emit(events.TypePipelinePaused, "", nil, "awaiting schema review")
		return true
	}
	r.record(StepSchemaAnalysis, StepResult{Success: true, Attempts: res.Attempts})
	r.emit(events.TypeStepComplete, StepSchemaAnalysis, nil, "")
	return false
}

// indexDocument ships the document's projection to the vector store.
// Failure is logged and recorded, never fatal.
func (o *Orchestrator) indexDocument(r *run, doc *models.Document) {
	if o.indexer == nil {
		r.record(StepVectorIndex, StepResult{Success: true, Skipped: true})
		return
	}
	r.emit(events.TypeStepStart, StepVectorIndex, nil, "")

	// Re-read so the projection reflects every field written upstream.
	fresh, err := o.dms.GetDocument(r.ctx, doc.ID)
	if err != nil {
		fresh = doc
	}
	correspondent := o.entityName(r.ctx, models.EntityKindCorrespondent, fresh.CorrespondentID)
	docType := o.entityName(r.ctx, models.EntityKindDocumentType, fresh.DocumentTypeID)

	projection := vectorindex.Project(fresh, correspondent, docType, o.workflowTag)
	if err := o.indexer.Index(r.ctx, projection); err != nil {
		o.logger.Warn("vector indexing failed", "doc_id", doc.ID, "error", err)
		r.record(StepVectorIndex, StepResult{Error: err.Error()})
		r.emit(events.TypeStepError, StepVectorIndex, nil, err.Error())
		return
	}
	r.record(StepVectorIndex, StepResult{Success: true})
	r.emit(events.TypeStepComplete, StepVectorIndex, nil, "")
}

func (o *Orchestrator) entityName(ctx context.Context, kind models.EntityKind, id *int) string {
	if id == nil {
		return ""
	}
	entities, err := o.dms.ListEntities(ctx, kind)
	if err != nil {
		return ""
	}
	for _, e := range entities {
		if e.ID == *id {
			return e.Name
		}
	}
	return ""
}

// escalateStageError converts a stage error on an LLM-driven stage into a
// PendingReview, tags the document manual_review, and terminates the
// stream with pipeline_complete.
func (o *Orchestrator) escalateStageError(r *run, step string, kind models.ReviewKind, stageErr error) {
	r.record(step, StepResult{NeedsReview: true, Error: stageErr.Error()})
	r.result.NeedsReview = true

	reason := fmt.Sprintf("stage failed: %v", pipelineerrors.Classify(stageErr))
	_, err := o.reviews.Add(r.ctx, models.AddReviewRequest{
		DocID:     r.docID,
		Kind:      kind,
		Reasoning: reason,
		Metadata:  map[string]any{"error": stageErr.Error(), "step": step},
	})
	if err != nil {
		o.logger.Error("failed to enqueue review for stage error", "doc_id", r.docID, "step", step, "error", err)
	}
	if err := o.dms.AddTagByName(r.ctx, r.docID, o.tags.ManualReview); err != nil {
		o.logger.Error("failed to tag manual_review", "doc_id", r.docID, "error", err)
	}
	r.emit(events.TypeNeedsReview, step, map[string]any{"error": stageErr.Error()}, "")
	r.emit(events.TypePipelineComplete, "", nil, "")
}

// abortDocument marks the document failed and terminates the stream with
// a fatal error event.
func (o *Orchestrator) abortDocument(r *run, step string, stageErr error) {
	o.logger.Error("aborting document", "doc_id", r.docID, "step", step, "error", stageErr)
	r.record(step, StepResult{Error: stageErr.Error()})
	r.result.Error = stageErr.Error()
	r.emit(events.TypeStepError, step, nil, stageErr.Error())

	if !errors.Is(stageErr, dmsclient.ErrAuth) {
		if err := o.dms.AddTagByName(r.ctx, r.docID, o.tags.Failed); err != nil {
			o.logger.Error("failed to tag document failed", "doc_id", r.docID, "error", err)
		}
	}
	r.emit(events.TypeError, "", nil, stageErr.Error())
}

// abortCancelled terminates a run whose context was cancelled before the
// next stage started; the document keeps its current tag state and is
// picked up again on a later tick.
func (o *Orchestrator) abortCancelled(r *run, step string) {
	r.record(step, StepResult{Error: context.Canceled.Error()})
	r.result.Error = context.Canceled.Error()
	r.emit(events.TypeError, "", nil, "cancelled before "+step)
}

// deriveStage computes the document's stage from its tag names. A
// schema_analysis_done derivation that only exists because the stage
// reuses ocr_done's tag name is folded back to the OCR-done region so the
// Summary and Schema Analysis stages still run.
func (o *Orchestrator) deriveStage(doc *models.Document) workflow.Stage {
	present := make(map[string]bool, len(doc.TagNames))
	for _, name := range doc.TagNames {
		present[name] = true
	}
	stage := workflow.Derive(o.tagNames, present)
	if (stage == workflow.StageSchemaAnalysisDone || stage == workflow.StageSchemaReview) && !o.schemaTagDistinct() {
		return workflow.StageOCRDone
	}
	return stage
}

// schemaTagDistinct reports whether schema_analysis_done has its own tag
// name rather than reusing ocr_done's.
func (o *Orchestrator) schemaTagDistinct() bool {
	return o.tags.SchemaAnalysisDone != "" && o.tags.SchemaAnalysisDone != o.tags.OCRDone
}

// currentTagName maps a derived stage to the tag name currently marking it
// on the document, the source side of the next transition.
func (o *Orchestrator) currentTagName(stage workflow.Stage) string {
	if stage == workflow.StagePending {
		return o.tags.Pending
	}
	return o.tagNames[stage]
}

var _ Engines = (*stageengine.Deps)(nil)

var _ Reviews = reviewsAdapter{}

// reviewsAdapter bridges the concrete reviewqueue.Store to the
// orchestrator's Reviews seam without the orchestrator importing the
// store's ent-backed types.
type reviewsAdapter struct {
	store *reviewqueue.Store
}

// NewReviewsAdapter wraps store for use as the orchestrator's Reviews.
func NewReviewsAdapter(store *reviewqueue.Store) Reviews {
	return reviewsAdapter{store: store}
}

func (a reviewsAdapter) List(ctx context.Context, filter ReviewFilter) ([]models.ReviewResponse, error) {
	return a.store.List(ctx, reviewqueue.ListFilter{Kind: filter.Kind, DocID: filter.DocID})
}

func (a reviewsAdapter) Add(ctx context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error) {
	return a.store.Add(ctx, req)
}
