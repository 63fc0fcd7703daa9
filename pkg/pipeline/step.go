package pipeline

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
)

// RunStep runs a single named stage against a document, with the same
// per-stage contract as the batched invocation. Used by the UI's ad-hoc
// invocation. Apart from OCR, whose transition source is always the
// pending tag, the transition source is whatever tag the document
// currently carries, so invoking a stage out of order still
// leaves a coherent tag state.
func (o *Orchestrator) RunStep(ctx context.Context, docID int, step string, sink events.Sink) *Result {
	r := &run{o: o, ctx: ctx, docID: docID, sink: sink, result: &Result{DocID: docID, Steps: map[string]StepResult{}}}

	doc, err := o.dms.GetDocument(ctx, docID)
	if err != nil {
		r.emit(events.TypePipelineStart, "", nil, "")
		r.emit(events.TypeError, "", nil, fmt.Sprintf("read document: %v", err))
		r.result.Error = err.Error()
		return r.result
	}
	r.emit(events.TypePipelineStart, "", nil, "")

	currentTag := o.currentTagName(o.deriveStage(doc))

	switch step {
	case StepOCR:
		if !o.runFatalStage(r, StepOCR, func() (stageengine.Result, error) {
			return o.engines.RunOCR(ctx, doc, o.tags.Pending, o.tags.OCRDone)
		}) {
			return r.result
		}
	case StepSummary:
		if !o.runFatalStage(r, StepSummary, func() (stageengine.Result, error) {
			return o.engines.RunSummary(ctx, doc, currentTag, o.tags.SummaryDone)
		}) {
			return r.result
		}
	case StepSchemaAnalysis:
		if paused := o.schemaGate(r, doc); paused {
			return r.result
		}
	case StepTitle:
		if !o.runConfirmStage(r, StepTitle, models.ReviewKindTitle, func() (stageengine.Result, error) {
			return o.engines.RunTitle(ctx, doc, currentTag, o.tags.TitleDone, o.tags.ManualReview)
		}) {
			return r.result
		}
	case StepCorrespondent:
		if !o.runConfirmStage(r, StepCorrespondent, models.ReviewKindCorrespondent, func() (stageengine.Result, error) {
			return o.engines.RunCorrespondent(ctx, doc, currentTag, o.tags.CorrespondentDone, o.tags.ManualReview)
		}) {
			return r.result
		}
	case StepDocumentType:
		if !o.runConfirmStage(r, StepDocumentType, models.ReviewKindDocumentType, func() (stageengine.Result, error) {
			return o.engines.RunDocumentType(ctx, doc, currentTag, o.tags.DocumentTypeDone, o.tags.ManualReview)
		}) {
			return r.result
		}
	case StepTags:
		if !o.runConfirmStage(r, StepTags, models.ReviewKindTag, func() (stageengine.Result, error) {
			return o.engines.RunTags(ctx, doc, currentTag, o.tags.TagsDone, o.tags.ManualReview, o.workflowTag)
		}) {
			return r.result
		}
	case StepCustomFields:
		if !o.runConfirmStage(r, StepCustomFields, models.ReviewKindCustomField, func() (stageengine.Result, error) {
			return o.engines.RunCustomFields(ctx, doc, o.tags.CustomFieldsDone, o.tags.ManualReview)
		}) {
			return r.result
		}
	case StepDocumentLinks:
		if !o.runConfirmStage(r, StepDocumentLinks, models.ReviewKindDocumentLink, func() (stageengine.Result, error) {
			return o.engines.RunDocumentLinks(ctx, doc, o.tags.DocumentLinksDone, o.tags.ManualReview)
		}) {
			return r.result
		}
	case StepVectorIndex:
		o.indexDocument(r, doc)
	default:
		r.result.Error = fmt.Sprintf("unknown step %q", step)
		r.emit(events.TypeError, "", nil, r.result.Error)
		return r.result
	}

	r.result.Success = !r.result.NeedsReview
	r.emit(events.TypePipelineComplete, "", nil, "")
	return r.result
}

// KnownStep reports whether name is a runnable step name, for API-side
// validation before dispatch.
func KnownStep(name string) bool {
	switch name {
	case StepOCR, StepSummary, StepSchemaAnalysis, StepTitle, StepCorrespondent,
		StepDocumentType, StepTags, StepCustomFields, StepDocumentLinks, StepVectorIndex:
		return true
	default:
		return false
	}
}
