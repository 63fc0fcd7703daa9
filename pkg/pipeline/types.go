// Package pipeline implements the pipeline orchestrator: the
// deterministic state machine that drives one document through the
// enrichment stages, resuming from the document's workflow-tag state,
// emitting the typed event stream, and terminating on completion, pause,
// or document failure.
package pipeline

import (
	"context"

	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/stageengine"
	"github.com/codeready-toolchain/corvid/pkg/vectorindex"
)

// Step names used in events, step results, and the processing log.
const (
	StepOCR            = "ocr"
	StepSummary        = "summary"
	StepSchemaAnalysis = "schema_analysis"
	StepTitle          = "title"
	StepCorrespondent  = "correspondent"
	StepDocumentType   = "document_type"
	StepTags           = "tags"
	StepCustomFields   = "custom_fields"
	StepDocumentLinks  = "document_links"
	StepVectorIndex    = "vector_index"
)

// StepResult is the outcome of one stage within a pipeline run.
type StepResult struct {
	Step        string `json:"step"`
	Success     bool   `json:"success"`
	Skipped     bool   `json:"skipped,omitempty"`
	NeedsReview bool   `json:"needs_review,omitempty"`
	Attempts    int    `json:"attempts,omitempty"`
	Value       string `json:"value,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Result is the batch-mode summary of a whole pipeline run.
type Result struct {
	DocID              int                   `json:"doc_id"`
	Steps              map[string]StepResult `json:"steps"`
	Success            bool                  `json:"success"`
	NeedsReview        bool                  `json:"needs_review"`
	SchemaReviewNeeded bool                  `json:"schema_review_needed"`
	Error              string                `json:"error,omitempty"`
}

// DMS is the subset of pkg/dmsclient.Client the orchestrator itself calls;
// stage engines carry their own (wider) DMS interface.
type DMS interface {
	GetDocument(ctx context.Context, id int) (*models.Document, error)
	TransitionTag(ctx context.Context, docID int, fromTagName, toTagName string) error
	AddTagByName(ctx context.Context, docID int, name string) error
	ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Entity, error)
}

// Reviews is the subset of pkg/reviewqueue.Store the orchestrator needs:
// checking for open reviews (pause/resume decisions) and enqueueing
// escalations for stage errors.
type Reviews interface {
	List(ctx context.Context, filter ReviewFilter) ([]models.ReviewResponse, error)
	Add(ctx context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error)
}

// ReviewFilter mirrors reviewqueue.ListFilter without importing the
// concrete store package.
type ReviewFilter struct {
	Kind  models.ReviewKind
	DocID int
}

// Indexer is the subset of pkg/vectorindex.Indexer the terminal step
// calls; nil disables indexing.
type Indexer interface {
	Index(ctx context.Context, p vectorindex.Projection) error
}

// ProcessingLog receives audit entries for every step event when
// processing history is enabled; nil disables it.
type ProcessingLog interface {
	Append(ctx context.Context, docID int, step, eventType string, data map[string]any) error
}

// Engines is implemented by *stageengine.Deps; an interface so orchestrator
// tests can script stage outcomes without faking LLM traffic.
type Engines interface {
	RunOCR(ctx context.Context, doc *models.Document, sourceTag, targetTag string) (stageengine.Result, error)
	RunSummary(ctx context.Context, doc *models.Document, sourceTag, targetTag string) (stageengine.Result, error)
	RunSchemaAnalysis(ctx context.Context, doc *models.Document) (stageengine.Result, error)
	RunTitle(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (stageengine.Result, error)
	RunCorrespondent(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (stageengine.Result, error)
	RunDocumentType(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (stageengine.Result, error)
	RunTags(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string, workflowTags map[string]bool) (stageengine.Result, error)
	RunCustomFields(ctx context.Context, doc *models.Document, nextTag, manualReviewTag string) (stageengine.Result, error)
	RunDocumentLinks(ctx context.Context, doc *models.Document, nextTag, manualReviewTag string) (stageengine.Result, error)
}
