// Package stageengine implements the per-stage enrichment engines: the
// shared two-model confirmation loop and its specializations for OCR,
// Summary, Title, Correspondent, Document Type, Tags, Custom Fields,
// Document Links, and Schema Analysis.
package stageengine

import (
	"context"
	"log/slog"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/ocrclient"
)

// Result is the outcome of one stage engine invocation.
type Result struct {
	Success            bool
	Value              string
	Attempts           int
	NeedsReview        bool
	SchemaReviewNeeded bool
	ReviewIDs          []string
}

// LLM is the subset of pkg/llmclient.Client the engines call through.
type LLM interface {
	Generate(ctx context.Context, role config.ModelRole, prompt string, opts llmclient.Options) (string, error)
}

// PromptRenderer is the subset of pkg/config.PromptRegistry the engines
// render through.
type PromptRenderer interface {
	Render(name, lang string, data any) (string, error)
}

// Reviews is the subset of pkg/reviewqueue.Store the engines use to check
// the blocklist and enqueue a PendingReview on convergence failure or
// schema policy.
type Reviews interface {
	IsBlocked(ctx context.Context, kind models.ReviewKind, suggestion string) (bool, error)
	Add(ctx context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error)
}

// DMS is the subset of pkg/dmsclient.Client the engines write through.
type DMS interface {
	CreateOrLookupEntity(ctx context.Context, kind models.EntityKind, name string) (models.Entity, error)
	WriteDocument(ctx context.Context, docID int, req models.WriteDocumentRequest) error
	TransitionTag(ctx context.Context, docID int, fromTagName, toTagName string) error
	AddTagByName(ctx context.Context, docID int, name string) error
	RemoveTagByName(ctx context.Context, docID int, name string) error
	ListEntities(ctx context.Context, kind models.EntityKind) ([]models.Entity, error)
	CustomFieldDefs(ctx context.Context) ([]models.CustomFieldDef, error)
	DownloadDocument(ctx context.Context, docID int) ([]byte, string, error)
}

// OCR is the subset of pkg/ocrclient.Client the OCR stage calls through.
type OCR interface {
	Extract(ctx context.Context, docID int, filename string, content []byte) (*ocrclient.Result, error)
}

// Similarity filters document-link candidates down to those whose
// embedding-space distance to doc passes the configured min_score.
// Implemented by pkg/vectorindex; nil disables the check and rejects every
// candidate, since an unverifiable link must never be written.
type Similarity interface {
	FilterCandidates(ctx context.Context, doc *models.Document, candidateIDs []int) ([]int, error)
}

// ProcessingLog appends audit entries. Engines log dropped custom-field
// values and summary writes through it; nil disables audit logging.
type ProcessingLog interface {
	Append(ctx context.Context, docID int, step, eventType string, data map[string]any) error
}

// Deps bundles every collaborator and policy knob a stage engine needs.
// One Deps instance is shared by every engine; nothing here is mutated
// after construction.
type Deps struct {
	LLM        LLM
	DMS        DMS
	OCR        OCR
	Reviews    Reviews
	Prompts    PromptRenderer
	Tokens     *llmclient.TokenCounter
	Similarity Similarity
	Log        ProcessingLog

	MaxRetries                int
	RequireUserForNewEntities bool
	ConfirmKeywords           []string
	PromptLanguage            string
	CustomFields              *config.CustomFieldRegistry

	Logger *slog.Logger
}

// logger returns a non-nil logger even if Deps was constructed without
// one, so engines never guard against a nil Logger.
func (d *Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// maxPromptTokens bounds how much document content is rendered into an
// analyst prompt, leaving headroom for the template text and the model's
// reply inside typical context windows.
const maxPromptTokens = 6000

// promptContent bounds document content to the analyst prompt's token
// budget. Without a token counter the content passes through unchanged.
func (d *Deps) promptContent(content string) string {
	if d.Tokens == nil {
		return content
	}
	return d.Tokens.TruncateToBudget(content, maxPromptTokens)
}

// excerpt truncates content to a fixed length for the confirmation
// prompt, which only needs enough text to judge a suggestion, not the
// full document.
func excerpt(content string) string {
	const maxLen = 2000
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen]
}
