package models

import "time"

// ReviewKind is the kind of a PendingReview, mirroring the ent PendingReview
// "kind" enum.
type ReviewKind string

const (
	ReviewKindTitle            ReviewKind = "title"
	ReviewKindCorrespondent    ReviewKind = "correspondent"
	ReviewKindDocumentType     ReviewKind = "document_type"
	ReviewKindTag              ReviewKind = "tag"
	ReviewKindCustomField      ReviewKind = "custom_field"
	ReviewKindDocumentLink     ReviewKind = "document_link"
	ReviewKindSchemaSuggestion ReviewKind = "schema_suggestion"
)

// AddReviewRequest is the input to the review queue's add operation. It
// carries everything needed to later approve the review without re-deriving
// it from the document.
type AddReviewRequest struct {
	DocID                int            `json:"doc_id"`
	DocTitle             string         `json:"doc_title,omitempty"`
	Kind                 ReviewKind     `json:"kind"`
	Suggestion           string         `json:"suggestion"`
	NormalizedSuggestion string         `json:"normalized_suggestion"`
	Reasoning            string         `json:"reasoning,omitempty"`
	Alternatives         []string       `json:"alternatives,omitempty"`
	Attempts             int            `json:"attempts"`
	LastFeedback         *string        `json:"last_feedback,omitempty"`
	NextTag              *string        `json:"next_tag,omitempty"`
	Metadata             map[string]any `json:"metadata,omitempty"`
}

// ReviewResponse is the wire/service-layer projection of a PendingReview,
// independent of the generated ent type so callers outside pkg/reviewqueue
// never import ent directly.
type ReviewResponse struct {
	ID                   string         `json:"id"`
	DocID                int            `json:"doc_id"`
	DocTitle             string         `json:"doc_title,omitempty"`
	Kind                 ReviewKind     `json:"kind"`
	Suggestion           string         `json:"suggestion"`
	NormalizedSuggestion string         `json:"normalized_suggestion"`
	Reasoning            string         `json:"reasoning,omitempty"`
	Alternatives         []string       `json:"alternatives,omitempty"`
	Attempts             int            `json:"attempts"`
	LastFeedback         *string        `json:"last_feedback,omitempty"`
	NextTag              *string        `json:"next_tag,omitempty"`
	Metadata             map[string]any `json:"metadata,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
}

// ApproveReviewRequest optionally overrides the analyst's suggestion with a
// user-supplied value (scenario: "user approves pending with custom value").
type ApproveReviewRequest struct {
	Value *string `json:"value,omitempty"`
}

// RejectReviewRequest optionally records why a human rejected the
// suggestion; the document is tagged manual_review regardless.
type RejectReviewRequest struct {
	Feedback *string `json:"feedback,omitempty"`
}

// BulkResolveRequest names a batch of review IDs and the resolution to
// apply to all of them uniformly.
type BulkResolveRequest struct {
	IDs      []string `json:"ids"`
	Approve  bool     `json:"approve"`
	Feedback *string  `json:"feedback,omitempty"`
}

// SimilarGroup clusters reviews that share a kind and normalized
// suggestion, surfaced so a user can bulk-resolve duplicates at once.
type SimilarGroup struct {
	Kind                 ReviewKind       `json:"kind"`
	NormalizedSuggestion string           `json:"normalized_suggestion"`
	Reviews              []ReviewResponse `json:"reviews"`
}

// SchemaSuggestion is emitted by schema analysis when the analyst proposes
// a net-new entity that does not yet exist in the DMS namespace.
type SchemaSuggestion struct {
	EntityKind        EntityKind `json:"entity_kind"`
	SuggestedName      string     `json:"suggested_name"`
	Confidence         float64    `json:"confidence"`
	SimilarToExisting  []string   `json:"similar_to_existing,omitempty"`
}

// EntityKind is a DMS entity namespace that schema analysis can propose
// additions to.
type EntityKind string

const (
	EntityKindCorrespondent EntityKind = "correspondent"
	EntityKindDocumentType  EntityKind = "document_type"
	EntityKindTag           EntityKind = "tag"
)
