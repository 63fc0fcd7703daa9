package reviewqueue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// Resolver applies approve/reject semantics: resolving or
// creating the target entity via the DMS adapter, writing it onto the
// document, adding the next_tag to resume the pipeline, and deleting the
// review item — or, on reject, tagging the document manual_review.
type Resolver struct {
	store           *Store
	dms             DMS
	manualReviewTag string
	logger          *slog.Logger
}

// NewResolver builds a Resolver over store and dms. manualReviewTag is the
// configured workflow tag name applied on rejection (tags.manual_review).
func NewResolver(store *Store, dms DMS, manualReviewTag string) *Resolver {
	return &Resolver{
		store:           store,
		dms:             dms,
		manualReviewTag: manualReviewTag,
		logger:          slog.Default().With("component", "reviewqueue.resolver"),
	}
}

// Approve resolves/creates the target entity, writes it onto the
// document, adds next_tag (resuming the pipeline), and deletes the
// review. req.Value, if set, overrides the analyst's original suggestion
// (scenario: "user approves pending with custom value").
func (r *Resolver) Approve(ctx context.Context, id string, req models.ApproveReviewRequest) error {
	review, err := r.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	value := review.Suggestion
	if req.Value != nil && *req.Value != "" {
		value = *req.Value
	}

	if err := r.applyApproval(ctx, review, value); err != nil {
		return fmt.Errorf("reviewqueue: apply approval for %s: %w", id, err)
	}

	if review.NextTag != nil && *review.NextTag != "" {
		if err := r.dms.AddTagByName(ctx, review.DocID, *review.NextTag); err != nil {
			return fmt.Errorf("reviewqueue: resume pipeline tag for %s: %w", id, err)
		}
	}

	// An approved review may have arrived via convergence-failure
	// escalation, in which case the document was tagged manual_review
	// when the review was queued; approval always lifts it (scenario:
	// "document gains llm-title-done and loses llm-manual-review").
	if r.manualReviewTag != "" {
		if err := r.dms.RemoveTagByName(ctx, review.DocID, r.manualReviewTag); err != nil {
			return fmt.Errorf("reviewqueue: lift manual_review tag for %s: %w", id, err)
		}
	}

	if err := r.store.Remove(ctx, id); err != nil {
		return err
	}
	r.logger.Info("review approved", "id", id, "doc_id", review.DocID, "kind", review.Kind)
	return nil
}

func (r *Resolver) applyApproval(ctx context.Context, review *models.ReviewResponse, value string) error {
	switch review.Kind {
	case models.ReviewKindTitle:
		return r.dms.WriteDocument(ctx, review.DocID, models.WriteDocumentRequest{Title: &value})

	case models.ReviewKindCorrespondent:
		entity, err := r.dms.CreateOrLookupEntity(ctx, models.EntityKindCorrespondent, value)
		if err != nil {
			return err
		}
		return r.dms.WriteDocument(ctx, review.DocID, models.WriteDocumentRequest{CorrespondentID: &entity.ID})

	case models.ReviewKindDocumentType:
		entity, err := r.dms.CreateOrLookupEntity(ctx, models.EntityKindDocumentType, value)
		if err != nil {
			return err
		}
		return r.dms.WriteDocument(ctx, review.DocID, models.WriteDocumentRequest{DocumentTypeID: &entity.ID})

	case models.ReviewKindTag:
		for _, name := range splitCSV(value) {
			if err := r.dms.AddTagByName(ctx, review.DocID, name); err != nil {
				return err
			}
		}
		return nil

	case models.ReviewKindCustomField:
		fieldID, ok := intFromMetadata(review.Metadata, "field_id")
		if !ok {
			return fmt.Errorf("custom_field review %s missing field_id metadata", review.ID)
		}
		return r.dms.WriteDocument(ctx, review.DocID, models.WriteDocumentRequest{
			CustomFields: map[int]any{fieldID: value},
		})

	case models.ReviewKindDocumentLink:
		fieldID, ok := intFromMetadata(review.Metadata, "field_id")
		if !ok {
			return fmt.Errorf("document_link review %s missing field_id metadata", review.ID)
		}
		return r.dms.WriteDocument(ctx, review.DocID, models.WriteDocumentRequest{
			CustomFields: map[int]any{fieldID: value},
		})

	case models.ReviewKindSchemaSuggestion:
		entityKind, _ := review.Metadata["entity_kind"].(string)
		if entityKind == "" {
			return fmt.Errorf("schema_suggestion review %s missing entity_kind metadata", review.ID)
		}
		_, err := r.dms.CreateOrLookupEntity(ctx, models.EntityKind(entityKind), value)
		return err

	default:
		return fmt.Errorf("reviewqueue: unknown review kind %q", review.Kind)
	}
}

// Reject tags the document manual_review, optionally recording feedback in
// the log, and deletes the review item.
func (r *Resolver) Reject(ctx context.Context, id string, req models.RejectReviewRequest) error {
	review, err := r.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.manualReviewTag != "" {
		if err := r.dms.AddTagByName(ctx, review.DocID, r.manualReviewTag); err != nil {
			return fmt.Errorf("reviewqueue: tag manual_review for %s: %w", id, err)
		}
	}
	if err := r.store.Remove(ctx, id); err != nil {
		return err
	}
	feedback := ""
	if req.Feedback != nil {
		feedback = *req.Feedback
	}
	r.logger.Info("review rejected", "id", id, "doc_id", review.DocID, "kind", review.Kind, "feedback", feedback)
	return nil
}

// Bulk applies Approve or Reject uniformly to every ID in req, continuing
// past per-item failures and returning the set of IDs that failed.
func (r *Resolver) Bulk(ctx context.Context, req models.BulkResolveRequest) map[string]error {
	failures := make(map[string]error)
	for _, id := range req.IDs {
		var err error
		if req.Approve {
			err = r.Approve(ctx, id, models.ApproveReviewRequest{})
		} else {
			err = r.Reject(ctx, id, models.RejectReviewRequest{Feedback: req.Feedback})
		}
		if err != nil {
			failures[id] = err
		}
	}
	return failures
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func intFromMetadata(meta map[string]any, key string) (int, bool) {
	raw, ok := meta[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
