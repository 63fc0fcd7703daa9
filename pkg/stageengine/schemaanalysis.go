package stageengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
)

// RunSchemaAnalysis executes the optional schema-analysis gate between
// OCR/Summary and Title: one large-model pass that enumerates any net-new
// entities the document would imply. Suggestions naming entities that
// already exist in the DMS namespace are dropped; each surviving
// suggestion becomes a schema_suggestion PendingReview, and the pipeline
// pauses.
//
// The stage is idempotent under tag reuse (schema_analysis_done may share
// ocr_done's tag): re-running it against a document whose suggestions were
// already enqueued re-proposes the same names, and the queue's
// (doc_id, kind, normalized suggestion) uniqueness collapses them into the
// existing reviews.
func (d *Deps) RunSchemaAnalysis(ctx context.Context, doc *models.Document) (Result, error) {
	existing, err := d.existingEntityNames(ctx)
	if err != nil {
		return Result{}, err
	}

	prompt, err := d.Prompts.Render(config.PromptSchemaAnalysis, d.PromptLanguage, map[string]any{
		"document_content":  d.promptContent(doc.Content),
		"existing_entities": existing,
	})
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: render schema analysis prompt: %w", err)
	}

	raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
	if err != nil {
		return Result{}, err
	}

	suggestions := llmclient.ParseSchemaSuggestions(raw)
	var reviewIDs []string
	for _, s := range suggestions {
		if nameExists(existing[string(s.EntityKind)], s.SuggestedName) {
			continue
		}
		blocked, err := d.Reviews.IsBlocked(ctx, models.ReviewKindSchemaSuggestion, s.SuggestedName)
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: blocklist check: %w", err)
		}
		if blocked {
			continue
		}
		review, err := d.Reviews.Add(ctx, models.AddReviewRequest{
			DocID:                doc.ID,
			DocTitle:             doc.Title,
			Kind:                 models.ReviewKindSchemaSuggestion,
			Suggestion:           s.SuggestedName,
			NormalizedSuggestion: reviewqueue.Normalize(s.SuggestedName),
			Metadata: map[string]any{
				"entity_kind":         string(s.EntityKind),
				"confidence":          s.Confidence,
				"similar_to_existing": s.SimilarToExisting,
			},
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: enqueue schema suggestion: %w", err)
		}
		reviewIDs = append(reviewIDs, review.ID)
	}

	if len(reviewIDs) > 0 {
		d.logger().Info("schema analysis proposed new entities", "doc_id", doc.ID, "count", len(reviewIDs))
		return Result{NeedsReview: true, SchemaReviewNeeded: true, Attempts: 1, ReviewIDs: reviewIDs}, nil
	}
	return Result{Success: true, Attempts: 1}, nil
}

// existingEntityNames snapshots every entity namespace schema analysis can
// propose additions to, keyed by entity kind, both for the prompt's
// {existing_entities} variable and for filtering suggestions that aren't
// actually net-new.
func (d *Deps) existingEntityNames(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string, 3)
	for _, kind := range []models.EntityKind{
		models.EntityKindCorrespondent,
		models.EntityKindDocumentType,
		models.EntityKindTag,
	} {
		entities, err := d.DMS.ListEntities(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("stageengine: list %s entities: %w", kind, err)
		}
		names := make([]string, 0, len(entities))
		for _, e := range entities {
			names = append(names, e.Name)
		}
		out[string(kind)] = names
	}
	return out, nil
}

func nameExists(names []string, candidate string) bool {
	for _, n := range names {
		if strings.EqualFold(n, candidate) {
			return true
		}
	}
	return false
}
