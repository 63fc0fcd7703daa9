package stageengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
)

// resolveOrDeferEntity implements the Correspondent/Document Type policy
// gate: if name already exists in the DMS namespace for kind, it
// resolves normally; otherwise, when d.RequireUserForNewEntities is set,
// a schema-suggestion PendingReview is enqueued instead of auto-creating
// it, and errNeedsSchemaReview is returned so the loop treats this
// attempt as needs-review without writing.
func (d *Deps) resolveOrDeferEntity(ctx context.Context, doc *models.Document, entityKind models.EntityKind, name string) (models.Entity, error) {
	existing, err := d.DMS.ListEntities(ctx, entityKind)
	if err != nil {
		return models.Entity{}, fmt.Errorf("stageengine: list %s entities: %w", entityKind, err)
	}
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			return d.DMS.CreateOrLookupEntity(ctx, entityKind, e.Name)
		}
	}

	if !d.RequireUserForNewEntities {
		return d.DMS.CreateOrLookupEntity(ctx, entityKind, name)
	}

	_, err = d.Reviews.Add(ctx, models.AddReviewRequest{
		DocID:      doc.ID,
		DocTitle:   doc.Title,
		Kind:       models.ReviewKindSchemaSuggestion,
		Suggestion:           name,
		NormalizedSuggestion: reviewqueue.Normalize(name),
		Metadata: map[string]any{
			"entity_kind": string(entityKind),
			"confidence":  0.0,
		},
	})
	if err != nil {
		return models.Entity{}, fmt.Errorf("stageengine: enqueue schema suggestion: %w", err)
	}
	return models.Entity{}, errNeedsSchemaReview
}
