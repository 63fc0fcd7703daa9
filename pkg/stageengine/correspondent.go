package stageengine

import (
	"context"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunCorrespondent executes the Correspondent stage. The analyst proposes
// a correspondent name; on confirmation the name is resolved to an ID
// (creating it if absent, subject to the require_user_for_new_entities
// policy gate) and written onto the document.
func (d *Deps) RunCorrespondent(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (Result, error) {
	return d.runSingleValueLoop(ctx, doc, singleValueLoop{
		kind:                   models.ReviewKindCorrespondent,
		promptName:             config.PromptCorrespondentAnalyst,
		confirmationPromptName: config.PromptCorrespondentReviewer,
		sourceTag:              sourceTag,
		targetTag:              targetTag,
		manualReviewTag:        manualReviewTag,
		renderData: func(doc *models.Document, feedback string) map[string]any {
			return map[string]any{
				"document_content": d.promptContent(doc.Content),
				"feedback":         feedback,
			}
		},
		apply: func(ctx context.Context, doc *models.Document, analysis models.Analysis) error {
			entity, err := d.resolveOrDeferEntity(ctx, doc, models.EntityKindCorrespondent, analysis.SuggestedValue)
			if err != nil {
				return err
			}
			return d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{CorrespondentID: &entity.ID})
		},
	})
}
