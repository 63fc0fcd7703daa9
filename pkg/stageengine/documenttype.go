package stageengine

import (
	"context"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunDocumentType executes the Document Type stage, mirroring
// RunCorrespondent's shape against the document-type entity namespace.
func (d *Deps) RunDocumentType(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (Result, error) {
	return d.runSingleValueLoop(ctx, doc, singleValueLoop{
		kind:                   models.ReviewKindDocumentType,
		promptName:             config.PromptDocumentTypeAnalyst,
		confirmationPromptName: config.PromptDocumentTypeReviewer,
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
			entity, err := d.resolveOrDeferEntity(ctx, doc, models.EntityKindDocumentType, analysis.SuggestedValue)
			if err != nil {
				return err
			}
			return d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{DocumentTypeID: &entity.ID})
		},
	})
}
