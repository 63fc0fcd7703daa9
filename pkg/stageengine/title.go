package stageengine

import (
	"context"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunTitle executes the Title stage's confirmation loop: the analyst
// proposes a new title, the reviewer ratifies it, and on confirmation the
// document's title field is overwritten.
func (d *Deps) RunTitle(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string) (Result, error) {
	return d.runSingleValueLoop(ctx, doc, singleValueLoop{
		kind:                   models.ReviewKindTitle,
		promptName:             config.PromptTitleAnalyst,
		confirmationPromptName: config.PromptTitleReviewer,
		sourceTag:              sourceTag,
		targetTag:              targetTag,
		manualReviewTag:        manualReviewTag,
		renderData: func(doc *models.Document, feedback string) map[string]any {
			return map[string]any{
				"document_content": d.promptContent(doc.Content),
				"existing_title":   doc.Title,
				"feedback":         feedback,
			}
		},
		apply: func(ctx context.Context, doc *models.Document, analysis models.Analysis) error {
			value := analysis.SuggestedValue
			return d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{Title: &value})
		},
	})
}
