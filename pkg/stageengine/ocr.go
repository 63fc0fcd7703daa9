package stageengine

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunOCR executes the OCR stage: download the document's binary from the
// DMS, extract text via the external OCR provider, write the text back as
// the document's content, and transition pending → ocr_done. OCR is not
// LLM-driven and has no confirmation loop; any error here is fatal
// for the document and is surfaced to the orchestrator, which applies the
// failed tag.
func (d *Deps) RunOCR(ctx context.Context, doc *models.Document, sourceTag, targetTag string) (Result, error) {
	binary, filename, err := d.DMS.DownloadDocument(ctx, doc.ID)
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: download document %d: %w", doc.ID, err)
	}

	extracted, err := d.OCR.Extract(ctx, doc.ID, filename, binary)
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: ocr document %d: %w", doc.ID, err)
	}

	content := extracted.Text
	if err := d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{Content: &content}); err != nil {
		return Result{}, fmt.Errorf("stageengine: write ocr content for %d: %w", doc.ID, err)
	}
	doc.Content = content

	if err := d.DMS.TransitionTag(ctx, doc.ID, sourceTag, targetTag); err != nil {
		return Result{}, fmt.Errorf("stageengine: transition tag after ocr for %d: %w", doc.ID, err)
	}

	d.logger().Info("ocr complete", "doc_id", doc.ID, "pages", extracted.Pages, "chars", len(content))
	return Result{Success: true, Attempts: 1}, nil
}
