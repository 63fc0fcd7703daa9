package stageengine

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunSummary executes the optional Summary stage: a single large-model
// call with no confirmation loop. The summary is written to the local
// processing log only, never to the DMS. Summary errors are fatal for the
// document, like OCR errors.
func (d *Deps) RunSummary(ctx context.Context, doc *models.Document, sourceTag, targetTag string) (Result, error) {
	prompt, err := d.Prompts.Render(config.PromptSummary, d.PromptLanguage, map[string]any{
		"document_content": d.promptContent(doc.Content),
	})
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: render summary prompt: %w", err)
	}

	raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
	if err != nil {
		return Result{}, err
	}

	if d.Log != nil {
		if err := d.Log.Append(ctx, doc.ID, "summary", "summary_written", map[string]any{
			"summary": raw,
		}); err != nil {
			return Result{}, fmt.Errorf("stageengine: store summary for %d: %w", doc.ID, err)
		}
	}

	if err := d.DMS.TransitionTag(ctx, doc.ID, sourceTag, targetTag); err != nil {
		return Result{}, fmt.Errorf("stageengine: transition tag after summary for %d: %w", doc.ID, err)
	}
	return Result{Success: true, Value: raw, Attempts: 1}, nil
}
