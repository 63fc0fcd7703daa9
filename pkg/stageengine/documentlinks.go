package stageengine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunDocumentLinks executes the Document Links stage. The analyst proposes
// candidate related-document IDs; each candidate must pass the
// embedding-similarity check before it is eligible; the
// reviewer then ratifies the surviving set, which is written into the
// configured documentlink custom field.
//
// Like Custom Fields, the stage performs no tag transition of its own;
// nextTag is only recorded on a PendingReview.
func (d *Deps) RunDocumentLinks(ctx context.Context, doc *models.Document, nextTag, manualReviewTag string) (Result, error) {
	linkField, ok := d.documentLinkField()
	if !ok {
		d.logger().Debug("no documentlink custom field configured, skipping stage", "doc_id", doc.ID)
		return Result{Success: true}, nil
	}

	feedback := ""
	var last models.Analysis

	for attempt := 1; attempt <= d.MaxRetries; attempt++ {
		prompt, err := d.Prompts.Render(config.PromptDocumentLinksAnalyst, d.PromptLanguage, map[string]any{
			"document_content": d.promptContent(doc.Content),
			"document_title":   doc.Title,
			"feedback":         feedback,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render document links prompt: %w", err)
		}
		raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		analysis := llmclient.ParseAnalysis(raw)
		last = analysis

		candidates := linkCandidates(analysis, doc.ID)
		if len(candidates) == 0 {
			feedback = "prior suggestion blocked/empty"
			continue
		}

		eligible := candidates
		if d.Similarity != nil {
			eligible, err = d.Similarity.FilterCandidates(ctx, doc, candidates)
			if err != nil {
				return Result{}, fmt.Errorf("stageengine: similarity check: %w", err)
			}
		} else {
			// No vector store means no way to verify a link; nothing is
			// eligible.
			eligible = nil
		}
		if len(eligible) == 0 {
			feedback = "prior suggestion blocked/empty"
			continue
		}

		confirmPrompt, err := d.Prompts.Render(config.PromptDocumentLinksReviewer, d.PromptLanguage, map[string]any{
			"excerpt":         excerpt(doc.Content),
			"suggested_value": joinIDs(eligible),
			"reasoning":       analysis.Reasoning,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render document links reviewer prompt: %w", err)
		}
		verdictRaw, err := d.LLM.Generate(ctx, config.ModelRoleSmall, confirmPrompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		verdict := llmclient.ParseConfirmation(verdictRaw, d.ConfirmKeywords)

		if verdict.Confirmed {
			if err := d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{
				CustomFields: map[int]any{linkField.ID: eligible},
			}); err != nil {
				return Result{}, fmt.Errorf("stageengine: write document links for %d: %w", doc.ID, err)
			}
			return Result{Success: true, Value: joinIDs(eligible), Attempts: attempt}, nil
		}
		if verdict.Feedback != "" {
			feedback = verdict.Feedback
		} else {
			feedback = "not confirmed"
		}
	}

	return d.escalate(ctx, doc, models.ReviewKindDocumentLink, last, feedback, nextTag, manualReviewTag)
}

// documentLinkField returns the first configured custom field of type
// documentlink, the write target for approved links.
func (d *Deps) documentLinkField() (models.CustomFieldDef, bool) {
	if d.CustomFields == nil {
		return models.CustomFieldDef{}, false
	}
	for _, def := range d.CustomFields.Fields {
		if def.DataType == models.CustomFieldDocumentLink {
			return def, true
		}
	}
	return models.CustomFieldDef{}, false
}

// linkCandidates extracts proposed related-document IDs from an analysis,
// dropping self-references.
func linkCandidates(analysis models.Analysis, selfID int) []int {
	var raw any = analysis.Extra["candidates"]
	if raw == nil {
		raw = analysis.SuggestedValue
	}
	ids, err := documentIDList(raw)
	if err != nil {
		return nil
	}
	out := ids[:0]
	for _, id := range ids {
		if id != selfID {
			out = append(out, id)
		}
	}
	return out
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
