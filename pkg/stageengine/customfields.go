package stageengine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// RunCustomFields executes the Custom Fields stage. The analyst proposes a
// field-name → value map over the configured field selection; the reviewer
// ratifies the map as a whole; each value is type-validated before the
// write, and invalid values are dropped with a log entry while the rest of
// the map still applies.
//
// The stage performs no tag transition of its own; nextTag
// is only recorded on a PendingReview so approval can resume the pipeline.
func (d *Deps) RunCustomFields(ctx context.Context, doc *models.Document, nextTag, manualReviewTag string) (Result, error) {
	if d.CustomFields == nil || len(d.CustomFields.Fields) == 0 {
		return Result{Success: true}, nil
	}

	defs := make([]models.CustomFieldDef, 0, len(d.CustomFields.Fields))
	for _, def := range d.CustomFields.Fields {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	fieldDescs := make([]string, 0, len(defs))
	for _, def := range defs {
		fieldDescs = append(fieldDescs, fmt.Sprintf("%s (%s)", def.Name, def.DataType))
	}

	feedback := ""
	var last models.Analysis

	for attempt := 1; attempt <= d.MaxRetries; attempt++ {
		prompt, err := d.Prompts.Render(config.PromptCustomFieldsAnalyst, d.PromptLanguage, map[string]any{
			"document_content": d.promptContent(doc.Content),
			"fields":           fieldDescs,
			"feedback":         feedback,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render custom fields prompt: %w", err)
		}
		raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		analysis := llmclient.ParseAnalysis(raw)
		last = analysis

		proposed := fieldValues(analysis, defs)
		if len(proposed) == 0 {
			feedback = "prior suggestion blocked/empty"
			continue
		}

		rendered, _ := json.Marshal(proposed)
		confirmPrompt, err := d.Prompts.Render(config.PromptCustomFieldsReviewer, d.PromptLanguage, map[string]any{
			"excerpt":         excerpt(doc.Content),
			"suggested_value": string(rendered),
			"reasoning":       analysis.Reasoning,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render custom fields reviewer prompt: %w", err)
		}
		verdictRaw, err := d.LLM.Generate(ctx, config.ModelRoleSmall, confirmPrompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		verdict := llmclient.ParseConfirmation(verdictRaw, d.ConfirmKeywords)

		if verdict.Confirmed {
			if err := d.applyFieldValues(ctx, doc, defs, proposed); err != nil {
				return Result{}, err
			}
			return Result{Success: true, Value: string(rendered), Attempts: attempt}, nil
		}
		if verdict.Feedback != "" {
			feedback = verdict.Feedback
		} else {
			feedback = "not confirmed"
		}
	}

	if last.SuggestedValue == "" {
		if rendered, err := json.Marshal(last.Extra); err == nil && len(last.Extra) > 0 {
			last.SuggestedValue = string(rendered)
		}
	}
	return d.escalate(ctx, doc, models.ReviewKindCustomField, last, feedback, nextTag, manualReviewTag)
}

// fieldValues extracts the proposed field-name → value map from an
// analysis, keeping only names present in the configured selection.
func fieldValues(analysis models.Analysis, defs []models.CustomFieldDef) map[string]any {
	raw, ok := analysis.Extra["fields"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]any)
	for _, def := range defs {
		for name, value := range raw {
			if strings.EqualFold(name, def.Name) && value != nil {
				out[def.Name] = value
			}
		}
	}
	return out
}

// applyFieldValues validates each confirmed value against its field's
// declared type and writes the survivors in one document patch. Dropped
// values get a processing-log entry.
func (d *Deps) applyFieldValues(ctx context.Context, doc *models.Document, defs []models.CustomFieldDef, proposed map[string]any) error {
	byName := make(map[string]models.CustomFieldDef, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	writes := make(map[int]any)
	for name, value := range proposed {
		def := byName[name]
		normalized, err := ValidateFieldValue(def.DataType, value)
		if err != nil {
			d.logger().Warn("dropping invalid custom field value",
				"doc_id", doc.ID, "field", name, "type", def.DataType, "error", err)
			if d.Log != nil {
				d.Log.Append(ctx, doc.ID, "custom_fields", "value_dropped", map[string]any{
					"field":  name,
					"type":   string(def.DataType),
					"reason": err.Error(),
				})
			}
			continue
		}
		writes[def.ID] = normalized
	}
	if len(writes) == 0 {
		return nil
	}
	if err := d.DMS.WriteDocument(ctx, doc.ID, models.WriteDocumentRequest{CustomFields: writes}); err != nil {
		return fmt.Errorf("stageengine: write custom fields for %d: %w", doc.ID, err)
	}
	return nil
}
