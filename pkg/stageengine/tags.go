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

// tagDelta is the Tags stage's analysis payload: tag names to add to and
// remove from the document. Parsed from the analyst's Extra fields.
type tagDelta struct {
	Add    []string
	Remove []string
}

func parseTagDelta(analysis models.Analysis) tagDelta {
	delta := tagDelta{
		Add:    stringSlice(analysis.Extra["add"]),
		Remove: stringSlice(analysis.Extra["remove"]),
	}
	// A bare single-value response (fallback parse path) is taken as one
	// tag to add.
	if len(delta.Add) == 0 && len(delta.Remove) == 0 && analysis.SuggestedValue != "" {
		delta.Add = splitCSV(analysis.SuggestedValue)
	}
	return delta
}

func (t tagDelta) empty() bool {
	return len(t.Add) == 0 && len(t.Remove) == 0
}

func (t tagDelta) String() string {
	var parts []string
	if len(t.Add) > 0 {
		parts = append(parts, "+"+strings.Join(t.Add, ", +"))
	}
	if len(t.Remove) > 0 {
		parts = append(parts, "-"+strings.Join(t.Remove, ", -"))
	}
	return strings.Join(parts, "; ")
}

// RunTags executes the Tags stage. The analyst proposes a (to_add,
// to_remove) delta over the document's tag set; the reviewer ratifies the
// delta as a whole; unseen tag names follow the require_user_for_new_
// entities policy gate. Workflow tags are never part of the delta: any the
// analyst names are stripped before the delta is judged.
func (d *Deps) RunTags(ctx context.Context, doc *models.Document, sourceTag, targetTag, manualReviewTag string, workflowTags map[string]bool) (Result, error) {
	existing, err := d.DMS.ListEntities(ctx, models.EntityKindTag)
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: list tags: %w", err)
	}
	existingNames := make([]string, 0, len(existing))
	for _, e := range existing {
		if !workflowTags[e.Name] {
			existingNames = append(existingNames, e.Name)
		}
	}

	feedback := ""
	var last models.Analysis
	var lastDelta tagDelta

	for attempt := 1; attempt <= d.MaxRetries; attempt++ {
		prompt, err := d.Prompts.Render(config.PromptTagsAnalyst, d.PromptLanguage, map[string]any{
			"document_content":  d.promptContent(doc.Content),
			"existing_entities": existingNames,
			"current_tags":      strippedTagNames(doc.TagNames, workflowTags),
			"feedback":          feedback,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render tags prompt: %w", err)
		}
		raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		analysis := llmclient.ParseAnalysis(raw)
		last = analysis

		delta := parseTagDelta(analysis)
		delta, err = d.filterTagDelta(ctx, delta, workflowTags)
		if err != nil {
			return Result{}, err
		}
		lastDelta = delta
		if delta.empty() {
			feedback = "prior suggestion blocked/empty"
			continue
		}

		confirmPrompt, err := d.Prompts.Render(config.PromptTagsReviewer, d.PromptLanguage, map[string]any{
			"excerpt":         excerpt(doc.Content),
			"suggested_value": delta.String(),
			"reasoning":       analysis.Reasoning,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render tags reviewer prompt: %w", err)
		}
		verdictRaw, err := d.LLM.Generate(ctx, config.ModelRoleSmall, confirmPrompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		verdict := llmclient.ParseConfirmation(verdictRaw, d.ConfirmKeywords)

		if verdict.Confirmed {
			deferred, err := d.applyTagDelta(ctx, doc, delta)
			if err != nil {
				return Result{}, err
			}
			if err := d.DMS.TransitionTag(ctx, doc.ID, sourceTag, targetTag); err != nil {
				return Result{}, fmt.Errorf("stageengine: transition tag after tags stage: %w", err)
			}
			return Result{Success: true, Value: delta.String(), Attempts: attempt, ReviewIDs: deferred}, nil
		}
		if verdict.Feedback != "" {
			feedback = verdict.Feedback
		} else {
			feedback = "not confirmed"
		}
	}

	last.SuggestedValue = lastDelta.String()
	if last.SuggestedValue == "" {
		last.SuggestedValue = strings.TrimSpace(last.Reasoning)
	}
	return d.escalate(ctx, doc, models.ReviewKindTag, last, feedback, targetTag, manualReviewTag)
}

// filterTagDelta drops blocklisted names and anything naming a workflow
// tag from the proposed delta.
func (d *Deps) filterTagDelta(ctx context.Context, delta tagDelta, workflowTags map[string]bool) (tagDelta, error) {
	out := tagDelta{}
	for _, name := range delta.Add {
		if workflowTags[name] {
			continue
		}
		blocked, err := d.Reviews.IsBlocked(ctx, models.ReviewKindTag, name)
		if err != nil {
			return tagDelta{}, fmt.Errorf("stageengine: blocklist check: %w", err)
		}
		if !blocked {
			out.Add = append(out.Add, name)
		}
	}
	for _, name := range delta.Remove {
		if !workflowTags[name] {
			out.Remove = append(out.Remove, name)
		}
	}
	return out, nil
}

// applyTagDelta writes a confirmed delta: additions of existing tags go
// straight to the DMS; additions naming a net-new tag follow the policy
// gate, each becoming a schema-suggestion review instead of an auto-create
// when the policy forbids it (the rest of the delta still applies).
// Returns the IDs of any reviews enqueued for deferred additions.
func (d *Deps) applyTagDelta(ctx context.Context, doc *models.Document, delta tagDelta) ([]string, error) {
	existing, err := d.DMS.ListEntities(ctx, models.EntityKindTag)
	if err != nil {
		return nil, fmt.Errorf("stageengine: list tags: %w", err)
	}

	var deferred []string
	for _, name := range delta.Add {
		if !nameExists(entityNames(existing), name) && d.RequireUserForNewEntities {
			review, err := d.Reviews.Add(ctx, models.AddReviewRequest{
				DocID:                doc.ID,
				DocTitle:             doc.Title,
				Kind:                 models.ReviewKindSchemaSuggestion,
				Suggestion:           name,
				NormalizedSuggestion: reviewqueue.Normalize(name),
				Metadata: map[string]any{
					"entity_kind": string(models.EntityKindTag),
					"confidence":  0.0,
				},
			})
			if err != nil {
				return nil, fmt.Errorf("stageengine: enqueue tag suggestion: %w", err)
			}
			deferred = append(deferred, review.ID)
			continue
		}
		if err := d.DMS.AddTagByName(ctx, doc.ID, name); err != nil {
			return nil, fmt.Errorf("stageengine: add tag %q: %w", name, err)
		}
	}
	for _, name := range delta.Remove {
		if err := d.DMS.RemoveTagByName(ctx, doc.ID, name); err != nil {
			return nil, fmt.Errorf("stageengine: remove tag %q: %w", name, err)
		}
	}
	return deferred, nil
}

func entityNames(entities []models.Entity) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

func strippedTagNames(names []string, workflowTags map[string]bool) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !workflowTags[n] {
			out = append(out, n)
		}
	}
	return out
}

func stringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	default:
		return nil
	}
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
