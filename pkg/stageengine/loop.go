package stageengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
)

// errNeedsSchemaReview signals that a stage's apply step deferred its
// write because the analyst proposed a net-new entity and policy forbids
// auto-creating it; the loop surfaces this as a needs-review outcome
// rather than a stage error, and nothing is written.
var errNeedsSchemaReview = errors.New("stageengine: needs schema review")

// singleValueLoop runs the shared confirmation-loop algorithm for
// a stage whose analysis is a single suggested value: render the analyst
// prompt, parse an Analysis, check the blocklist, render the reviewer
// prompt, parse a verdict, and on confirmation apply the value and
// transition the workflow tag. On retry-budget exhaustion the last
// analysis is queued for human review and the document's manual_review
// tag is applied.
type singleValueLoop struct {
	kind                   models.ReviewKind
	promptName             string
	confirmationPromptName string
	sourceTag              string
	targetTag              string
	manualReviewTag        string

	// renderData builds the analyst prompt's template variables for one
	// attempt; feedback is the previous attempt's rejection reason (or
	// empty on the first attempt).
	renderData func(doc *models.Document, feedback string) map[string]any

	// apply performs the stage's DMS write once the reviewer confirms.
	apply func(ctx context.Context, doc *models.Document, analysis models.Analysis) error
}

func (d *Deps) runSingleValueLoop(ctx context.Context, doc *models.Document, loop singleValueLoop) (Result, error) {
	feedback := ""
	var last models.Analysis

	for attempt := 1; attempt <= d.MaxRetries; attempt++ {
		prompt, err := d.Prompts.Render(loop.promptName, d.PromptLanguage, loop.renderData(doc, feedback))
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render %s: %w", loop.promptName, err)
		}
		raw, err := d.LLM.Generate(ctx, config.ModelRoleLarge, prompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		analysis := llmclient.ParseAnalysis(raw)
		last = analysis

		if analysis.SuggestedValue == "" {
			feedback = "prior suggestion blocked/empty"
			continue
		}
		blocked, err := d.Reviews.IsBlocked(ctx, loop.kind, analysis.SuggestedValue)
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: blocklist check: %w", err)
		}
		if blocked {
			feedback = "prior suggestion blocked/empty"
			continue
		}

		confirmPrompt, err := d.Prompts.Render(loop.confirmationPromptName, d.PromptLanguage, map[string]any{
			"excerpt":          excerpt(doc.Content),
			"suggested_value":  analysis.SuggestedValue,
			"reasoning":        analysis.Reasoning,
		})
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: render %s: %w", loop.confirmationPromptName, err)
		}
		verdictRaw, err := d.LLM.Generate(ctx, config.ModelRoleSmall, confirmPrompt, llmclient.Options{})
		if err != nil {
			return Result{}, err
		}
		verdict := llmclient.ParseConfirmation(verdictRaw, d.ConfirmKeywords)

		if verdict.Confirmed {
			if err := loop.apply(ctx, doc, analysis); err != nil {
				if errors.Is(err, errNeedsSchemaReview) {
					return Result{NeedsReview: true, SchemaReviewNeeded: true, Attempts: attempt}, nil
				}
				return Result{}, fmt.Errorf("stageengine: apply %s: %w", loop.kind, err)
			}
			if err := d.DMS.TransitionTag(ctx, doc.ID, loop.sourceTag, loop.targetTag); err != nil {
				return Result{}, fmt.Errorf("stageengine: transition tag for %s: %w", loop.kind, err)
			}
			return Result{Success: true, Value: analysis.SuggestedValue, Attempts: attempt}, nil
		}
		if verdict.Feedback != "" {
			feedback = verdict.Feedback
		} else {
			feedback = "not confirmed"
		}
	}

	return d.escalate(ctx, doc, loop.kind, last, feedback, loop.targetTag, loop.manualReviewTag)
}

// escalate enqueues a PendingReview for the last analysis attempted and
// tags the document manual_review. A blocklisted last suggestion is
// blanked before enqueueing so it never reappears in the review queue.
func (d *Deps) escalate(ctx context.Context, doc *models.Document, kind models.ReviewKind, last models.Analysis, feedback, nextTag, manualReviewTag string) (Result, error) {
	if last.SuggestedValue != "" {
		blocked, err := d.Reviews.IsBlocked(ctx, kind, last.SuggestedValue)
		if err != nil {
			return Result{}, fmt.Errorf("stageengine: blocklist check on escalation: %w", err)
		}
		if blocked {
			last.SuggestedValue = ""
			last.Alternatives = nil
		}
	}
	lastFeedback := feedback
	nextTagCopy := nextTag
	review, err := d.Reviews.Add(ctx, models.AddReviewRequest{
		DocID:                doc.ID,
		DocTitle:             doc.Title,
		Kind:                 kind,
		Suggestion:           last.SuggestedValue,
		NormalizedSuggestion: reviewqueue.Normalize(last.SuggestedValue),
		Reasoning:            last.Reasoning,
		Alternatives:         last.Alternatives,
		Attempts:             d.MaxRetries,
		LastFeedback:         &lastFeedback,
		NextTag:              &nextTagCopy,
	})
	if err != nil {
		return Result{}, fmt.Errorf("stageengine: enqueue review for %s: %w", kind, err)
	}
	if manualReviewTag != "" {
		if err := d.DMS.AddTagByName(ctx, doc.ID, manualReviewTag); err != nil {
			return Result{}, fmt.Errorf("stageengine: tag manual_review for %s: %w", kind, err)
		}
	}
	d.logger().Info("stage escalated to review", "kind", kind, "doc_id", doc.ID, "review_id", review.ID)
	return Result{NeedsReview: true, Attempts: d.MaxRetries, ReviewIDs: []string{review.ID}}, nil
}
