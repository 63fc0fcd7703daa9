package stageengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

func TestRunTagsAppliesConfirmedDelta(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "delta", "reasoning": "invoice", "extra": {"add": ["invoice", "2024"], "remove": ["inbox"]}}`,
		"yes, sensible tags",
	}}
	dms := newFakeDMS()
	dms.entities[models.EntityKindTag] = []models.Entity{
		{ID: 1, Name: "invoice"},
		{ID: 2, Name: "2024"},
		{ID: 3, Name: "inbox"},
	}
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	doc := &models.Document{ID: 5, Content: "Invoice 2024", TagNames: []string{"inbox", "llm-document-type-done"}}
	workflowTags := map[string]bool{"llm-document-type-done": true, "llm-tags-done": true}

	result, err := deps.RunTags(context.Background(), doc, "llm-document-type-done", "llm-tags-done", "llm-manual-review", workflowTags)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.ElementsMatch(t, []string{"invoice", "2024"}, dms.addedTags)
	assert.Equal(t, []string{"inbox"}, dms.removedTags)
	assert.Equal(t, []string{"llm-document-type-done->llm-tags-done"}, dms.transitions)
}

func TestRunTagsNeverTouchesWorkflowTags(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"extra": {"add": ["llm-processed", "receipt"], "remove": ["llm-ocr-done"]}}`,
		"yes",
	}}
	dms := newFakeDMS()
	dms.entities[models.EntityKindTag] = []models.Entity{{ID: 4, Name: "receipt"}}
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	workflowTags := map[string]bool{"llm-processed": true, "llm-ocr-done": true, "llm-tags-done": true, "llm-document-type-done": true}
	doc := &models.Document{ID: 5, Content: "receipt"}

	result, err := deps.RunTags(context.Background(), doc, "llm-document-type-done", "llm-tags-done", "llm-manual-review", workflowTags)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, []string{"receipt"}, dms.addedTags)
	assert.Empty(t, dms.removedTags)
}

func TestRunTagsNewTagDeferredUnderPolicy(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"extra": {"add": ["brand-new-tag"]}}`,
		"yes",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.RequireUserForNewEntities = true

	doc := &models.Document{ID: 5, Content: "text"}
	result, err := deps.RunTags(context.Background(), doc, "src", "dst", "mr", map[string]bool{})
	require.NoError(t, err)

	// The delta was approved, so the stage succeeds and transitions, but
	// the unseen tag is routed to review instead of being created.
	assert.True(t, result.Success)
	assert.Len(t, result.ReviewIDs, 1)
	assert.Empty(t, dms.addedTags)
	require.Len(t, reviews.added, 1)
	assert.Equal(t, models.ReviewKindSchemaSuggestion, reviews.added[0].Kind)
	assert.Equal(t, "brand-new-tag", reviews.added[0].Suggestion)
}

func TestParseTagDeltaFallsBackToCSV(t *testing.T) {
	delta := parseTagDelta(models.Analysis{SuggestedValue: "invoice, 2024"})
	assert.Equal(t, []string{"invoice", "2024"}, delta.Add)
	assert.Empty(t, delta.Remove)
}
