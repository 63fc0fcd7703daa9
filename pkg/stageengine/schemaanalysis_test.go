package stageengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

func TestRunSchemaAnalysisEnqueuesNetNewEntities(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggestions": [
			{"entity_kind": "correspondent", "suggested_name": "Kleine Bäckerei Meier GmbH", "confidence": 0.85},
			{"entity_kind": "tag", "suggested_name": "bakery", "confidence": 0.7},
			{"entity_kind": "correspondent", "suggested_name": "Amazon", "confidence": 0.95}
		]}`,
	}}
	dms := newFakeDMS()
	dms.entities[models.EntityKindCorrespondent] = []models.Entity{{ID: 1, Name: "Amazon"}}
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	doc := &models.Document{ID: 11, Content: "Rechnung der Kleinen Bäckerei"}
	result, err := deps.RunSchemaAnalysis(context.Background(), doc)
	require.NoError(t, err)

	// Amazon already exists, so only two suggestions survive and the
	// pipeline pauses.
	assert.False(t, result.Success)
	assert.True(t, result.SchemaReviewNeeded)
	assert.Len(t, result.ReviewIDs, 2)
	require.Len(t, reviews.added, 2)
	assert.Equal(t, models.ReviewKindSchemaSuggestion, reviews.added[0].Kind)
	assert.Equal(t, "Kleine Bäckerei Meier GmbH", reviews.added[0].Suggestion)
	assert.Equal(t, "correspondent", reviews.added[0].Metadata["entity_kind"])
}

func TestRunSchemaAnalysisNoSuggestionsAdvances(t *testing.T) {
	llm := &fakeLLM{responses: []string{`{"suggestions": []}`}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	result, err := deps.RunSchemaAnalysis(context.Background(), &models.Document{ID: 11, Content: "x"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.SchemaReviewNeeded)
	assert.Empty(t, reviews.added)
}

func TestRunSchemaAnalysisMalformedResponseProposesNothing(t *testing.T) {
	llm := &fakeLLM{responses: []string{"I could not find anything of note."}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	result, err := deps.RunSchemaAnalysis(context.Background(), &models.Document{ID: 11, Content: "x"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, reviews.added)
}
