package stageengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

func customFieldRegistry() *config.CustomFieldRegistry {
	return &config.CustomFieldRegistry{Fields: map[string]models.CustomFieldDef{
		"Total":       {ID: 10, Name: "Total", DataType: models.CustomFieldMonetary},
		"InvoiceDate": {ID: 11, Name: "InvoiceDate", DataType: models.CustomFieldDate},
		"Related":     {ID: 12, Name: "Related", DataType: models.CustomFieldDocumentLink},
	}}
}

func TestRunCustomFieldsWritesValidatedValues(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "fields", "extra": {"fields": {"Total": "€109,44", "InvoiceDate": "2024-01-15", "Unknown": "x"}}}`,
		"yes",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.CustomFields = customFieldRegistry()

	doc := &models.Document{ID: 42, Content: "Invoice total €109.44"}
	result, err := deps.RunCustomFields(context.Background(), doc, "llm-custom-fields-done", "llm-manual-review")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, dms.writes, 1)
	// Only the configured fields survive; the unknown name is ignored.
	assert.Equal(t, map[int]any{10: 109.44, 11: "2024-01-15"}, dms.writes[0].CustomFields)
	// No tag transition belongs to this stage.
	assert.Empty(t, dms.transitions)
}

func TestRunCustomFieldsDropsInvalidValueKeepsRest(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"extra": {"fields": {"Total": "about a hundred", "InvoiceDate": "2024-01-15"}}}`,
		"yes",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.CustomFields = customFieldRegistry()

	doc := &models.Document{ID: 42, Content: "Invoice"}
	result, err := deps.RunCustomFields(context.Background(), doc, "next", "mr")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, dms.writes, 1)
	assert.Equal(t, map[int]any{11: "2024-01-15"}, dms.writes[0].CustomFields)
}

func TestRunCustomFieldsNoRegistryIsNoop(t *testing.T) {
	llm := &fakeLLM{}
	dms := newFakeDMS()
	deps := testDeps(llm, dms, &fakeReviews{})

	result, err := deps.RunCustomFields(context.Background(), &models.Document{ID: 1}, "next", "mr")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, llm.calls)
}

type fakeSimilarity struct {
	eligible []int
	calls    [][]int
}

func (f *fakeSimilarity) FilterCandidates(_ context.Context, _ *models.Document, candidates []int) ([]int, error) {
	f.calls = append(f.calls, candidates)
	return f.eligible, nil
}

func TestRunDocumentLinksFiltersBySimilarity(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"extra": {"candidates": [41, 43, 99]}}`,
		"yes",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.CustomFields = customFieldRegistry()
	sim := &fakeSimilarity{eligible: []int{41, 43}}
	deps.Similarity = sim

	doc := &models.Document{ID: 42, Content: "Invoice", Title: "Invoice Amazon"}
	result, err := deps.RunDocumentLinks(context.Background(), doc, "llm-document-links-done", "llm-manual-review")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, sim.calls, 1)
	assert.Equal(t, []int{41, 43, 99}, sim.calls[0])
	require.Len(t, dms.writes, 1)
	assert.Equal(t, map[int]any{12: []int{41, 43}}, dms.writes[0].CustomFields)
}

func TestRunDocumentLinksNoVectorStoreEscalates(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"extra": {"candidates": [41]}}`,
		`{"extra": {"candidates": [41]}}`,
		`{"extra": {"candidates": [41]}}`,
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.CustomFields = customFieldRegistry()

	doc := &models.Document{ID: 42, Content: "Invoice"}
	result, err := deps.RunDocumentLinks(context.Background(), doc, "next", "mr")
	require.NoError(t, err)

	// Without a similarity backend nothing is eligible; the stage never
	// writes a link and falls through to review.
	assert.True(t, result.NeedsReview)
	assert.Empty(t, dms.writes)
}
