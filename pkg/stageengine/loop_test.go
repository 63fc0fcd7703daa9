package stageengine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/llmclient"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// fakeLLM returns scripted responses in order, alternating analyst and
// reviewer calls the way the confirmation loop interleaves them.
type fakeLLM struct {
	responses []string
	calls     int
	roles     []config.ModelRole
}

func (f *fakeLLM) Generate(_ context.Context, role config.ModelRole, _ string, _ llmclient.Options) (string, error) {
	if f.calls >= len(f.responses) {
		return "", fmt.Errorf("fakeLLM: unscripted call %d", f.calls)
	}
	resp := f.responses[f.calls]
	f.roles = append(f.roles, role)
	f.calls++
	return resp, nil
}

type fakeDMS struct {
	entities    map[models.EntityKind][]models.Entity
	writes      []models.WriteDocumentRequest
	transitions []string
	addedTags   []string
	removedTags []string
	nextID      int
}

func newFakeDMS() *fakeDMS {
	return &fakeDMS{entities: map[models.EntityKind][]models.Entity{}, nextID: 100}
}

func (f *fakeDMS) CreateOrLookupEntity(_ context.Context, kind models.EntityKind, name string) (models.Entity, error) {
	for _, e := range f.entities[kind] {
		if e.Name == name {
			return e, nil
		}
	}
	f.nextID++
	e := models.Entity{ID: f.nextID, Name: name}
	f.entities[kind] = append(f.entities[kind], e)
	return e, nil
}

func (f *fakeDMS) WriteDocument(_ context.Context, _ int, req models.WriteDocumentRequest) error {
	f.writes = append(f.writes, req)
	return nil
}

func (f *fakeDMS) TransitionTag(_ context.Context, _ int, from, to string) error {
	f.transitions = append(f.transitions, from+"->"+to)
	return nil
}

func (f *fakeDMS) AddTagByName(_ context.Context, _ int, name string) error {
	f.addedTags = append(f.addedTags, name)
	return nil
}

func (f *fakeDMS) RemoveTagByName(_ context.Context, _ int, name string) error {
	f.removedTags = append(f.removedTags, name)
	return nil
}

func (f *fakeDMS) ListEntities(_ context.Context, kind models.EntityKind) ([]models.Entity, error) {
	return f.entities[kind], nil
}

func (f *fakeDMS) CustomFieldDefs(_ context.Context) ([]models.CustomFieldDef, error) {
	return nil, nil
}

func (f *fakeDMS) DownloadDocument(_ context.Context, _ int) ([]byte, string, error) {
	return []byte("binary"), "doc.pdf", nil
}

type fakeReviews struct {
	blocked map[string]bool
	added   []models.AddReviewRequest
}

func (f *fakeReviews) IsBlocked(_ context.Context, _ models.ReviewKind, suggestion string) (bool, error) {
	return f.blocked[suggestion], nil
}

func (f *fakeReviews) Add(_ context.Context, req models.AddReviewRequest) (*models.ReviewResponse, error) {
	f.added = append(f.added, req)
	return &models.ReviewResponse{ID: fmt.Sprintf("review-%d", len(f.added)), DocID: req.DocID, Kind: req.Kind}, nil
}

// passthroughPrompts renders every template as its name, enough for
// engines that never inspect the rendered text.
type passthroughPrompts struct{}

func (passthroughPrompts) Render(name, _ string, _ any) (string, error) {
	return name, nil
}

func testDeps(llm *fakeLLM, dms *fakeDMS, reviews *fakeReviews) *Deps {
	return &Deps{
		LLM:             llm,
		DMS:             dms,
		Reviews:         reviews,
		Prompts:         passthroughPrompts{},
		MaxRetries:      3,
		ConfirmKeywords: []string{"yes", "confirmed"},
		PromptLanguage:  "en",
	}
}

func TestRunTitleConfirmedFirstAttempt(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "Invoice Amazon January 2024", "reasoning": "header", "confidence": 0.9}`,
		"Yes, that matches the document.",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	doc := &models.Document{ID: 42, Content: "Invoice from Amazon EU"}
	result, err := deps.RunTitle(context.Background(), doc, "llm-ocr-done", "llm-title-done", "llm-manual-review")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, "Invoice Amazon January 2024", result.Value)

	require.Len(t, dms.writes, 1)
	require.NotNil(t, dms.writes[0].Title)
	assert.Equal(t, "Invoice Amazon January 2024", *dms.writes[0].Title)
	assert.Equal(t, []string{"llm-ocr-done->llm-title-done"}, dms.transitions)
	assert.Empty(t, reviews.added)

	// Analyst is the large role, reviewer the small role.
	require.Len(t, llm.roles, 2)
	assert.Equal(t, config.ModelRoleLarge, llm.roles[0])
	assert.Equal(t, config.ModelRoleSmall, llm.roles[1])
}

func TestRunTitleConvergenceFailureEscalates(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "Document"}`, "no, too generic",
		`{"suggested_value": "Document"}`, "no, too generic",
		`{"suggested_value": "Document"}`, "no, too generic",
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)

	doc := &models.Document{ID: 42, Content: "Invoice from Amazon EU"}
	result, err := deps.RunTitle(context.Background(), doc, "llm-ocr-done", "llm-title-done", "llm-manual-review")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.NeedsReview)
	assert.Equal(t, 3, result.Attempts)

	// No title write reached the DMS.
	assert.Empty(t, dms.writes)
	assert.Empty(t, dms.transitions)
	assert.Equal(t, []string{"llm-manual-review"}, dms.addedTags)

	require.Len(t, reviews.added, 1)
	added := reviews.added[0]
	assert.Equal(t, models.ReviewKindTitle, added.Kind)
	assert.Equal(t, 3, added.Attempts)
	require.NotNil(t, added.LastFeedback)
	assert.Equal(t, "no, too generic", *added.LastFeedback)
	require.NotNil(t, added.NextTag)
	assert.Equal(t, "llm-title-done", *added.NextTag)
}

func TestRunTitleBlocklistedSuggestionNeverSurfaces(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "Scan"}`,
		`{"suggested_value": "Scan"}`,
		`{"suggested_value": "Scan"}`,
	}}
	dms := newFakeDMS()
	reviews := &fakeReviews{blocked: map[string]bool{"Scan": true}}
	deps := testDeps(llm, dms, reviews)

	doc := &models.Document{ID: 7, Content: "scanned page"}
	result, err := deps.RunTitle(context.Background(), doc, "a", "b", "mr")
	require.NoError(t, err)

	// Blocked on every attempt: no reviewer call is ever made, no write
	// happens, and the loop falls through to escalation with the blocked
	// suggestion blanked out.
	assert.True(t, result.NeedsReview)
	assert.Empty(t, dms.writes)
	require.Len(t, reviews.added, 1)
	assert.Empty(t, reviews.added[0].Suggestion)
	for _, role := range llm.roles {
		assert.Equal(t, config.ModelRoleLarge, role)
	}
}

func TestRunCorrespondentPolicyGateDefersNewEntity(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "Kleine Bäckerei Meier GmbH", "confidence": 0.8}`,
		"yes",
	}}
	dms := newFakeDMS()
	dms.entities[models.EntityKindCorrespondent] = []models.Entity{{ID: 1, Name: "Amazon"}}
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.RequireUserForNewEntities = true

	doc := &models.Document{ID: 9, Content: "Rechnung"}
	result, err := deps.RunCorrespondent(context.Background(), doc, "llm-title-done", "llm-correspondent-done", "llm-manual-review")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.NeedsReview)
	assert.True(t, result.SchemaReviewNeeded)

	// The unseen name became a schema suggestion instead of an entity.
	require.Len(t, reviews.added, 1)
	assert.Equal(t, models.ReviewKindSchemaSuggestion, reviews.added[0].Kind)
	assert.Equal(t, "Kleine Bäckerei Meier GmbH", reviews.added[0].Suggestion)
	assert.Equal(t, "correspondent", reviews.added[0].Metadata["entity_kind"])

	// No correspondent write, no transition.
	assert.Empty(t, dms.writes)
	assert.Empty(t, dms.transitions)
	assert.Len(t, dms.entities[models.EntityKindCorrespondent], 1)
}

func TestRunCorrespondentResolvesExistingCaseInsensitive(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"suggested_value": "amazon", "confidence": 0.9}`,
		"confirmed",
	}}
	dms := newFakeDMS()
	dms.entities[models.EntityKindCorrespondent] = []models.Entity{{ID: 17, Name: "Amazon"}}
	reviews := &fakeReviews{blocked: map[string]bool{}}
	deps := testDeps(llm, dms, reviews)
	deps.RequireUserForNewEntities = true

	doc := &models.Document{ID: 9, Content: "Invoice from Amazon EU"}
	result, err := deps.RunCorrespondent(context.Background(), doc, "llm-title-done", "llm-correspondent-done", "llm-manual-review")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, dms.writes, 1)
	require.NotNil(t, dms.writes[0].CorrespondentID)
	assert.Equal(t, 17, *dms.writes[0].CorrespondentID)
}
