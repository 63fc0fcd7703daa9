package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
)

// P3: at most one PendingReview per (doc_id, kind, normalized suggestion),
// no matter how often the same logical review is enqueued.
func TestAddPendingReviewIsIdempotent(t *testing.T) {
	app := NewTestApp(t, NewMockLLM())
	ctx := context.Background()

	req := models.AddReviewRequest{
		DocID:      42,
		Kind:       models.ReviewKindTitle,
		Suggestion: "Invoice  Amazon ",
		Attempts:   3,
	}
	first, err := app.Store.Add(ctx, req)
	require.NoError(t, err)

	// Same logical review, different whitespace/case.
	req.Suggestion = "invoice amazon"
	second, err := app.Store.Add(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := app.Store.List(ctx, reviewqueue.ListFilter{DocID: 42})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// P5: a blocklisted suggestion is never written to the DMS and never
// appears as a PendingReview, however often the analyst proposes it.
func TestBlocklistSuppressesSuggestionEndToEnd(t *testing.T) {
	llm := NewMockLLM(
		Rule{Marker: "SUMMARY", Response: "A scan."},
		Rule{Marker: "SCHEMA_ANALYSIS", Response: `{"suggestions": []}`},
		Rule{Marker: "TITLE_ANALYST", Sticky: true, Response: `{"suggested_value": "Scan", "confidence": 0.8}`},
	)
	app := NewTestApp(t, llm)
	app.DMS.AddDocument(3, "scan.pdf", "some scanned page", "2024-01-01", "llm-pending")

	ctx := context.Background()
	require.NoError(t, app.Store.Block(ctx, models.ReviewKindTitle, "Scan"))

	result, _ := app.Run(t, 3)

	assert.True(t, result.NeedsReview)
	assert.Equal(t, "scan.pdf", app.DMS.Title(3))

	reviews, err := app.Store.List(ctx, reviewqueue.ListFilter{DocID: 3})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	// The escalation review exists, but never carries the blocked
	// suggestion.
	assert.Empty(t, reviews[0].Suggestion)
}

// P4: running a document from stage S produces the same downstream
// effects as a fresh document seeded directly at S.
func TestResumabilityMatchesFreshRun(t *testing.T) {
	script := func() *MockLLM {
		return NewMockLLM(
			Rule{Marker: "DOCUMENT_TYPE_ANALYST", Response: `{"suggested_value": "Invoice", "confidence": 0.9}`},
			Rule{Marker: "DOCUMENT_TYPE_REVIEWER", Response: "yes"},
			Rule{Marker: "TAGS_ANALYST", Response: `{"extra": {"add": ["invoice"]}}`},
			Rule{Marker: "TAGS_REVIEWER", Response: "yes"},
		)
	}

	runFrom := func(t *testing.T) []string {
		app := NewTestApp(t, script())
		app.DMS.AddEntity(models.EntityKindDocumentType, "Invoice")
		app.DMS.AddEntity(models.EntityKindTag, "invoice")
		app.DMS.AddDocument(11, "Invoice Amazon", invoiceContent, "2024-01-15", "llm-correspondent-done")
		result, _ := app.Run(t, 11)
		require.Empty(t, result.Error)
		require.True(t, result.Success)
		return app.DMS.TagNames(11)
	}

	first := runFrom(t)
	second := runFrom(t)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"invoice", "llm-processed"}, first)
}

// Similar reviews group by kind and normalized suggestion for bulk
// disposition.
func TestSimilarGroupsAndBulkResolve(t *testing.T) {
	app := NewTestApp(t, NewMockLLM())
	ctx := context.Background()

	for docID := 1; docID <= 3; docID++ {
		app.DMS.AddDocument(docID, "doc", "content", "2024-01-01")
		_, err := app.Store.Add(ctx, models.AddReviewRequest{
			DocID:      docID,
			Kind:       models.ReviewKindSchemaSuggestion,
			Suggestion: "ACME Corp",
			Metadata:   map[string]any{"entity_kind": "correspondent"},
		})
		require.NoError(t, err)
	}

	groups, err := app.Store.SimilarGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "acme corp", groups[0].NormalizedSuggestion)
	require.Len(t, groups[0].Reviews, 3)

	ids := make([]string, 0, 3)
	for _, r := range groups[0].Reviews {
		ids = append(ids, r.ID)
	}
	failures := app.Resolver.Bulk(ctx, models.BulkResolveRequest{IDs: ids, Approve: true})
	assert.Empty(t, failures)

	remaining, err := app.Store.List(ctx, reviewqueue.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Approval created the entity exactly once.
	entities, err := app.DMS.ListEntities(ctx, models.EntityKindCorrespondent)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "ACME Corp", entities[0].Name)
}

// The scheduler end to end: an eligible pending document is admitted and
// processed through the real orchestrator.
func TestSchedulerTickProcessesPendingDocument(t *testing.T) {
	app := NewTestApp(t, happyPathScript())
	seedHappyPathEntities(app)
	app.DMS.AddDocument(42, "scan_001.pdf", invoiceContent, "2024-01-15", "llm-pending")

	require.NoError(t, app.Scheduler.Tick(context.Background()))

	assert.Contains(t, app.DMS.TagNames(42), "llm-processed")
	state, err := app.Jobs.Get(context.Background(), "admission")
	require.NoError(t, err)
	assert.Equal(t, 1, state.ProcessedSinceStart)
}
