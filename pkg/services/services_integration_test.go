package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/services"
	testdb "github.com/codeready-toolchain/corvid/test/database"
)

func TestProcessingLogAppendAndReplay(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProcessingLogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, 42, "title", "step_start", nil))
	require.NoError(t, svc.Append(ctx, 42, "title", "step_complete", map[string]any{"attempts": 1}))
	require.NoError(t, svc.Append(ctx, 7, "ocr", "step_start", nil))

	entries, err := svc.ListByDoc(ctx, 42)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "step_start", entries[0].EventType)
	assert.Equal(t, "step_complete", entries[1].EventType)

	last, err := svc.LastActivityAt(ctx, 42)
	require.NoError(t, err)
	assert.False(t, last.IsZero())

	never, err := svc.LastActivityAt(ctx, 999)
	require.NoError(t, err)
	assert.True(t, never.IsZero())
}

func TestProcessingLogValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProcessingLogService(client.Client)

	err := svc.Append(context.Background(), 1, "", "step_start", nil)
	assert.True(t, services.IsValidationError(err))
}

func TestProcessingLogPrune(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProcessingLogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, 1, "ocr", "step_start", nil))

	// A cutoff in the past removes nothing; a future cutoff removes the
	// entry just written.
	n, err := svc.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.Prune(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestJobStateUpdateRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewJobStateService(client.Client)
	ctx := context.Background()

	err := svc.Update(ctx, "admission", func(js *models.JobStateResponse) {
		now := time.Now()
		js.LastCheckAt = &now
		doc := 42
		js.CurrentlyProcessingDoc = &doc
		js.ProcessedSinceStart++
	})
	require.NoError(t, err)

	state, err := svc.Get(ctx, "admission")
	require.NoError(t, err)
	assert.Equal(t, 1, state.ProcessedSinceStart)
	require.NotNil(t, state.CurrentlyProcessingDoc)
	assert.Equal(t, 42, *state.CurrentlyProcessingDoc)

	// Clearing the in-flight doc persists.
	err = svc.Update(ctx, "admission", func(js *models.JobStateResponse) {
		js.CurrentlyProcessingDoc = nil
	})
	require.NoError(t, err)
	state, err = svc.Get(ctx, "admission")
	require.NoError(t, err)
	assert.Nil(t, state.CurrentlyProcessingDoc)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingsRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSettingsService(client.Client)
	ctx := context.Background()

	value, err := svc.Get(ctx, "prompt_language", "en")
	require.NoError(t, err)
	assert.Equal(t, "en", value)

	require.NoError(t, svc.Set(ctx, "prompt_language", "de"))
	require.NoError(t, svc.Set(ctx, "prompt_language", "fr"))

	value, err = svc.Get(ctx, "prompt_language", "en")
	require.NoError(t, err)
	assert.Equal(t, "fr", value)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"prompt_language": "fr"}, all)
}
