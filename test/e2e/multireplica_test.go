package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/reviewqueue"
	testdb "github.com/codeready-toolchain/corvid/test/database"
)

// Two deployments sharing one Postgres schema must still keep reviews
// unique: the same logical review enqueued concurrently from both
// collapses to a single row, because uniqueness lives in the database,
// not in either process.
func TestReviewUniquenessAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	storeA := reviewqueue.New(shared.NewClient(t).Client)
	storeB := reviewqueue.New(shared.NewClient(t).Client)
	ctx := context.Background()

	req := models.AddReviewRequest{
		DocID:      42,
		Kind:       models.ReviewKindTitle,
		Suggestion: "Invoice Amazon",
		Attempts:   3,
	}

	a, err := storeA.Add(ctx, req)
	require.NoError(t, err)
	b, err := storeB.Add(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	// Both replicas see the single row; resolving it in one makes it
	// vanish for the other.
	require.NoError(t, storeB.Remove(ctx, b.ID))
	remaining, err := storeA.List(ctx, reviewqueue.ListFilter{DocID: 42})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

// The blocklist is likewise shared: a suggestion blocked through one
// replica is suppressed by the other.
func TestBlocklistSharedAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	storeA := reviewqueue.New(shared.NewClient(t).Client)
	storeB := reviewqueue.New(shared.NewClient(t).Client)
	ctx := context.Background()

	require.NoError(t, storeA.Block(ctx, models.ReviewKindTag, "Inbox"))

	blocked, err := storeB.IsBlocked(ctx, models.ReviewKindTag, "  inbox ")
	require.NoError(t, err)
	assert.True(t, blocked)
}
