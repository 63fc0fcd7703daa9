package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/corvid/pkg/config"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (f *fakePruner) Prune(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return 3, nil
}

func (f *fakePruner) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestServicePrunesOnStart(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(&config.RetentionConfig{LogRetentionDays: 30, CleanupInterval: time.Hour}, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool { return pruner.calls() >= 1 }, time.Second, 10*time.Millisecond)

	pruner.mu.Lock()
	cutoff := pruner.cutoffs[0]
	pruner.mu.Unlock()
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, cutoff, time.Minute)
}

func TestServiceDisabledRetentionNeverPrunes(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(&config.RetentionConfig{LogRetentionDays: 0, CleanupInterval: 10 * time.Millisecond}, pruner)

	svc.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	assert.Zero(t, pruner.calls())
}

func TestStopIsIdempotentBeforeStart(t *testing.T) {
	svc := NewService(config.DefaultRetentionConfig(), &fakePruner{})
	svc.Stop()
}
