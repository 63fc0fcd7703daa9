package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// Maintenance hosts the scheduled maintenance jobs: each has an
// enabled flag (an empty schedule disables it), a cron schedule, and an
// idempotent execution. Jobs share the scheduler's JobState persistence.
type Maintenance struct {
	cron   *cron.Cron
	jobs   JobStates
	logger *slog.Logger
}

// NewMaintenance constructs an empty maintenance runner.
func NewMaintenance(jobs JobStates) *Maintenance {
	return &Maintenance{
		cron:   cron.New(),
		jobs:   jobs,
		logger: slog.Default().With("component", "maintenance"),
	}
}

// Register schedules job under name with a cron expression. An empty
// schedule disables the job. Presets "daily", "weekly", and "monthly" are
// accepted alongside raw cron expressions.
func (m *Maintenance) Register(name, schedule string, job func(context.Context) error) error {
	if schedule == "" {
		m.logger.Info("maintenance job disabled", "job", name)
		return nil
	}
	switch schedule {
	case "daily":
		schedule = "@daily"
	case "weekly":
		schedule = "@weekly"
	case "monthly":
		schedule = "@monthly"
	}
	_, err := m.cron.AddFunc(schedule, func() {
		ctx := context.Background()
		m.logger.Info("maintenance job starting", "job", name)
		start := time.Now()
		runErr := job(ctx)
		m.jobs.Update(ctx, name, func(js *models.JobStateResponse) {
			now := time.Now()
			js.LastCheckAt = &now
			if runErr != nil {
				js.ErrorsSinceStart++
			} else {
				js.ProcessedSinceStart++
			}
		})
		if runErr != nil {
			m.logger.Error("maintenance job failed", "job", name, "error", runErr)
			return
		}
		m.logger.Info("maintenance job finished", "job", name, "duration", time.Since(start))
	})
	if err != nil {
		return fmt.Errorf("scheduler: register maintenance job %s: %w", name, err)
	}
	return nil
}

// Start begins firing registered jobs.
func (m *Maintenance) Start() {
	m.cron.Start()
}

// Stop halts the cron scheduler, waiting for a running job to finish.
func (m *Maintenance) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// SchemaCleanupStore is the review-queue surface the schema-cleanup job
// needs.
type SchemaCleanupStore interface {
	SimilarGroups(ctx context.Context) ([]models.SimilarGroup, error)
	Remove(ctx context.Context, id string) error
}

// SchemaCleanup merges duplicate schema suggestions: when several open
// schema_suggestion reviews share a normalized name, all but the oldest
// are dropped, so a reviewer dispositions each proposed entity once.
// Re-running against an already-clean queue is a no-op.
func SchemaCleanup(store SchemaCleanupStore) func(context.Context) error {
	return func(ctx context.Context) error {
		groups, err := store.SimilarGroups(ctx)
		if err != nil {
			return fmt.Errorf("schema cleanup: %w", err)
		}
		removed := 0
		for _, group := range groups {
			if group.Kind != models.ReviewKindSchemaSuggestion || len(group.Reviews) < 2 {
				continue
			}
			// Reviews arrive newest-first grouped by suggestion; keep the
			// oldest so attempts/feedback history survives.
			keep := group.Reviews[len(group.Reviews)-1]
			for _, review := range group.Reviews {
				if review.ID == keep.ID {
					continue
				}
				if err := store.Remove(ctx, review.ID); err != nil {
					return fmt.Errorf("schema cleanup: remove %s: %w", review.ID, err)
				}
				removed++
			}
		}
		if removed > 0 {
			slog.Info("schema cleanup merged duplicate suggestions", "removed", removed)
		}
		return nil
	}
}
