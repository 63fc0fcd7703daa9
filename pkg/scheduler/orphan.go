package scheduler

import (
	"context"
	"fmt"
	"time"
)

// OrphanSweeper re-admits documents stranded by a crash: a document
// carrying the manual_review tag but with no open PendingReview can never
// be re-admitted by the normal tick (the tag excludes it) and no human
// action will ever release it (there is nothing left to approve). The
// sweep lifts the tag once the document has been inactive past the
// configured threshold, after which the next tick picks it up again.
//
// Inactivity is judged by the processing log's newest entry for the
// document, since the DMS has no heartbeat of its own.
type OrphanSweeper struct {
	sched   *Scheduler
	lastLog LastActivitySource
}

// LastActivitySource reports when a document last produced a processing
// log entry; zero time means never.
type LastActivitySource interface {
	LastActivityAt(ctx context.Context, docID int) (time.Time, error)
}

// OrphanDMS extends the scheduler's DMS view with the tag-scoped listing
// the sweep needs.
type OrphanDMS interface {
	ListDocumentsByTag(ctx context.Context, tagName string) ([]int, error)
}

// NewOrphanSweeper wires a sweeper against the scheduler's collaborators.
func NewOrphanSweeper(sched *Scheduler, lastLog LastActivitySource) *OrphanSweeper {
	return &OrphanSweeper{sched: sched, lastLog: lastLog}
}

// Start runs the periodic sweep until ctx is cancelled or the scheduler
// stops. All deployments may run this independently; the operations are
// idempotent (lifting an absent tag is a no-op).
func (o *OrphanSweeper) Start(ctx context.Context) {
	o.sched.wg.Add(1)
	go func() {
		defer o.sched.wg.Done()
		ticker := time.NewTicker(o.sched.cfg.OrphanDetectionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-o.sched.stopCh:
				return
			case <-ticker.C:
				if err := o.Sweep(ctx); err != nil {
					o.sched.logger.Error("orphan sweep failed", "error", err)
				}
			}
		}
	}()
}

// Sweep performs one pass; Start calls it on every tick.
func (o *OrphanSweeper) Sweep(ctx context.Context) error {
	dms, ok := o.sched.dms.(OrphanDMS)
	if !ok {
		return nil
	}

	docIDs, err := dms.ListDocumentsByTag(ctx, o.sched.tags.ManualReview)
	if err != nil {
		return fmt.Errorf("scheduler: list manual-review docs: %w", err)
	}
	if len(docIDs) == 0 {
		return nil
	}

	inReview, err := o.sched.reviews.ListOpenDocIDs(ctx)
	if err != nil {
		return fmt.Errorf("scheduler: list reviewed docs: %w", err)
	}

	threshold := time.Now().Add(-o.sched.cfg.OrphanThreshold)
	recovered := 0
	for _, id := range docIDs {
		if inReview[id] {
			continue
		}
		last, err := o.lastLog.LastActivityAt(ctx, id)
		if err != nil {
			o.sched.logger.Warn("orphan sweep: last activity lookup failed", "doc_id", id, "error", err)
			continue
		}
		if !last.IsZero() && last.After(threshold) {
			continue
		}
		if err := o.sched.dms.RemoveTagByName(ctx, id, o.sched.tags.ManualReview); err != nil {
			o.sched.logger.Warn("orphan sweep: failed to lift manual_review", "doc_id", id, "error", err)
			continue
		}
		recovered++
	}
	if recovered > 0 {
		o.sched.logger.Info("orphan sweep recovered documents", "count", recovered)
	}
	return nil
}
