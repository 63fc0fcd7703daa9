// Package scheduler implements the admission controller: the
// long-running loop that discovers eligible documents in the DMS,
// admits them to the pipeline one at a time, pauses on user activity, and
// recovers orphaned documents after a crash. It also hosts the cron-driven
// maintenance jobs and the one-off bootstrap ingest.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codeready-toolchain/corvid/pkg/config"
	"github.com/codeready-toolchain/corvid/pkg/dmsclient"
	"github.com/codeready-toolchain/corvid/pkg/events"
	"github.com/codeready-toolchain/corvid/pkg/models"
	"github.com/codeready-toolchain/corvid/pkg/pipeline"
)

// jobAdmission is the JobState row name for the admission loop.
const jobAdmission = "admission"

// Orchestrator is the subset of pkg/pipeline.Orchestrator the scheduler
// drives.
type Orchestrator interface {
	Run(ctx context.Context, docID int, sink events.Sink) *pipeline.Result
}

// DMS is the subset of pkg/dmsclient.Client the scheduler polls through.
type DMS interface {
	ListCandidates(ctx context.Context, processedTagID int, excludeDocIDs map[int]bool) ([]*models.Document, error)
	TagIDForName(ctx context.Context, name string) (int, error)
	RemoveTagByName(ctx context.Context, docID int, name string) error
}

// Reviews is the subset of the review queue consulted for admission:
// documents with an open review are never re-admitted until the review is
// resolved.
type Reviews interface {
	ListOpenDocIDs(ctx context.Context) (map[int]bool, error)
}

// JobStates persists scheduler bookkeeping across restarts.
type JobStates interface {
	Update(ctx context.Context, jobName string, mutate func(*models.JobStateResponse)) error
}

// Notifier is told when a document lands in review or fails, so an
// operator hears about it without polling the queue. Nil disables it.
type Notifier interface {
	DocumentNeedsReview(ctx context.Context, docID int, docTitle string)
	DocumentFailed(ctx context.Context, docID int, reason string)
}

// Scheduler runs the admission loop.
type Scheduler struct {
	orchestrator Orchestrator
	dms          DMS
	reviews      Reviews
	jobs         JobStates
	notifier     Notifier
	activity     *ActivityTracker
	cfg          *config.QueueConfig
	tags         *config.WorkflowTagConfig
	logger       *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Cancel registry for the document currently in flight, so the API
	// can cancel a stuck run. The current run drains its active stage and
	// exits at the next suspension point.
	mu         sync.Mutex
	cancelDoc  context.CancelFunc
	currentDoc int
	started    bool
}

// New constructs a Scheduler. notifier may be nil.
func New(orchestrator Orchestrator, dms DMS, reviews Reviews, jobs JobStates, notifier Notifier, activity *ActivityTracker, cfg *config.QueueConfig, tags *config.WorkflowTagConfig) *Scheduler {
	return &Scheduler{
		orchestrator: orchestrator,
		dms:          dms,
		reviews:      reviews,
		jobs:         jobs,
		notifier:     notifier,
		activity:     activity,
		cfg:          cfg,
		tags:         tags,
		logger:       slog.Default().With("component", "scheduler"),
		stopCh:       make(chan struct{}),
	}
}

// Start launches the admission loop. Safe to call once; subsequent calls
// are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		s.logger.Warn("scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true
	s.mu.Unlock()

	if !s.cfg.Enabled {
		s.logger.Info("automatic processing disabled by configuration")
		return
	}

	s.logger.Info("starting scheduler", "poll_interval", s.cfg.PollInterval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop signals the loop to stop and waits for the in-flight document to
// drain its current stage, bounded by GracefulShutdownTimeout.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("scheduler stopped gracefully")
	case <-time.After(s.cfg.GracefulShutdownTimeout):
		s.logger.Warn("graceful shutdown timeout reached, cancelling in-flight document")
		s.CancelCurrent()
		<-done
	}
}

// CancelCurrent cancels the document currently being processed, if any.
// The run aborts at its next suspension point; the document's tag state
// stays coherent and it will be re-admitted on a later tick.
func (s *Scheduler) CancelCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelDoc != nil {
		s.logger.Info("cancelling in-flight document", "doc_id", s.currentDoc)
		s.cancelDoc()
	}
}

func (s *Scheduler) run(ctx context.Context) {
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(s.tickInterval()):
			if err := s.Tick(ctx); err != nil {
				if classifyFatal(err) {
					s.logger.Error("fatal admission error, stopping scheduler", "error", err)
					return
				}
				s.logger.Error("admission tick failed", "error", err)
			}
		}
	}
}

// tickInterval returns the poll interval with jitter, so multiple
// deployments against one DMS don't align their ticks.
func (s *Scheduler) tickInterval() time.Duration {
	d := s.cfg.PollInterval
	if s.cfg.PollIntervalJitter > 0 {
		d += time.Duration(rand.Int64N(int64(s.cfg.PollIntervalJitter)))
	}
	return d
}

// Tick performs one admission pass: skip on user activity, list eligible
// documents oldest-first, and run each admitted document's pipeline to
// completion or first pause. Exported so tests and the bootstrap path can
// drive ticks directly.
func (s *Scheduler) Tick(ctx context.Context) error {
	if s.cfg.PauseOnUserActivity && s.activity.ActiveWithin(s.cfg.UserActivityPause) {
		s.logger.Debug("skipping tick, user recently active")
		return nil
	}

	candidates, err := s.eligibleDocuments(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return s.jobs.Update(ctx, jobAdmission, func(js *models.JobStateResponse) {
			now := time.Now()
			js.LastCheckAt = &now
		})
	}

	for _, doc := range candidates {
		select {
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		// Re-check activity between documents, not just at tick start.
		if s.cfg.PauseOnUserActivity && s.activity.ActiveWithin(s.cfg.UserActivityPause) {
			return nil
		}
		s.processDocument(ctx, doc)
	}
	return nil
}

// eligibleDocuments lists admission candidates: documents carrying the
// pending tag or a stage-done tag but not processed, excluding any with an
// open PendingReview or a manual_review/failed sideband tag. Oldest first.
func (s *Scheduler) eligibleDocuments(ctx context.Context) ([]*models.Document, error) {
	processedID, err := s.dms.TagIDForName(ctx, s.tags.Processed)
	if err != nil {
		return nil, fmt.Errorf("scheduler: resolve processed tag: %w", err)
	}
	inReview, err := s.reviews.ListOpenDocIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("scheduler: list reviewed docs: %w", err)
	}

	docs, err := s.dms.ListCandidates(ctx, processedID, inReview)
	if err != nil {
		return nil, fmt.Errorf("scheduler: list candidates: %w", err)
	}

	stageTags := s.tags.ToTagNames()
	out := docs[:0]
	for _, doc := range docs {
		if hasTag(doc, s.tags.ManualReview) || hasTag(doc, s.tags.Failed) {
			continue
		}
		admissible := hasTag(doc, s.tags.Pending)
		for _, name := range stageTags {
			if name != "" && hasTag(doc, name) {
				admissible = true
			}
		}
		if !admissible {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

// processDocument runs one document's pipeline with a per-document timeout
// and records the outcome in JobState. Errors never propagate across
// documents.
func (s *Scheduler) processDocument(ctx context.Context, doc *models.Document) {
	docCtx, cancel := context.WithTimeout(ctx, s.cfg.DocumentTimeout)
	defer cancel()

	s.mu.Lock()
	s.cancelDoc = cancel
	s.currentDoc = doc.ID
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.cancelDoc = nil
		s.currentDoc = 0
		s.mu.Unlock()
	}()

	s.jobs.Update(ctx, jobAdmission, func(js *models.JobStateResponse) {
		now := time.Now()
		js.LastCheckAt = &now
		id := doc.ID
		js.CurrentlyProcessingDoc = &id
	})

	s.logger.Info("admitting document", "doc_id", doc.ID)
	result := s.orchestrator.Run(docCtx, doc.ID, nil)

	s.jobs.Update(ctx, jobAdmission, func(js *models.JobStateResponse) {
		js.CurrentlyProcessingDoc = nil
		if result.Error != "" {
			js.ErrorsSinceStart++
		} else {
			js.ProcessedSinceStart++
		}
	})

	switch {
	case result.Error != "":
		s.logger.Warn("document aborted", "doc_id", doc.ID, "error", result.Error)
		if s.notifier != nil && !errors.Is(docCtx.Err(), context.Canceled) {
			s.notifier.DocumentFailed(ctx, doc.ID, result.Error)
		}
	case result.NeedsReview:
		s.logger.Info("document escalated to review", "doc_id", doc.ID, "schema_review", result.SchemaReviewNeeded)
		if s.notifier != nil {
			s.notifier.DocumentNeedsReview(ctx, doc.ID, doc.Title)
		}
	default:
		s.logger.Info("document processed", "doc_id", doc.ID)
	}
}

func hasTag(doc *models.Document, name string) bool {
	for _, t := range doc.TagNames {
		if t == name {
			return true
		}
	}
	return false
}

// classifyFatal reports whether an error means the whole scheduler should
// stop rather than continue to the next tick; auth failures are fatal for
// the pipeline as a whole.
func classifyFatal(err error) bool {
	return errors.Is(err, dmsclient.ErrAuth)
}
