// Package cleanup provides data retention for locally-persisted audit
// data.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/corvid/pkg/config"
)

// LogPruner deletes processing-log entries older than a cutoff.
// Implemented by *services.ProcessingLogService.
type LogPruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically enforces retention policy on the processing log.
// The operation is idempotent and safe to run from multiple deployments.
type Service struct {
	config *config.RetentionConfig
	logs   LogPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, logs LogPruner) *Service {
	return &Service{
		config: cfg,
		logs:   logs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"log_retention_days", s.config.LogRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.pruneProcessingLog(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneProcessingLog(ctx)
		}
	}
}

func (s *Service) pruneProcessingLog(ctx context.Context) {
	if s.config.LogRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.LogRetentionDays)
	count, err := s.logs.Prune(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: processing-log prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned processing-log entries", "count", count)
	}
}
