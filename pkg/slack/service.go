package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service handles Slack notification delivery for documents that leave the
// automated pipeline and need a human's attention.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyReviewNeeded announces that a document's confirmation loop was
// exhausted and a PendingReview now needs a human decision. If an earlier
// notification for the same document is still visible in channel history,
// this one is threaded under it. Fail-open: errors are logged, never
// returned.
func (s *Service) NotifyReviewNeeded(ctx context.Context, input ReviewNeededInput) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, docFingerprint(input.DocID))
	if err != nil {
		s.logger.Warn("failed to find Slack thread for document",
			"doc_id", input.DocID, "error", err)
	}

	blocks := BuildReviewNeededMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("failed to send Slack review-needed notification",
			"doc_id", input.DocID, "kind", input.Kind, "error", err)
	}
}

// NotifyFailed announces that a document's pipeline run aborted on an
// internal invariant violation and was tagged failed. Fail-open: errors are
// logged, never returned.
func (s *Service) NotifyFailed(ctx context.Context, input FailedInput) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindMessageByFingerprint(ctx, docFingerprint(input.DocID))
	if err != nil {
		s.logger.Warn("failed to find Slack thread for document",
			"doc_id", input.DocID, "error", err)
	}

	blocks := BuildFailedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("failed to send Slack failed notification",
			"doc_id", input.DocID, "step", input.Step, "error", err)
	}
}
