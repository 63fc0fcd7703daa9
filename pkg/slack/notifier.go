package slack

import (
	"context"
)

// PipelineNotifier adapts Service to the scheduler's Notifier seam,
// translating the scheduler's minimal document facts into notification
// inputs. Nil-safe like the Service it wraps.
type PipelineNotifier struct {
	service *Service
}

// NewPipelineNotifier wraps service; a nil service yields a notifier whose
// methods are no-ops.
func NewPipelineNotifier(service *Service) *PipelineNotifier {
	return &PipelineNotifier{service: service}
}

// DocumentNeedsReview announces that a document escalated to the review
// queue.
func (n *PipelineNotifier) DocumentNeedsReview(ctx context.Context, docID int, docTitle string) {
	n.service.NotifyReviewNeeded(ctx, ReviewNeededInput{
		DocID:    int64(docID),
		DocTitle: docTitle,
	})
}

// DocumentFailed announces that a document's pipeline run aborted.
func (n *PipelineNotifier) DocumentFailed(ctx context.Context, docID int, reason string) {
	n.service.NotifyFailed(ctx, FailedInput{
		DocID:        int64(docID),
		ErrorMessage: reason,
	})
}
