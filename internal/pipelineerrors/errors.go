// Package pipelineerrors collects the document-enrichment pipeline's
// failure taxonomy: the four error classes stage engines and the
// orchestrator classify every failure into before deciding whether to
// retry, escalate to a PendingReview, or abort the document.
package pipelineerrors

import "errors"

var (
	// ErrTransientExternal marks a retryable failure: network error,
	// HTTP 5xx/429, or a timed-out external call. Recovered locally by
	// bounded retry with backoff; never escalates to a PendingReview on
	// its own.
	ErrTransientExternal = errors.New("pipeline: transient external error")

	// ErrPermanentExternal marks a non-retryable failure from an external
	// collaborator: auth failure, 4xx other than 429, or a malformed
	// response beyond the parser's tolerance. For OCR/Summary this aborts
	// the document with failed; for LLM-driven stages it escalates to a
	// PendingReview.
	ErrPermanentExternal = errors.New("pipeline: permanent external error")

	// ErrConvergenceFailure marks a confirmation loop that never reached
	// confirmed=true within the retry budget. Always produces a
	// PendingReview tagged manual_review.
	ErrConvergenceFailure = errors.New("pipeline: confirmation loop did not converge")

	// ErrInvariantViolation marks an internal bug: a stage reached with a
	// missing prerequisite tag, or any other state the orchestrator
	// should never observe. Logged and aborts the document with failed;
	// never kills the scheduler.
	ErrInvariantViolation = errors.New("pipeline: invariant violation")
)

// Classify maps a low-level adapter error (dmsclient, llmclient, ocrclient,
// vectorindex all return plain wrapped errors, keeping policy out of the
// clients) onto one of the four taxonomy sentinels. Unrecognized errors are
// treated as permanent, since an unclassified failure should not be
// retried indefinitely.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrTransientExternal):
		return ErrTransientExternal
	case errors.Is(err, ErrConvergenceFailure):
		return ErrConvergenceFailure
	case errors.Is(err, ErrInvariantViolation):
		return ErrInvariantViolation
	default:
		return ErrPermanentExternal
	}
}
