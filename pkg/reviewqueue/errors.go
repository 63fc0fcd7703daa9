// Package reviewqueue implements the review queue: the durable local
// store of PendingReview items, the blocklist that suppresses previously
// rejected suggestions, and the approve/reject semantics that resume the
// pipeline by writing back through the DMS adapter.
package reviewqueue

import "errors"

var (
	// ErrNotFound indicates no PendingReview exists with the given ID.
	ErrNotFound = errors.New("reviewqueue: review not found")
)
