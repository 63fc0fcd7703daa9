package scheduler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/codeready-toolchain/corvid/pkg/models"
)

// BootstrapDMS is the DMS surface the one-off ingest needs.
type BootstrapDMS interface {
	ListCandidates(ctx context.Context, processedTagID int, excludeDocIDs map[int]bool) ([]*models.Document, error)
	TagIDForName(ctx context.Context, name string) (int, error)
	AddTagByName(ctx context.Context, docID int, name string) error
}

// Bootstrap iterates the DMS corpus and marks every document that carries
// no workflow tag at all as pending, admitting the whole backlog into the
// pipeline at a bounded documents-per-second rate. It
// is idempotent: already-tagged documents are skipped, and re-running
// resumes where a crash left off.
func Bootstrap(ctx context.Context, dms BootstrapDMS, tags workflowTagSet, pendingTag, processedTag string, docsPerSecond float64) (int, error) {
	processedID, err := dms.TagIDForName(ctx, processedTag)
	if err != nil {
		return 0, fmt.Errorf("scheduler: resolve processed tag: %w", err)
	}
	docs, err := dms.ListCandidates(ctx, processedID, nil)
	if err != nil {
		return 0, fmt.Errorf("scheduler: list corpus: %w", err)
	}

	if docsPerSecond <= 0 {
		docsPerSecond = 1
	}
	limiter := rate.NewLimiter(rate.Limit(docsPerSecond), 1)

	tagged := 0
	for _, doc := range docs {
		if hasAnyWorkflowTag(doc, tags) {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return tagged, err
		}
		if err := dms.AddTagByName(ctx, doc.ID, pendingTag); err != nil {
			return tagged, fmt.Errorf("scheduler: tag doc %d pending: %w", doc.ID, err)
		}
		tagged++
	}
	return tagged, nil
}

// workflowTagSet reports membership in the configured workflow vocabulary.
type workflowTagSet map[string]bool

func hasAnyWorkflowTag(doc *models.Document, tags workflowTagSet) bool {
	for _, name := range doc.TagNames {
		if tags[name] {
			return true
		}
	}
	return false
}

// RateDelay converts a documents-per-second rate into the inter-document
// sleep the CLI reports to the operator.
func RateDelay(docsPerSecond float64) time.Duration {
	if docsPerSecond <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / docsPerSecond)
}
