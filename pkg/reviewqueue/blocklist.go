package reviewqueue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/ent/blocklistentry"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// globalBlocklistKind is the bucket that suppresses a suggestion across
// every kind, alongside the per-kind buckets.
const globalBlocklistKind = "global"

// IsBlocked reports whether normalized is suppressed for kind, either
// specifically or via the global bucket. Consulted by stage engines
// before surfacing an analyst suggestion.
func (s *Store) IsBlocked(ctx context.Context, kind models.ReviewKind, suggestion string) (bool, error) {
	normalized := Normalize(suggestion)
	if normalized == "" {
		return true, nil
	}
	count, err := s.client.BlocklistEntry.Query().
		Where(
			blocklistentry.NormalizedSuggestion(normalized),
			blocklistentry.KindIn(string(kind), globalBlocklistKind),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("reviewqueue: blocklist lookup: %w", err)
	}
	return count > 0, nil
}

// Block adds a normalized suggestion to the blocklist for kind (or the
// global bucket), a no-op if already present.
func (s *Store) Block(ctx context.Context, kind models.ReviewKind, suggestion string) error {
	normalized := Normalize(suggestion)
	if normalized == "" {
		return nil
	}
	err := s.client.BlocklistEntry.Create().
		SetID(uuid.NewString()).
		SetKind(string(kind)).
		SetNormalizedSuggestion(normalized).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("reviewqueue: block suggestion: %w", err)
	}
	return nil
}
