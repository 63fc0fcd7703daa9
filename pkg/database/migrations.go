package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateTrigramIndexes creates pg_trgm GIN indexes used by the Review
// Queue's similarity grouping (C3 "similar_groups") and processing-log
// audit search, which ent's schema DSL doesn't express directly.
func CreateTrigramIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`); err != nil {
		return fmt.Errorf("failed to enable pg_trgm: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pending_reviews_suggestion_trgm
		ON pending_reviews USING gin(normalized_suggestion gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create normalized_suggestion trigram index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_processing_logs_step_trgm
		ON processing_log_entries USING gin(step gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create step trigram index: %w", err)
	}

	return nil
}
