package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingLogEntry holds the schema definition for an append-only audit
// record of pipeline activity, used for audit and UI replay.
type ProcessingLogEntry struct {
	ent.Schema
}

// Fields of the ProcessingLogEntry.
func (ProcessingLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.Int("doc_id"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("step").
			Comment("Stage name, e.g. 'title', 'correspondent', 'scheduler'"),
		field.String("event_type").
			Comment("e.g. step_start, step_complete, step_error, needs_review"),
		field.JSON("data", map[string]any{}).
			Optional(),
	}
}

// Indexes of the ProcessingLogEntry.
func (ProcessingLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id", "timestamp"),
		index.Fields("step"),
	}
}
