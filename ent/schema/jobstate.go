package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// JobState holds the schema definition for scheduler/admission-controller
// bookkeeping. One row per named job
// ("admission", "schema_cleanup", "metadata_enhancement", "bulk_ingest").
type JobState struct {
	ent.Schema
}

// Fields of the JobState.
func (JobState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_name").
			Unique().
			Immutable(),
		field.Time("last_check_at").
			Optional().
			Nillable(),
		field.Int("currently_processing_doc_id").
			Optional().
			Nillable(),
		field.Int("processed_since_start").
			Default(0),
		field.Int("errors_since_start").
			Default(0),
		field.Bool("paused").
			Default(false),
		field.String("paused_reason").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
