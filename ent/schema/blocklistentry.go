package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlocklistEntry holds the schema definition for a durable suppression
// record: a normalized suggestion string that must never be re-proposed
// by the pipeline, scoped to a kind (or "global").
type BlocklistEntry struct {
	ent.Schema
}

// Fields of the BlocklistEntry.
func (BlocklistEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blocklist_id").
			Unique().
			Immutable(),
		field.String("kind").
			Comment("PendingReview.kind value, or 'global'"),
		field.String("normalized_suggestion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BlocklistEntry.
func (BlocklistEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "normalized_suggestion").
			Unique(),
	}
}
