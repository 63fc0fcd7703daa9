package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingReview holds the schema definition for the PendingReview entity.
//
// A PendingReview is created when a stage engine's confirmation loop
// exhausts its retry budget, or when schema analysis proposes a net-new
// entity that policy forbids auto-creating. It is destroyed on approve,
// reject, or bulk-resolve.
type PendingReview struct {
	ent.Schema
}

// Fields of the PendingReview.
func (PendingReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.Int("doc_id").
			Comment("DMS document ID"),
		field.String("doc_title").
			Optional().
			Comment("Snapshot of the document title at creation time"),
		field.Enum("kind").
			Values("title", "correspondent", "document_type", "tag", "custom_field", "document_link", "schema_suggestion"),
		field.Text("suggestion").
			Comment("Raw suggested value, JSON-encoded for structured kinds"),
		field.String("normalized_suggestion").
			Comment("Lowercased, whitespace-collapsed suggestion used for uniqueness and blocklist matching"),
		field.Text("reasoning").
			Optional(),
		field.JSON("alternatives", []string{}).
			Optional(),
		field.Int("attempts").
			Default(0),
		field.String("last_feedback").
			Optional().
			Nillable(),
		field.String("next_tag").
			Optional().
			Nillable().
			Comment("Workflow tag to apply on approval, resuming the pipeline"),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Opaque per-kind payload, e.g. entity_kind/confidence for schema_suggestion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PendingReview.
func (PendingReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doc_id"),
		index.Fields("kind"),
		// At most one PendingReview per
		// (doc_id, kind, normalized_suggestion).
		index.Fields("doc_id", "kind", "normalized_suggestion").
			Unique(),
	}
}
