package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMetadata holds the schema definition for supplemental,
// locally-owned descriptions/translations of DMS entities (correspondents,
// document types, tags) that the DMS itself does not store. Populated by
// the metadata-enhancement maintenance job.
type EntityMetadata struct {
	ent.Schema
}

// Fields of the EntityMetadata.
func (EntityMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_metadata_id").
			Unique().
			Immutable(),
		field.Enum("entity_kind").
			Values("correspondent", "document_type", "tag"),
		field.Int("entity_id").
			Comment("DMS entity ID"),
		field.String("description").
			Optional(),
		field.String("language").
			Default("en"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EntityMetadata.
func (EntityMetadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_kind", "entity_id", "language").
			Unique(),
	}
}
