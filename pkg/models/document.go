package models

// Document is the in-memory projection of a DMS document that the pipeline
// operates on. It is never the document's own source of truth: C1 is, and
// this struct is only ever populated by reading from C1 and discarded
// after each stage invocation.
type Document struct {
	ID                int            `json:"id"`
	Title             string         `json:"title"`
	Content           string         `json:"content"`
	CorrespondentID   *int           `json:"correspondent_id,omitempty"`
	DocumentTypeID    *int           `json:"document_type_id,omitempty"`
	TagIDs            []int          `json:"tag_ids"`
	TagNames          []string       `json:"tag_names"`
	CustomFields      map[int]any    `json:"custom_fields,omitempty"`
	CreatedAt         string         `json:"created_at"`
}

// Entity is a named DMS entity: a correspondent, document type, tag, or
// custom-field definition.
type Entity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CustomFieldDef describes a custom-field definition as reported by the
// DMS, used to validate an LLM-suggested value before writing it back.
type CustomFieldDef struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	DataType CustomFieldType `json:"data_type"`
}

// CustomFieldType is one of the DMS's supported custom-field value types.
type CustomFieldType string

const (
	CustomFieldString      CustomFieldType = "string"
	CustomFieldURL         CustomFieldType = "url"
	CustomFieldDate        CustomFieldType = "date"
	CustomFieldBoolean     CustomFieldType = "boolean"
	CustomFieldInteger     CustomFieldType = "integer"
	CustomFieldFloat       CustomFieldType = "float"
	CustomFieldMonetary    CustomFieldType = "monetary"
	CustomFieldDocumentLink CustomFieldType = "documentlink"
	CustomFieldSelect      CustomFieldType = "select"
)

// WriteDocumentRequest patches a subset of a document's fields. Nil/empty
// fields are left untouched by C1.
type WriteDocumentRequest struct {
	Title           *string        `json:"title,omitempty"`
	Content         *string        `json:"content,omitempty"`
	CorrespondentID *int           `json:"correspondent_id,omitempty"`
	DocumentTypeID  *int           `json:"document_type_id,omitempty"`
	AddTagIDs       []int          `json:"add_tag_ids,omitempty"`
	RemoveTagIDs    []int          `json:"remove_tag_ids,omitempty"`
	CustomFields    map[int]any    `json:"custom_fields,omitempty"`
}
