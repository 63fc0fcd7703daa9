package config

// Defaults contains system-wide default configurations used when specific
// roles don't specify their own values.
type Defaults struct {
	// LargeModel is the default model role backing the "analyst" side of
	// the confirmation loop.
	LargeModel string `yaml:"large_model,omitempty"`

	// SmallModel is the default model role backing the "reviewer" side.
	SmallModel string `yaml:"small_model,omitempty"`

	// EmbeddingModel is the model role used for vector-index embeddings.
	EmbeddingModel string `yaml:"embedding_model,omitempty"`

	// TranslationModel is the model role used for localized document
	// content summarization/translation when prompt_language differs
	// from a document's detected language.
	TranslationModel string `yaml:"translation_model,omitempty"`

	// DocumentMasking controls redaction of document content before it
	// is sent to an LLM or written to logs.
	DocumentMasking *MaskingDefaults `yaml:"document_masking,omitempty"`
}

// MaskingDefaults holds document content masking settings, applied
// system-wide before any LLM call or structured log line.
type MaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}
