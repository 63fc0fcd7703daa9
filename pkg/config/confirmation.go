package config

// ConfirmationConfig controls the two-model confirmation loop shared by
// every LLM-driven stage.
type ConfirmationConfig struct {
	// MaxRetries is the retry budget M before a stage escalates to a
	// PendingReview. Default 3.
	MaxRetries int `yaml:"max_retries" validate:"min=1,max=20"`

	// RequireUserForNewEntities gates whether Schema Analysis may
	// auto-create a net-new correspondent/document-type/tag, or must
	// always enqueue a schema_suggestion PendingReview instead.
	RequireUserForNewEntities bool `yaml:"require_user_for_new_entities"`

	// ConfirmKeywords is the case-insensitive keyword list used to parse
	// a freeform reviewer reply into a boolean verdict when the reviewer
	// model isn't instructed to return structured JSON.
	ConfirmKeywords []string `yaml:"confirm_keywords,omitempty"`
}

// DefaultConfirmationConfig matches spec scenario defaults (max_retries=3).
func DefaultConfirmationConfig() *ConfirmationConfig {
	return &ConfirmationConfig{
		MaxRetries:                3,
		RequireUserForNewEntities: true,
		ConfirmKeywords:           []string{"yes", "confirmed", "correct", "approve", "approved"},
	}
}
