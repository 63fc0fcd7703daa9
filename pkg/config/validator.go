package config

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// Validator validates configuration comprehensively with clear error messages.
type Validator struct {
	cfg      *Config
	validate *validator.Validate
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg, validate: validator.New()}
}

// ValidateAll performs comprehensive validation (fail-fast — stops at the
// first error): first the declarative `validate` struct tags, then the
// cross-field rules the tags can't express.
func (v *Validator) ValidateAll() error {
	if err := v.validateTagged(); err != nil {
		return err
	}
	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("auto_processing validation failed: %w", err)
	}
	if err := v.validateConfirmation(); err != nil {
		return fmt.Errorf("confirmation validation failed: %w", err)
	}
	if err := v.validateTags(); err != nil {
		return fmt.Errorf("tags validation failed: %w", err)
	}
	if err := v.validateVectorSearch(); err != nil {
		return fmt.Errorf("vector_search validation failed: %w", err)
	}
	if err := v.validateCustomFields(); err != nil {
		return fmt.Errorf("custom_fields validation failed: %w", err)
	}
	return nil
}

// validateTagged runs go-playground struct-tag validation over every
// tagged configuration section.
func (v *Validator) validateTagged() error {
	sections := map[string]any{
		"confirmation":    v.cfg.Confirmation,
		"auto_processing": v.cfg.Queue,
		"vector_search":   v.cfg.VectorSearch,
		"retention":       v.cfg.Retention,
	}
	if v.cfg.System != nil {
		sections["system"] = v.cfg.System
	}
	for name, section := range sections {
		if section == nil {
			continue
		}
		if err := v.validate.Struct(section); err != nil {
			return fmt.Errorf("%s validation failed: %w", name, err)
		}
	}
	return nil
}

func (v *Validator) validateSystem() error {
	sys := v.cfg.System
	if sys == nil {
		return fmt.Errorf("system configuration is nil")
	}
	if sys.DMS == nil || sys.DMS.BaseURL == "" {
		return NewValidationError("system", "dms", "base_url", fmt.Errorf("required"))
	}
	if _, err := url.ParseRequestURI(sys.DMS.BaseURL); err != nil {
		return NewValidationError("system", "dms", "base_url", err)
	}
	if sys.LLM == nil {
		return NewValidationError("system", "llm", "", fmt.Errorf("required"))
	}
	if !sys.LLM.Transport.IsValid() {
		return NewValidationError("system", "llm", "transport", fmt.Errorf("invalid transport %q", sys.LLM.Transport))
	}
	for _, role := range []ModelRole{ModelRoleLarge, ModelRoleSmall} {
		if sys.LLM.Models[role] == "" {
			return NewValidationError("system", "llm", "models."+string(role), fmt.Errorf("required"))
		}
	}
	if v.cfg.VectorSearch != nil && v.cfg.VectorSearch.Enabled {
		if sys.VectorStore == nil || sys.VectorStore.Collection == "" {
			return NewValidationError("system", "vector_store", "collection", fmt.Errorf("required when vector_search is enabled"))
		}
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return fmt.Errorf("auto_processing configuration is nil")
	}
	if q.InFlightCap < 1 {
		return fmt.Errorf("in_flight_cap must be at least 1, got %d", q.InFlightCap)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", q.PollInterval)
	}
	if q.PollIntervalJitter < 0 {
		return fmt.Errorf("poll_interval_jitter must be non-negative, got %v", q.PollIntervalJitter)
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return fmt.Errorf("poll_interval_jitter must be less than poll_interval, got jitter=%v interval=%v", q.PollIntervalJitter, q.PollInterval)
	}
	if q.DocumentTimeout <= 0 {
		return fmt.Errorf("document_timeout must be positive, got %v", q.DocumentTimeout)
	}
	if q.OrphanThreshold <= 0 {
		return fmt.Errorf("orphan_threshold must be positive, got %v", q.OrphanThreshold)
	}
	if q.OrphanDetectionInterval <= 0 {
		return fmt.Errorf("orphan_detection_interval must be positive, got %v", q.OrphanDetectionInterval)
	}
	return nil
}

func (v *Validator) validateConfirmation() error {
	c := v.cfg.Confirmation
	if c == nil {
		return fmt.Errorf("confirmation configuration is nil")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", c.MaxRetries)
	}
	if len(c.ConfirmKeywords) == 0 {
		return fmt.Errorf("confirm_keywords must not be empty")
	}
	return nil
}

func (v *Validator) validateTags() error {
	t := v.cfg.Tags
	if t == nil {
		return fmt.Errorf("tags configuration is nil")
	}
	required := map[string]string{
		"pending":             t.Pending,
		"ocr_done":            t.OCRDone,
		"title_done":          t.TitleDone,
		"correspondent_done":  t.CorrespondentDone,
		"document_type_done":  t.DocumentTypeDone,
		"tags_done":           t.TagsDone,
		"custom_fields_done":  t.CustomFieldsDone,
		"document_links_done": t.DocumentLinksDone,
		"processed":           t.Processed,
		"manual_review":       t.ManualReview,
		"failed":              t.Failed,
	}
	for key, name := range required {
		if name == "" {
			return NewValidationError("tags", "", key, fmt.Errorf("required"))
		}
	}
	return nil
}

func (v *Validator) validateVectorSearch() error {
	vs := v.cfg.VectorSearch
	if vs == nil {
		return fmt.Errorf("vector_search configuration is nil")
	}
	if vs.Enabled {
		if vs.TopK < 1 {
			return fmt.Errorf("top_k must be at least 1 when enabled, got %d", vs.TopK)
		}
		if vs.MinScore < 0 || vs.MinScore > 1 {
			return fmt.Errorf("min_score must be in [0,1], got %v", vs.MinScore)
		}
	}
	return nil
}

func (v *Validator) validateCustomFields() error {
	if v.cfg.CustomFields == nil {
		return nil
	}
	for name, def := range v.cfg.CustomFields.Fields {
		if !validCustomFieldType(def.DataType) {
			return NewValidationError("custom_fields", name, "data_type", fmt.Errorf("unsupported type %q", def.DataType))
		}
	}
	return nil
}
