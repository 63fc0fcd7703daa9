// Package config loads and validates corvid's YAML configuration: pipeline
// stage toggles, workflow tag names, the confirmation-loop policy, the
// custom-field registry, the prompt registry, and scheduler/queue tuning.
package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state. This is the primary
// object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// External-service connection settings (DMS, LLM, OCR, vector store,
	// Slack)
	System *SystemConfig

	// System-wide defaults
	Defaults *Defaults

	// Pipeline stage toggles and the workflow tag name vocabulary
	Pipeline *PipelineConfig
	Tags     *WorkflowTagConfig

	// Confirmation-loop policy
	Confirmation *ConfirmationConfig

	// Scheduler / admission-controller tuning
	Queue *QueueConfig

	// Vector search tuning for document-link candidate filtering
	VectorSearch *VectorSearchConfig

	// Retention policy for locally-persisted audit data
	Retention *RetentionConfig

	// Debug/observability toggles
	Debug *DebugConfig

	// Custom-field type registry
	CustomFields *CustomFieldRegistry

	// Prompt templates, keyed by name and localized
	Prompts *PromptRegistry

	// PromptLanguage is the active localization; falls back to the
	// registry's reference language when a template lacks a translation.
	PromptLanguage string
}

// Initialize is defined in loader.go

// ConfigStats contains statistics about loaded configuration
type ConfigStats struct {
	CustomFields  int
	Prompts       int
	StagesEnabled int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		CustomFields:  len(c.CustomFields.Fields),
		Prompts:       len(c.Prompts.Templates),
		StagesEnabled: c.Pipeline.EnabledCount(),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
