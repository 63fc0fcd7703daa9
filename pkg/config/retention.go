package config

import "time"

// RetentionConfig controls how long locally-persisted audit data is kept.
type RetentionConfig struct {
	// LogRetentionDays is how many days of processing-log entries to
	// keep. 0 disables pruning.
	LogRetentionDays int `yaml:"log_retention_days" validate:"min=0"`

	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig keeps 90 days of history, pruned daily.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		LogRetentionDays: 90,
		CleanupInterval:  24 * time.Hour,
	}
}
