package config

import "time"

// QueueConfig contains scheduler/admission-controller tuning. Corvid's
// "queue" is the DMS's own pending-tagged document set, not a local
// claimable table; these knobs govern how the scheduler polls that set
// and admits work.
type QueueConfig struct {
	// Enabled toggles automatic background processing entirely
	// (auto_processing.enabled).
	Enabled bool `yaml:"enabled"`

	// PollInterval is the base interval between admission ticks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// PauseOnUserActivity, when true, suspends a tick for UserActivityPause
	// after the API observes a user-driven review action.
	PauseOnUserActivity bool `yaml:"pause_on_user_activity"`

	// UserActivityPause is how long a tick is suspended after user
	// activity is observed.
	UserActivityPause time.Duration `yaml:"user_activity_pause"`

	// InFlightCap bounds concurrent document processing per scheduler
	// instance. Defaults to 1: the hard part is the per-document
	// pipeline, not the fleet.
	InFlightCap int `yaml:"in_flight_cap" validate:"min=1"`

	// DocumentTimeout bounds how long a single document's pipeline run
	// may take before its tick is cancelled.
	DocumentTimeout time.Duration `yaml:"document_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// documents to finish their current stage during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often the scheduler sweeps for
	// documents stuck in a non-terminal, non-reviewed stage for longer
	// than OrphanThreshold (crash recovery, since DMS tags + the review
	// queue are the sole source of truth — there is no heartbeat).
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a document can sit in-flight without
	// progressing before it is re-admitted.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// SchemaCleanupSchedule is a cron expression for the schema-cleanup
	// maintenance job.
	SchemaCleanupSchedule string `yaml:"schema_cleanup_schedule,omitempty"`

	// MetadataEnhancementSchedule is a cron expression for the
	// metadata-enhancement maintenance job.
	MetadataEnhancementSchedule string `yaml:"metadata_enhancement_schedule,omitempty"`

	// BulkIngestRate caps documents-per-second for the one-off bootstrap
	// ingest variant.
	BulkIngestRate float64 `yaml:"bulk_ingest_rate,omitempty"`
}

// DefaultQueueConfig returns the built-in scheduler defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Enabled:                     true,
		PollInterval:                30 * time.Second,
		PollIntervalJitter:          5 * time.Second,
		PauseOnUserActivity:         true,
		UserActivityPause:           30 * time.Second,
		InFlightCap:                 1,
		DocumentTimeout:             10 * time.Minute,
		GracefulShutdownTimeout:     10 * time.Minute,
		OrphanDetectionInterval:     5 * time.Minute,
		OrphanThreshold:             15 * time.Minute,
		SchemaCleanupSchedule:       "0 3 * * *",
		MetadataEnhancementSchedule: "0 4 * * 0",
		BulkIngestRate:              2.0,
	}
}
