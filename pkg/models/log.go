package models

import "time"

// LogEntryResponse is the service-layer projection of a ProcessingLogEntry,
// returned by the processing-log replay endpoint.
type LogEntryResponse struct {
	DocID     int            `json:"doc_id"`
	Timestamp time.Time      `json:"timestamp"`
	Step      string         `json:"step"`
	EventType string         `json:"event_type"`
	Data      map[string]any `json:"data,omitempty"`
}

// JobStateResponse is the service-layer projection of JobState, surfaced
// by the scheduler's status endpoint.
type JobStateResponse struct {
	JobName                 string     `json:"job_name"`
	LastCheckAt             *time.Time `json:"last_check_at,omitempty"`
	CurrentlyProcessingDoc  *int       `json:"currently_processing_doc_id,omitempty"`
	ProcessedSinceStart     int        `json:"processed_since_start"`
	ErrorsSinceStart        int        `json:"errors_since_start"`
	Paused                  bool       `json:"paused"`
	PausedReason            *string    `json:"paused_reason,omitempty"`
}
