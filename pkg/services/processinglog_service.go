// Package services holds the thin persistence services between the ent
// client and the rest of the system: the processing log, scheduler job
// state, operator settings, entity metadata, and transient system
// warnings.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/ent/processinglogentry"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// ProcessingLogService manages the append-only audit log of pipeline
// activity, consumed by the UI's replay endpoint and the orphan sweep's
// last-activity lookup.
type ProcessingLogService struct {
	client *ent.Client
}

// NewProcessingLogService creates a new ProcessingLogService.
func NewProcessingLogService(client *ent.Client) *ProcessingLogService {
	return &ProcessingLogService{client: client}
}

// Append records one log entry. Write failures are returned to the caller:
// the orchestrator's event entries ignore them, while the Summary stage,
// which stores its result here, fails when the write fails.
func (s *ProcessingLogService) Append(ctx context.Context, docID int, step, eventType string, data map[string]any) error {
	if step == "" {
		return NewValidationError("Step", "required")
	}
	if eventType == "" {
		return NewValidationError("EventType", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ProcessingLogEntry.Create().
		SetID(uuid.New().String()).
		SetDocID(docID).
		SetStep(step).
		SetEventType(eventType).
		SetData(data).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to append processing log entry: %w", err)
	}
	return nil
}

// ListByDoc returns every log entry for a document, oldest first, for UI
// replay.
func (s *ProcessingLogService) ListByDoc(ctx context.Context, docID int) ([]models.LogEntryResponse, error) {
	rows, err := s.client.ProcessingLogEntry.Query().
		Where(processinglogentry.DocID(docID)).
		Order(ent.Asc(processinglogentry.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processing log: %w", err)
	}
	out := make([]models.LogEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.LogEntryResponse{
			DocID:     row.DocID,
			Timestamp: row.Timestamp,
			Step:      row.Step,
			EventType: row.EventType,
			Data:      row.Data,
		})
	}
	return out, nil
}

// LastActivityAt returns the timestamp of the newest log entry for a
// document; the zero time if the document never produced one. Used by the
// scheduler's orphan sweep.
func (s *ProcessingLogService) LastActivityAt(ctx context.Context, docID int) (time.Time, error) {
	row, err := s.client.ProcessingLogEntry.Query().
		Where(processinglogentry.DocID(docID)).
		Order(ent.Desc(processinglogentry.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to query last activity: %w", err)
	}
	return row.Timestamp, nil
}

// Prune deletes entries older than cutoff, returning how many were
// removed. Driven by the retention cleanup job.
func (s *ProcessingLogService) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ProcessingLogEntry.Delete().
		Where(processinglogentry.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune processing log: %w", err)
	}
	return n, nil
}
