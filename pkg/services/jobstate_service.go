package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/pkg/models"
)

// JobStateService persists scheduler bookkeeping, one row
// per named job.
type JobStateService struct {
	client *ent.Client
}

// NewJobStateService creates a new JobStateService.
func NewJobStateService(client *ent.Client) *JobStateService {
	return &JobStateService{client: client}
}

// Update applies mutate to the named job's state, creating the row on
// first use. Satisfies scheduler.JobStates.
func (s *JobStateService) Update(ctx context.Context, jobName string, mutate func(*models.JobStateResponse)) error {
	if jobName == "" {
		return NewValidationError("JobName", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.Get(writeCtx, jobName)
	if err != nil {
		return err
	}
	mutate(current)

	update := s.client.JobState.UpdateOneID(jobName).
		SetProcessedSinceStart(current.ProcessedSinceStart).
		SetErrorsSinceStart(current.ErrorsSinceStart).
		SetPaused(current.Paused)
	if current.LastCheckAt != nil {
		update = update.SetLastCheckAt(*current.LastCheckAt)
	}
	if current.CurrentlyProcessingDoc != nil {
		update = update.SetCurrentlyProcessingDocID(*current.CurrentlyProcessingDoc)
	} else {
		update = update.ClearCurrentlyProcessingDocID()
	}
	if current.PausedReason != nil {
		update = update.SetPausedReason(*current.PausedReason)
	} else {
		update = update.ClearPausedReason()
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update job state %s: %w", jobName, err)
	}
	return nil
}

// Get returns the named job's state, creating an empty row if absent.
func (s *JobStateService) Get(ctx context.Context, jobName string) (*models.JobStateResponse, error) {
	row, err := s.client.JobState.Get(ctx, jobName)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get job state %s: %w", jobName, err)
		}
		row, err = s.client.JobState.Create().SetID(jobName).Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				row, err = s.client.JobState.Get(ctx, jobName)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to create job state %s: %w", jobName, err)
			}
		}
	}
	return toJobState(row), nil
}

// List returns every known job's state, for the status endpoint.
func (s *JobStateService) List(ctx context.Context) ([]models.JobStateResponse, error) {
	rows, err := s.client.JobState.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job states: %w", err)
	}
	out := make([]models.JobStateResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toJobState(row))
	}
	return out, nil
}

func toJobState(row *ent.JobState) *models.JobStateResponse {
	return &models.JobStateResponse{
		JobName:                row.ID,
		LastCheckAt:            row.LastCheckAt,
		CurrentlyProcessingDoc: row.CurrentlyProcessingDocID,
		ProcessedSinceStart:    row.ProcessedSinceStart,
		ErrorsSinceStart:       row.ErrorsSinceStart,
		Paused:                 row.Paused,
		PausedReason:           row.PausedReason,
	}
}
