package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/corvid/ent"
	"github.com/codeready-toolchain/corvid/ent/setting"
)

// SettingsService is the string→string keyed settings store. Worker
// goroutines read; only the UI writes.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Get returns the value for key, or fallback if unset.
func (s *SettingsService) Get(ctx context.Context, key, fallback string) (string, error) {
	row, err := s.client.Setting.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return fallback, nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return row.Value, nil
}

// Set upserts a setting.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return NewValidationError("Key", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Setting.UpdateOneID(key).SetValue(value).Exec(writeCtx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	err = s.client.Setting.Create().SetID(key).SetValue(value).Exec(writeCtx)
	if ent.IsConstraintError(err) {
		// Lost a create race; the row exists now.
		err = s.client.Setting.UpdateOneID(key).SetValue(value).Exec(writeCtx)
	}
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// All returns every stored setting.
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.client.Setting.Query().Order(ent.Asc(setting.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Value
	}
	return out, nil
}
