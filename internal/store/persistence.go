package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/taskapp/internal/models"
)

// Key returns the storage key the snapshot is written under
func (s *TaskStore) Key() string {
	return s.key
}

// Save writes the snapshot to storage, replacing whatever was there.
// Storage errors are returned as-is (wrapped) and never retried.
func (s *TaskStore) Save(ctx context.Context) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	data, err := EncodeSnapshot(s.Snapshot())
	if err != nil {
		return err
	}

	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug("snapshot saved", "key", s.key, "bytes", len(data))
	return nil
}

// RestoreFromPersistence loads the saved snapshot and installs it with
// Restore. When nothing has been saved the state is left untouched.
// A blob that cannot be decoded yields an error wrapping
// ErrMalformedSnapshot and leaves the state untouched.
func (s *TaskStore) RestoreFromPersistence(ctx context.Context) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	data, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !ok || data == "" {
		s.logger.Debug("no saved snapshot", "key", s.key)
		return nil
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}

	s.Restore(snap)
	return nil
}

// EncodeSnapshot renders a snapshot in the persisted text format
func EncodeSnapshot(snap models.Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses the persisted text format. Fields missing from the
// blob come back as zero values; unknown fields are ignored.
func DecodeSnapshot(data string) (models.Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if raw == nil {
		return models.Snapshot{}, fmt.Errorf("%w: snapshot is null", ErrMalformedSnapshot)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return snap, nil
}
