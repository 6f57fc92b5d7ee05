package storage

import (
	"context"
	"fmt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

//go:generate moq -out recorder_mock.go . ChangeRecorder

// ChangeRecorder receives every local mutation as it happens.
// Implemented by the sync change tracker.
type ChangeRecorder interface {
	Record(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error
}

// TrackedStore wraps a Store and records every successful mutation into a
// ChangeRecorder before returning, then fires an optional notify hook.
// Composition instead of patching store methods at runtime: the rest of the
// application talks to TrackedStore through the same Store interface.
type TrackedStore struct {
	inner    Store
	recorder ChangeRecorder
	notify   func()
}

var _ Store = (*TrackedStore)(nil)

// NewTrackedStore creates a tracked wrapper around the given store.
// notify may be nil; when set it is called after every recorded mutation
// (used to debounce sync triggers).
func NewTrackedStore(inner Store, recorder ChangeRecorder, notify func()) *TrackedStore {
	return &TrackedStore{
		inner:    inner,
		recorder: recorder,
		notify:   notify,
	}
}

// SetNotify installs the post-mutation hook. Called once during wiring,
// before the store is shared, so no locking is needed.
func (t *TrackedStore) SetNotify(notify func()) {
	t.notify = notify
}

// GetAll forwards to the wrapped store
func (t *TrackedStore) GetAll(ctx context.Context, entityType string) ([]*models.Record, error) {
	return t.inner.GetAll(ctx, entityType)
}

// Get forwards to the wrapped store
func (t *TrackedStore) Get(ctx context.Context, entityType, id string) (*models.Record, error) {
	return t.inner.Get(ctx, entityType, id)
}

// Add inserts the record and tracks a create change
func (t *TrackedStore) Add(ctx context.Context, entityType string, record *models.Record) error {
	if err := t.inner.Add(ctx, entityType, record); err != nil {
		return err
	}
	if err := t.recorder.Record(ctx, entityType, record.ID, models.OpCreate, record.Fields); err != nil {
		return fmt.Errorf("failed to track create: %w", err)
	}
	t.fireNotify()
	return nil
}

// Update replaces the record and tracks an update change
func (t *TrackedStore) Update(ctx context.Context, entityType string, record *models.Record) error {
	if err := t.inner.Update(ctx, entityType, record); err != nil {
		return err
	}
	if err := t.recorder.Record(ctx, entityType, record.ID, models.OpUpdate, record.Fields); err != nil {
		return fmt.Errorf("failed to track update: %w", err)
	}
	t.fireNotify()
	return nil
}

// Delete removes the record and tracks a delete change
func (t *TrackedStore) Delete(ctx context.Context, entityType, id string) error {
	if err := t.inner.Delete(ctx, entityType, id); err != nil {
		return err
	}
	if err := t.recorder.Record(ctx, entityType, id, models.OpDelete, nil); err != nil {
		return fmt.Errorf("failed to track delete: %w", err)
	}
	t.fireNotify()
	return nil
}

func (t *TrackedStore) fireNotify() {
	if t.notify != nil {
		t.notify()
	}
}
