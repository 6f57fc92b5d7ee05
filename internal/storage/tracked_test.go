package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

func passthroughStore() *StoreMock {
	return &StoreMock{
		AddFunc: func(ctx context.Context, entityType string, record *models.Record) error {
			return nil
		},
		UpdateFunc: func(ctx context.Context, entityType string, record *models.Record) error {
			return nil
		},
		DeleteFunc: func(ctx context.Context, entityType string, id string) error {
			return nil
		},
		GetFunc: func(ctx context.Context, entityType string, id string) (*models.Record, error) {
			return &models.Record{ID: id}, nil
		},
		GetAllFunc: func(ctx context.Context, entityType string) ([]*models.Record, error) {
			return nil, nil
		},
	}
}

func TestTrackedStore_AddRecordsCreate(t *testing.T) {
	ctx := context.Background()

	recorder := &ChangeRecorderMock{
		RecordFunc: func(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error {
			return nil
		},
	}

	notified := 0
	tracked := NewTrackedStore(passthroughStore(), recorder, func() { notified++ })

	record := &models.Record{ID: "v1", Fields: map[string]string{"name": "A"}}
	require.NoError(t, tracked.Add(ctx, models.EntityVolunteers, record))

	calls := recorder.RecordCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.EntityVolunteers, calls[0].EntityType)
	assert.Equal(t, "v1", calls[0].RecordID)
	assert.Equal(t, models.OpCreate, calls[0].Op)
	assert.Equal(t, map[string]string{"name": "A"}, calls[0].Payload)
	assert.Equal(t, 1, notified)
}

func TestTrackedStore_UpdateAndDeleteRecordOps(t *testing.T) {
	ctx := context.Background()

	recorder := &ChangeRecorderMock{
		RecordFunc: func(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error {
			return nil
		},
	}
	tracked := NewTrackedStore(passthroughStore(), recorder, nil)

	require.NoError(t, tracked.Update(ctx, models.EntityEvents,
		&models.Record{ID: "e1", Fields: map[string]string{"name": "Fair"}}))
	require.NoError(t, tracked.Delete(ctx, models.EntityEvents, "e1"))

	calls := recorder.RecordCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, models.OpUpdate, calls[0].Op)
	assert.Equal(t, models.OpDelete, calls[1].Op)
	// Удаление не несет payload
	assert.Nil(t, calls[1].Payload)
}

func TestTrackedStore_FailedMutationIsNotTracked(t *testing.T) {
	ctx := context.Background()

	inner := passthroughStore()
	inner.AddFunc = func(ctx context.Context, entityType string, record *models.Record) error {
		return errors.New("disk full")
	}

	recorder := &ChangeRecorderMock{
		RecordFunc: func(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error {
			return nil
		},
	}

	notified := false
	tracked := NewTrackedStore(inner, recorder, func() { notified = true })

	err := tracked.Add(ctx, models.EntityVolunteers, &models.Record{ID: "v1"})
	require.Error(t, err)
	assert.Empty(t, recorder.RecordCalls())
	assert.False(t, notified)
}

func TestTrackedStore_ReadsAreNotTracked(t *testing.T) {
	ctx := context.Background()

	recorder := &ChangeRecorderMock{}
	tracked := NewTrackedStore(passthroughStore(), recorder, nil)

	_, err := tracked.Get(ctx, models.EntityVolunteers, "v1")
	require.NoError(t, err)
	_, err = tracked.GetAll(ctx, models.EntityVolunteers)
	require.NoError(t, err)

	assert.Empty(t, recorder.RecordCalls())
}

func TestTrackedStore_SetNotify(t *testing.T) {
	ctx := context.Background()

	recorder := &ChangeRecorderMock{
		RecordFunc: func(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error {
			return nil
		},
	}
	tracked := NewTrackedStore(passthroughStore(), recorder, nil)

	notified := false
	tracked.SetNotify(func() { notified = true })

	require.NoError(t, tracked.Add(ctx, models.EntityVolunteers, &models.Record{ID: "v1"}))
	assert.True(t, notified)
}
