package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

func newTestQueue() (*Queue, *memQueue) {
	store := &memQueue{}
	clock := NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewQueue(store, clock, testLogger()), store
}

func TestQueue_DrainExecutesInFIFOOrder(t *testing.T) {
	ctx := context.Background()
	queue, store := newTestQueue()

	for _, id := range []string{"op1", "op2", "op3"} {
		require.NoError(t, queue.Enqueue(ctx, &models.QueuedOperation{
			ID:         id,
			Kind:       models.OpKindUpload,
			EntityType: models.EntityVolunteers,
			RecordID:   id,
		}))
	}

	var executed []string
	drained, err := queue.Drain(ctx, func(ctx context.Context, op *models.QueuedOperation) error {
		executed = append(executed, op.ID)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, drained)
	assert.Equal(t, []string{"op1", "op2", "op3"}, executed)
	assert.Empty(t, store.ops)
}

func TestQueue_DrainRequeuesFailuresOnce(t *testing.T) {
	ctx := context.Background()
	queue, _ := newTestQueue()

	require.NoError(t, queue.Enqueue(ctx, &models.QueuedOperation{
		ID: "ok", Kind: models.OpKindUpload, EntityType: models.EntityVolunteers,
	}))
	require.NoError(t, queue.Enqueue(ctx, &models.QueuedOperation{
		ID: "bad", Kind: models.OpKindUpload, EntityType: models.EntityVolunteers,
	}))

	calls := 0
	drained, err := queue.Drain(ctx, func(ctx context.Context, op *models.QueuedOperation) error {
		calls++
		if op.ID == "bad" {
			return errors.New("still unreachable")
		}
		return nil
	})
	require.NoError(t, err)

	// Один проход: неудачная операция вернулась в хвост, но не исполнялась
	// повторно в этом же drain
	assert.Equal(t, 1, drained)
	assert.Equal(t, 2, calls)

	pending, err := queue.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "bad", pending[0].ID)
	assert.Equal(t, 1, pending[0].Attempts)
}

func TestQueue_DrainDropsPastRetryCeiling(t *testing.T) {
	ctx := context.Background()
	queue, _ := newTestQueue()

	require.NoError(t, queue.Enqueue(ctx, &models.QueuedOperation{
		ID:         "doomed",
		Kind:       models.OpKindUpload,
		EntityType: models.EntityVolunteers,
		Attempts:   queueRetryCeiling - 1,
	}))

	drained, err := queue.Drain(ctx, func(ctx context.Context, op *models.QueuedOperation) error {
		return errors.New("permanent trouble")
	})
	require.NoError(t, err)
	assert.Zero(t, drained)

	depth, err := queue.Depth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestQueue_DrainEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	queue, _ := newTestQueue()

	drained, err := queue.Drain(ctx, func(ctx context.Context, op *models.QueuedOperation) error {
		t.Fatal("exec must not run on an empty queue")
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, drained)
}

func TestQueue_DrainStopsOnCancel(t *testing.T) {
	queue, _ := newTestQueue()
	ctx, cancel := context.WithCancel(context.Background())

	for i := 0; i < 3; i++ {
		require.NoError(t, queue.Enqueue(context.Background(), &models.QueuedOperation{
			ID: "op", Kind: models.OpKindUpload, EntityType: models.EntityVolunteers,
		}))
	}

	drained, err := queue.Drain(ctx, func(ctx context.Context, op *models.QueuedOperation) error {
		cancel()
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, drained)
}
