package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// queueRetryCeiling is the total attempt budget of a queued operation
// before it is dropped for good.
const queueRetryCeiling = 8

// Queue is the offline queue: a durable FIFO of operations deferred by
// transient failures, drained opportunistically on reconnect, on scheduled
// cycles and on force sync.
type Queue struct {
	store  storage.OpQueue
	clock  Clock
	logger *slog.Logger
}

// NewQueue creates the offline queue on top of its durable store
func NewQueue(store storage.OpQueue, clock Clock, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Enqueue appends an operation. When the durable store is at capacity the
// oldest entry is dropped with a logged warning rather than growing
// unbounded.
func (q *Queue) Enqueue(ctx context.Context, op *models.QueuedOperation) error {
	dropped, err := q.store.Push(ctx, op)
	if err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}

	if dropped != nil {
		q.logger.Warn("Offline queue at capacity, dropped oldest operation",
			"dropped_id", dropped.ID,
			"dropped_entity_type", dropped.EntityType,
			"dropped_record_id", dropped.RecordID)
	}

	return nil
}

// Remove cancels every deferred operation for the identity. Called once
// the identity is delivered or resolved another way, so a stale payload
// cannot be replayed over the newer state.
func (q *Queue) Remove(ctx context.Context, entityType, recordID string) (int, error) {
	removed, err := q.store.Remove(ctx, entityType, recordID)
	if err != nil {
		return 0, fmt.Errorf("failed to remove queued operations: %w", err)
	}

	if removed > 0 {
		q.logger.Info("Cancelled deferred operations",
			"entity_type", entityType,
			"record_id", recordID,
			"count", removed)
	}

	return removed, nil
}

// ListPending returns all deferred operations in FIFO order
func (q *Queue) ListPending(ctx context.Context) ([]*models.QueuedOperation, error) {
	return q.store.List(ctx)
}

// Depth returns the number of deferred operations
func (q *Queue) Depth(ctx context.Context) (int, error) {
	return q.store.Len(ctx)
}

// Drain re-executes deferred operations through exec (the normal executor
// path, so prioritization and backoff apply uniformly). A failed operation
// goes back to the tail with its attempt count bumped; operations past the
// retry ceiling are dropped. Returns how many operations succeeded.
func (q *Queue) Drain(ctx context.Context, exec func(ctx context.Context, op *models.QueuedOperation) error) (int, error) {
	pending, err := q.store.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get queue depth: %w", err)
	}
	if pending == 0 {
		return 0, nil
	}

	q.logger.Info("Draining offline queue", "pending", pending)

	drained := 0

	// Ровно один проход по очереди: неудачные операции возвращаются в
	// хвост и не зацикливают drain
	for i := 0; i < pending; i++ {
		if err := ctx.Err(); err != nil {
			return drained, err
		}

		op, err := q.store.Pop(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrQueueEmpty) {
				break
			}
			return drained, fmt.Errorf("failed to pop operation: %w", err)
		}

		if err := exec(ctx, op); err != nil {
			op.Attempts++
			if op.Attempts >= queueRetryCeiling {
				q.logger.Error("Dropping queued operation past retry ceiling",
					"id", op.ID,
					"entity_type", op.EntityType,
					"record_id", op.RecordID,
					"attempts", op.Attempts,
					"error", err)
				continue
			}

			q.logger.Warn("Queued operation failed, re-queueing",
				"id", op.ID,
				"attempts", op.Attempts,
				"error", err)

			if _, pushErr := q.store.Push(ctx, op); pushErr != nil {
				return drained, fmt.Errorf("failed to requeue operation: %w", pushErr)
			}
			continue
		}

		drained++
	}

	return drained, nil
}
