package storage

import (
	"context"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

//go:generate moq -out queue_mock.go . OpQueue

// OpQueue defines the durable FIFO backing the offline queue.
// Operations survive process restarts and are removed explicitly
// once re-execution succeeds or the retry ceiling is exceeded.
type OpQueue interface {
	// Push appends an operation to the tail of the queue.
	// When the queue is at capacity the oldest entry is dropped;
	// Push returns the dropped operation, or nil if nothing was dropped.
	Push(ctx context.Context, op *models.QueuedOperation) (*models.QueuedOperation, error)

	// Pop removes and returns the operation at the head of the queue
	// Returns ErrQueueEmpty when nothing is pending
	Pop(ctx context.Context) (*models.QueuedOperation, error)

	// Remove deletes every pending operation for the identity and
	// returns how many were removed
	Remove(ctx context.Context, entityType, recordID string) (int, error)

	// List returns all pending operations in FIFO order without removing them
	List(ctx context.Context) ([]*models.QueuedOperation, error)

	// Len returns the number of pending operations
	Len(ctx context.Context) (int, error)
}
