package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// OpQueue is the offline queue view over the shared database.
type OpQueue struct {
	db  *bbolt.DB
	cap int
}

// Queue returns the offline queue view
func (s *Storage) Queue() *OpQueue {
	return &OpQueue{db: s.db, cap: s.queueCap}
}

var _ storage.OpQueue = (*OpQueue)(nil)

// Push appends an operation to the tail of the queue.
// Keys are monotonic bucket sequence numbers, so iteration order is FIFO.
// When the queue is at capacity the oldest entry is dropped and returned.
func (s *OpQueue) Push(ctx context.Context, op *models.QueuedOperation) (*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	data, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal queued operation: %w", err)
	}

	var dropped *models.QueuedOperation

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		// При переполнении вытесняем самую старую операцию
		if bucket.Stats().KeyN >= s.cap {
			cursor := bucket.Cursor()
			k, v := cursor.First()
			if k != nil {
				dropped = &models.QueuedOperation{}
				if err := json.Unmarshal(v, dropped); err != nil {
					// Непарсящуюся запись все равно вытесняем
					dropped = nil
				}
				if err := bucket.Delete(k); err != nil {
					return fmt.Errorf("failed to evict oldest operation: %w", err)
				}
			}
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to enqueue operation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transaction failed: %w", err)
	}

	return dropped, nil
}

// Pop removes and returns the operation at the head of the queue
func (s *OpQueue) Pop(ctx context.Context) (*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var op *models.QueuedOperation

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		cursor := bucket.Cursor()
		k, v := cursor.First()
		if k == nil {
			return storage.ErrQueueEmpty
		}

		op = &models.QueuedOperation{}
		if err := json.Unmarshal(v, op); err != nil {
			return fmt.Errorf("failed to unmarshal queued operation: %w", err)
		}

		if err := bucket.Delete(k); err != nil {
			return fmt.Errorf("failed to dequeue operation: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return op, nil
}

// Remove deletes every pending operation for the identity
func (s *OpQueue) Remove(ctx context.Context, entityType, recordID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			op := &models.QueuedOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				continue
			}
			if op.EntityType != entityType || op.RecordID != recordID {
				continue
			}
			if err := cursor.Delete(); err != nil {
				return fmt.Errorf("failed to remove queued operation: %w", err)
			}
			removed++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	return removed, nil
}

// List returns all pending operations in FIFO order without removing them
func (s *OpQueue) List(ctx context.Context) ([]*models.QueuedOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			op := &models.QueuedOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal queued operation: %w", err)
			}
			ops = append(ops, op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	return ops, nil
}

// Len returns the number of pending operations
func (s *OpQueue) Len(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		n = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}

	return n, nil
}
