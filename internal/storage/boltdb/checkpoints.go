package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// Checkpoints is the checkpoint view over the shared database.
type Checkpoints struct {
	db *bbolt.DB
}

// Checkpoints returns the checkpoint view
func (s *Storage) Checkpoints() *Checkpoints {
	return &Checkpoints{db: s.db}
}

var _ storage.CheckpointStore = (*Checkpoints)(nil)

// Set stores the last sync timestamp for an entity type
func (s *Checkpoints) Set(ctx context.Context, entityType string, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		// Конвертируем UnixMilli в bytes
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(at.UnixMilli()))

		if err := bucket.Put([]byte(entityType), value); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}

		return nil
	})
}

// Get retrieves the last sync timestamp for an entity type
// Returns the zero time if the type has never been synced
func (s *Checkpoints) Get(ctx context.Context, entityType string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		value := bucket.Get([]byte(entityType))
		if value == nil {
			// Первая синхронизация - checkpoint отсутствует
			return nil
		}

		at = time.UnixMilli(int64(binary.BigEndian.Uint64(value)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return at, nil
}

// Reset clears the checkpoint for an entity type (explicit full re-sync)
func (s *Checkpoints) Reset(ctx context.Context, entityType string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCheckpoints)
		if bucket == nil {
			return fmt.Errorf("checkpoints bucket not found")
		}

		if err := bucket.Delete([]byte(entityType)); err != nil {
			return fmt.Errorf("failed to reset checkpoint: %w", err)
		}

		return nil
	})
}
