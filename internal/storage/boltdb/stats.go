package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

var statsKey = []byte("current")

// SaveStats stores the statistics snapshot
func (s *Storage) SaveStats(ctx context.Context, stats *models.SyncStatistics) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStats)
		if bucket == nil {
			return fmt.Errorf("stats bucket not found")
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}

		if err := bucket.Put(statsKey, data); err != nil {
			return fmt.Errorf("failed to save statistics: %w", err)
		}

		return nil
	})
}

// GetStats retrieves the stored statistics
// Returns zero-valued statistics if nothing has been saved yet
func (s *Storage) GetStats(ctx context.Context) (*models.SyncStatistics, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	stats := &models.SyncStatistics{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStats)
		if bucket == nil {
			return fmt.Errorf("stats bucket not found")
		}

		data := bucket.Get(statsKey)
		if data == nil {
			// Статистика еще не сохранялась
			return nil
		}

		if err := json.Unmarshal(data, stats); err != nil {
			return fmt.Errorf("failed to unmarshal statistics: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
