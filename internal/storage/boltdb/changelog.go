package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// ChangeLog is the change-log view over the shared database.
// A separate type keeps its Get and List from clashing with the
// checkpoint and queue views.
type ChangeLog struct {
	db *bbolt.DB
}

// Changes returns the change-log view
func (s *Storage) Changes() *ChangeLog {
	return &ChangeLog{db: s.db}
}

var _ storage.ChangeLog = (*ChangeLog)(nil)

// Put stores or replaces the change record for its identity.
// Changes are grouped into a nested bucket per entity type, keyed by record ID.
func (s *ChangeLog) Put(ctx context.Context, change *models.ChangeRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем change в JSON
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketChanges)
		if root == nil {
			return fmt.Errorf("changes bucket not found")
		}

		bucket, err := root.CreateBucketIfNotExists([]byte(change.EntityType))
		if err != nil {
			return fmt.Errorf("failed to create entity bucket: %w", err)
		}

		// Сохраняем по ключу RecordID
		if err := bucket.Put([]byte(change.RecordID), data); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Get retrieves the change record for an identity
func (s *ChangeLog) Get(ctx context.Context, entityType, recordID string) (*models.ChangeRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var change *models.ChangeRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketChanges)
		if root == nil {
			return storage.ErrChangeNotFound
		}

		bucket := root.Bucket([]byte(entityType))
		if bucket == nil {
			return storage.ErrChangeNotFound
		}

		data := bucket.Get([]byte(recordID))
		if data == nil {
			return storage.ErrChangeNotFound
		}

		// Десериализуем
		change = &models.ChangeRecord{}
		if err := json.Unmarshal(data, change); err != nil {
			return fmt.Errorf("failed to unmarshal change: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// List returns all change records of the given entity type,
// including already synced ones
func (s *ChangeLog) List(ctx context.Context, entityType string) ([]*models.ChangeRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var changes []*models.ChangeRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketChanges)
		if root == nil {
			return nil
		}

		bucket := root.Bucket([]byte(entityType))
		if bucket == nil {
			// Нет изменений этого типа - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			change := &models.ChangeRecord{}
			if err := json.Unmarshal(v, change); err != nil {
				return fmt.Errorf("failed to unmarshal change %s: %w", k, err)
			}
			changes = append(changes, change)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	return changes, nil
}

// MarkSynced flips the synced flag and stamps syncedAt for the given identities
func (s *ChangeLog) MarkSynced(ctx context.Context, entityType string, recordIDs []string, syncedAt time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketChanges)
		if root == nil {
			return fmt.Errorf("changes bucket not found")
		}

		bucket := root.Bucket([]byte(entityType))
		if bucket == nil {
			return nil
		}

		for _, id := range recordIDs {
			data := bucket.Get([]byte(id))
			if data == nil {
				// Изменение уже вытеснено более новым - пропускаем
				continue
			}

			change := &models.ChangeRecord{}
			if err := json.Unmarshal(data, change); err != nil {
				return fmt.Errorf("failed to unmarshal change %s: %w", id, err)
			}

			change.Synced = true
			change.SyncedAt = syncedAt

			updated, err := json.Marshal(change)
			if err != nil {
				return fmt.Errorf("failed to marshal change %s: %w", id, err)
			}

			if err := bucket.Put([]byte(id), updated); err != nil {
				return fmt.Errorf("failed to mark change %s synced: %w", id, err)
			}
		}

		return nil
	})
}

// PruneSynced removes synced change records older than the given cutoff
func (s *ChangeLog) PruneSynced(ctx context.Context, before time.Time) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	pruned := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket(bucketChanges)
		if root == nil {
			return nil
		}

		return root.ForEachBucket(func(name []byte) error {
			bucket := root.Bucket(name)

			// Собираем ключи на удаление, удалять внутри ForEach нельзя
			var stale [][]byte
			err := bucket.ForEach(func(k, v []byte) error {
				change := &models.ChangeRecord{}
				if err := json.Unmarshal(v, change); err != nil {
					return fmt.Errorf("failed to unmarshal change %s: %w", k, err)
				}
				if change.Synced && change.SyncedAt.Before(before) {
					key := make([]byte, len(k))
					copy(key, k)
					stale = append(stale, key)
				}
				return nil
			})
			if err != nil {
				return err
			}

			for _, k := range stale {
				if err := bucket.Delete(k); err != nil {
					return fmt.Errorf("failed to prune change %s: %w", k, err)
				}
				pruned++
			}

			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune changes: %w", err)
	}

	return pruned, nil
}
