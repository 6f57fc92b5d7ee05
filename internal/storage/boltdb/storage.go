package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth        = []byte("auth")
	bucketChanges     = []byte("changes")
	bucketCheckpoints = []byte("checkpoints")
	bucketQueue       = []byte("queue")
	bucketStats       = []byte("stats")
)

// DefaultQueueCap bounds the offline queue; beyond it the oldest
// entries are dropped rather than growing unbounded.
const DefaultQueueCap = 10000

// Storage represents BoltDB storage for all sync state:
// the change log, checkpoints, the offline queue, statistics and auth data.
type Storage struct {
	db       *bbolt.DB
	queueCap int
}

// Option configures the storage
type Option func(*Storage)

// WithQueueCap overrides the offline queue capacity
func WithQueueCap(n int) Option {
	return func(s *Storage) {
		s.queueCap = n
	}
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, queueCap: DefaultQueueCap}
	for _, opt := range opts {
		opt(storage)
	}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketChanges, bucketCheckpoints, bucketQueue, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
