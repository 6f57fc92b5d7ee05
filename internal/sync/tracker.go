package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	stdsync "sync"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// Tracker records every local create/update/delete as a timestamped change,
// merging repeated changes to the same identity so at most one live change
// exists per (entityType, recordID). Every Record call persists through the
// durable change log before returning: a crash before acknowledgment never
// loses a tracked change.
type Tracker struct {
	log    storage.ChangeLog
	clock  Clock
	logger *slog.Logger

	// per-identity serialization: writes to the same record are ordered,
	// unrelated records don't contend
	mu    stdsync.Mutex
	locks map[string]*stdsync.Mutex
}

var _ storage.ChangeRecorder = (*Tracker)(nil)

// NewTracker creates a change tracker on top of the durable change log
func NewTracker(log storage.ChangeLog, clock Clock, logger *slog.Logger) *Tracker {
	return &Tracker{
		log:    log,
		clock:  clock,
		logger: logger,
		locks:  make(map[string]*stdsync.Mutex),
	}
}

func (t *Tracker) identityLock(entityType, recordID string) *stdsync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := entityType + "/" + recordID
	lock, ok := t.locks[key]
	if !ok {
		lock = &stdsync.Mutex{}
		t.locks[key] = lock
	}
	return lock
}

// Record tracks one local mutation. Never touches the network, so it is
// usable at any time, including while a sync cycle is mid-flight.
func (t *Tracker) Record(ctx context.Context, entityType, recordID string, op models.Operation, payload map[string]string) error {
	lock := t.identityLock(entityType, recordID)
	lock.Lock()
	defer lock.Unlock()

	next := &models.ChangeRecord{
		EntityType: entityType,
		RecordID:   recordID,
		Operation:  op,
		Payload:    payload,
		Timestamp:  t.clock.Now(),
	}
	if next.Payload == nil {
		next.Payload = map[string]string{}
	}

	existing, err := t.log.Get(ctx, entityType, recordID)
	if err != nil && !errors.Is(err, storage.ErrChangeNotFound) {
		return fmt.Errorf("failed to get existing change: %w", err)
	}

	// Сливаем только с живой (непереданной) записью; синхронизированная
	// запись вытесняется новым изменением целиком
	if existing != nil && !existing.Synced {
		next = existing.Merge(next)
	}

	if err := t.log.Put(ctx, next); err != nil {
		return fmt.Errorf("failed to persist change: %w", err)
	}

	t.logger.Debug("Tracked local change",
		"entity_type", entityType,
		"record_id", recordID,
		"operation", next.Operation)

	return nil
}

// ChangesSince returns all unsynced changes of the given type with
// timestamp strictly after the checkpoint, sorted by timestamp ascending
// with record ID as tie-break. The stable order makes batching
// deterministic.
func (t *Tracker) ChangesSince(ctx context.Context, entityType string, since time.Time) ([]*models.ChangeRecord, error) {
	all, err := t.log.List(ctx, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	changes := make([]*models.ChangeRecord, 0, len(all))
	for _, c := range all {
		if c.Synced {
			continue
		}
		if !c.Timestamp.After(since) {
			continue
		}
		changes = append(changes, c)
	}

	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].Timestamp.Equal(changes[j].Timestamp) {
			return changes[i].RecordID < changes[j].RecordID
		}
		return changes[i].Timestamp.Before(changes[j].Timestamp)
	})

	return changes, nil
}

// MarkSynced flips the synced flag for the given identities. This is the
// only path that clears an identity's pending status.
func (t *Tracker) MarkSynced(ctx context.Context, entityType string, recordIDs []string) error {
	if len(recordIDs) == 0 {
		return nil
	}
	if err := t.log.MarkSynced(ctx, entityType, recordIDs, t.clock.Now()); err != nil {
		return fmt.Errorf("failed to mark changes synced: %w", err)
	}
	return nil
}

// PendingCount returns the number of unsynced changes across all entity types
func (t *Tracker) PendingCount(ctx context.Context) (int, error) {
	total := 0
	for _, entityType := range models.EntityTypes() {
		changes, err := t.ChangesSince(ctx, entityType, time.Time{})
		if err != nil {
			return 0, err
		}
		total += len(changes)
	}
	return total, nil
}

// Prune removes synced changes older than the retention window
func (t *Tracker) Prune(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := t.clock.Now().Add(-retention)
	pruned, err := t.log.PruneSynced(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune changes: %w", err)
	}
	if pruned > 0 {
		t.logger.Debug("Pruned synced changes", "count", pruned)
	}
	return pruned, nil
}
