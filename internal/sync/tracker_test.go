package sync

import (
	"context"
	"log/slog"
	"os"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memChangeLog is an in-memory ChangeLog used across the sync tests.
type memChangeLog struct {
	mu      stdsync.Mutex
	changes map[string]*models.ChangeRecord
}

func newMemChangeLog() *memChangeLog {
	return &memChangeLog{changes: make(map[string]*models.ChangeRecord)}
}

func (m *memChangeLog) key(entityType, recordID string) string {
	return entityType + "/" + recordID
}

func (m *memChangeLog) Put(ctx context.Context, change *models.ChangeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes[m.key(change.EntityType, change.RecordID)] = change.Clone()
	return nil
}

func (m *memChangeLog) Get(ctx context.Context, entityType, recordID string) (*models.ChangeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.changes[m.key(entityType, recordID)]
	if !ok {
		return nil, storage.ErrChangeNotFound
	}
	return c.Clone(), nil
}

func (m *memChangeLog) List(ctx context.Context, entityType string) ([]*models.ChangeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.ChangeRecord
	for _, c := range m.changes {
		if c.EntityType == entityType {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (m *memChangeLog) MarkSynced(ctx context.Context, entityType string, recordIDs []string, syncedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range recordIDs {
		if c, ok := m.changes[m.key(entityType, id)]; ok {
			c.Synced = true
			c.SyncedAt = syncedAt
		}
	}
	return nil
}

func (m *memChangeLog) PruneSynced(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pruned := 0
	for k, c := range m.changes {
		if c.Synced && c.SyncedAt.Before(before) {
			delete(m.changes, k)
			pruned++
		}
	}
	return pruned, nil
}

var _ storage.ChangeLog = (*memChangeLog)(nil)

func TestTracker_RecordMergesLiveChange(t *testing.T) {
	ctx := context.Background()
	clock := NewManualClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	err := tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate,
		map[string]string{"name": "Alice"})
	require.NoError(t, err)

	clock.Advance(time.Second)
	err = tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpUpdate,
		map[string]string{"email": "a@example.com"})
	require.NoError(t, err)

	// Две мутации одной identity сливаются в одну живую запись
	change, err := log.Get(ctx, models.EntityVolunteers, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.OpCreate, change.Operation)
	assert.Equal(t, "Alice", change.Payload["name"])
	assert.Equal(t, "a@example.com", change.Payload["email"])
}

func TestTracker_RecordAfterSyncedStartsFresh(t *testing.T) {
	ctx := context.Background()
	clock := NewManualClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate,
		map[string]string{"name": "Alice"}))
	require.NoError(t, tracker.MarkSynced(ctx, models.EntityVolunteers, []string{"v1"}))

	clock.Advance(time.Second)
	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpUpdate,
		map[string]string{"name": "Bob"}))

	// Синхронизированная запись не участвует в слиянии
	change, err := log.Get(ctx, models.EntityVolunteers, "v1")
	require.NoError(t, err)
	assert.Equal(t, models.OpUpdate, change.Operation)
	assert.False(t, change.Synced)
	assert.NotContains(t, change.Payload, "email")
}

func TestTracker_ChangesSinceFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate,
		map[string]string{"name": "A"}))
	clock.Advance(time.Minute)
	checkpoint := clock.Now()

	clock.Advance(time.Minute)
	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v3", models.OpCreate,
		map[string]string{"name": "C"}))
	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v2", models.OpCreate,
		map[string]string{"name": "B"}))
	require.NoError(t, tracker.MarkSynced(ctx, models.EntityVolunteers, []string{"v1"}))

	changes, err := tracker.ChangesSince(ctx, models.EntityVolunteers, checkpoint)
	require.NoError(t, err)

	// v1 synced, остальные после checkpoint; одинаковые временные метки
	// упорядочены по ID записи
	require.Len(t, changes, 2)
	assert.Equal(t, "v2", changes[0].RecordID)
	assert.Equal(t, "v3", changes[1].RecordID)
}

func TestTracker_ChangesSinceExcludesCheckpointBoundary(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate, nil))

	// Изменение ровно на границе checkpoint не попадает в выборку
	changes, err := tracker.ChangesSince(ctx, models.EntityVolunteers, start)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestTracker_PendingCount(t *testing.T) {
	ctx := context.Background()
	clock := NewManualClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	clock.Advance(time.Second)
	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate, nil))
	require.NoError(t, tracker.Record(ctx, models.EntityEvents, "e1", models.OpCreate, nil))

	count, err := tracker.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTracker_Prune(t *testing.T) {
	ctx := context.Background()
	clock := NewManualClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	clock.Advance(time.Second)
	require.NoError(t, tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpCreate, nil))
	require.NoError(t, tracker.MarkSynced(ctx, models.EntityVolunteers, []string{"v1"}))

	clock.Advance(30 * 24 * time.Hour)
	pruned, err := tracker.Prune(ctx, 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	count, err := tracker.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTracker_ConcurrentSameIdentity(t *testing.T) {
	ctx := context.Background()
	clock := NewManualClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	log := newMemChangeLog()
	tracker := NewTracker(log, clock, testLogger())

	clock.Advance(time.Second)

	var wg stdsync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tracker.Record(ctx, models.EntityVolunteers, "v1", models.OpUpdate,
				map[string]string{"name": "X"})
		}()
	}
	wg.Wait()

	// Гонки по одной identity сериализуются: живая запись ровно одна
	changes, err := tracker.ChangesSince(ctx, models.EntityVolunteers, time.Time{})
	require.NoError(t, err)
	assert.Len(t, changes, 1)
}
