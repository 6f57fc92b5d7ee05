package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationPriority(t *testing.T) {
	// Удаления должны выполняться раньше создания и обновления
	assert.Less(t, OpDelete.Priority(), OpCreate.Priority())
	assert.Less(t, OpCreate.Priority(), OpUpdate.Priority())
}

func TestMerge_DeleteWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "Alice"},
		Timestamp:  base,
	}
	next := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpDelete,
		Timestamp:  base.Add(time.Minute),
	}

	merged := existing.Merge(next)
	assert.Equal(t, OpDelete, merged.Operation)
	assert.Empty(t, merged.Payload)
	assert.Equal(t, base.Add(time.Minute), merged.Timestamp)
}

func TestMerge_UpdateAfterDeleteBecomesCreate(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpDelete,
		Payload:    map[string]string{},
		Timestamp:  base,
	}
	next := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "Alice"},
		Timestamp:  base.Add(time.Minute),
	}

	merged := existing.Merge(next)
	// Запись появилась снова - интерпретируем как создание
	assert.Equal(t, OpCreate, merged.Operation)
	assert.Equal(t, "Alice", merged.Payload["name"])
}

func TestMerge_UpdateAfterCreateStaysCreate(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpCreate,
		Payload:    map[string]string{"name": "Alice", "email": "a@example.com"},
		Timestamp:  base,
	}
	next := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "Alice Smith"},
		Timestamp:  base.Add(time.Minute),
	}

	merged := existing.Merge(next)
	assert.Equal(t, OpCreate, merged.Operation)
	// Поздние поля перекрывают ранние, непересекающиеся сохраняются
	assert.Equal(t, "Alice Smith", merged.Payload["name"])
	assert.Equal(t, "a@example.com", merged.Payload["email"])
}

func TestMerge_UpdateAfterUpdateMergesPayload(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := &ChangeRecord{
		EntityType: EntityEvents,
		RecordID:   "e1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "Spring Fair", "location": "Hall A"},
		Timestamp:  base,
	}
	next := &ChangeRecord{
		EntityType: EntityEvents,
		RecordID:   "e1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"location": "Hall B"},
		Timestamp:  base.Add(time.Second),
	}

	merged := existing.Merge(next)
	assert.Equal(t, OpUpdate, merged.Operation)
	assert.Equal(t, "Spring Fair", merged.Payload["name"])
	assert.Equal(t, "Hall B", merged.Payload["location"])
}

func TestMerge_TimestampNeverRegresses(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	existing := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "A"},
		Timestamp:  base,
	}
	// Изменение с отставшими часами не должно откатить отметку времени
	next := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpUpdate,
		Payload:    map[string]string{"name": "B"},
		Timestamp:  base.Add(-time.Hour),
	}

	merged := existing.Merge(next)
	assert.Equal(t, base, merged.Timestamp)
	assert.Equal(t, "B", merged.Payload["name"])
}

func TestMerge_Associative(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	a := &ChangeRecord{EntityType: EntityVolunteers, RecordID: "v1", Operation: OpCreate,
		Payload: map[string]string{"name": "A"}, Timestamp: base}
	b := &ChangeRecord{EntityType: EntityVolunteers, RecordID: "v1", Operation: OpUpdate,
		Payload: map[string]string{"email": "a@example.com"}, Timestamp: base.Add(time.Second)}
	c := &ChangeRecord{EntityType: EntityVolunteers, RecordID: "v1", Operation: OpUpdate,
		Payload: map[string]string{"name": "B"}, Timestamp: base.Add(2 * time.Second)}

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))

	assert.Equal(t, left.Operation, right.Operation)
	assert.Equal(t, left.Payload, right.Payload)
	assert.Equal(t, left.Timestamp, right.Timestamp)
}

func TestClone_DeepCopiesPayload(t *testing.T) {
	orig := &ChangeRecord{
		EntityType: EntityVolunteers,
		RecordID:   "v1",
		Operation:  OpCreate,
		Payload:    map[string]string{"name": "Alice"},
	}

	clone := orig.Clone()
	require.NotSame(t, orig, clone)

	clone.Payload["name"] = "Bob"
	assert.Equal(t, "Alice", orig.Payload["name"])
}
