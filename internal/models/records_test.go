package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityTypes(t *testing.T) {
	types := EntityTypes()
	assert.Equal(t, []string{EntityVolunteers, EntityEvents, EntityAttendance}, types)
}

func TestVolunteerRecordRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	v := &Volunteer{
		ID:        "v1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Committee: "logistics",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	restored := VolunteerFromRecord(v.Record())
	assert.Equal(t, v, restored)
}

func TestFieldsEqual_IgnoresUnknownFields(t *testing.T) {
	a := map[string]string{"name": "Alice", "email": "a@example.com", "committee": "", "status": "active"}
	b := map[string]string{"name": "Alice", "email": "a@example.com", "committee": "", "status": "active", "extra": "x"}

	// Сравниваются только сопоставимые поля типа
	assert.True(t, FieldsEqual(EntityVolunteers, a, b))

	b["name"] = "Bob"
	assert.False(t, FieldsEqual(EntityVolunteers, a, b))
}

func TestComparableFields_StripsServiceFields(t *testing.T) {
	fields := map[string]string{
		"name":      "Spring Fair",
		"date":      "2026-04-01",
		"location":  "Hall A",
		"synced_at": "2026-04-01T10:00:00Z",
	}

	comparable := ComparableFields(EntityEvents, fields)
	require.Len(t, comparable, 3)
	assert.NotContains(t, comparable, "synced_at")
}

func TestRecordClone(t *testing.T) {
	r := &Record{
		ID:     "v1",
		Fields: map[string]string{"name": "Alice"},
	}

	clone := r.Clone()
	clone.Fields["name"] = "Bob"
	assert.Equal(t, "Alice", r.Fields["name"])
}
