package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

func TestResolve_IdenticalContentIsNoConflict(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fields := map[string]string{"name": "Alice", "email": "", "committee": "", "status": "active"}

	// Метки времени расходятся, содержимое нет - часы не создают конфликтов
	winner, conflict := resolver.Resolve(models.EntityVolunteers, "v1",
		Version{UpdatedAt: lastSync.Add(time.Hour), Fields: fields},
		Version{UpdatedAt: lastSync.Add(2 * time.Hour), Fields: fields},
		lastSync, lastSync)

	assert.Equal(t, WinnerNone, winner)
	assert.Nil(t, conflict)
}

func TestResolve_OnlyLocalChanged(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	winner, conflict := resolver.Resolve(models.EntityVolunteers, "v1",
		Version{UpdatedAt: lastSync.Add(time.Minute), Fields: map[string]string{"name": "Alice"}},
		Version{UpdatedAt: lastSync.Add(-time.Minute), Fields: map[string]string{"name": "Old"}},
		lastSync, lastSync)

	assert.Equal(t, WinnerLocal, winner)
	assert.Nil(t, conflict)
}

func TestResolve_OnlyRemoteChanged(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	winner, conflict := resolver.Resolve(models.EntityVolunteers, "v1",
		Version{UpdatedAt: lastSync.Add(-time.Minute), Fields: map[string]string{"name": "Old"}},
		Version{UpdatedAt: lastSync.Add(time.Minute), Fields: map[string]string{"name": "New"}},
		lastSync, lastSync)

	// Не конфликт: локальная сторона не менялась, просто применяем удалённую
	assert.Equal(t, WinnerRemote, winner)
	assert.Nil(t, conflict)
}

func TestResolve_BothChanged_RemoteWinsOutsideSession(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sessionStart := lastSync.Add(time.Hour)

	// Локальная правка старше начала сессии - действует last-writer
	winner, conflict := resolver.Resolve(models.EntityVolunteers, "v1",
		Version{UpdatedAt: lastSync.Add(10 * time.Minute), Fields: map[string]string{"name": "Local"}},
		Version{UpdatedAt: lastSync.Add(20 * time.Minute), Fields: map[string]string{"name": "Remote"}},
		lastSync, sessionStart)

	assert.Equal(t, WinnerRemote, winner)
	require.NotNil(t, conflict)
	assert.Equal(t, models.ResolutionRemoteWins, conflict.Resolution)
	assert.Equal(t, "v1", conflict.RecordID)
}

func TestResolve_BothChanged_CurrentSessionProtectsLocal(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sessionStart := lastSync.Add(time.Minute)

	// Запись правлена в текущей сессии - устаревшая удалённая версия
	// не затирает её молча
	winner, conflict := resolver.Resolve(models.EntityVolunteers, "v1",
		Version{UpdatedAt: sessionStart.Add(time.Minute), Fields: map[string]string{"name": "Local"}},
		Version{UpdatedAt: sessionStart.Add(2 * time.Minute), Fields: map[string]string{"name": "Remote"}},
		lastSync, sessionStart)

	assert.Equal(t, WinnerLocal, winner)
	require.NotNil(t, conflict)
	assert.Equal(t, models.ResolutionLocalWins, conflict.Resolution)
}

func TestResolve_Deterministic(t *testing.T) {
	resolver := NewResolver(testLogger())

	lastSync := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	local := Version{UpdatedAt: lastSync.Add(time.Minute), Fields: map[string]string{"name": "L"}}
	remote := Version{UpdatedAt: lastSync.Add(2 * time.Minute), Fields: map[string]string{"name": "R"}}

	first, _ := resolver.Resolve(models.EntityVolunteers, "v1", local, remote, lastSync, lastSync.Add(time.Hour))
	for i := 0; i < 5; i++ {
		again, _ := resolver.Resolve(models.EntityVolunteers, "v1", local, remote, lastSync, lastSync.Add(time.Hour))
		assert.Equal(t, first, again)
	}
}
