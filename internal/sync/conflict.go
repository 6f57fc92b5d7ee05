package sync

import (
	"log/slog"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

// Winner is the apply direction decided for a pair of record versions.
type Winner int

const (
	// WinnerNone means the versions are content-identical; nothing to apply
	WinnerNone Winner = iota
	// WinnerLocal means the local version is authoritative
	WinnerLocal
	// WinnerRemote means the remote version is authoritative
	WinnerRemote
)

// Version is one side's view of a record during comparison.
type Version struct {
	UpdatedAt time.Time
	Fields    map[string]string
}

// Resolver adjudicates between a local and a remote version of the same
// record. Deliberately not a CRDT or three-way merge: a two-version,
// timestamp-plus-session heuristic for a single-active-editor scenario.
//
// remoteWinsByDefault is the steady-state tie-break outside the current
// session. Flagged for product review: on multi-device accounts a device
// syncing after a pause always loses to any remote touch, even one made
// from a stale tab of the same account.
const remoteWinsByDefault = true

type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a conflict resolver
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve compares the two versions against the last sync checkpoint and
// the current session start. The returned conflict record is nil unless
// both sides changed since the checkpoint (a true conflict); the decision
// is deterministic for fixed inputs.
func (r *Resolver) Resolve(entityType, recordID string, local, remote Version, lastSync, sessionStart time.Time) (Winner, *models.ConflictRecord) {
	// Содержательно одинаковые версии - не конфликт независимо от
	// временных меток (расхождение часов не должно создавать конфликты)
	if models.FieldsEqual(entityType, local.Fields, remote.Fields) {
		return WinnerNone, nil
	}

	// Удалённая сторона не менялась с последней синхронизации -
	// локальное изменение авторитетно
	if !remote.UpdatedAt.After(lastSync) {
		return WinnerLocal, nil
	}

	// Локальная сторона не менялась - просто принимаем удалённую версию
	if !local.UpdatedAt.After(lastSync) {
		return WinnerRemote, nil
	}

	// Обе стороны изменились после checkpoint - настоящий конфликт
	conflict := &models.ConflictRecord{
		EntityType:      entityType,
		RecordID:        recordID,
		LocalVersion:    local.Fields,
		RemoteVersion:   remote.Fields,
		LocalUpdatedAt:  local.UpdatedAt,
		RemoteUpdatedAt: remote.UpdatedAt,
	}

	// Запись, правленная в текущей сессии, не должна быть молча затерта
	// устаревшей удалённой версией
	if !local.UpdatedAt.Before(sessionStart) {
		conflict.Resolution = models.ResolutionLocalWins
		r.logger.Info("Conflict resolved: local wins (modified in current session)",
			"entity_type", entityType,
			"record_id", recordID)
		return WinnerLocal, conflict
	}

	if remoteWinsByDefault {
		conflict.Resolution = models.ResolutionRemoteWins
		r.logger.Info("Conflict resolved: remote wins (last writer)",
			"entity_type", entityType,
			"record_id", recordID,
			"local_updated_at", local.UpdatedAt,
			"remote_updated_at", remote.UpdatedAt)
		return WinnerRemote, conflict
	}

	conflict.Resolution = models.ResolutionLocalWins
	return WinnerLocal, conflict
}
