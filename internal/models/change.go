package models

import "time"

// Operation тип локальной мутации
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Priority returns the execution priority of the operation.
// Deletes must land before a stale create/update could resurrect
// a deleted identity on the remote side.
func (o Operation) Priority() int {
	switch o {
	case OpDelete:
		return 0
	case OpCreate:
		return 1
	case OpUpdate:
		return 2
	default:
		return 3
	}
}

// ChangeRecord представляет одну отслеженную локальную мутацию,
// ожидающую передачи на удалённое хранилище.
// Identity: (EntityType, RecordID) - не более одной живой записи на identity.
type ChangeRecord struct {
	Timestamp  time.Time         `json:"timestamp"`
	SyncedAt   time.Time         `json:"synced_at,omitempty"`
	Payload    map[string]string `json:"payload"` // снимок полей на момент изменения
	EntityType string            `json:"entity_type"`
	RecordID   string            `json:"record_id"`
	Operation  Operation         `json:"operation"`
	RetryCount int               `json:"retry_count"`
	Synced     bool              `json:"synced"`
}

// Clone создает глубокую копию записи изменения
func (c *ChangeRecord) Clone() *ChangeRecord {
	payload := make(map[string]string, len(c.Payload))
	for k, v := range c.Payload {
		payload[k] = v
	}
	out := *c
	out.Payload = payload
	return &out
}

// Merge collapses a newer change into an existing live change for the same
// identity and returns the resulting change. The rules:
//
//   - delete always overwrites and wins outright;
//   - an update following a delete is reinterpreted as a create
//     (the record reappeared);
//   - an update following a create keeps operation=create, an update
//     following an update stays update; payload fields merge with later
//     fields overriding earlier ones;
//   - a create following a delete is a fresh create; a create on top of a
//     live change replaces the payload but keeps the earlier operation.
//
// The timestamp always advances to the later of the two. Merge is
// associative for these transitions: folding changes one at a time or all
// at once yields the same live record.
func (c *ChangeRecord) Merge(next *ChangeRecord) *ChangeRecord {
	out := next.Clone()

	if next.Operation == OpDelete {
		// Удаление побеждает безусловно, прежний payload отбрасываем
		out.Payload = map[string]string{}
		return out
	}

	switch c.Operation {
	case OpDelete:
		// Запись появилась снова после удаления
		out.Operation = OpCreate
	case OpCreate:
		out.Operation = OpCreate
		if next.Operation == OpUpdate {
			out.Payload = mergeFields(c.Payload, next.Payload)
		}
	case OpUpdate:
		out.Operation = OpUpdate
		if next.Operation == OpUpdate {
			out.Payload = mergeFields(c.Payload, next.Payload)
		}
	}

	if next.Timestamp.Before(c.Timestamp) {
		out.Timestamp = c.Timestamp
	}
	return out
}

// mergeFields объединяет payload, поздние поля перекрывают ранние
func mergeFields(earlier, later map[string]string) map[string]string {
	out := make(map[string]string, len(earlier)+len(later))
	for k, v := range earlier {
		out[k] = v
	}
	for k, v := range later {
		out[k] = v
	}
	return out
}

// Resolution исход сравнения локальной и удалённой версий записи
type Resolution string

const (
	ResolutionNone       Resolution = "no_conflict"
	ResolutionLocalWins  Resolution = "local_wins"
	ResolutionRemoteWins Resolution = "remote_wins"
	ResolutionUnresolved Resolution = "unresolved"
)

// ConflictRecord фиксирует расхождение версий одной записи с обеих сторон.
// Живет только в пределах одного цикла синхронизации, наружу попадает
// через события и статистику.
type ConflictRecord struct {
	LocalUpdatedAt  time.Time         `json:"local_updated_at"`
	RemoteUpdatedAt time.Time         `json:"remote_updated_at"`
	LocalVersion    map[string]string `json:"local_version"`
	RemoteVersion   map[string]string `json:"remote_version"`
	EntityType      string            `json:"entity_type"`
	RecordID        string            `json:"record_id"`
	Resolution      Resolution        `json:"resolution"`
}

// OpKind вид отложенной операции
type OpKind string

const (
	OpKindUpload   OpKind = "upload"
	OpKindDownload OpKind = "download"
	OpKindDelete   OpKind = "delete"
)

// QueuedOperation представляет операцию, отложенную из-за временного сбоя.
// Хранится в durable-очереди и повторяется при восстановлении связи.
type QueuedOperation struct {
	EnqueuedAt time.Time         `json:"enqueued_at"`
	Payload    map[string]string `json:"payload,omitempty"`
	ID         string            `json:"id"` // UUID операции
	Kind       OpKind            `json:"kind"`
	EntityType string            `json:"entity_type"`
	RecordID   string            `json:"record_id,omitempty"`
	Reason     string            `json:"reason"`
	Attempts   int               `json:"attempts"`
}

// SyncStatistics кумулятивные счетчики синхронизации.
// Монотонны в пределах жизни процесса и сохраняются между перезапусками.
type SyncStatistics struct {
	LastSyncAt        time.Time `json:"last_sync_at,omitempty"`
	LastError         string    `json:"last_error,omitempty"`
	TotalSyncs        int64     `json:"total_syncs"`
	SuccessfulSyncs   int64     `json:"successful_syncs"`
	FailedSyncs       int64     `json:"failed_syncs"`
	UploadedRecords   int64     `json:"uploaded_records"`
	DownloadedRecords int64     `json:"downloaded_records"`
	ConflictsResolved int64     `json:"conflicts_resolved"`
}
