package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/remote"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/pkg/api"
)

// ExecutorConfig bounds batching, retries and write fan-out.
type ExecutorConfig struct {
	// MaxBatchSize caps records per remote call
	MaxBatchSize int
	// MaxBatchWait caps how long a partial batch may age before a forced
	// flush (applied by the orchestrator's trigger coalescing)
	MaxBatchWait time.Duration
	// MaxRetries caps retry attempts for transient failures
	MaxRetries uint64
	// RetryBase is the initial delay of the exponential backoff
	RetryBase time.Duration
	// WriteConcurrency bounds parallel non-contiguous range writes
	WriteConcurrency int
}

// DefaultExecutorConfig returns the default bounds
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxBatchSize:     50,
		MaxBatchWait:     5 * time.Second,
		MaxRetries:       3,
		RetryBase:        500 * time.Millisecond,
		WriteConcurrency: 3,
	}
}

// Result is the outcome of executing one plan.
type Result struct {
	// TypeOK marks entity types whose upload and download phases both
	// completed without fatal error; only those checkpoints may advance
	TypeOK       map[string]bool
	Conflicts    []*models.ConflictRecord
	RecordErrors []error
	Uploaded     int
	Downloaded   int
}

// Executor groups pending operations into bounded batches and runs them
// against the remote collaborator, with retry, offline queueing and
// conflict adjudication on the download path.
type Executor struct {
	remote      remote.Client
	store       storage.Store // raw store: download applies must not re-track
	tracker     *Tracker
	resolver    *Resolver
	queue       *Queue
	checkpoints storage.CheckpointStore
	clock       Clock
	logger      *slog.Logger
	cfg         ExecutorConfig
}

// NewExecutor creates a batch executor
func NewExecutor(
	remoteClient remote.Client,
	store storage.Store,
	tracker *Tracker,
	resolver *Resolver,
	queue *Queue,
	checkpoints storage.CheckpointStore,
	clock Clock,
	logger *slog.Logger,
	cfg ExecutorConfig,
) *Executor {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultExecutorConfig().MaxBatchSize
	}
	if cfg.WriteConcurrency <= 0 {
		cfg.WriteConcurrency = DefaultExecutorConfig().WriteConcurrency
	}
	return &Executor{
		remote:      remoteClient,
		store:       store,
		tracker:     tracker,
		resolver:    resolver,
		queue:       queue,
		checkpoints: checkpoints,
		clock:       clock,
		logger:      logger,
		cfg:         cfg,
	}
}

// Execute runs the plan: uploads for every type, then downloads for the
// types whose upload succeeded. Per-record permanent failures are
// collected and skipped; transient failures that outlive the retry
// ceiling are parked in the offline queue. The returned error is non-nil
// only for whole-cycle failures such as cancellation.
func (e *Executor) Execute(ctx context.Context, plan *Plan, sessionStart time.Time) (*Result, error) {
	result := NewResult(plan)
	if err := e.Upload(ctx, plan, result); err != nil {
		return result, err
	}
	if err := e.Download(ctx, plan, sessionStart, result); err != nil {
		return result, err
	}
	return result, nil
}

// NewResult prepares a result for the plan with every type assumed healthy
func NewResult(plan *Plan) *Result {
	result := &Result{TypeOK: make(map[string]bool, len(plan.Types))}
	for _, entityType := range plan.Types {
		result.TypeOK[entityType] = true
	}
	return result
}

// Upload runs the upload phase of the plan for every entity type. Distinct
// entity types are independent: a failure marks its type and the rest
// proceed.
func (e *Executor) Upload(ctx context.Context, plan *Plan, result *Result) error {
	for _, entityType := range plan.Types {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.uploadPhase(ctx, entityType, plan.Uploads[entityType], result); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			e.logger.Error("Upload phase failed", "entity_type", entityType, "error", err)
			result.RecordErrors = append(result.RecordErrors, err)
			result.TypeOK[entityType] = false
		}
	}
	return nil
}

// Download runs the download phase for every entity type the plan marked
// stale, skipping types whose upload already failed so their checkpoints
// stay put.
func (e *Executor) Download(ctx context.Context, plan *Plan, sessionStart time.Time, result *Result) error {
	for _, entityType := range plan.Types {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !plan.Downloads[entityType] || !result.TypeOK[entityType] {
			continue
		}

		if err := e.downloadPhase(ctx, entityType, sessionStart, result); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			e.logger.Error("Download phase failed", "entity_type", entityType, "error", err)
			result.RecordErrors = append(result.RecordErrors, err)
			result.TypeOK[entityType] = false
		}
	}
	return nil
}

// uploadPhase pushes the pending changes of one entity type. Changes are
// deduplicated by identity, partitioned by operation and executed in
// priority order: deletes must land before a stale create/update could
// resurrect a deleted identity remotely.
func (e *Executor) uploadPhase(ctx context.Context, entityType string, changes []*models.ChangeRecord, result *Result) error {
	if len(changes) == 0 {
		return nil
	}

	changes = dedupeByIdentity(changes)

	partitions := make(map[models.Operation][]*models.ChangeRecord)
	for _, c := range changes {
		partitions[c.Operation] = append(partitions[c.Operation], c)
	}

	for _, op := range []models.Operation{models.OpDelete, models.OpCreate, models.OpUpdate} {
		pending := partitions[op]
		if len(pending) == 0 {
			continue
		}

		for _, batch := range chunk(pending, e.cfg.MaxBatchSize) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.executeBatch(ctx, entityType, op, batch, result); err != nil {
				return err
			}
		}
	}

	return nil
}

// executeBatch runs one bounded batch of a single operation kind.
func (e *Executor) executeBatch(ctx context.Context, entityType string, op models.Operation, batch []*models.ChangeRecord, result *Result) error {
	var err error
	switch op {
	case models.OpDelete:
		err = e.uploadDeletes(ctx, entityType, batch)
	case models.OpCreate:
		err = e.uploadCreates(ctx, entityType, batch)
	case models.OpUpdate:
		err = e.uploadUpdates(ctx, entityType, batch)
	}

	if err == nil {
		ids := make([]string, 0, len(batch))
		for _, c := range batch {
			ids = append(ids, c.RecordID)
		}
		if err := e.markSynced(ctx, entityType, ids); err != nil {
			return err
		}
		result.Uploaded += len(batch)
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if remote.IsTransient(err) {
		// Ретраи исчерпаны - откладываем пакет в offline-очередь.
		// Записи НЕ помечаются synced, пока операция ждет в очереди.
		e.enqueueBatch(ctx, entityType, op, batch, err)
		// Тип не здоров: checkpoint не должен уйти за отложенные записи
		result.TypeOK[entityType] = false
		return nil
	}

	// Постоянная ошибка: пакет пропускаем, остальные продолжаются
	result.RecordErrors = append(result.RecordErrors,
		fmt.Errorf("%s %s batch of %d skipped: %w", entityType, op, len(batch), err))
	return nil
}

// markSynced marks the identities delivered. Deferred operations for
// them are cancelled first: an identity is never synced while a stale
// payload for it waits in the offline queue.
func (e *Executor) markSynced(ctx context.Context, entityType string, ids []string) error {
	for _, id := range ids {
		if _, err := e.queue.Remove(ctx, entityType, id); err != nil {
			return fmt.Errorf("failed to cancel deferred operations for %s: %w", id, err)
		}
	}
	return e.tracker.MarkSynced(ctx, entityType, ids)
}

func (e *Executor) uploadDeletes(ctx context.Context, entityType string, batch []*models.ChangeRecord) error {
	ids := make([]string, 0, len(batch))
	for _, c := range batch {
		ids = append(ids, c.RecordID)
	}

	return e.withRetry(ctx, "delete rows", func(ctx context.Context) error {
		_, err := e.remote.DeleteRows(ctx, entityType, ids)
		if remote.IsNotFound(err) {
			// Строки уже отсутствуют - удаление идемпотентно
			return nil
		}
		return err
	})
}

func (e *Executor) uploadCreates(ctx context.Context, entityType string, batch []*models.ChangeRecord) error {
	rows := make([]api.Row, 0, len(batch))
	for _, c := range batch {
		rows = append(rows, api.Row{
			ID:        c.RecordID,
			Fields:    c.Payload,
			UpdatedAt: c.Timestamp,
		})
	}

	return e.withRetry(ctx, "append rows", func(ctx context.Context) error {
		_, err := e.remote.AppendRows(ctx, entityType, rows)
		return err
	})
}

// uploadUpdates writes updated rows in place. Contiguous runs of row
// indexes coalesce into a single range write; non-contiguous runs execute
// as parallel independent writes so one failure doesn't block the rest.
func (e *Executor) uploadUpdates(ctx context.Context, entityType string, batch []*models.ChangeRecord) error {
	index, err := e.remoteRowIndex(ctx, entityType)
	if err != nil {
		return err
	}

	var located []api.Row
	var missing []*models.ChangeRecord
	for _, c := range batch {
		row, ok := index[c.RecordID]
		if !ok {
			// Записи нет на листе - обновление превращается в добавление
			missing = append(missing, c)
			continue
		}
		located = append(located, api.Row{
			ID:        c.RecordID,
			RowIndex:  row.RowIndex,
			Fields:    c.Payload,
			UpdatedAt: c.Timestamp,
		})
	}

	if len(missing) > 0 {
		if err := e.uploadCreates(ctx, entityType, missing); err != nil {
			return err
		}
	}

	runs := contiguousRuns(located)

	var (
		wg   stdsync.WaitGroup
		sem  = make(chan struct{}, e.cfg.WriteConcurrency)
		mu   stdsync.Mutex
		errs []error
	)

	for _, run := range runs {
		wg.Add(1)
		go func(run []api.Row) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			ref := fmt.Sprintf("%d:%d", run[0].RowIndex, run[len(run)-1].RowIndex)
			err := e.withRetry(ctx, "write range", func(ctx context.Context) error {
				return e.remote.WriteRange(ctx, entityType, run, ref)
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("range %s: %w", ref, err))
				mu.Unlock()
			}
		}(run)
	}
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// downloadPhase pulls the full sheet and reconciles it into the local
// store. Applies go through the raw store so they are not re-tracked as
// local changes.
func (e *Executor) downloadPhase(ctx context.Context, entityType string, sessionStart time.Time, result *Result) error {
	var rows []api.Row
	err := e.withRetry(ctx, "read all rows", func(ctx context.Context) error {
		var err error
		rows, err = e.remote.ReadAll(ctx, entityType)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", entityType, err)
	}

	lastSync, err := e.checkpoints.Get(ctx, entityType)
	if err != nil {
		return fmt.Errorf("failed to get checkpoint for %s: %w", entityType, err)
	}

	var resolvedIDs []string

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		local, err := e.store.Get(ctx, entityType, row.ID)
		if err != nil {
			if !errors.Is(err, storage.ErrRecordNotFound) {
				return fmt.Errorf("failed to read local record %s: %w", row.ID, err)
			}

			// Новая запись с удалённой стороны
			record := &models.Record{
				ID:        row.ID,
				Fields:    row.Fields,
				CreatedAt: row.UpdatedAt,
				UpdatedAt: row.UpdatedAt,
			}
			if err := e.store.Add(ctx, entityType, record); err != nil {
				result.RecordErrors = append(result.RecordErrors,
					fmt.Errorf("failed to add downloaded record %s: %w", row.ID, err))
				continue
			}
			result.Downloaded++
			continue
		}

		winner, conflict := e.resolver.Resolve(entityType, row.ID,
			Version{UpdatedAt: local.UpdatedAt, Fields: local.Fields},
			Version{UpdatedAt: row.UpdatedAt, Fields: row.Fields},
			lastSync, sessionStart)

		if conflict != nil {
			result.Conflicts = append(result.Conflicts, conflict)
		}

		if winner != WinnerRemote {
			continue
		}

		updated := local.Clone()
		updated.Fields = row.Fields
		updated.UpdatedAt = row.UpdatedAt
		if err := e.store.Update(ctx, entityType, updated); err != nil {
			result.RecordErrors = append(result.RecordErrors,
				fmt.Errorf("failed to apply downloaded record %s: %w", row.ID, err))
			continue
		}

		result.Downloaded++
		// Локальное изменение этой записи разрешено в пользу удалённой
		// версии - снимаем его с ожидания вместе с отложенной операцией,
		// чтобы drain не воскресил проигравший payload
		resolvedIDs = append(resolvedIDs, row.ID)
	}

	if err := e.markSynced(ctx, entityType, resolvedIDs); err != nil {
		return err
	}

	return nil
}

// ExecuteQueued re-runs one previously deferred operation through the same
// upload helpers, so queued work obeys the same prioritization and backoff
// rules as fresh work.
func (e *Executor) ExecuteQueued(ctx context.Context, op *models.QueuedOperation) error {
	change := &models.ChangeRecord{
		EntityType: op.EntityType,
		RecordID:   op.RecordID,
		Payload:    op.Payload,
		Timestamp:  e.clock.Now(),
	}

	var err error
	switch op.Kind {
	case models.OpKindDelete:
		err = e.uploadDeletes(ctx, op.EntityType, []*models.ChangeRecord{change})
	case models.OpKindUpload:
		// Строка могла попасть на лист до отказа или появиться, пока
		// операция ждала: сперва ищем ее и пишем на место, добавляем
		// только отсутствующую
		err = e.uploadUpdates(ctx, op.EntityType, []*models.ChangeRecord{change})
	case models.OpKindDownload:
		result := &Result{TypeOK: map[string]bool{}}
		err = e.downloadPhase(ctx, op.EntityType, e.clock.Now(), result)
	default:
		return fmt.Errorf("unknown queued operation kind: %s", op.Kind)
	}
	if err != nil {
		return err
	}

	if op.RecordID != "" {
		if err := e.markSynced(ctx, op.EntityType, []string{op.RecordID}); err != nil {
			return err
		}
	}
	return nil
}

// enqueueBatch parks every record of a failed batch in the offline queue.
func (e *Executor) enqueueBatch(ctx context.Context, entityType string, op models.Operation, batch []*models.ChangeRecord, cause error) {
	kind := models.OpKindUpload
	if op == models.OpDelete {
		kind = models.OpKindDelete
	}

	for _, c := range batch {
		// Повторный отказ заменяет уже отложенную операцию той же записи
		if _, err := e.queue.Remove(ctx, entityType, c.RecordID); err != nil {
			e.logger.Error("Failed to replace deferred operation",
				"entity_type", entityType,
				"record_id", c.RecordID,
				"error", err)
		}
		queued := &models.QueuedOperation{
			ID:         uuid.New().String(),
			Kind:       kind,
			EntityType: entityType,
			RecordID:   c.RecordID,
			Payload:    c.Payload,
			Reason:     cause.Error(),
			EnqueuedAt: e.clock.Now(),
			Attempts:   int(e.cfg.MaxRetries),
		}
		if err := e.queue.Enqueue(ctx, queued); err != nil {
			e.logger.Error("Failed to enqueue deferred operation",
				"entity_type", entityType,
				"record_id", c.RecordID,
				"error", err)
		}
	}

	e.logger.Warn("Deferred batch to offline queue",
		"entity_type", entityType,
		"operation", op,
		"count", len(batch),
		"reason", cause)
}

// withRetry wraps a remote call with exponential backoff. Only failures
// classified as transient are retried; permanent failures surface
// immediately.
func (e *Executor) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(e.cfg.MaxRetries, retry.NewExponential(e.cfg.RetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if remote.IsTransient(err) {
			e.logger.Debug("Transient failure, retrying", "op", op, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// remoteRowIndex reads the sheet once and maps record ID to its row.
func (e *Executor) remoteRowIndex(ctx context.Context, entityType string) (map[string]api.Row, error) {
	var rows []api.Row
	err := e.withRetry(ctx, "read row index", func(ctx context.Context) error {
		var err error
		rows, err = e.remote.ReadAll(ctx, entityType)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read remote rows for %s: %w", entityType, err)
	}

	index := make(map[string]api.Row, len(rows))
	for _, row := range rows {
		index[row.ID] = row
	}
	return index, nil
}

// dedupeByIdentity collapses redundant entries for the same identity with
// the same merge rule the tracker applies, preserving first-seen order.
func dedupeByIdentity(changes []*models.ChangeRecord) []*models.ChangeRecord {
	seen := make(map[string]int, len(changes))
	out := make([]*models.ChangeRecord, 0, len(changes))

	for _, c := range changes {
		key := c.EntityType + "/" + c.RecordID
		if i, ok := seen[key]; ok {
			out[i] = out[i].Merge(c)
			continue
		}
		seen[key] = len(out)
		out = append(out, c)
	}

	return out
}

// chunk splits changes into batches of at most size records
func chunk(changes []*models.ChangeRecord, size int) [][]*models.ChangeRecord {
	var batches [][]*models.ChangeRecord
	for len(changes) > size {
		batches = append(batches, changes[:size])
		changes = changes[size:]
	}
	if len(changes) > 0 {
		batches = append(batches, changes)
	}
	return batches
}

// contiguousRuns groups rows into runs of adjacent row indexes, each run
// writable as a single range.
func contiguousRuns(rows []api.Row) [][]api.Row {
	if len(rows) == 0 {
		return nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].RowIndex < rows[j].RowIndex })

	var runs [][]api.Row
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || rows[i].RowIndex != rows[i-1].RowIndex+1 {
			runs = append(runs, rows[start:i])
			start = i
		}
	}
	return runs
}
