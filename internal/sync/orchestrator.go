package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/auth"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/remote"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// Phase is the orchestrator's position in the sync state machine.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseChecking      Phase = "checking_prerequisites"
	PhasePlanning      Phase = "planning"
	PhaseUploading     Phase = "uploading"
	PhaseDownloading   Phase = "downloading"
	PhaseDrainingQueue Phase = "draining_queue"
	PhaseError         Phase = "error"
	PhaseDisabled      Phase = "disabled"
)

// Config настраивает оркестратор
type Config struct {
	// EntityTypes to sync; defaults to all known types
	EntityTypes []string
	// SyncInterval between scheduled cycles
	SyncInterval time.Duration
	// Debounce quiet period coalescing bursts of local writes
	Debounce time.Duration
	// DebounceMaxWait forces a flush even while writes keep arriving
	DebounceMaxWait time.Duration
	// CycleTimeout aborts a whole cycle
	CycleTimeout time.Duration
	// ChangeRetention keeps synced change records around before pruning
	ChangeRetention time.Duration
	// Enabled turns sync on
	Enabled bool
}

// DefaultConfig returns the default orchestrator configuration
func DefaultConfig() Config {
	return Config{
		EntityTypes:     models.EntityTypes(),
		SyncInterval:    5 * time.Minute,
		Debounce:        2 * time.Second,
		DebounceMaxWait: 5 * time.Second,
		CycleTimeout:    120 * time.Second,
		ChangeRetention: 7 * 24 * time.Hour,
		Enabled:         true,
	}
}

// Status is a point-in-time snapshot for a UI or CLI.
type Status struct {
	LastSyncPerType map[string]time.Time   `json:"last_sync_per_type"`
	Stats           *models.SyncStatistics `json:"stats"`
	Phase           Phase                  `json:"phase"`
	QueueDepth      int                    `json:"queue_depth"`
	PendingChanges  int                    `json:"pending_changes"`
	Enabled         bool                   `json:"enabled"`
	Online          bool                   `json:"online"`
	Syncing         bool                   `json:"syncing"`
}

// Orchestrator is the top-level sync state machine. One instance is owned
// by the application's composition root and handed to anything that needs
// to trigger or observe sync; there is no ambient singleton.
type Orchestrator struct {
	cfg         Config
	planner     *Planner
	executor    *Executor
	tracker     *Tracker
	queue       *Queue
	checkpoints storage.CheckpointStore
	statsStore  storage.StatsStore
	auth        auth.Service
	remote      remote.Client
	bus         *Bus
	clock       Clock
	scheduler   Scheduler
	debouncer   *Debouncer
	logger      *slog.Logger

	sessionStart time.Time

	mu             stdsync.Mutex
	phase          Phase
	stats          *models.SyncStatistics
	online         bool
	syncing        bool
	pendingTrigger bool
}

// NewOrchestrator wires the sync core together. sessionStart is the moment
// the current interactive session began; it feeds conflict resolution.
func NewOrchestrator(
	cfg Config,
	planner *Planner,
	executor *Executor,
	tracker *Tracker,
	queue *Queue,
	checkpoints storage.CheckpointStore,
	statsStore storage.StatsStore,
	authService auth.Service,
	remoteClient remote.Client,
	clock Clock,
	scheduler Scheduler,
	logger *slog.Logger,
) *Orchestrator {
	if len(cfg.EntityTypes) == 0 {
		cfg.EntityTypes = models.EntityTypes()
	}

	phase := PhaseIdle
	if !cfg.Enabled {
		phase = PhaseDisabled
	}

	o := &Orchestrator{
		cfg:          cfg,
		planner:      planner,
		executor:     executor,
		tracker:      tracker,
		queue:        queue,
		checkpoints:  checkpoints,
		statsStore:   statsStore,
		auth:         authService,
		remote:       remoteClient,
		bus:          NewBus(logger),
		clock:        clock,
		scheduler:    scheduler,
		logger:       logger,
		sessionStart: clock.Now(),
		phase:        phase,
		stats:        &models.SyncStatistics{},
	}

	o.debouncer = NewDebouncer(clock, cfg.Debounce, cfg.DebounceMaxWait, func() {
		o.trigger(context.Background(), PlanOptions{})
	})

	return o
}

// Start loads persisted statistics and begins the scheduled cycle loop.
func (o *Orchestrator) Start(ctx context.Context) error {
	stats, err := o.statsStore.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sync statistics: %w", err)
	}

	o.mu.Lock()
	o.stats = stats
	o.mu.Unlock()

	if o.cfg.Enabled && o.scheduler != nil {
		o.scheduler.Start(ctx, func() {
			o.trigger(ctx, PlanOptions{})
		})
	}

	return nil
}

// Stop cancels the scheduled cycle loop
func (o *Orchestrator) Stop() {
	if o.scheduler != nil {
		o.scheduler.Stop()
	}
}

// Subscribe registers a sync event subscriber
func (o *Orchestrator) Subscribe() (<-chan Event, func()) {
	return o.bus.Subscribe()
}

// NotifyLocalChange is called by the tracked store after every local
// mutation; bursts are coalesced into one debounced cycle.
func (o *Orchestrator) NotifyLocalChange() {
	if !o.cfg.Enabled {
		return
	}
	o.debouncer.Trigger()
}

// ForceSync runs a cycle immediately. With entityTypes given only those
// types sync; full requests a full re-upload instead of tracked deltas.
func (o *Orchestrator) ForceSync(ctx context.Context, full bool, entityTypes ...string) error {
	if !o.cfg.Enabled {
		return ErrSyncDisabled
	}

	opts := PlanOptions{FullSync: full}
	types := o.cfg.EntityTypes
	if len(entityTypes) > 0 {
		types = entityTypes
	}

	if full {
		// Полная пересинхронизация начинается с чистого листа: если цикл
		// оборвется, следующий инкрементальный не доверится старым checkpoint
		for _, entityType := range types {
			if err := o.checkpoints.Reset(ctx, entityType); err != nil {
				return fmt.Errorf("failed to reset checkpoint for %s: %w", entityType, err)
			}
		}
	}

	return o.runCycle(ctx, types, opts)
}

// trigger starts a cycle in the background; while one runs the request is
// recorded and honored at the end of the running cycle.
func (o *Orchestrator) trigger(ctx context.Context, opts PlanOptions) {
	go func() {
		err := o.runCycle(ctx, o.cfg.EntityTypes, opts)
		if err != nil && !errors.Is(err, ErrSyncInProgress) {
			o.logger.Error("Sync cycle failed", "error", err)
		}
	}()
}

// Status returns a point-in-time snapshot
func (o *Orchestrator) Status(ctx context.Context) (*Status, error) {
	o.mu.Lock()
	statsCopy := *o.stats
	status := &Status{
		Enabled: o.cfg.Enabled,
		Online:  o.online,
		Syncing: o.syncing,
		Phase:   o.phase,
		Stats:   &statsCopy,
	}
	o.mu.Unlock()

	status.LastSyncPerType = make(map[string]time.Time, len(o.cfg.EntityTypes))
	for _, entityType := range o.cfg.EntityTypes {
		at, err := o.checkpoints.Get(ctx, entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to get checkpoint: %w", err)
		}
		status.LastSyncPerType[entityType] = at
	}

	depth, err := o.queue.Depth(ctx)
	if err != nil {
		return nil, err
	}
	status.QueueDepth = depth

	pending, err := o.tracker.PendingCount(ctx)
	if err != nil {
		return nil, err
	}
	status.PendingChanges = pending

	return status, nil
}

// runCycle executes one full pass of the state machine:
// CheckingPrerequisites -> Planning -> Uploading -> Downloading ->
// DrainingQueue -> Idle, with Error reachable from any phase. The queue
// drain always runs, even after an earlier failure, so deferred work is
// never starved by an unrelated fault.
func (o *Orchestrator) runCycle(parent context.Context, entityTypes []string, opts PlanOptions) error {
	o.mu.Lock()
	if !o.cfg.Enabled {
		o.mu.Unlock()
		return ErrSyncDisabled
	}
	if o.syncing {
		// Совмещаем: запрос запомнен, параллельный цикл не запускается
		o.pendingTrigger = true
		o.mu.Unlock()
		return ErrSyncInProgress
	}
	o.syncing = true
	o.mu.Unlock()

	ctx, cancel := context.WithTimeout(parent, o.cfg.CycleTimeout)
	defer cancel()

	started := o.clock.Now()
	o.bus.Publish(Event{Time: started, Kind: EventStarted})

	cycleErr := o.runPhases(ctx, entityTypes, opts)

	// Очередь осушается всегда, даже после ошибки более ранней фазы
	o.setPhase(PhaseDrainingQueue)
	drained, drainErr := o.queue.Drain(ctx, o.executor.ExecuteQueued)
	if drainErr != nil {
		o.logger.Warn("Queue drain incomplete", "drained", drained, "error", drainErr)
	} else if drained > 0 {
		o.logger.Info("Drained offline queue", "drained", drained)
	}

	if _, err := o.tracker.Prune(ctx, o.cfg.ChangeRetention); err != nil {
		o.logger.Warn("Failed to prune change log", "error", err)
	}

	// Таймаут цикла отличим от остальных сбоев
	if cycleErr != nil && errors.Is(cycleErr, context.DeadlineExceeded) && parent.Err() == nil {
		cycleErr = fmt.Errorf("%w after %s", ErrSyncTimeout, o.cfg.CycleTimeout)
	}

	o.finishCycle(parent, started, cycleErr)
	return cycleErr
}

// runPhases runs prerequisites, planning, upload and download.
func (o *Orchestrator) runPhases(ctx context.Context, entityTypes []string, opts PlanOptions) error {
	o.setPhase(PhaseChecking)
	if err := o.checkPrerequisites(ctx); err != nil {
		return err
	}

	o.setPhase(PhasePlanning)
	plan, err := o.planner.BuildPlan(ctx, entityTypes, opts)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	if plan.IsEmpty() {
		o.logger.Debug("Nothing to sync")
		return nil
	}

	result := NewResult(plan)

	o.setPhase(PhaseUploading)
	if err := o.executor.Upload(ctx, plan, result); err != nil {
		o.recordResult(plan, result)
		return fmt.Errorf("upload failed: %w", err)
	}
	o.publishProgress(PhaseUploading, result)

	o.setPhase(PhaseDownloading)
	if err := o.executor.Download(ctx, plan, o.sessionStart, result); err != nil {
		o.recordResult(plan, result)
		return fmt.Errorf("download failed: %w", err)
	}
	o.publishProgress(PhaseDownloading, result)

	o.recordResult(plan, result)

	if len(result.RecordErrors) > 0 {
		return fmt.Errorf("sync completed with %d record errors, first: %w",
			len(result.RecordErrors), result.RecordErrors[0])
	}
	return nil
}

// checkPrerequisites validates configuration, authentication and
// reachability. None of these advance the plan; they short-circuit with a
// typed error.
func (o *Orchestrator) checkPrerequisites(ctx context.Context) error {
	if o.remote == nil {
		return ErrNoTarget
	}

	authed, err := o.auth.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authed {
		// Одна попытка обновить сессию; повторный отказ фатален для цикла
		if err := o.auth.Reauthenticate(ctx); err != nil {
			return fmt.Errorf("%w: %s", ErrNotAuthenticated, err)
		}
	}

	if err := o.remote.Ping(ctx); err != nil {
		o.setOnline(false)
		return fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	o.setOnline(true)

	return nil
}

// recordResult advances checkpoints for healthy types and folds the
// execution result into cumulative statistics and events.
func (o *Orchestrator) recordResult(plan *Plan, result *Result) {
	ctx := context.Background()

	// Checkpoint продвигается только до границы плана: изменения,
	// накопившиеся во время цикла, подберет следующий цикл
	for entityType, ok := range result.TypeOK {
		if !ok {
			continue
		}
		if err := o.checkpoints.Set(ctx, entityType, plan.BuiltAt); err != nil {
			o.logger.Error("Failed to advance checkpoint",
				"entity_type", entityType,
				"error", err)
		}
	}

	for _, conflict := range result.Conflicts {
		o.bus.Publish(Event{
			Time:       o.clock.Now(),
			Kind:       EventConflict,
			EntityType: conflict.EntityType,
		})
	}

	o.mu.Lock()
	o.stats.UploadedRecords += int64(result.Uploaded)
	o.stats.DownloadedRecords += int64(result.Downloaded)
	o.stats.ConflictsResolved += int64(len(result.Conflicts))
	o.mu.Unlock()
}

// finishCycle updates statistics, publishes the terminal event and honors
// a trigger that arrived while the cycle ran.
func (o *Orchestrator) finishCycle(ctx context.Context, started time.Time, cycleErr error) {
	now := o.clock.Now()

	o.mu.Lock()
	o.stats.TotalSyncs++
	if cycleErr == nil {
		o.stats.SuccessfulSyncs++
		o.stats.LastError = ""
	} else {
		o.stats.FailedSyncs++
		o.stats.LastError = cycleErr.Error()
	}
	o.stats.LastSyncAt = now
	statsCopy := *o.stats

	o.syncing = false
	rearm := o.pendingTrigger
	o.pendingTrigger = false
	if cycleErr != nil {
		o.phase = PhaseError
	} else {
		o.phase = PhaseIdle
	}
	o.mu.Unlock()

	if err := o.statsStore.SaveStats(context.Background(), &statsCopy); err != nil {
		o.logger.Warn("Failed to persist sync statistics", "error", err)
	}

	if cycleErr == nil {
		o.logger.Info("Sync cycle completed", "duration", now.Sub(started))
		o.bus.Publish(Event{Time: now, Kind: EventCompleted})
	} else {
		o.bus.Publish(Event{
			Time:  now,
			Kind:  EventFailed,
			Error: cycleErr.Error(),
		})
	}

	// Запрос, пришедший во время цикла, вызывает следующий цикл, а не
	// параллельный
	if rearm {
		o.trigger(ctx, PlanOptions{})
	}
}

func (o *Orchestrator) setPhase(phase Phase) {
	o.mu.Lock()
	o.phase = phase
	o.mu.Unlock()
}

func (o *Orchestrator) setOnline(online bool) {
	o.mu.Lock()
	o.online = online
	o.mu.Unlock()
}

func (o *Orchestrator) publishProgress(phase Phase, result *Result) {
	o.bus.Publish(Event{
		Time:       o.clock.Now(),
		Kind:       EventProgress,
		Phase:      phase,
		Uploaded:   result.Uploaded,
		Downloaded: result.Downloaded,
		Conflicts:  len(result.Conflicts),
	})
}
