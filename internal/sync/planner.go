package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/remote"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// probeConcurrency bounds the fan-out of download probes for independent
// entity types.
const probeConcurrency = 3

// Plan describes one sync cycle: what to upload per entity type and which
// types need a download. Pure data - built once, executed, discarded.
type Plan struct {
	BuiltAt   time.Time
	Uploads   map[string][]*models.ChangeRecord
	Downloads map[string]bool
	Types     []string
	FullSync  bool
}

// IsEmpty reports whether the plan carries no work at all
func (p *Plan) IsEmpty() bool {
	for _, changes := range p.Uploads {
		if len(changes) > 0 {
			return false
		}
	}
	for _, need := range p.Downloads {
		if need {
			return false
		}
	}
	return true
}

// PlanOptions управляют построением плана
type PlanOptions struct {
	// FullSync uploads all current local records instead of tracked deltas.
	// Used for first-ever sync or explicit recovery, trading bandwidth
	// for correctness.
	FullSync bool
}

// Planner computes what must move in each direction per entity type, given
// checkpoints and tracked changes.
type Planner struct {
	tracker     *Tracker
	checkpoints storage.CheckpointStore
	store       storage.Store
	remote      remote.Client
	clock       Clock
	logger      *slog.Logger
}

// NewPlanner creates a sync planner
func NewPlanner(
	tracker *Tracker,
	checkpoints storage.CheckpointStore,
	store storage.Store,
	remoteClient remote.Client,
	clock Clock,
	logger *slog.Logger,
) *Planner {
	return &Planner{
		tracker:     tracker,
		checkpoints: checkpoints,
		store:       store,
		remote:      remoteClient,
		clock:       clock,
		logger:      logger,
	}
}

// BuildPlan computes the upload sets and download needs for the given
// entity types. Download probes for independent types run concurrently
// with bounded fan-out.
func (p *Planner) BuildPlan(ctx context.Context, entityTypes []string, opts PlanOptions) (*Plan, error) {
	plan := &Plan{
		BuiltAt:   p.clock.Now(),
		Uploads:   make(map[string][]*models.ChangeRecord, len(entityTypes)),
		Downloads: make(map[string]bool, len(entityTypes)),
		Types:     entityTypes,
		FullSync:  opts.FullSync,
	}

	checkpoints := make(map[string]time.Time, len(entityTypes))
	for _, entityType := range entityTypes {
		checkpoint, err := p.checkpoints.Get(ctx, entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to get checkpoint for %s: %w", entityType, err)
		}
		checkpoints[entityType] = checkpoint

		uploads, err := p.uploadSet(ctx, entityType, checkpoint, opts)
		if err != nil {
			return nil, err
		}
		plan.Uploads[entityType] = uploads
	}

	// Пробы независимы и выполняются параллельно с ограничением fan-out
	var (
		mu  stdsync.Mutex
		wg  stdsync.WaitGroup
		sem = make(chan struct{}, probeConcurrency)
	)

	for _, entityType := range entityTypes {
		wg.Add(1)
		go func(entityType string, checkpoint time.Time) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			need := p.needsDownload(ctx, entityType, checkpoint, opts)

			mu.Lock()
			plan.Downloads[entityType] = need
			mu.Unlock()
		}(entityType, checkpoints[entityType])
	}
	wg.Wait()

	p.logger.Info("Built sync plan",
		"types", len(entityTypes),
		"full_sync", opts.FullSync,
		"empty", plan.IsEmpty())

	return plan, nil
}

// uploadSet collects what to push for one entity type
func (p *Planner) uploadSet(ctx context.Context, entityType string, checkpoint time.Time, opts PlanOptions) ([]*models.ChangeRecord, error) {
	if opts.FullSync {
		// Полная синхронизация: загружаем все локальные записи, а не дельты
		records, err := p.store.GetAll(ctx, entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to read local records for %s: %w", entityType, err)
		}

		changes := make([]*models.ChangeRecord, 0, len(records))
		for _, record := range records {
			changes = append(changes, &models.ChangeRecord{
				EntityType: entityType,
				RecordID:   record.ID,
				Operation:  models.OpCreate,
				Payload:    record.Fields,
				Timestamp:  record.UpdatedAt,
			})
		}
		return changes, nil
	}

	changes, err := p.tracker.ChangesSince(ctx, entityType, checkpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to collect changes for %s: %w", entityType, err)
	}
	return changes, nil
}

// needsDownload probes the remote change indicator against the checkpoint.
// A failed or unavailable probe defaults to "needs download": fail open
// toward consistency, not toward silence.
func (p *Planner) needsDownload(ctx context.Context, entityType string, checkpoint time.Time, opts PlanOptions) bool {
	if opts.FullSync {
		return true
	}

	indicator, err := p.remote.ReadChangeIndicator(ctx, entityType)
	if err != nil {
		p.logger.Warn("Change indicator probe failed, assuming download needed",
			"entity_type", entityType,
			"error", err)
		return true
	}

	return indicator.UpdatedAt.After(checkpoint)
}
