package storage

import (
	"context"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

//go:generate moq -out stats_mock.go . StatsStore

// StatsStore persists cumulative sync statistics so that restarts
// don't lose history.
type StatsStore interface {
	// SaveStats stores the statistics snapshot
	SaveStats(ctx context.Context, stats *models.SyncStatistics) error

	// GetStats retrieves the stored statistics
	// Returns zero-valued statistics if nothing has been saved yet
	GetStats(ctx context.Context) (*models.SyncStatistics, error)
}
