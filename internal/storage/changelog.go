package storage

import (
	"context"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

//go:generate moq -out changelog_mock.go . ChangeLog

// ChangeLog defines durable storage for tracked local changes.
// At most one live change record exists per (entityType, recordID);
// the merge of concurrent changes is the caller's responsibility,
// the log only persists what it is given.
type ChangeLog interface {
	// Put stores or replaces the change record for its identity
	Put(ctx context.Context, change *models.ChangeRecord) error

	// Get retrieves the change record for an identity
	// Returns ErrChangeNotFound if no change exists
	Get(ctx context.Context, entityType, recordID string) (*models.ChangeRecord, error)

	// List returns all change records of the given entity type,
	// including already synced ones, in unspecified order
	List(ctx context.Context, entityType string) ([]*models.ChangeRecord, error)

	// MarkSynced flips the synced flag and stamps syncedAt for the given identities
	MarkSynced(ctx context.Context, entityType string, recordIDs []string, syncedAt time.Time) error

	// PruneSynced removes synced change records older than the given cutoff
	// and returns the number of removed records
	PruneSynced(ctx context.Context, before time.Time) (int, error)
}
