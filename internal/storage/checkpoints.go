package storage

import (
	"context"
	"time"
)

//go:generate moq -out checkpoints_mock.go . CheckpointStore

// CheckpointStore defines per-entity-type "last synchronized at" markers.
// A checkpoint only advances after a successful exchange for that type
// and is never rolled back except through Reset.
type CheckpointStore interface {
	// Get retrieves the last sync timestamp for an entity type
	// Returns the zero time if the type has never been synced
	Get(ctx context.Context, entityType string) (time.Time, error)

	// Set stores the last sync timestamp for an entity type
	Set(ctx context.Context, entityType string, at time.Time) error

	// Reset clears the checkpoint for an entity type (explicit full re-sync)
	Reset(ctx context.Context, entityType string) error
}
