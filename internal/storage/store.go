package storage

import (
	"context"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Store defines the local durable store of record for all entity types.
// Records are exchanged in the universal field-map form so the sync core
// stays independent of concrete entity schemas.
type Store interface {
	// GetAll returns all records of the given entity type
	GetAll(ctx context.Context, entityType string) ([]*models.Record, error)

	// Get retrieves a single record by ID
	// Returns ErrRecordNotFound if the record doesn't exist
	Get(ctx context.Context, entityType, id string) (*models.Record, error)

	// Add inserts a new record
	Add(ctx context.Context, entityType string, record *models.Record) error

	// Update replaces an existing record
	// Returns ErrRecordNotFound if the record doesn't exist
	Update(ctx context.Context, entityType string, record *models.Record) error

	// Delete removes a record by ID
	// Returns ErrRecordNotFound if the record doesn't exist
	Delete(ctx context.Context, entityType, id string) error
}
