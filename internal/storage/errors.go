package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that a local record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrChangeNotFound indicates that no live change exists for an identity
	ErrChangeNotFound = errors.New("change record not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrQueueEmpty indicates that the offline queue has no pending operations
	ErrQueueEmpty = errors.New("offline queue is empty")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrUnknownEntityType indicates an entity type the store has no table for
	ErrUnknownEntityType = errors.New("unknown entity type")
)
