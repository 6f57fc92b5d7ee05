package remote

import (
	"context"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// Client defines the narrow interface to the remote spreadsheet-backed
// store of record. Every call can fail with a *remote.Error carrying a
// transient/permanent classification.
type Client interface {
	// Ping checks gateway reachability
	Ping(ctx context.Context) error

	// ReadChangeIndicator reads the cheap staleness probe for one sheet
	ReadChangeIndicator(ctx context.Context, entityType string) (*api.ChangeIndicator, error)

	// ReadAll returns every row of the sheet for one entity type
	ReadAll(ctx context.Context, entityType string) ([]api.Row, error)

	// AppendRows appends rows to the end of the sheet and returns them
	// with their assigned row indexes
	AppendRows(ctx context.Context, entityType string, rows []api.Row) ([]api.Row, error)

	// WriteRange overwrites a contiguous range of rows
	WriteRange(ctx context.Context, entityType string, rows []api.Row, rangeRef string) error

	// DeleteRows removes rows by record ID and returns how many were removed
	DeleteRows(ctx context.Context, entityType string, ids []string) (int, error)
}
