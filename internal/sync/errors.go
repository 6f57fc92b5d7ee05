package sync

import "errors"

// Typed sync errors. Configuration and authentication failures short-circuit
// a cycle without retry; ErrSyncTimeout is distinct so callers can tell an
// aborted cycle from a failed one.
var (
	// ErrSyncDisabled indicates sync is turned off
	ErrSyncDisabled = errors.New("sync is disabled")

	// ErrSyncInProgress indicates a cycle is already running; the trigger
	// is coalesced into the next idle cycle rather than running in parallel
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNotAuthenticated indicates no valid session with the gateway
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoTarget indicates the remote target is not configured
	ErrNoTarget = errors.New("remote target is not configured")

	// ErrUnreachable indicates the reachability probe failed
	ErrUnreachable = errors.New("gateway is unreachable")

	// ErrSyncTimeout indicates the whole-cycle timeout expired
	ErrSyncTimeout = errors.New("sync cycle timed out")
)
