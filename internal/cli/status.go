package cli

import (
	"context"
	"fmt"
	"sort"
)

// RunStatus prints the sync status snapshot.
func (c *Cli) RunStatus(ctx context.Context, args []string) error {
	status, err := c.orchestrator.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	fmt.Println("Sync status:")
	fmt.Printf("  Enabled:         %v\n", status.Enabled)
	fmt.Printf("  Online:          %v\n", status.Online)
	fmt.Printf("  Phase:           %s\n", status.Phase)
	fmt.Printf("  Pending changes: %d\n", status.PendingChanges)
	fmt.Printf("  Queued ops:      %d\n", status.QueueDepth)

	types := make([]string, 0, len(status.LastSyncPerType))
	for entityType := range status.LastSyncPerType {
		types = append(types, entityType)
	}
	sort.Strings(types)

	fmt.Println("Last sync per type:")
	for _, entityType := range types {
		at := status.LastSyncPerType[entityType]
		if at.IsZero() {
			fmt.Printf("  %-12s never\n", entityType)
			continue
		}
		fmt.Printf("  %-12s %s\n", entityType, at.Format("2006-01-02 15:04:05"))
	}

	if stats := status.Stats; stats != nil {
		fmt.Println("Statistics:")
		fmt.Printf("  Cycles:     %d total, %d ok, %d failed\n", stats.TotalSyncs, stats.SuccessfulSyncs, stats.FailedSyncs)
		fmt.Printf("  Records:    %d uploaded, %d downloaded\n", stats.UploadedRecords, stats.DownloadedRecords)
		fmt.Printf("  Conflicts:  %d resolved\n", stats.ConflictsResolved)
		if stats.LastError != "" {
			fmt.Printf("  Last error: %s\n", stats.LastError)
		}
	}

	return nil
}
