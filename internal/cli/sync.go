package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/sync"
)

// RunSync triggers a sync cycle and streams its progress to stdout.
func (c *Cli) RunSync(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	full := fs.Bool("full", false, "Ignore checkpoints and compare every record")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events, cancel := c.orchestrator.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			switch ev.Kind {
			case sync.EventStarted:
				fmt.Println("Starting sync...")
			case sync.EventProgress:
				fmt.Printf("  %s: %d up / %d down\n", ev.Phase, ev.Uploaded, ev.Downloaded)
			case sync.EventConflict:
				fmt.Printf("  ⚠ conflict resolved in %s\n", ev.EntityType)
			case sync.EventCompleted:
				fmt.Println("✓ Sync completed")
				return
			case sync.EventFailed:
				fmt.Printf("✗ Sync failed: %s\n", ev.Error)
				return
			}
		}
	}()

	if err := c.orchestrator.ForceSync(ctx, *full, fs.Args()...); err != nil {
		cancel()
		<-done
		return fmt.Errorf("sync failed: %w", err)
	}

	<-done
	return nil
}
