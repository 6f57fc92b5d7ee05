package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/sync"
)

// RunWatch starts the periodic sync loop and blocks until interrupted.
// Local mutations made by other processes are not observed; watch exists
// for kiosk-style deployments where this process owns the database.
func (c *Cli) RunWatch(ctx context.Context, args []string) error {
	if err := c.orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("failed to start sync loop: %w", err)
	}
	defer c.orchestrator.Stop()

	events, cancel := c.orchestrator.Subscribe()
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-sigCh:
			fmt.Printf("\nReceived %s, stopping\n", sig)
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case sync.EventStarted:
				fmt.Printf("[%s] sync started\n", ev.Time.Format("15:04:05"))
			case sync.EventProgress:
				fmt.Printf("[%s] %s: %d up / %d down\n", ev.Time.Format("15:04:05"), ev.Phase, ev.Uploaded, ev.Downloaded)
			case sync.EventConflict:
				fmt.Printf("[%s] conflict resolved in %s\n", ev.Time.Format("15:04:05"), ev.EntityType)
			case sync.EventCompleted:
				fmt.Printf("[%s] sync completed\n", ev.Time.Format("15:04:05"))
			case sync.EventFailed:
				fmt.Printf("[%s] sync failed: %s\n", ev.Time.Format("15:04:05"), ev.Error)
			}
		}
	}
}
