package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// RunCheckin records an attendance mark for a volunteer at an event.
// The mark is written locally first and reaches the remote on the next
// sync cycle, so check-in works offline.
func (c *Cli) RunCheckin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkin", flag.ContinueOnError)
	method := fs.String("method", "manual", "Check-in method: scan or manual")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments. Usage: tracker checkin <volunteer-id> <event-id> [-method scan|manual]")
	}
	volunteerID, eventID := fs.Arg(0), fs.Arg(1)

	if *method != "scan" && *method != "manual" {
		return fmt.Errorf("unknown method %q: expected scan or manual", *method)
	}

	// Проверяем, что обе сущности существуют локально
	volRec, err := c.store.Get(ctx, models.EntityVolunteers, volunteerID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("volunteer %s not found. Run 'tracker list volunteers' to see known IDs", volunteerID)
		}
		return fmt.Errorf("failed to look up volunteer: %w", err)
	}
	eventRec, err := c.store.Get(ctx, models.EntityEvents, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("event %s not found. Run 'tracker list events' to see known IDs", eventID)
		}
		return fmt.Errorf("failed to look up event: %w", err)
	}

	now := time.Now()
	mark := &models.Attendance{
		ID:          uuid.New().String(),
		VolunteerID: volunteerID,
		EventID:     eventID,
		CheckedInAt: now.Format(time.RFC3339),
		Method:      *method,
		Status:      "present",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.store.Add(ctx, models.EntityAttendance, mark.Record()); err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}

	volunteer := models.VolunteerFromRecord(volRec)
	event := models.EventFromRecord(eventRec)
	fmt.Printf("✓ Checked in %s at %s (%s)\n", volunteer.Name, event.Name, mark.ID)
	return nil
}
