package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/validation"
)

// RunAddVolunteer adds a volunteer to the local store; the mutation is
// tracked and synced on the next cycle.
func (c *Cli) RunAddVolunteer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-volunteer", flag.ContinueOnError)
	email := fs.String("email", "", "Contact email")
	committee := fs.String("committee", "", "Committee or group")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("missing name. Usage: tracker add-volunteer <name> [-email ...] [-committee ...]")
	}
	name := fs.Arg(0)

	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := validation.ValidateEmail(*email); err != nil {
		return err
	}

	now := time.Now()
	volunteer := &models.Volunteer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     *email,
		Committee: *committee,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.store.Add(ctx, models.EntityVolunteers, volunteer.Record()); err != nil {
		return fmt.Errorf("failed to add volunteer: %w", err)
	}

	fmt.Printf("✓ Added volunteer %s (%s)\n", volunteer.Name, volunteer.ID)
	return nil
}

// RunAddEvent adds an event to the local store.
func (c *Cli) RunAddEvent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-event", flag.ContinueOnError)
	location := fs.String("location", "", "Event location")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments. Usage: tracker add-event <name> <date> [-location ...]")
	}
	name, date := fs.Arg(0), fs.Arg(1)

	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := validation.ValidateDate(date); err != nil {
		return err
	}

	now := time.Now()
	event := &models.Event{
		ID:        uuid.New().String(),
		Name:      name,
		Date:      date,
		Location:  *location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.store.Add(ctx, models.EntityEvents, event.Record()); err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}

	fmt.Printf("✓ Added event %s on %s (%s)\n", event.Name, event.Date, event.ID)
	return nil
}
