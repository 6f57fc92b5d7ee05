package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
)

// RunList prints local records of the requested entity type.
func (c *Cli) RunList(ctx context.Context, args []string) error {
	entityType := models.EntityVolunteers
	if len(args) > 0 {
		entityType = args[0]
	}

	records, err := c.store.GetAll(ctx, entityType)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", entityType, err)
	}

	if len(records) == 0 {
		fmt.Printf("No %s found\n", entityType)
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	switch entityType {
	case models.EntityVolunteers:
		fmt.Printf("Volunteers (%d):\n", len(records))
		for _, r := range records {
			v := models.VolunteerFromRecord(r)
			fmt.Printf("  %s  %-25s %-25s %s\n", v.ID, v.Name, v.Email, v.Committee)
		}
	case models.EntityEvents:
		fmt.Printf("Events (%d):\n", len(records))
		for _, r := range records {
			e := models.EventFromRecord(r)
			fmt.Printf("  %s  %-10s %-25s %s\n", e.ID, e.Date, e.Name, e.Location)
		}
	case models.EntityAttendance:
		fmt.Printf("Attendance (%d):\n", len(records))
		for _, r := range records {
			a := models.AttendanceFromRecord(r)
			fmt.Printf("  %s  volunteer=%s event=%s %s %s\n", a.ID, a.VolunteerID, a.EventID, a.CheckedInAt, a.Status)
		}
	default:
		return fmt.Errorf("unknown entity type %q: expected volunteers, events or attendance", entityType)
	}

	return nil
}
