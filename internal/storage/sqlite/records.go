package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/models"
	"github.com/sharadc16/volunteer-attendance-tracker-sub001/internal/storage"
)

// tableSpec описывает таблицу одного типа записей
type tableSpec struct {
	name    string
	columns []string // колонки полей, без id/created_at/updated_at
}

var tables = map[string]tableSpec{
	models.EntityVolunteers: {
		name:    "volunteers",
		columns: []string{"name", "email", "committee", "status"},
	},
	models.EntityEvents: {
		name:    "events",
		columns: []string{"name", "date", "location"},
	},
	models.EntityAttendance: {
		name:    "attendance",
		columns: []string{"volunteer_id", "event_id", "checked_in_at", "method", "status"},
	},
}

func spec(entityType string) (tableSpec, error) {
	t, ok := tables[entityType]
	if !ok {
		return tableSpec{}, fmt.Errorf("%w: %s", storage.ErrUnknownEntityType, entityType)
	}
	return t, nil
}

// GetAll returns all records of the given entity type
func (s *Storage) GetAll(ctx context.Context, entityType string) ([]*models.Record, error) {
	t, err := spec(entityType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT id, %s, created_at, updated_at FROM %s ORDER BY updated_at, id",
		strings.Join(t.columns, ", "), t.name,
	)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanRecord(rows, t)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", t.name, err)
	}

	return records, nil
}

// Get retrieves a single record by ID
func (s *Storage) Get(ctx context.Context, entityType, id string) (*models.Record, error) {
	t, err := spec(entityType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT id, %s, created_at, updated_at FROM %s WHERE id = ?",
		strings.Join(t.columns, ", "), t.name,
	)

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id), t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, err
	}

	return record, nil
}

// Add inserts a new record
func (s *Storage) Add(ctx context.Context, entityType string, record *models.Record) error {
	t, err := spec(entityType)
	if err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (id, %s, created_at, updated_at) VALUES (?, %s, ?, ?)",
		t.name, strings.Join(t.columns, ", "), placeholders,
	)

	args := make([]any, 0, len(t.columns)+3)
	args = append(args, record.ID)
	for _, col := range t.columns {
		args = append(args, record.Fields[col])
	}
	args = append(args, record.CreatedAt.UnixMilli(), record.UpdatedAt.UnixMilli())

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}

	return nil
}

// Update replaces an existing record
func (s *Storage) Update(ctx context.Context, entityType string, record *models.Record) error {
	t, err := spec(entityType)
	if err != nil {
		return err
	}

	assignments := make([]string, 0, len(t.columns)+1)
	args := make([]any, 0, len(t.columns)+2)
	for _, col := range t.columns {
		assignments = append(assignments, col+" = ?")
		args = append(args, record.Fields[col])
	}
	assignments = append(assignments, "updated_at = ?")
	args = append(args, record.UpdatedAt.UnixMilli(), record.ID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.name, strings.Join(assignments, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", t.name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// Delete removes a record by ID
func (s *Storage) Delete(ctx context.Context, entityType, id string) error {
	t, err := spec(entityType)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner, t tableSpec) (*models.Record, error) {
	dest := make([]any, 0, len(t.columns)+3)

	var id string
	dest = append(dest, &id)

	values := make([]string, len(t.columns))
	for i := range t.columns {
		dest = append(dest, &values[i])
	}

	var createdAt, updatedAt int64
	dest = append(dest, &createdAt, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan %s row: %w", t.name, err)
	}

	fields := make(map[string]string, len(t.columns))
	for i, col := range t.columns {
		fields[col] = values[i]
	}

	return &models.Record{
		ID:        id,
		Fields:    fields,
		CreatedAt: time.UnixMilli(createdAt),
		UpdatedAt: time.UnixMilli(updatedAt),
	}, nil
}
