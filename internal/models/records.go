package models

import (
	"sort"
	"time"
)

// EntityType константы для синхронизируемых типов записей
const (
	EntityVolunteers = "volunteers"
	EntityEvents     = "events"
	EntityAttendance = "attendance"
)

// EntityTypes returns all known entity types in their canonical sync order.
func EntityTypes() []string {
	return []string{EntityVolunteers, EntityEvents, EntityAttendance}
}

// Record представляет одну запись локального хранилища в универсальной форме.
// Поля хранятся как map колонка -> значение, чтобы ядро синхронизации
// работало одинаково для всех типов записей.
type Record struct {
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Fields    map[string]string `json:"fields"`
	ID        string            `json:"id"` // уникальный идентификатор записи (UUID)
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return &Record{
		ID:        r.ID,
		Fields:    fields,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// comparableFields перечисляет поля, по которым записи считаются
// содержательно равными при разрешении конфликтов. Служебные поля
// (временные метки, счётчики) сюда не входят.
var comparableFields = map[string][]string{
	EntityVolunteers: {"name", "email", "committee", "status"},
	EntityEvents:     {"name", "date", "location"},
	EntityAttendance: {"volunteer_id", "event_id", "checked_in_at", "method", "status"},
}

// ComparableFields returns the subset of fields used for content comparison
// of two versions of the same record. Unknown entity types compare all fields.
func ComparableFields(entityType string, fields map[string]string) map[string]string {
	keys, ok := comparableFields[entityType]
	if !ok {
		out := make(map[string]string, len(fields))
		for k, v := range fields {
			out[k] = v
		}
		return out
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			out[k] = v
		}
	}
	return out
}

// FieldsEqual reports whether two field maps carry identical comparable
// content for the given entity type.
func FieldsEqual(entityType string, a, b map[string]string) bool {
	ca := ComparableFields(entityType, a)
	cb := ComparableFields(entityType, b)
	if len(ca) != len(cb) {
		return false
	}
	for k, v := range ca {
		if cb[k] != v {
			return false
		}
	}
	return true
}

// FieldNames возвращает отсортированный список имен полей (для логов и тестов)
func FieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Volunteer представляет волонтера
type Volunteer struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`        // ID уникальный идентификатор (UUID)
	Name      string    `json:"name"`      // Name полное имя волонтера
	Email     string    `json:"email"`     // Email контактный email
	Committee string    `json:"committee"` // Committee комитет/группа волонтера
	Status    string    `json:"status"`    // Status статус: "active", "inactive"
}

// Record converts the volunteer into the universal record form.
func (v *Volunteer) Record() *Record {
	return &Record{
		ID: v.ID,
		Fields: map[string]string{
			"name":      v.Name,
			"email":     v.Email,
			"committee": v.Committee,
			"status":    v.Status,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// VolunteerFromRecord restores a volunteer from the universal record form.
func VolunteerFromRecord(r *Record) *Volunteer {
	return &Volunteer{
		ID:        r.ID,
		Name:      r.Fields["name"],
		Email:     r.Fields["email"],
		Committee: r.Fields["committee"],
		Status:    r.Fields["status"],
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Event представляет событие, на котором отмечаются волонтеры
type Event struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`       // ID уникальный идентификатор (UUID)
	Name      string    `json:"name"`     // Name название события
	Date      string    `json:"date"`     // Date дата события в формате YYYY-MM-DD
	Location  string    `json:"location"` // Location место проведения
}

// Record converts the event into the universal record form.
func (e *Event) Record() *Record {
	return &Record{
		ID: e.ID,
		Fields: map[string]string{
			"name":     e.Name,
			"date":     e.Date,
			"location": e.Location,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EventFromRecord restores an event from the universal record form.
func EventFromRecord(r *Record) *Event {
	return &Event{
		ID:        r.ID,
		Name:      r.Fields["name"],
		Date:      r.Fields["date"],
		Location:  r.Fields["location"],
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Attendance представляет отметку о присутствии волонтера на событии
type Attendance struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`            // ID уникальный идентификатор (UUID)
	VolunteerID string    `json:"volunteer_id"`  // VolunteerID ссылка на волонтера
	EventID     string    `json:"event_id"`      // EventID ссылка на событие
	CheckedInAt string    `json:"checked_in_at"` // CheckedInAt время отметки (RFC3339)
	Method      string    `json:"method"`        // Method способ отметки: "scan", "manual"
	Status      string    `json:"status"`        // Status статус: "present", "cancelled"
}

// Record converts the attendance mark into the universal record form.
func (a *Attendance) Record() *Record {
	return &Record{
		ID: a.ID,
		Fields: map[string]string{
			"volunteer_id":  a.VolunteerID,
			"event_id":      a.EventID,
			"checked_in_at": a.CheckedInAt,
			"method":        a.Method,
			"status":        a.Status,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AttendanceFromRecord restores an attendance mark from the universal record form.
func AttendanceFromRecord(r *Record) *Attendance {
	return &Attendance{
		ID:          r.ID,
		VolunteerID: r.Fields["volunteer_id"],
		EventID:     r.Fields["event_id"],
		CheckedInAt: r.Fields["checked_in_at"],
		Method:      r.Fields["method"],
		Status:      r.Fields["status"],
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
