// Package records adapts the record store collaborator: it maps the wire
// field names and string-encoded enums the store speaks to the typed
// domain entities the rest of the core consumes, and it parses the
// store's batch results. It also provides the two store implementations,
// in-memory and MySQL.
package records

import (
	"fmt"
	"strconv"
	"time"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// Wire field names of the record store.
const (
	fieldID          = "Id"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPriority    = "priority"
	fieldDueDate     = "due_date"
	fieldCompleted   = "completed"
	fieldCreatedAt   = "created_at"
	fieldCompletedAt = "completed_at"
	fieldCategoryID  = "category_id"

	fieldName      = "Name"
	fieldColor     = "color"
	fieldTaskCount = "task_count"
)

const dueDateLayout = "2006-01-02"

// Priority travels as a label string on the wire.
var priorityLabels = map[domain.Priority]string{
	domain.PriorityLow:    "Low Priority",
	domain.PriorityMedium: "Medium Priority",
	domain.PriorityHigh:   "High Priority",
}

func priorityLabel(p domain.Priority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return priorityLabels[domain.PriorityMedium]
}

func parsePriorityLabel(label string) domain.Priority {
	for p, l := range priorityLabels {
		if l == label {
			return p
		}
	}
	return domain.PriorityMedium
}

func encodeTask(t domain.Task) ports.RawRecord {
	rec := ports.RawRecord{
		fieldTitle:       t.Title,
		fieldDescription: t.Description,
		fieldPriority:    priorityLabel(t.Priority),
		fieldCompleted:   strconv.FormatBool(t.Completed),
		fieldCreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.ID != 0 {
		rec[fieldID] = t.ID
	}
	if cid, err := strconv.Atoi(t.CategoryID); err == nil {
		rec[fieldCategoryID] = cid
	}
	if t.DueDate != nil {
		rec[fieldDueDate] = t.DueDate.Format(dueDateLayout)
	} else {
		rec[fieldDueDate] = nil
	}
	if t.CompletedAt != nil {
		rec[fieldCompletedAt] = t.CompletedAt.UTC().Format(time.RFC3339)
	} else {
		rec[fieldCompletedAt] = nil
	}
	return rec
}

func decodeTask(rec ports.RawRecord) (domain.Task, error) {
	id, ok := recordInt(rec[fieldID])
	if !ok {
		return domain.Task{}, fmt.Errorf("task record without id: %v", rec)
	}

	task := domain.Task{
		ID:          id,
		Title:       recordString(rec[fieldTitle]),
		Description: recordString(rec[fieldDescription]),
		Priority:    parsePriorityLabel(recordString(rec[fieldPriority])),
		Completed:   recordBool(rec[fieldCompleted]),
	}

	if cid, ok := recordInt(rec[fieldCategoryID]); ok {
		task.CategoryID = strconv.Itoa(cid)
	}
	if ts, ok := recordTime(rec[fieldCreatedAt]); ok {
		task.CreatedAt = ts
	}
	if ts, ok := recordTime(rec[fieldCompletedAt]); ok {
		task.CompletedAt = &ts
	}
	if ts, ok := recordTime(rec[fieldDueDate]); ok {
		due := ts.Truncate(24 * time.Hour)
		task.DueDate = &due
	}
	return task, nil
}

func encodeCategory(c domain.Category) ports.RawRecord {
	rec := ports.RawRecord{
		fieldName:      c.Name,
		fieldColor:     c.Color,
		fieldTaskCount: c.TaskCount,
	}
	if c.ID != 0 {
		rec[fieldID] = c.ID
	}
	return rec
}

func decodeCategory(rec ports.RawRecord) (domain.Category, error) {
	id, ok := recordInt(rec[fieldID])
	if !ok {
		return domain.Category{}, fmt.Errorf("category record without id: %v", rec)
	}

	category := domain.Category{
		ID:    id,
		Name:  recordString(rec[fieldName]),
		Color: recordString(rec[fieldColor]),
	}
	if count, ok := recordInt(rec[fieldTaskCount]); ok {
		category.TaskCount = count
	}
	return category, nil
}

// Raw record values arrive loosely typed: the mock store hands back what
// was seeded, MapScan hands back int64 and []byte. The helpers below
// absorb that.

func recordString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func recordInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case []byte:
		i, err := strconv.Atoi(string(n))
		return i, err == nil
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

func recordBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	default:
		return recordString(v) == "true"
	}
}

func recordTime(v any) (time.Time, bool) {
	s := recordString(v)
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), true
	}
	if ts, err := time.Parse(dueDateLayout, s); err == nil {
		return ts.UTC(), true
	}
	if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return ts.UTC(), true
	}
	return time.Time{}, false
}
