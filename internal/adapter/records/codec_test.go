package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

func TestDecodeTask_FromWireRecord(t *testing.T) {
	rec := ports.RawRecord{
		"Id":           3,
		"title":        "Buy groceries",
		"description":  "Milk, eggs",
		"priority":     "High Priority",
		"due_date":     "2026-08-30",
		"completed":    "true",
		"created_at":   "2026-08-25T08:00:00Z",
		"completed_at": "2026-08-29T17:30:00Z",
		"category_id":  3,
	}

	task, err := decodeTask(rec)
	require.NoError(t, err)

	assert.Equal(t, 3, task.ID)
	assert.Equal(t, "Buy groceries", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, "3", task.CategoryID)
	assert.True(t, task.Completed)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-08-30", task.DueDate.Format("2006-01-02"))
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, time.Date(2026, 8, 29, 17, 30, 0, 0, time.UTC), *task.CompletedAt)
}

func TestDecodeTask_SQLTypedValues(t *testing.T) {
	// MapScan hands back int64 and strings rather than the seeded types.
	rec := ports.RawRecord{
		"Id":           int64(9),
		"title":        "From mysql",
		"description":  "",
		"priority":     "Low Priority",
		"due_date":     nil,
		"completed":    "false",
		"created_at":   "2026-01-02T03:04:05Z",
		"completed_at": nil,
		"category_id":  int64(2),
	}

	task, err := decodeTask(rec)
	require.NoError(t, err)

	assert.Equal(t, 9, task.ID)
	assert.Equal(t, "2", task.CategoryID)
	assert.Equal(t, domain.PriorityLow, task.Priority)
	assert.False(t, task.Completed)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.CompletedAt)
}

func TestDecodeTask_MissingIDFails(t *testing.T) {
	_, err := decodeTask(ports.RawRecord{"title": "orphan"})
	assert.Error(t, err)
}

func TestEncodeDecodeTask_RoundTrip(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	task := domain.Task{
		ID:          4,
		Title:       "Ship release",
		Description: "cut and tag",
		CategoryID:  "1",
		Priority:    domain.PriorityMedium,
		DueDate:     &due,
		Completed:   true,
		CreatedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		CompletedAt: &stamp,
	}

	decoded, err := decodeTask(encodeTask(task))
	require.NoError(t, err)
	assert.Equal(t, task, decoded)
}

func TestEncodeTask_OmitsZeroID(t *testing.T) {
	rec := encodeTask(domain.Task{Title: "new", CategoryID: "1", CreatedAt: time.Now()})
	_, hasID := rec["Id"]
	assert.False(t, hasID)
}

func TestPriorityLabels(t *testing.T) {
	assert.Equal(t, "Low Priority", priorityLabel(domain.PriorityLow))
	assert.Equal(t, "Medium Priority", priorityLabel(domain.PriorityMedium))
	assert.Equal(t, "High Priority", priorityLabel(domain.PriorityHigh))

	assert.Equal(t, domain.PriorityHigh, parsePriorityLabel("High Priority"))
	// Unknown labels fall back to medium rather than dropping the record.
	assert.Equal(t, domain.PriorityMedium, parsePriorityLabel("Urgent"))
	assert.Equal(t, "Medium Priority", priorityLabel(domain.Priority(0)))
}

func TestDecodeCategory(t *testing.T) {
	rec := ports.RawRecord{"Id": 1, "Name": "Work", "color": "blue", "task_count": int64(5)}

	category, err := decodeCategory(rec)
	require.NoError(t, err)

	assert.Equal(t, domain.Category{ID: 1, Name: "Work", Color: "blue", TaskCount: 5}, category)
}

func TestRecordHelpers_ByteSlices(t *testing.T) {
	n, ok := recordInt([]byte("42"))
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	assert.Equal(t, "hello", recordString([]byte("hello")))
	assert.True(t, recordBool([]byte("true")))
	assert.False(t, recordBool([]byte("false")))
	assert.False(t, recordBool(nil))
}

func TestRecordTime_AcceptsDateOnlyAndDatetime(t *testing.T) {
	ts, ok := recordTime("2026-08-30")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), ts)

	ts, ok = recordTime("2026-08-30 12:30:00")
	assert.True(t, ok)
	assert.Equal(t, 12, ts.Hour())

	_, ok = recordTime("")
	assert.False(t, ok)
}
