package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/core/domain"
)

func TestApplyTaskPatch_CompletionStampsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := domain.Task{ID: 1, Title: "Write report", Completed: false}

	completed := true
	updated := domain.ApplyTaskPatch(task, domain.TaskPatch{Completed: &completed}, now)

	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, now, *updated.CompletedAt)
}

func TestApplyTaskPatch_UncompletionClearsTimestamp(t *testing.T) {
	stamp := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	task := domain.Task{ID: 1, Title: "Write report", Completed: true, CompletedAt: &stamp}

	completed := false
	updated := domain.ApplyTaskPatch(task, domain.TaskPatch{Completed: &completed}, time.Now())

	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestApplyTaskPatch_SameCompletionStateKeepsTimestamp(t *testing.T) {
	stamp := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	task := domain.Task{ID: 1, Title: "Write report", Completed: true, CompletedAt: &stamp}

	completed := true
	updated := domain.ApplyTaskPatch(task, domain.TaskPatch{Completed: &completed}, time.Now())

	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, stamp, *updated.CompletedAt)
}

func TestApplyTaskPatch_DoubleToggleRoundTrips(t *testing.T) {
	task := domain.Task{ID: 1, Title: "Write report", Completed: false}

	on := true
	off := false
	once := domain.ApplyTaskPatch(task, domain.TaskPatch{Completed: &on}, time.Now())
	twice := domain.ApplyTaskPatch(once, domain.TaskPatch{Completed: &off}, time.Now())

	assert.Equal(t, task.Completed, twice.Completed)
	assert.Equal(t, task.CompletedAt, twice.CompletedAt)
}

func TestApplyTaskPatch_NeverTouchesIdentityOrCreation(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	task := domain.Task{ID: 7, Title: "Old", CreatedAt: createdAt}

	title := "New title"
	priority := domain.PriorityHigh
	updated := domain.ApplyTaskPatch(task, domain.TaskPatch{Title: &title, Priority: &priority}, time.Now())

	assert.Equal(t, 7, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
}

func TestApplyTaskPatch_DueDateSetDistinguishesClearFromAbsent(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	task := domain.Task{ID: 1, Title: "Write report", DueDate: &due}

	untouched := domain.ApplyTaskPatch(task, domain.TaskPatch{}, time.Now())
	require.NotNil(t, untouched.DueDate)

	cleared := domain.ApplyTaskPatch(task, domain.TaskPatch{DueDateSet: true}, time.Now())
	assert.Nil(t, cleared.DueDate)
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, domain.PriorityLow.Valid())
	assert.True(t, domain.PriorityHigh.Valid())
	assert.False(t, domain.Priority(0).Valid())
	assert.False(t, domain.Priority(4).Valid())
}
