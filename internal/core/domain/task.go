package domain

import (
	"strings"
	"time"
)

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

type Task struct {
	ID          int
	Title       string
	Description string
	CategoryID  string
	Priority    Priority
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	CategoryID  string
	Priority    Priority
	DueDate     *time.Time
}

// TaskPatch carries a partial update. Nil fields are left untouched.
// DueDateSet distinguishes "clear the due date" from "not mentioned".
type TaskPatch struct {
	Title       *string
	Description *string
	CategoryID  *string
	Priority    *Priority
	DueDate     *time.Time
	DueDateSet  bool
	Completed   *bool
}

// ApplyTaskPatch merges a patch onto a task. The completedAt rule lives
// here and nowhere else: a false to true flip stamps now, a true to false
// flip clears the stamp. ID and CreatedAt are never touched.
func ApplyTaskPatch(task Task, patch TaskPatch, now time.Time) Task {
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		task.CategoryID = *patch.CategoryID
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDateSet {
		task.DueDate = patch.DueDate
	}
	if patch.Completed != nil && *patch.Completed != task.Completed {
		if *patch.Completed {
			stamp := now
			task.CompletedAt = &stamp
		} else {
			task.CompletedAt = nil
		}
		task.Completed = *patch.Completed
	}
	return task
}
