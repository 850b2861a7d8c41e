// Package view computes the visible task list and the status counts from
// the raw task collection and the user-selected filter state. It is pure:
// no I/O, no hidden state, cheap enough to recompute on every change.
package view

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"taskflow/internal/core/domain"
)

const (
	FilterAll       = "all"
	StatusCompleted = "completed"
	StatusActive    = "active"

	SortByTitle    = "title"
	SortByDueDate  = "dueDate"
	SortByPriority = "priority"
	SortByCreated  = "created"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type Filters struct {
	Status    string
	Category  string
	Priority  string
	SortBy    string
	SortOrder string
}

func DefaultFilters() Filters {
	return Filters{
		Status:    FilterAll,
		Category:  FilterAll,
		Priority:  FilterAll,
		SortBy:    SortByCreated,
		SortOrder: OrderDesc,
	}
}

// Counts are global over the whole task collection, not the filtered
// subset: the status filter buttons show workspace totals regardless of
// which filter is active.
type Counts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type View struct {
	Visible []domain.Task
	Counts  Counts
}

// noDueDate sorts tasks without a due date last in ascending order.
var noDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Compute filters by selected category, status and priority, then sorts
// by the requested key. The sort is stable: tasks with equal keys keep
// their input order for both sort directions.
func Compute(tasks []domain.Task, selectedCategory string, f Filters) View {
	visible := make([]domain.Task, 0, len(tasks))

	if selectedCategory != FilterAll && selectedCategory != "" {
		for _, t := range tasks {
			if t.CategoryID == selectedCategory {
				visible = append(visible, t)
			}
		}
	} else {
		visible = append(visible, tasks...)
	}

	if f.Status != FilterAll && f.Status != "" {
		wantCompleted := f.Status == StatusCompleted
		kept := visible[:0]
		for _, t := range visible {
			if t.Completed == wantCompleted {
				kept = append(kept, t)
			}
		}
		visible = kept
	}

	if f.Priority != FilterAll && f.Priority != "" {
		p, err := strconv.Atoi(f.Priority)
		kept := visible[:0]
		for _, t := range visible {
			if err == nil && int(t.Priority) == p {
				kept = append(kept, t)
			}
		}
		visible = kept
	}

	desc := f.SortOrder == OrderDesc
	sort.SliceStable(visible, func(i, j int) bool {
		c := compareTasks(visible[i], visible[j], f.SortBy)
		if c == 0 {
			// Equal keys are never reported as swapped.
			return false
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	return View{Visible: visible, Counts: CountTasks(tasks)}
}

// CountTasks tallies the unfiltered collection.
func CountTasks(tasks []domain.Task) Counts {
	counts := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			counts.Completed++
		}
	}
	counts.Active = counts.All - counts.Completed
	return counts
}

func compareTasks(a, b domain.Task, sortBy string) int {
	switch sortBy {
	case SortByTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortByDueDate:
		return dueDateKey(a).Compare(dueDateKey(b))
	case SortByPriority:
		return int(a.Priority) - int(b.Priority)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func dueDateKey(t domain.Task) time.Time {
	if t.DueDate == nil {
		return noDueDate
	}
	return *t.DueDate
}
