package ports

import (
	"context"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/view"
)

// TaskQuery narrows a task listing. Zero values mean "no filter".
type TaskQuery struct {
	Category string
	Status   *bool
	Priority *domain.Priority
}

// TaskOps are the task-facing session operations consumed by the HTTP
// adapter.
type TaskOps interface {
	ListTasks(ctx context.Context, query TaskQuery) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id int) error
	ToggleTask(ctx context.Context, id int) (domain.Task, error)
	QuickAdd(ctx context.Context, title string) (domain.Task, error)
}

// CategoryOps are the category-facing session operations.
type CategoryOps interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

// ViewOps expose the derived view and the filter state machine.
type ViewOps interface {
	View() view.View
	Filters() view.Filters
	SelectedCategory() string
	SelectCategory(categoryID string)
	ChangeFilter(key, value string) error
	ResetFilters()
}
