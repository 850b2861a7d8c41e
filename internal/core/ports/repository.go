package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type TaskRepository interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int) (domain.Task, error)
	GetByCategory(ctx context.Context, categoryID string) ([]domain.Task, error)
	GetByStatus(ctx context.Context, completed bool) ([]domain.Task, error)
	GetByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error)
	ToggleCompletion(ctx context.Context, id int) (domain.Task, error)
	Delete(ctx context.Context, id int) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (domain.Category, error)
	Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	Update(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error)
	Delete(ctx context.Context, id int) error
	UpdateTaskCount(ctx context.Context, categoryID int, count int) (domain.Category, error)
}

// Notifier is the user-facing notification collaborator (the toast layer
// in the original client). The session controller is the only caller.
type Notifier interface {
	Success(message string)
	Info(message string)
	Error(message string)
}
