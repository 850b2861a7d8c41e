package service

import (
	"context"
	"strings"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// TaskService fronts the task repository with the validation the
// repository itself does not perform: required fields are checked here,
// before any collaborator call is issued.
type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context, query ports.TaskQuery) ([]domain.Task, error) {
	switch {
	case query.Category != "" && query.Category != "all":
		return s.taskRepository.GetByCategory(ctx, query.Category)
	case query.Status != nil:
		return s.taskRepository.GetByStatus(ctx, *query.Status)
	case query.Priority != nil:
		return s.taskRepository.GetByPriority(ctx, *query.Priority)
	default:
		return s.taskRepository.GetAll(ctx)
	}
}

func (s *TaskService) GetByID(ctx context.Context, id int) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domain.Task{}, &domain.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(input.CategoryID) == "" {
		return domain.Task{}, &domain.ValidationError{Field: "categoryId", Message: "category is required"}
	}
	if !input.Priority.Valid() {
		input.Priority = domain.PriorityMedium
	}
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) Update(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Task{}, &domain.ValidationError{Field: "title", Message: "title is required"}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Task{}, &domain.ValidationError{Field: "priority", Message: "priority must be 1, 2 or 3"}
	}
	return s.taskRepository.Update(ctx, id, patch)
}

func (s *TaskService) Toggle(ctx context.Context, id int) (domain.Task, error) {
	return s.taskRepository.ToggleCompletion(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	return s.taskRepository.Delete(ctx, id)
}
