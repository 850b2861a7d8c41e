// Package session orchestrates user intents into repository calls and
// view recomputations. One Session is the Go counterpart of one open
// dashboard: it owns the selected category, the filter state and the
// modal editor state, and it keeps the entity store and the category
// counts in step after every mutation.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"taskflow/internal/app/service"
	"taskflow/internal/app/store"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/internal/core/view"
	"taskflow/pkg/translator"
)

type Session struct {
	// mu serializes transitions: intents arrive from HTTP handler
	// goroutines but apply one at a time, like the original event loop.
	// Overlapping async repository results still land last-write-wins.
	mu sync.Mutex

	entities   *store.EntityStore
	tasks      *service.TaskService
	categories *service.CategoryService
	reconciler *service.Reconciler
	notifier   ports.Notifier
	lang       string

	selectedCategory string
	filters          view.Filters
	modalOpen        bool
	editing          *int
}

var (
	_ ports.TaskOps     = (*Session)(nil)
	_ ports.CategoryOps = (*Session)(nil)
	_ ports.ViewOps     = (*Session)(nil)
)

func New(
	tasks *service.TaskService,
	categories *service.CategoryService,
	reconciler *service.Reconciler,
	notifier ports.Notifier,
	lang string,
) *Session {
	return &Session{
		entities:         store.NewEntityStore(),
		tasks:            tasks,
		categories:       categories,
		reconciler:       reconciler,
		notifier:         notifier,
		lang:             lang,
		selectedCategory: view.FilterAll,
		filters:          view.DefaultFilters(),
	}
}

// Load re-fetches the whole working set. Reads degrade to empty in the
// repositories, so Load only fails on context cancellation.
func (s *Session) Load(ctx context.Context) error {
	tasks, err := s.tasks.List(ctx, ports.TaskQuery{})
	if err != nil {
		s.notifyError("notifLoadFailed")
		return err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.notifyError("notifLoadFailed")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities.ReplaceTasks(tasks)
	s.entities.ReplaceCategories(categories)
	s.reconcileLocked(ctx)
	return nil
}

// View recomputes the visible list and counts from current state. Pure
// and cheap, so no memoization.
func (s *Session) View() view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Compute(s.entities.Tasks(), s.selectedCategory, s.filters)
}

func (s *Session) Filters() view.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Session) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

func (s *Session) SelectCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = categoryID
	s.filters.Category = categoryID
}

func (s *Session) ChangeFilter(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "status":
		s.filters.Status = value
	case "category":
		s.filters.Category = value
		s.selectedCategory = value
	case "priority":
		s.filters.Priority = value
	case "sortBy":
		s.filters.SortBy = value
	case "sortOrder":
		s.filters.SortOrder = value
	default:
		return fmt.Errorf("unknown filter key %q", key)
	}
	return nil
}

func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = view.DefaultFilters()
	s.selectedCategory = view.FilterAll
}

// Modal editor state machine: viewing, editing a task, or creating.

func (s *Session) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = true
	s.editing = nil
}

func (s *Session) OpenEdit(taskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entities.TaskByID(taskID); !ok {
		return domain.ErrTaskNotFound
	}
	s.modalOpen = true
	id := taskID
	s.editing = &id
	return nil
}

func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modalOpen = false
	s.editing = nil
}

func (s *Session) ModalState() (open bool, editing *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing != nil {
		id := *s.editing
		editing = &id
	}
	return s.modalOpen, editing
}

// Save routes the modal form: create when no edit target is set, update
// otherwise. The modal closes only on success.
func (s *Session) Save(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	editing := s.editing
	s.mu.Unlock()

	if editing == nil {
		return s.CreateTask(ctx, input)
	}

	patch := domain.TaskPatch{
		Title:       &input.Title,
		Description: &input.Description,
		CategoryID:  &input.CategoryID,
		Priority:    &input.Priority,
		DueDate:     input.DueDate,
		DueDateSet:  true,
	}
	task, err := s.UpdateTask(ctx, *editing, patch)
	if err != nil {
		return domain.Task{}, err
	}
	s.CloseModal()
	return task, nil
}

func (s *Session) ListTasks(ctx context.Context, query ports.TaskQuery) ([]domain.Task, error) {
	if query == (ports.TaskQuery{}) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.entities.Tasks(), nil
	}
	return s.tasks.List(ctx, query)
}

func (s *Session) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task, err := s.tasks.Create(ctx, input)
	if err != nil {
		s.notifyMutationError(err, "notifTaskCreateFailed")
		return domain.Task{}, err
	}

	s.mu.Lock()
	s.entities.SetTask(task)
	s.reconcileLocked(ctx)
	s.modalOpen = false
	s.editing = nil
	s.mu.Unlock()

	s.notifier.Success(s.message("notifTaskCreated"))
	return task, nil
}

// QuickAdd creates a task from just a title, scoped to the selected
// category (or the first category when "all" is selected).
func (s *Session) QuickAdd(ctx context.Context, title string) (domain.Task, error) {
	s.mu.Lock()
	categoryID := s.selectedCategory
	if categoryID == view.FilterAll || categoryID == "" {
		if cats := s.entities.Categories(); len(cats) > 0 {
			categoryID = fmt.Sprint(cats[0].ID)
		}
	}
	s.mu.Unlock()

	return s.CreateTask(ctx, domain.CreateTaskInput{
		Title:      title,
		CategoryID: categoryID,
		Priority:   domain.PriorityMedium,
	})
}

func (s *Session) UpdateTask(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error) {
	task, err := s.tasks.Update(ctx, id, patch)
	if err != nil {
		s.notifyMutationError(err, "notifTaskUpdateFailed")
		return domain.Task{}, err
	}

	s.mu.Lock()
	s.entities.SetTask(task)
	s.reconcileLocked(ctx)
	s.mu.Unlock()

	s.notifier.Success(s.message("notifTaskUpdated"))
	return task, nil
}

func (s *Session) ToggleTask(ctx context.Context, id int) (domain.Task, error) {
	task, err := s.tasks.Toggle(ctx, id)
	if err != nil {
		s.notifyMutationError(err, "notifTaskUpdateFailed")
		return domain.Task{}, err
	}

	s.mu.Lock()
	s.entities.SetTask(task)
	s.reconcileLocked(ctx)
	s.mu.Unlock()

	if task.Completed {
		s.notifier.Success(s.message("notifTaskCompleted"))
	} else {
		s.notifier.Info(s.message("notifTaskIncomplete"))
	}
	return task, nil
}

// DeleteTask assumes the confirmation step already happened in the
// collaborator that owns it.
func (s *Session) DeleteTask(ctx context.Context, id int) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		s.notifyMutationError(err, "notifTaskDeleteFailed")
		return err
	}

	s.mu.Lock()
	s.entities.RemoveTask(id)
	s.reconcileLocked(ctx)
	s.mu.Unlock()

	s.notifier.Success(s.message("notifTaskDeleted"))
	return nil
}

func (s *Session) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities.Categories(), nil
}

func (s *Session) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	category, err := s.categories.Create(ctx, input)
	if err != nil {
		s.notifyMutationError(err, "notifCategoryCreateFailed")
		return domain.Category{}, err
	}

	s.mu.Lock()
	s.entities.SetCategory(category)
	s.mu.Unlock()

	s.notifier.Success(s.message("notifCategoryCreated"))
	return category, nil
}

func (s *Session) UpdateCategory(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error) {
	category, err := s.categories.Update(ctx, id, patch)
	if err != nil {
		s.notifyMutationError(err, "notifCategoryUpdateFailed")
		return domain.Category{}, err
	}

	s.mu.Lock()
	s.entities.SetCategory(category)
	s.mu.Unlock()

	s.notifier.Success(s.message("notifCategoryUpdated"))
	return category, nil
}

// DeleteCategory does not cascade to tasks: orphaned categoryIds are
// tolerated and simply stop resolving.
func (s *Session) DeleteCategory(ctx context.Context, id int) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		s.notifyMutationError(err, "notifCategoryDeleteFailed")
		return err
	}

	s.mu.Lock()
	s.entities.RemoveCategory(id)
	s.mu.Unlock()

	s.notifier.Success(s.message("notifCategoryDeleted"))
	return nil
}

// reconcileLocked runs count reconciliation against current state and
// applies the corrected categories. Callers hold mu.
func (s *Session) reconcileLocked(ctx context.Context) {
	corrected := s.reconciler.Reconcile(ctx, s.entities.Tasks(), s.entities.Categories())
	s.entities.ReplaceCategories(corrected)
}

func (s *Session) message(key string) string {
	return translator.Localize(key, s.lang)
}

func (s *Session) notifyError(key string) {
	s.notifier.Error(s.message(key))
}

// notifyMutationError keeps validation errors quiet (the form surfaces
// them field-level) and notifies everything else generically.
func (s *Session) notifyMutationError(err error, key string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		zap.L().Debug("validation rejected mutation", zap.String("field", verr.Field), zap.String("message", verr.Message))
		return
	}
	s.notifyError(key)
}
