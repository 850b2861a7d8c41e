package records

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// TaskRepository normalizes task records on their way in and out of the
// record store. It trusts its input shape; validation happens in the
// service layer before any call lands here.
type TaskRepository struct {
	store ports.RecordStore
	now   func() time.Time
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store ports.RecordStore) *TaskRepository {
	return &TaskRepository{store: store, now: time.Now}
}

// GetAll degrades to an empty collection on transport errors: reads are
// logged, never surfaced, matching the load behavior of the client.
func (r *TaskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	raw, err := r.store.FetchAll(ctx, ports.KindTask)
	if err != nil {
		zap.L().Warn("failed to fetch tasks, degrading to empty", zap.Error(err))
		return []domain.Task{}, nil
	}
	return decodeTasks(raw), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (domain.Task, error) {
	raw, err := r.store.FetchOne(ctx, ports.KindTask, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return decodeTask(raw)
}

func (r *TaskRepository) GetByCategory(ctx context.Context, categoryID string) ([]domain.Task, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if t.CategoryID == categoryID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) GetByStatus(ctx context.Context, completed bool) ([]domain.Task, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if t.Completed == completed {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) GetByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if t.Priority == priority {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   r.now().UTC(),
	}

	res, err := r.store.CreateOne(ctx, ports.KindTask, encodeTask(task))
	if err != nil {
		return domain.Task{}, err
	}
	rec, err := firstRecord(res)
	if err != nil {
		return domain.Task{}, err
	}
	return decodeTask(rec)
}

func (r *TaskRepository) Update(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	updated := domain.ApplyTaskPatch(current, patch, r.now().UTC())

	res, err := r.store.UpdateOne(ctx, ports.KindTask, encodeTask(updated))
	if err != nil {
		return domain.Task{}, err
	}
	rec, err := firstRecord(res)
	if err != nil {
		return domain.Task{}, err
	}
	return decodeTask(rec)
}

func (r *TaskRepository) ToggleCompletion(ctx context.Context, id int) (domain.Task, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	flipped := !current.Completed
	return r.Update(ctx, id, domain.TaskPatch{Completed: &flipped})
}

// Delete removes the task only. Categories referencing it are untouched
// and category counts catch up through reconciliation.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res, err := r.store.DeleteOne(ctx, ports.KindTask, []int{id})
	if err != nil {
		return err
	}
	if _, failed := splitBatch(res); len(failed) == len(res.Results) && len(failed) > 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func decodeTasks(raw []ports.RawRecord) []domain.Task {
	tasks := make([]domain.Task, 0, len(raw))
	for _, rec := range raw {
		task, err := decodeTask(rec)
		if err != nil {
			zap.L().Warn("skipping malformed task record", zap.Error(err))
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}
