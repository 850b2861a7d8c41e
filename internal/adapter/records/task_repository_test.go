package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

func seededTaskRepo(t *testing.T) (*TaskRepository, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(
		WithSeed(ports.KindTask, SeedTasks()),
		WithSeed(ports.KindCategory, SeedCategories()),
	)
	return NewTaskRepository(store), store
}

func TestTaskRepository_GetAll(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	tasks, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestTaskRepository_GetAllDegradesToEmptyOnTransportError(t *testing.T) {
	store := NewMemoryStore(WithFailHook(func(op, kind string) error {
		return errors.New("connection refused")
	}))
	repo := NewTaskRepository(store)

	tasks, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepository_CreateStampsCreationFields(t *testing.T) {
	repo, _ := seededTaskRepo(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	task, err := repo.Create(context.Background(), domain.CreateTaskInput{
		Title:      "New task",
		CategoryID: "1",
		Priority:   domain.PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, task.ID)
	assert.Equal(t, now, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.Completed)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
}

func TestTaskRepository_UpdateMissingTask(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	title := "nope"
	_, err := repo.Update(context.Background(), 42, domain.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_ToggleRoundTrip(t *testing.T) {
	repo, _ := seededTaskRepo(t)
	ctx := context.Background()

	before, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.False(t, before.Completed)

	toggleTime := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return toggleTime }

	completed, err := repo.ToggleCompletion(ctx, 1)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, toggleTime, *completed.CompletedAt)

	reverted, err := repo.ToggleCompletion(ctx, 1)
	require.NoError(t, err)
	assert.False(t, reverted.Completed)
	assert.Nil(t, reverted.CompletedAt)
	assert.Equal(t, before.CreatedAt, reverted.CreatedAt)
}

func TestTaskRepository_UpdatePreservesUntouchedFields(t *testing.T) {
	repo, _ := seededTaskRepo(t)
	ctx := context.Background()

	before, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	title := "Renamed"
	after, err := repo.Update(ctx, 1, domain.TaskPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.CategoryID, after.CategoryID)
	assert.Equal(t, before.Priority, after.Priority)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestTaskRepository_DeleteMissing(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_DeleteDoesNotCascade(t *testing.T) {
	repo, store := seededTaskRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// Categories are untouched by task deletion.
	cats, err := store.FetchAll(ctx, ports.KindCategory)
	require.NoError(t, err)
	assert.Len(t, cats, 3)
}

func TestTaskRepository_GetByCategory(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	tasks, err := repo.GetByCategory(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, "1", task.CategoryID)
	}
}

func TestTaskRepository_GetByStatus(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	completed, err := repo.GetByStatus(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 3, completed[0].ID)
}

func TestTaskRepository_GetByPriority(t *testing.T) {
	repo, _ := seededTaskRepo(t)

	tasks, err := repo.GetByPriority(context.Background(), domain.PriorityMedium)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
