package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskflow/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetAll(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id int) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByCategory(ctx context.Context, categoryID string) ([]domain.Task, error) {
	args := m.Called(ctx, categoryID)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) GetByStatus(ctx context.Context, completed bool) ([]domain.Task, error) {
	args := m.Called(ctx, completed)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) GetByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	args := m.Called(ctx, priority)
	return taskSlice(args.Get(0)), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, id int, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ToggleCompletion(ctx context.Context, id int) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return categorySlice(args.Get(0)), args.Error(1)
}

func (m *categoryRepositoryMock) GetByID(ctx context.Context, id int) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, id int, patch domain.CategoryPatch) (domain.Category, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *categoryRepositoryMock) UpdateTaskCount(ctx context.Context, categoryID int, count int) (domain.Category, error) {
	args := m.Called(ctx, categoryID, count)
	return args.Get(0).(domain.Category), args.Error(1)
}

func taskSlice(value any) []domain.Task {
	if value == nil {
		return nil
	}
	return value.([]domain.Task)
}

func categorySlice(value any) []domain.Category {
	if value == nil {
		return nil
	}
	return value.([]domain.Category)
}
