package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Search(ctx context.Context, ownerID string, query domain.TaskQuery) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, ownerID, query)
	return args.Get(0).(domain.Page[domain.Task]), args.Error(1)
}

func (m *taskRepositoryMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListUpcoming(ctx context.Context, ownerID string, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, limit)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, ownerID, taskID string) error {
	return m.Called(ctx, ownerID, taskID).Error(0)
}

func (m *taskRepositoryMock) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).(int64), args.Error(1)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) ListByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetByID(ctx context.Context, ownerID, categoryID string) (domain.Category, error) {
	args := m.Called(ctx, ownerID, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) FindByName(ctx context.Context, ownerID, name string) (domain.Category, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) ExistsByName(ctx context.Context, ownerID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepositoryMock) Insert(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepositoryMock) Update(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *categoryRepositoryMock) Delete(ctx context.Context, ownerID, categoryID string) error {
	return m.Called(ctx, ownerID, categoryID).Error(0)
}

// unitOfWorkStub runs fn directly against the given repositories. Committed reports whether the
// last call returned without error.
type unitOfWorkStub struct {
	tasks      ports.TaskRepository
	categories ports.CategoryRepository
	Committed  bool
}

func (u *unitOfWorkStub) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tasks ports.TaskRepository, categories ports.CategoryRepository) error) error {
	err := fn(ctx, u.tasks, u.categories)
	u.Committed = err == nil
	return err
}
