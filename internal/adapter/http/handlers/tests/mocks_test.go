package tests

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"todolist/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Search(ctx context.Context, ownerID string, filter domain.TaskFilter) (domain.Page[domain.Task], domain.NormalizedFilter, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(domain.Page[domain.Task]), args.Get(1).(domain.NormalizedFilter), args.Error(2)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID, sortProperty, direction string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, sortProperty, direction)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) UpcomingTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return m.Called(ctx, ownerID, taskID).Error(0)
}

func (m *taskServiceMock) Stats(ctx context.Context, ownerID string) (domain.Stats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func tasksArg(args mock.Arguments, index int) []domain.Task {
	if value := args.Get(index); value != nil {
		return value.([]domain.Task)
	}
	return nil
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, ownerID, categoryID string) (domain.Category, error) {
	args := m.Called(ctx, ownerID, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, ownerID string, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, ownerID, categoryID string, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, ownerID, categoryID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, ownerID, categoryID string) error {
	return m.Called(ctx, ownerID, categoryID).Error(0)
}

type transferServiceMock struct {
	mock.Mock
}

// ExportCSV writes the string given as the first return value to w.
func (m *transferServiceMock) ExportCSV(ctx context.Context, ownerID string, w io.Writer) error {
	args := m.Called(ctx, ownerID)
	if content := args.String(0); content != "" {
		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
	}
	return args.Error(1)
}

// ImportCSV records the uploaded content as the third call argument.
func (m *transferServiceMock) ImportCSV(ctx context.Context, ownerID string, r io.Reader) (int, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	args := m.Called(ctx, ownerID, string(content))
	return args.Int(0), args.Error(1)
}
