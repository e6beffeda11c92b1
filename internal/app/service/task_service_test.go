package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todolist/internal/app/service"
	"todolist/internal/core/domain"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTaskService(tasks *taskRepositoryMock, categories *categoryRepositoryMock, opts ...service.TaskServiceOption) *service.TaskService {
	opts = append([]service.TaskServiceOption{service.WithClock(func() time.Time { return fixedNow })}, opts...)
	return service.NewTaskService(tasks, categories, opts...)
}

func TestTaskService_Stats(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("CountByOwner", mock.Anything, "alice").Return(int64(6), nil).Once()
	tasks.On("CountByOwnerAndStatus", mock.Anything, "alice", domain.TaskStatusTodo).Return(int64(3), nil).Once()
	tasks.On("CountByOwnerAndStatus", mock.Anything, "alice", domain.TaskStatusInProgress).Return(int64(1), nil).Once()
	tasks.On("CountByOwnerAndStatus", mock.Anything, "alice", domain.TaskStatusDone).Return(int64(2), nil).Once()

	stats, err := newTaskService(tasks, new(categoryRepositoryMock)).Stats(context.Background(), "alice")

	require.NoError(t, err)
	require.Equal(t, domain.Stats{Total: 6, Todo: 3, InProgress: 1, Done: 2}, stats)
	tasks.AssertExpectations(t)
}

func TestTaskService_StatsEmpty(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("CountByOwner", mock.Anything, "nobody").Return(int64(0), nil).Once()
	tasks.On("CountByOwnerAndStatus", mock.Anything, "nobody", mock.Anything).Return(int64(0), nil).Times(3)

	stats, err := newTaskService(tasks, new(categoryRepositoryMock)).Stats(context.Background(), "nobody")

	require.NoError(t, err)
	require.Equal(t, domain.Stats{}, stats)
}

func TestTaskService_StatsPropagatesErrors(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("CountByOwner", mock.Anything, "alice").Return(int64(0), errors.New("db is down")).Once()

	_, err := newTaskService(tasks, new(categoryRepositoryMock)).Stats(context.Background(), "alice")

	require.ErrorContains(t, err, "db is down")
}

func TestTaskService_SearchNormalizesBeforeQuerying(t *testing.T) {
	tasks := new(taskRepositoryMock)
	expectedPage := domain.NewPage([]domain.Task{{ID: "t1", Title: "Buy milk"}}, 0, 1, 1)
	tasks.On("Search", mock.Anything, "alice", mock.MatchedBy(func(q domain.TaskQuery) bool {
		return q.Page == 0 && q.Size == 1 && q.Status == nil && q.SortProperty == domain.SortByTitle
	})).Return(expectedPage, nil).Once()

	page, normalized, err := newTaskService(tasks, new(categoryRepositoryMock)).Search(context.Background(), "alice", domain.TaskFilter{
		Status: strPtr("BOGUS"),
		Page:   -3,
		Size:   0,
	})

	require.NoError(t, err)
	require.Equal(t, expectedPage, page)
	require.Len(t, normalized.Ignored, 3)
	tasks.AssertExpectations(t)
}

func TestTaskService_SearchUnknownSortProperty(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("Search", mock.Anything, "alice", mock.Anything).Return(domain.Page[domain.Task]{}, domain.ErrUnknownSortProperty).Once()

	_, _, err := newTaskService(tasks, new(categoryRepositoryMock)).Search(context.Background(), "alice", domain.TaskFilter{Sort: "priority", Size: 10})

	require.ErrorIs(t, err, domain.ErrUnknownSortProperty)
}

func TestTaskService_ListTasksSortsInMemory(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("ListByOwner", mock.Anything, "alice").Return([]domain.Task{
		{Title: "b", Description: strPtr("x")},
		{Title: "a"},
	}, nil).Once()

	got, err := newTaskService(tasks, new(categoryRepositoryMock),
		service.WithSorter(service.TaskSorter{NullsLastAlways: true}),
	).ListTasks(context.Background(), "alice", domain.SortByDescription, "desc")

	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, titles(got))
}

func TestTaskService_UpcomingTasksUsesLimit(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("ListUpcoming", mock.Anything, "alice", domain.UpcomingTasksLimit).Return([]domain.Task{{Title: "soon"}}, nil).Once()

	got, err := newTaskService(tasks, new(categoryRepositoryMock)).UpcomingTasks(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, got, 1)
	tasks.AssertExpectations(t)
}

func TestTaskService_CreateTask(t *testing.T) {
	tasks := new(taskRepositoryMock)
	categories := new(categoryRepositoryMock)
	category := domain.Category{ID: "c1", Name: "Home", OwnerID: "alice"}
	categories.On("GetByID", mock.Anything, "alice", "c1").Return(category, nil).Once()

	var inserted domain.Task
	tasks.On("Insert", mock.Anything, mock.AnythingOfType("domain.Task")).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(domain.Task)
	}).Return(nil).Once()

	task, err := newTaskService(tasks, categories).CreateTask(context.Background(), "alice", domain.CreateTaskInput{
		Title:      "  Buy milk  ",
		CategoryID: strPtr("c1"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "alice", task.OwnerID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.Equal(t, fixedNow, task.CreatedAt)
	assert.Equal(t, fixedNow, task.UpdatedAt)
	require.NotNil(t, task.Category)
	assert.Equal(t, "Home", task.Category.Name)
	assert.Equal(t, task, inserted)
}

func TestTaskService_CreateTaskValidation(t *testing.T) {
	long := "0123456789012345678901234567890"
	cases := map[string]domain.CreateTaskInput{
		"blank title":   {Title: "   "},
		"long title":    {Title: long},
		"bad status":    {Title: "ok", Status: domain.TaskStatus("LATER")},
		"long describe": {Title: "ok", Description: strPtr(string(make([]byte, 256)))},
	}

	for name, input := range cases {
		_, err := newTaskService(new(taskRepositoryMock), new(categoryRepositoryMock)).CreateTask(context.Background(), "alice", input)
		require.ErrorIs(t, err, domain.ErrInvalidTaskInput, name)
	}
}

func TestTaskService_CreateTaskRejectsForeignCategory(t *testing.T) {
	categories := new(categoryRepositoryMock)
	categories.On("GetByID", mock.Anything, "alice", "bob-category").Return(domain.Category{}, domain.ErrCategoryNotFound).Once()

	_, err := newTaskService(new(taskRepositoryMock), categories).CreateTask(context.Background(), "alice", domain.CreateTaskInput{
		Title:      "ok",
		CategoryID: strPtr("bob-category"),
	})

	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestTaskService_UpdateTaskPatchSemantics(t *testing.T) {
	due := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := domain.Task{
		ID:          "t1",
		OwnerID:     "alice",
		Title:       "Old",
		Description: strPtr("keep me?"),
		Status:      domain.TaskStatusTodo,
		DueDate:     &due,
		Category:    &domain.Category{ID: "c1", Name: "Home"},
		CreatedAt:   fixedNow.Add(-time.Hour),
		UpdatedAt:   fixedNow.Add(-time.Hour),
	}

	tasks := new(taskRepositoryMock)
	tasks.On("GetByID", mock.Anything, "alice", "t1").Return(existing, nil).Once()
	tasks.On("Update", mock.Anything, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	done := domain.TaskStatusDone
	updated, err := newTaskService(tasks, new(categoryRepositoryMock)).UpdateTask(context.Background(), "alice", "t1", domain.UpdateTaskInput{
		Status:         &done,
		DescriptionSet: true,
		CategoryIDSet:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Old", updated.Title)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.Category)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, due, *updated.DueDate)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	tasks.AssertExpectations(t)
}

func TestTaskService_UpdateTaskNotFound(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("GetByID", mock.Anything, "alice", "missing").Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := newTaskService(tasks, new(categoryRepositoryMock)).UpdateTask(context.Background(), "alice", "missing", domain.UpdateTaskInput{Title: strPtr("x")})

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_DeleteTask(t *testing.T) {
	tasks := new(taskRepositoryMock)
	tasks.On("Delete", mock.Anything, "alice", "t1").Return(nil).Once()
	tasks.On("Delete", mock.Anything, "alice", "t2").Return(domain.ErrTaskNotFound).Once()

	svc := newTaskService(tasks, new(categoryRepositoryMock))

	require.NoError(t, svc.DeleteTask(context.Background(), "alice", "t1"))
	require.ErrorIs(t, svc.DeleteTask(context.Background(), "alice", "t2"), domain.ErrTaskNotFound)
}
