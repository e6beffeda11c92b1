package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	categoryRepository ports.CategoryRepository
	sorter             TaskSorter
	now                func() time.Time
}

type TaskServiceOption func(*TaskService)

// WithSorter replaces the in-memory sorter used by ListTasks.
func WithSorter(sorter TaskSorter) TaskServiceOption {
	return func(s *TaskService) {
		s.sorter = sorter
	}
}

func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

func NewTaskService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		taskRepository:     taskRepository,
		categoryRepository: categoryRepository,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TaskService) Search(ctx context.Context, ownerID string, filter domain.TaskFilter) (domain.Page[domain.Task], domain.NormalizedFilter, error) {
	normalized := NormalizeFilter(filter)
	page, err := s.taskRepository.Search(ctx, ownerID, normalized.Query)
	if err != nil {
		return domain.Page[domain.Task]{}, normalized, fmt.Errorf("search tasks: %w", err)
	}
	return page, normalized, nil
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID, sortProperty, direction string) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	s.sorter.Sort(tasks, sortProperty, direction)
	return tasks, nil
}

func (s *TaskService) UpcomingTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListUpcoming(ctx, ownerID, domain.UpcomingTasksLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, ownerID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || utf8.RuneCountInString(title) > domain.MaxTaskTitleLength {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > domain.MaxTaskDescriptionLength {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidTaskInput
	}

	var category *domain.Category
	if input.CategoryID != nil {
		found, err := s.categoryRepository.GetByID(ctx, ownerID, *input.CategoryID)
		if err != nil {
			return domain.Task{}, err
		}
		category = &found
	}

	now := s.now().UTC()
	task := domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	zap.L().Debug("task created", zap.String("owner_id", ownerID), zap.String("task_id", task.ID))
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" || utf8.RuneCountInString(title) > domain.MaxTaskTitleLength {
			return domain.Task{}, domain.ErrInvalidTaskInput
		}
		task.Title = title
	}

	if input.DescriptionSet || input.Description != nil {
		if input.Description != nil && utf8.RuneCountInString(*input.Description) > domain.MaxTaskDescriptionLength {
			return domain.Task{}, domain.ErrInvalidTaskInput
		}
		task.Description = input.Description
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return domain.Task{}, domain.ErrInvalidTaskInput
		}
		task.Status = *input.Status
	}

	if input.DueDateSet || input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if input.CategoryIDSet || input.CategoryID != nil {
		task.Category = nil
		if input.CategoryID != nil {
			category, err := s.categoryRepository.GetByID(ctx, ownerID, *input.CategoryID)
			if err != nil {
				return domain.Task{}, err
			}
			task.Category = &category
		}
	}

	task.UpdatedAt = s.now().UTC()
	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}

// Stats counts the owner's tasks per status. The four counts are independent queries, so under
// concurrent writes the per-status counts may not add up to Total.
func (s *TaskService) Stats(ctx context.Context, ownerID string) (domain.Stats, error) {
	total, err := s.taskRepository.CountByOwner(ctx, ownerID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count tasks: %w", err)
	}

	counts := make(map[domain.TaskStatus]int64, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		count, err := s.taskRepository.CountByOwnerAndStatus(ctx, ownerID, status)
		if err != nil {
			return domain.Stats{}, fmt.Errorf("count %s tasks: %w", status, err)
		}
		counts[status] = count
	}

	return domain.Stats{
		Total:      total,
		Todo:       counts[domain.TaskStatusTodo],
		InProgress: counts[domain.TaskStatusInProgress],
		Done:       counts[domain.TaskStatusDone],
	}, nil
}

var _ ports.TaskService = (*TaskService)(nil)
