package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

const (
	MaxTaskTitleLength       = 30
	MaxTaskDescriptionLength = 255
)

// TaskStatuses lists the statuses in declaration order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// ParseTaskStatus matches value against the exact status names.
func ParseTaskStatus(value string) (TaskStatus, error) {
	for _, status := range TaskStatuses {
		if string(status) == value {
			return status, nil
		}
	}
	return "", ErrInvalidTaskStatus
}

// Ordinal returns the declaration index of the status, or -1 when unknown.
func (s TaskStatus) Ordinal() int {
	for i, status := range TaskStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

func (s TaskStatus) Valid() bool {
	return s.Ordinal() >= 0
}

type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
}

// CategoryName returns the name of the task category, or nil if the task has none.
func (t Task) CategoryName() *string {
	if t.Category == nil {
		return nil
	}
	name := t.Category.Name
	return &name
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CategoryID  *string
}

// UpdateTaskInput is a partial update. A nil pointer leaves the field unchanged unless the
// matching *Set flag is true, in which case nil clears it.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *string
	CategoryIDSet  bool
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil &&
		!in.DescriptionSet && in.Description == nil &&
		in.Status == nil &&
		!in.DueDateSet && in.DueDate == nil &&
		!in.CategoryIDSet && in.CategoryID == nil
}

type Stats struct {
	Total      int64
	Todo       int64
	InProgress int64
	Done       int64
}
