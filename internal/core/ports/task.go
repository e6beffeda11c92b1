package ports

import (
	"context"
	"io"

	"todolist/internal/core/domain"
)

// TaskRepository is the storage collaborator for tasks. Every read is scoped to an owner.
type TaskRepository interface {
	// Search applies the predicates of query, orders by query.SortProperty and returns one page.
	// An unknown sort property yields domain.ErrUnknownSortProperty.
	Search(ctx context.Context, ownerID string, query domain.TaskQuery) (domain.Page[domain.Task], error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	ListUpcoming(ctx context.Context, ownerID string, limit int) ([]domain.Task, error)
	GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, ownerID, taskID string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error)
}

// UnitOfWork runs fn inside a single storage transaction. The repositories handed to fn are bound
// to that transaction; a non-nil error from fn rolls everything back.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tasks TaskRepository, categories CategoryRepository) error) error
}

type TaskService interface {
	Search(ctx context.Context, ownerID string, filter domain.TaskFilter) (domain.Page[domain.Task], domain.NormalizedFilter, error)
	ListTasks(ctx context.Context, ownerID, sortProperty, direction string) ([]domain.Task, error)
	UpcomingTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
	Stats(ctx context.Context, ownerID string) (domain.Stats, error)
}

type TransferService interface {
	ExportCSV(ctx context.Context, ownerID string, w io.Writer) error
	ImportCSV(ctx context.Context, ownerID string, r io.Reader) (int, error)
}
