package domain

import "time"

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort properties understood by the storage layer and the in-memory sorter.
const (
	SortByTitle        = "title"
	SortByDescription  = "description"
	SortByStatus       = "status"
	SortByDueDate      = "dueDate"
	SortByCategoryName = "category.name"
	SortByCreatedAt    = "createdAt"
)

const (
	DefaultPageSize     = 10
	DefaultSortProperty = SortByTitle
	UpcomingTasksLimit  = 5
)

// TaskFilter is the raw filter as received from a caller. DueAfter and DueBefore carry calendar
// dates; their time of day is ignored.
type TaskFilter struct {
	Title      *string
	Status     *string
	CategoryID *string
	DueAfter   *time.Time
	DueBefore  *time.Time
	Page       int
	Size       int
	Sort       string
	Direction  string
}

// TaskQuery is the canonical filter handed to the storage layer. Nil pointers disable the
// matching predicate.
type TaskQuery struct {
	Keyword       *string
	Status        *TaskStatus
	CategoryID    *string
	DueAfter      *time.Time
	DueBefore     *time.Time
	Page          int
	Size          int
	SortProperty  string
	SortDirection SortDirection
}

// Offset returns the number of rows to skip for the requested page.
func (q TaskQuery) Offset() int {
	return q.Page * q.Size
}

// IgnoredField records a raw filter value that was dropped or replaced by a default.
type IgnoredField struct {
	Field  string
	Value  string
	Reason string
}

type NormalizedFilter struct {
	Query   TaskQuery
	Ignored []IgnoredField
}

// IsIgnored reports whether field was dropped or defaulted during normalization.
func (f NormalizedFilter) IsIgnored(field string) bool {
	for _, ignored := range f.Ignored {
		if ignored.Field == field {
			return true
		}
	}
	return false
}

type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

// NewPage computes TotalPages from total and size.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
