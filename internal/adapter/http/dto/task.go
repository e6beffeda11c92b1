package dto

type TaskItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"dueDate,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
	Category    *Category `json:"category,omitempty"`
}

// DueDate values are ISO-8601 local date-times, e.g. 2024-05-01T12:00.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=30"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId" binding:"omitempty,uuid"`
}

// UpdateTaskRequest is a patch: absent fields are left unchanged and explicit nulls clear the
// nullable ones.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=30"`
	Description *string `json:"description" binding:"omitempty,max=255"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId" binding:"omitempty,uuid"`
}

type TaskStats struct {
	Total      int64 `json:"total"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}

type IgnoredFilter struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type TaskPage struct {
	Items      []TaskItem      `json:"items"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalItems int64           `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Ignored    []IgnoredFilter `json:"ignored,omitempty"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}
