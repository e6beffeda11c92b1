package domain

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrInvalidTaskStatus     = errors.New("invalid task status")
	ErrInvalidTaskInput      = errors.New("invalid task input")
	ErrInvalidCategoryInput  = errors.New("invalid category input")
	ErrUnknownSortProperty   = errors.New("unknown sort property")
	ErrImportFailed          = errors.New("csv import failed")
	ErrExportFailed          = errors.New("csv export failed")
)
