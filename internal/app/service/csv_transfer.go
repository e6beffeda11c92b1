package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// The transfer format is a semicolon separated text without quoting or escaping. Values that
// contain the separator or a line break cannot be represented and are written as is.
const (
	csvSeparator = ";"
	csvLineEnd   = "\n"
)

var csvHeader = []string{"title", "description", "status", "dueDate", "categoryName"}

const (
	csvColumnTitle = iota
	csvColumnDescription
	csvColumnStatus
	csvColumnDueDate
	csvColumnCategoryName
)

type TransferService struct {
	taskRepository ports.TaskRepository
	unitOfWork     ports.UnitOfWork
	now            func() time.Time
}

func NewTransferService(taskRepository ports.TaskRepository, unitOfWork ports.UnitOfWork) *TransferService {
	return &TransferService{
		taskRepository: taskRepository,
		unitOfWork:     unitOfWork,
		now:            time.Now,
	}
}

// ExportCSV writes every task of the owner to w, header first.
func (s *TransferService) ExportCSV(ctx context.Context, ownerID string, w io.Writer) error {
	tasks, err := s.taskRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}

	bw := bufio.NewWriter(w)
	if err := writeCSVRow(bw, csvHeader); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}
	for _, task := range tasks {
		if err := writeCSVRow(bw, taskToCSVRow(task)); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExportFailed, err)
	}
	return nil
}

func writeCSVRow(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, csvSeparator)); err != nil {
		return err
	}
	_, err := w.WriteString(csvLineEnd)
	return err
}

func taskToCSVRow(task domain.Task) []string {
	row := make([]string, len(csvHeader))
	row[csvColumnTitle] = task.Title
	if task.Description != nil {
		row[csvColumnDescription] = *task.Description
	}
	row[csvColumnStatus] = string(task.Status)
	if task.DueDate != nil {
		row[csvColumnDueDate] = domain.FormatLocalDateTime(*task.DueDate)
	}
	if task.Category != nil {
		row[csvColumnCategoryName] = task.Category.Name
	}
	return row
}

// ImportCSV reads tasks from r and stores them for the owner in one transaction. The first line
// is treated as a header and skipped. A row that cannot be parsed aborts the whole import with
// domain.ErrImportFailed; read and storage failures abort it too but are returned unmarked.
func (s *TransferService) ImportCSV(ctx context.Context, ownerID string, r io.Reader) (int, error) {
	imported := 0
	err := s.unitOfWork.WithinTransaction(ctx, func(ctx context.Context, tasks ports.TaskRepository, categories ports.CategoryRepository) error {
		imported = 0
		resolver := newCategoryResolver(categories, ownerID)

		reader := bufio.NewReader(r)
		for lineNo := 1; ; lineNo++ {
			line, readErr := reader.ReadString('\n')
			if readErr != nil && !errors.Is(readErr, io.EOF) {
				return fmt.Errorf("read line %d: %w", lineNo, readErr)
			}
			line = strings.TrimRight(line, "\r\n")

			if lineNo > 1 && strings.TrimSpace(line) != "" {
				task, categoryName, err := s.parseCSVRow(ownerID, line)
				if err != nil {
					return fmt.Errorf("%w: line %d: %w", domain.ErrImportFailed, lineNo, err)
				}
				if categoryName != "" {
					if task.Category, err = resolver.resolve(ctx, categoryName); err != nil {
						return fmt.Errorf("line %d: %w", lineNo, err)
					}
				}
				if err := tasks.Insert(ctx, task); err != nil {
					return fmt.Errorf("line %d: insert task: %w", lineNo, err)
				}
				imported++
			}

			if errors.Is(readErr, io.EOF) {
				return nil
			}
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrImportFailed) {
			return 0, err
		}
		return 0, fmt.Errorf("import tasks: %w", err)
	}

	zap.L().Info("tasks imported", zap.String("owner_id", ownerID), zap.Int("count", imported))
	return imported, nil
}

// parseCSVRow returns the task and the raw category name, which is resolved separately because
// resolving touches storage.
func (s *TransferService) parseCSVRow(ownerID, line string) (domain.Task, string, error) {
	fields := strings.Split(line, csvSeparator)
	field := func(index int) string {
		if index < len(fields) {
			return fields[index]
		}
		return ""
	}

	now := s.now().UTC()
	task := domain.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     field(csvColumnTitle),
		Status:    domain.TaskStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if description := field(csvColumnDescription); description != "" {
		task.Description = &description
	}

	if status := field(csvColumnStatus); strings.TrimSpace(status) != "" {
		parsed, err := domain.ParseTaskStatus(status)
		if err != nil {
			return domain.Task{}, "", fmt.Errorf("status %q: %w", status, err)
		}
		task.Status = parsed
	}

	if dueDate := field(csvColumnDueDate); strings.TrimSpace(dueDate) != "" {
		parsed, err := domain.ParseLocalDateTime(dueDate)
		if err != nil {
			return domain.Task{}, "", fmt.Errorf("due date %q: %w", dueDate, err)
		}
		task.DueDate = &parsed
	}

	categoryName := field(csvColumnCategoryName)
	if strings.TrimSpace(categoryName) == "" {
		categoryName = ""
	}

	return task, categoryName, nil
}

// categoryResolver looks categories up by name once per import. Unknown names resolve to nil.
type categoryResolver struct {
	categories ports.CategoryRepository
	ownerID    string
	cache      map[string]*domain.Category
}

func newCategoryResolver(categories ports.CategoryRepository, ownerID string) *categoryResolver {
	return &categoryResolver{
		categories: categories,
		ownerID:    ownerID,
		cache:      make(map[string]*domain.Category),
	}
}

func (r *categoryResolver) resolve(ctx context.Context, name string) (*domain.Category, error) {
	if category, ok := r.cache[name]; ok {
		return category, nil
	}

	found, err := r.categories.FindByName(ctx, r.ownerID, name)
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		zap.L().Debug("csv import: unknown category, leaving task uncategorised", zap.String("category", name))
		r.cache[name] = nil
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}

	r.cache[name] = &found
	return &found, nil
}

var _ ports.TransferService = (*TransferService)(nil)
