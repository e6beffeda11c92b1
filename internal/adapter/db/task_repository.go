package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.owner_id,
  t.title,
  t.description,
  t.status,
  t.due_date,
  t.category_id,
  t.created_at,
  t.updated_at,
  c.name AS category_name,
  c.color AS category_color
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
`

// Status is ordered by its declaration order, not alphabetically.
const statusOrdinalExpr = `CASE t.status WHEN 'TODO' THEN 0 WHEN 'IN_PROGRESS' THEN 1 WHEN 'DONE' THEN 2 ELSE 3 END`

var sortColumns = map[string]string{
	domain.SortByTitle:        "t.title",
	domain.SortByDescription:  "t.description",
	domain.SortByStatus:       statusOrdinalExpr,
	domain.SortByDueDate:      "t.due_date",
	domain.SortByCategoryName: "c.name",
	domain.SortByCreatedAt:    "t.created_at",
}

var textSortProperties = map[string]bool{
	domain.SortByTitle:        true,
	domain.SortByDescription:  true,
	domain.SortByCategoryName: true,
}

const likeEscape = "!"

type TaskRepository struct {
	db sqlx.ExtContext
}

type taskRow struct {
	ID            string         `db:"id"`
	OwnerID       string         `db:"owner_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Status        string         `db:"status"`
	DueDate       sql.NullTime   `db:"due_date"`
	CategoryID    sql.NullString `db:"category_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository accepts either a *sqlx.DB or a *sqlx.Tx.
func NewTaskRepository(db sqlx.ExtContext) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Search(ctx context.Context, ownerID string, query domain.TaskQuery) (domain.Page[domain.Task], error) {
	orderColumn, ok := sortColumns[query.SortProperty]
	if !ok {
		return domain.Page[domain.Task]{}, fmt.Errorf("%w: %q", domain.ErrUnknownSortProperty, query.SortProperty)
	}
	if textSortProperties[query.SortProperty] {
		orderColumn = textSortExpr(r.db.DriverName(), orderColumn)
	}
	direction := "ASC"
	if query.SortDirection == domain.SortDesc {
		direction = "DESC"
	}

	where, args := buildSearchPredicates(r.db.DriverName(), ownerID, query)

	var total int64
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM tasks t WHERE " + where)
	if err := sqlx.GetContext(ctx, r.db, &total, countQuery, args...); err != nil {
		return domain.Page[domain.Task]{}, err
	}

	listQuery := r.db.Rebind(fmt.Sprintf(
		"%s WHERE %s ORDER BY %s %s, t.id ASC LIMIT ? OFFSET ?",
		selectTasksQuery, where, orderColumn, direction,
	))
	var rows []taskRow
	pageArgs := append(append([]any{}, args...), query.Size, query.Offset())
	if err := sqlx.SelectContext(ctx, r.db, &rows, listQuery, pageArgs...); err != nil {
		return domain.Page[domain.Task]{}, err
	}

	return domain.NewPage(mapTaskRows(rows), query.Page, query.Size, total), nil
}

func buildSearchPredicates(driverName, ownerID string, query domain.TaskQuery) (string, []any) {
	clauses := []string{"t.owner_id = ?"}
	args := []any{ownerID}

	if query.Keyword != nil {
		clauses = append(clauses, lowerExpr(driverName, "t.title")+" LIKE ? ESCAPE '"+likeEscape+"'")
		args = append(args, "%"+escapeLike(strings.ToLower(*query.Keyword))+"%")
	}
	if query.Status != nil {
		clauses = append(clauses, "t.status = ?")
		args = append(args, string(*query.Status))
	}
	if query.CategoryID != nil {
		clauses = append(clauses, "t.category_id = ?")
		args = append(args, *query.CategoryID)
	}
	if query.DueAfter != nil {
		clauses = append(clauses, "t.due_date >= ?")
		args = append(args, query.DueAfter.UTC())
	}
	if query.DueBefore != nil {
		clauses = append(clauses, "t.due_date <= ?")
		args = append(args, query.DueBefore.UTC())
	}

	return strings.Join(clauses, " AND "), args
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return replacer.Replace(value)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	query := r.db.Rebind(selectTasksQuery + " WHERE t.owner_id = ? ORDER BY t.created_at, t.id")
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, ownerID); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListUpcoming(ctx context.Context, ownerID string, limit int) ([]domain.Task, error) {
	var rows []taskRow
	query := r.db.Rebind(selectTasksQuery + " WHERE t.owner_id = ? AND t.due_date IS NOT NULL ORDER BY t.due_date ASC, t.id ASC LIMIT ?")
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, ownerID, limit); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	var row taskRow
	query := r.db.Rebind(selectTasksQuery + " WHERE t.id = ? AND t.owner_id = ?")
	if err := sqlx.GetContext(ctx, r.db, &row, query, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	query := r.db.Rebind(`
INSERT INTO tasks (id, owner_id, title, description, status, due_date, category_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		string(task.Status),
		utcOrNil(task.DueDate),
		categoryIDOf(task),
		task.CreatedAt.UTC(),
		task.UpdatedAt.UTC(),
	)
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	query := r.db.Rebind(`
UPDATE tasks
SET title = ?, description = ?, status = ?, due_date = ?, category_id = ?, updated_at = ?
WHERE id = ? AND owner_id = ?`)
	_, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		string(task.Status),
		utcOrNil(task.DueDate),
		categoryIDOf(task),
		task.UpdatedAt.UTC(),
		task.ID,
		task.OwnerID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE id = ? AND owner_id = ?"), taskID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, r.db, &count, r.db.Rebind("SELECT COUNT(*) FROM tasks WHERE owner_id = ?"), ownerID)
	return count, err
}

func (r *TaskRepository) CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.TaskStatus) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, r.db, &count, r.db.Rebind("SELECT COUNT(*) FROM tasks WHERE owner_id = ? AND status = ?"), ownerID, string(status))
	return count, err
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time.UTC()
		task.DueDate = &value
	}

	if row.CategoryID.Valid && row.CategoryName.Valid {
		task.Category = &domain.Category{
			ID:      row.CategoryID.String,
			Name:    row.CategoryName.String,
			OwnerID: row.OwnerID,
		}
		if row.CategoryColor.Valid {
			color := row.CategoryColor.String
			task.Category.Color = &color
		}
	}

	return task
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func categoryIDOf(task domain.Task) any {
	if task.Category == nil {
		return nil
	}
	return task.Category.ID
}
