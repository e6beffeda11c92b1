package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const selectCategoriesQuery = `SELECT id, owner_id, name, color FROM categories`

type CategoryRepository struct {
	db sqlx.ExtContext
}

type categoryRow struct {
	ID      string         `db:"id"`
	OwnerID string         `db:"owner_id"`
	Name    string         `db:"name"`
	Color   sql.NullString `db:"color"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db sqlx.ExtContext) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Category, error) {
	var rows []categoryRow
	query := r.db.Rebind(selectCategoriesQuery + " WHERE owner_id = ? ORDER BY name, id")
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, ownerID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, ownerID, categoryID string) (domain.Category, error) {
	return r.getOne(ctx, selectCategoriesQuery+" WHERE id = ? AND owner_id = ?", categoryID, ownerID)
}

func (r *CategoryRepository) FindByName(ctx context.Context, ownerID, name string) (domain.Category, error) {
	return r.getOne(ctx, selectCategoriesQuery+" WHERE name = ? AND owner_id = ?", name, ownerID)
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, ownerID, name string) (bool, error) {
	var count int64
	query := r.db.Rebind("SELECT COUNT(*) FROM categories WHERE name = ? AND owner_id = ?")
	if err := sqlx.GetContext(ctx, r.db, &count, query, name, ownerID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category domain.Category) error {
	query := r.db.Rebind("INSERT INTO categories (id, owner_id, name, color) VALUES (?, ?, ?, ?)")
	_, err := r.db.ExecContext(ctx, query, category.ID, category.OwnerID, category.Name, category.Color)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	query := r.db.Rebind("UPDATE categories SET name = ?, color = ? WHERE id = ? AND owner_id = ?")
	_, err := r.db.ExecContext(ctx, query, category.Name, category.Color, category.ID, category.OwnerID)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, ownerID, categoryID string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM categories WHERE id = ? AND owner_id = ?"), categoryID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) getOne(ctx context.Context, query string, args ...any) (domain.Category, error) {
	var row categoryRow
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return row.toDomain(), nil
}

func (row categoryRow) toDomain() domain.Category {
	category := domain.Category{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Name:    row.Name,
	}
	if row.Color.Valid {
		color := row.Color.String
		category.Color = &color
	}
	return category
}
