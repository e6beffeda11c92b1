package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"todolist/internal/core/ports"
)

type UnitOfWork struct {
	db *sqlx.DB
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *sqlx.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tasks ports.TaskRepository, categories ports.CategoryRepository) error) error {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, NewTaskRepository(tx), NewCategoryRepository(tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			zap.L().Warn("failed to rollback transaction", zap.Error(rollbackErr))
		}
		return err
	}

	return tx.Commit()
}
