package ports

import (
	"context"

	"todolist/internal/core/domain"
)

type CategoryRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Category, error)
	GetByID(ctx context.Context, ownerID, categoryID string) (domain.Category, error)
	// FindByName returns domain.ErrCategoryNotFound when the owner has no category with that name.
	FindByName(ctx context.Context, ownerID, name string) (domain.Category, error)
	ExistsByName(ctx context.Context, ownerID, name string) (bool, error)
	Insert(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, ownerID, categoryID string) error
}

type CategoryService interface {
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error)
	GetCategory(ctx context.Context, ownerID, categoryID string) (domain.Category, error)
	CreateCategory(ctx context.Context, ownerID string, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID, categoryID string, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID string) error
}
