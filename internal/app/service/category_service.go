package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context, ownerID string) ([]domain.Category, error) {
	return s.categoryRepository.ListByOwner(ctx, ownerID)
}

func (s *CategoryService) GetCategory(ctx context.Context, ownerID, categoryID string) (domain.Category, error) {
	return s.categoryRepository.GetByID(ctx, ownerID, categoryID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID string, input domain.CreateCategoryInput) (domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if !validCategoryName(name) || !validCategoryColor(input.Color) {
		return domain.Category{}, domain.ErrInvalidCategoryInput
	}

	exists, err := s.categoryRepository.ExistsByName(ctx, ownerID, name)
	if err != nil {
		return domain.Category{}, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return domain.Category{}, domain.ErrCategoryAlreadyExists
	}

	category := domain.Category{
		ID:      uuid.NewString(),
		Name:    name,
		Color:   input.Color,
		OwnerID: ownerID,
	}
	if err := s.categoryRepository.Insert(ctx, category); err != nil {
		return domain.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID, categoryID string, input domain.UpdateCategoryInput) (domain.Category, error) {
	category, err := s.categoryRepository.GetByID(ctx, ownerID, categoryID)
	if err != nil {
		return domain.Category{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if !validCategoryName(name) {
			return domain.Category{}, domain.ErrInvalidCategoryInput
		}
		if name != category.Name {
			exists, err := s.categoryRepository.ExistsByName(ctx, ownerID, name)
			if err != nil {
				return domain.Category{}, fmt.Errorf("check category name: %w", err)
			}
			if exists {
				return domain.Category{}, domain.ErrCategoryAlreadyExists
			}
		}
		category.Name = name
	}

	if input.Color != nil {
		if !validCategoryColor(input.Color) {
			return domain.Category{}, domain.ErrInvalidCategoryInput
		}
		category.Color = input.Color
	}

	if err := s.categoryRepository.Update(ctx, category); err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category; tasks that referenced it become uncategorised.
func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID, categoryID string) error {
	return s.categoryRepository.Delete(ctx, ownerID, categoryID)
}

func validCategoryName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= domain.MaxCategoryNameLength
}

func validCategoryColor(color *string) bool {
	return color == nil || utf8.RuneCountInString(*color) <= domain.MaxCategoryColorLength
}

var _ ports.CategoryService = (*CategoryService)(nil)
