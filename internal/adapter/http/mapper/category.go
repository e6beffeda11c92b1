package mapper

import (
	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToCategories(categories []domain.Category) []dto.Category {
	items := make([]dto.Category, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategory(category))
	}
	return items
}

func ToCategory(category domain.Category) dto.Category {
	item := dto.Category{
		ID:   category.ID,
		Name: category.Name,
	}
	if category.Color != nil {
		value := *category.Color
		item.Color = &value
	}
	return item
}
