package validation

import (
	"errors"
	"strings"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

var ErrInvalidCategoryPayload = errors.New("invalid category payload")

func BuildCreateCategoryInput(req dto.CategoryRequest) (domain.CreateCategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCategoryInput{}, ErrInvalidCategoryPayload
	}
	return domain.CreateCategoryInput{Name: name, Color: trimmedOrNil(req.Color)}, nil
}

func BuildUpdateCategoryInput(req dto.CategoryRequest) (domain.UpdateCategoryInput, error) {
	input, err := BuildCreateCategoryInput(req)
	if err != nil {
		return domain.UpdateCategoryInput{}, err
	}
	return domain.UpdateCategoryInput{Name: &input.Name, Color: input.Color}, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
