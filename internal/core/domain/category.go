package domain

const (
	MaxCategoryNameLength  = 50
	MaxCategoryColorLength = 10
)

type Category struct {
	ID      string
	Name    string
	Color   *string
	OwnerID string
}

type CreateCategoryInput struct {
	Name  string
	Color *string
}

// UpdateCategoryInput leaves nil fields unchanged.
type UpdateCategoryInput struct {
	Name  *string
	Color *string
}
