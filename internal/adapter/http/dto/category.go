package dto

type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type CategoryRequest struct {
	Name  string  `json:"name" binding:"required,max=50"`
	Color *string `json:"color" binding:"omitempty,max=10"`
}
