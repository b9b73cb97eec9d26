package category

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/category"
)

// CreateCategoryCommand represents a command to create a category
type CreateCategoryCommand struct {
	Name        *string
	Description *string
	IsActive    bool
}

// UpdateCategoryCommand represents a command to update a category
type UpdateCategoryCommand struct {
	ID          category.ID
	Name        *string
	Description *string
	IsActive    bool
}

// CategoryIDOutput carries the identifier of a written category
type CategoryIDOutput struct {
	ID category.ID
}

// CategoryOutput is the read model of a category
type CategoryOutput struct {
	ID          category.ID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func outputOf(c *category.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}
