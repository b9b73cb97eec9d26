// Package category holds the Category aggregate.
package category

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/aggregate"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// ID identifies a Category.
type ID string

// NewID generates a Category identifier.
func NewID() ID {
	return ID(identifier.New())
}

func (id ID) String() string {
	return string(id)
}

// Category represents a category aggregate
type Category struct {
	aggregate.Lifecycle
	id          ID
	name        *string
	description *string
}

// NewCategory creates a Category with a fresh identifier. Fields are not
// validated here, call Validate before persisting.
func NewCategory(name, description *string, active bool) *Category {
	return &Category{
		Lifecycle:   aggregate.NewLifecycle(active),
		id:          NewID(),
		name:        aggregate.CopyString(name),
		description: aggregate.CopyString(description),
	}
}

// Restore rebuilds a Category from stored state.
func Restore(id ID, name, description *string, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *Category {
	return &Category{
		Lifecycle:   aggregate.RestoreLifecycle(active, createdAt, updatedAt, deletedAt),
		id:          id,
		name:        aggregate.CopyString(name),
		description: aggregate.CopyString(description),
	}
}

// Update replaces the mutable fields.
func (c *Category) Update(name, description *string, active bool) *Category {
	c.name = aggregate.CopyString(name)
	c.description = aggregate.CopyString(description)
	c.SetActive(active)
	return c
}

// Validate runs the category field checks against h.
func (c *Category) Validate(h validation.Handler) error {
	return NewValidator(c, h).Validate()
}

// Clone returns a deep copy.
func (c *Category) Clone() *Category {
	clone := *c
	clone.Lifecycle = aggregate.RestoreLifecycle(c.IsActive(), c.CreatedAt(), c.UpdatedAt(), c.DeletedAt())
	clone.name = aggregate.CopyString(c.name)
	clone.description = aggregate.CopyString(c.description)
	return &clone
}

// ID returns the category identifier
func (c *Category) ID() ID {
	return c.id
}

// Name returns the category name, empty when unset
func (c *Category) Name() string {
	return aggregate.Deref(c.name)
}

// Description returns the category description, empty when unset
func (c *Category) Description() string {
	return aggregate.Deref(c.description)
}
