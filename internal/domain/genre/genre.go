// Package genre holds the Genre aggregate, which references categories by
// identifier.
package genre

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/aggregate"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// ID identifies a Genre.
type ID string

// NewID generates a Genre identifier.
func NewID() ID {
	return ID(identifier.New())
}

func (id ID) String() string {
	return string(id)
}

// Genre represents a genre aggregate
type Genre struct {
	aggregate.Lifecycle
	id         ID
	name       *string
	categories []category.ID
}

// NewGenre creates a Genre with a fresh identifier and no categories.
func NewGenre(name *string, active bool) *Genre {
	return &Genre{
		Lifecycle:  aggregate.NewLifecycle(active),
		id:         NewID(),
		name:       aggregate.CopyString(name),
		categories: []category.ID{},
	}
}

// Restore rebuilds a Genre from stored state.
func Restore(id ID, name *string, active bool, categories []category.ID, createdAt, updatedAt time.Time, deletedAt *time.Time) *Genre {
	return &Genre{
		Lifecycle:  aggregate.RestoreLifecycle(active, createdAt, updatedAt, deletedAt),
		id:         id,
		name:       aggregate.CopyString(name),
		categories: identifier.Unique(categories),
	}
}

// Update replaces the name, the active flag and the category list.
func (g *Genre) Update(name *string, active bool, categories []category.ID) *Genre {
	g.name = aggregate.CopyString(name)
	g.categories = identifier.Unique(categories)
	g.SetActive(active)
	return g
}

// AddCategory appends id unless it is already present.
func (g *Genre) AddCategory(id category.ID) *Genre {
	if id == "" || identifier.Contains(g.categories, id) {
		return g
	}
	g.categories = append(g.categories, id)
	g.Touch()
	return g
}

// AddCategories appends every id not yet present.
func (g *Genre) AddCategories(ids []category.ID) *Genre {
	for _, id := range ids {
		g.AddCategory(id)
	}
	return g
}

// RemoveCategory drops id from the list.
func (g *Genre) RemoveCategory(id category.ID) *Genre {
	for i, existing := range g.categories {
		if existing == id {
			g.categories = append(g.categories[:i:i], g.categories[i+1:]...)
			g.Touch()
			break
		}
	}
	return g
}

// Validate runs the genre field checks against h.
func (g *Genre) Validate(h validation.Handler) error {
	return NewValidator(g, h).Validate()
}

// Clone returns a deep copy.
func (g *Genre) Clone() *Genre {
	return Restore(g.id, g.name, g.IsActive(), g.categories, g.CreatedAt(), g.UpdatedAt(), g.DeletedAt())
}

// ID returns the genre identifier
func (g *Genre) ID() ID {
	return g.id
}

// Name returns the genre name, empty when unset
func (g *Genre) Name() string {
	return aggregate.Deref(g.name)
}

// Categories returns a copy of the category identifiers in insertion order
func (g *Genre) Categories() []category.ID {
	out := make([]category.ID, len(g.categories))
	copy(out, g.categories)
	return out
}
