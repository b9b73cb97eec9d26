package category

import "context"

// Lookup answers which category identifiers exist.
type Lookup interface {
	// ExistsByIDs returns the subset of ids that exist
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}

// Gateway persists Category aggregates.
type Gateway interface {
	Lookup
	// Create stores a new category and returns its durable form
	Create(ctx context.Context, category *Category) (*Category, error)
	// Update stores the category and returns its durable form
	Update(ctx context.Context, category *Category) (*Category, error)
	// FindByID returns the category or nil when it does not exist
	FindByID(ctx context.Context, id ID) (*Category, error)
	// DeleteByID removes the category, missing ids are ignored
	DeleteByID(ctx context.Context, id ID) error
}
