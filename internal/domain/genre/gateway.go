package genre

import "context"

// Lookup answers which genre identifiers exist.
type Lookup interface {
	// ExistsByIDs returns the subset of ids that exist
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}

// Gateway persists Genre aggregates together with their category links.
type Gateway interface {
	Lookup
	// Create stores a new genre and returns its durable form
	Create(ctx context.Context, genre *Genre) (*Genre, error)
	// Update stores the genre and returns its durable form
	Update(ctx context.Context, genre *Genre) (*Genre, error)
	// FindByID returns the genre or nil when it does not exist
	FindByID(ctx context.Context, id ID) (*Genre, error)
	// DeleteByID removes the genre, missing ids are ignored
	DeleteByID(ctx context.Context, id ID) error
}
