package castmember

import "context"

// Lookup answers which cast member identifiers exist.
type Lookup interface {
	ExistsByIDs(ctx context.Context, ids []ID) ([]ID, error)
}

// Gateway persists CastMember aggregates.
type Gateway interface {
	Lookup
	Create(ctx context.Context, member *CastMember) (*CastMember, error)
	Update(ctx context.Context, member *CastMember) (*CastMember, error)
	// FindByID returns the cast member or nil when it does not exist
	FindByID(ctx context.Context, id ID) (*CastMember, error)
	DeleteByID(ctx context.Context, id ID) error
}
