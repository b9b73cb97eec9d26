package castmember

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
)

// CreateCastMemberCommand represents a command to create a cast member. Type
// is the raw role name, unknown values are rejected by validation.
type CreateCastMemberCommand struct {
	Name *string
	Type string
}

// UpdateCastMemberCommand represents a command to update a cast member
type UpdateCastMemberCommand struct {
	ID   castmember.ID
	Name *string
	Type string
}

// CastMemberIDOutput carries the identifier of a written cast member
type CastMemberIDOutput struct {
	ID castmember.ID
}

// CastMemberOutput is the read model of a cast member
type CastMemberOutput struct {
	ID        castmember.ID
	Name      string
	Type      castmember.Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

func outputOf(m *castmember.CastMember) *CastMemberOutput {
	return &CastMemberOutput{
		ID:        m.ID(),
		Name:      m.Name(),
		Type:      m.Type(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func typeOf(raw string) castmember.Type {
	t, _ := castmember.TypeOf(raw)
	return t
}
