// Package castmember holds the CastMember aggregate.
package castmember

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/aggregate"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// ID identifies a CastMember.
type ID string

// NewID generates a CastMember identifier.
func NewID() ID {
	return ID(identifier.New())
}

func (id ID) String() string {
	return string(id)
}

// CastMember is a person credited on a video. The zero Type means the raw
// input did not name a known role.
type CastMember struct {
	aggregate.Lifecycle
	id         ID
	name       *string
	memberType Type
}

// NewCastMember creates an active CastMember with a fresh identifier.
func NewCastMember(name *string, memberType Type) *CastMember {
	return &CastMember{
		Lifecycle:  aggregate.NewLifecycle(true),
		id:         NewID(),
		name:       aggregate.CopyString(name),
		memberType: memberType,
	}
}

// Restore rebuilds a CastMember from stored state.
func Restore(id ID, name *string, memberType Type, active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) *CastMember {
	return &CastMember{
		Lifecycle:  aggregate.RestoreLifecycle(active, createdAt, updatedAt, deletedAt),
		id:         id,
		name:       aggregate.CopyString(name),
		memberType: memberType,
	}
}

// Update replaces the name and type.
func (m *CastMember) Update(name *string, memberType Type) *CastMember {
	m.name = aggregate.CopyString(name)
	m.memberType = memberType
	m.Touch()
	return m
}

// Validate runs the cast member field checks against h.
func (m *CastMember) Validate(h validation.Handler) error {
	return NewValidator(m, h).Validate()
}

// Clone returns a deep copy.
func (m *CastMember) Clone() *CastMember {
	return Restore(m.id, m.name, m.memberType, m.IsActive(), m.CreatedAt(), m.UpdatedAt(), m.DeletedAt())
}

func (m *CastMember) ID() ID {
	return m.id
}

func (m *CastMember) Name() string {
	return aggregate.Deref(m.name)
}

func (m *CastMember) Type() Type {
	return m.memberType
}
