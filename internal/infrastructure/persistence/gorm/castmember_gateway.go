package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/pkg/repository"
)

// CastMemberGateway implements castmember.Gateway
type CastMemberGateway struct {
	db *gorm.DB
}

// NewCastMemberGateway creates a new GORM cast member gateway
func NewCastMemberGateway(db *gorm.DB) *CastMemberGateway {
	return &CastMemberGateway{db: db}
}

var _ castmember.Gateway = (*CastMemberGateway)(nil)

func (g *CastMemberGateway) Create(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	model := &CastMemberModel{}
	model.FromDomain(m)
	if err := repository.Create(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CastMemberGateway) Update(ctx context.Context, m *castmember.CastMember) (*castmember.CastMember, error) {
	model := &CastMemberModel{}
	model.FromDomain(m)
	if err := repository.Update(ctx, g.db, model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	model, err := repository.FindOptional[CastMemberModel](ctx, g.db, id.String())
	if err != nil || model == nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (g *CastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	return repository.Delete[CastMemberModel](ctx, g.db, id.String())
}

func (g *CastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	found, err := repository.ExistingIDs[CastMemberModel](ctx, g.db, identifier.Strings(ids))
	if err != nil {
		return nil, err
	}
	return identifier.From[castmember.ID](found), nil
}
