// Package castmember holds the cast member use cases.
package castmember

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/application/shared"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const aggregateName = "CastMember"

// CreateCastMemberUseCase validates and stores a new cast member
type CreateCastMemberUseCase struct {
	gateway castmember.Gateway
	logger  interfaces.Logger
}

func NewCreateCastMemberUseCase(gateway castmember.Gateway, logger interfaces.Logger) *CreateCastMemberUseCase {
	return &CreateCastMemberUseCase{gateway: gateway, logger: logger}
}

func (uc *CreateCastMemberUseCase) Execute(ctx context.Context, cmd CreateCastMemberCommand) (*CastMemberIDOutput, error) {
	member, err := shared.Assemble(ctx, shared.CreateFailure(aggregateName), nil,
		func(h validation.Handler) (*castmember.CastMember, error) {
			return shared.Validated(castmember.NewCastMember(cmd.Name, typeOf(cmd.Type)), h)
		})
	if err != nil {
		uc.logger.Warn("Cast member rejected", interfaces.Error(err))
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, member)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not create cast member "+member.ID().String(), err)
	}

	uc.logger.Info("Cast member created", interfaces.String("id", created.ID().String()))
	return &CastMemberIDOutput{ID: created.ID()}, nil
}

// UpdateCastMemberUseCase validates and stores changes to a cast member
type UpdateCastMemberUseCase struct {
	gateway castmember.Gateway
	logger  interfaces.Logger
}

func NewUpdateCastMemberUseCase(gateway castmember.Gateway, logger interfaces.Logger) *UpdateCastMemberUseCase {
	return &UpdateCastMemberUseCase{gateway: gateway, logger: logger}
}

func (uc *UpdateCastMemberUseCase) Execute(ctx context.Context, cmd UpdateCastMemberCommand) (*CastMemberIDOutput, error) {
	existing, err := findCastMember(ctx, uc.gateway, cmd.ID)
	if err != nil {
		return nil, err
	}

	member, err := shared.Assemble(ctx, shared.UpdateFailure(aggregateName), nil,
		func(h validation.Handler) (*castmember.CastMember, error) {
			return shared.Validated(existing.Clone().Update(cmd.Name, typeOf(cmd.Type)), h)
		})
	if err != nil {
		uc.logger.Warn("Cast member update rejected",
			interfaces.String("id", cmd.ID.String()),
			interfaces.Error(err))
		return nil, err
	}

	updated, err := uc.gateway.Update(ctx, member)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not update cast member "+member.ID().String(), err)
	}

	uc.logger.Info("Cast member updated", interfaces.String("id", updated.ID().String()))
	return &CastMemberIDOutput{ID: updated.ID()}, nil
}

// GetCastMemberByIDUseCase loads one cast member
type GetCastMemberByIDUseCase struct {
	gateway castmember.Gateway
}

func NewGetCastMemberByIDUseCase(gateway castmember.Gateway) *GetCastMemberByIDUseCase {
	return &GetCastMemberByIDUseCase{gateway: gateway}
}

func (uc *GetCastMemberByIDUseCase) Execute(ctx context.Context, id castmember.ID) (*CastMemberOutput, error) {
	member, err := findCastMember(ctx, uc.gateway, id)
	if err != nil {
		return nil, err
	}
	return outputOf(member), nil
}

// DeleteCastMemberUseCase removes a cast member, missing ids are ignored
type DeleteCastMemberUseCase struct {
	gateway castmember.Gateway
	logger  interfaces.Logger
}

func NewDeleteCastMemberUseCase(gateway castmember.Gateway, logger interfaces.Logger) *DeleteCastMemberUseCase {
	return &DeleteCastMemberUseCase{gateway: gateway, logger: logger}
}

func (uc *DeleteCastMemberUseCase) Execute(ctx context.Context, id castmember.ID) error {
	if err := uc.gateway.DeleteByID(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Cast member deleted", interfaces.String("id", id.String()))
	return nil
}

func findCastMember(ctx context.Context, gateway castmember.Gateway, id castmember.ID) (*castmember.CastMember, error) {
	member, err := gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.NotFoundFor(aggregateName, id)
	}
	return member, nil
}
