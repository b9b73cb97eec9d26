// Package category holds the category use cases.
package category

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/application/shared"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const aggregateName = "Category"

// CreateCategoryUseCase validates and stores a new category
type CreateCategoryUseCase struct {
	gateway category.Gateway
	logger  interfaces.Logger
}

// NewCreateCategoryUseCase creates the use case
func NewCreateCategoryUseCase(gateway category.Gateway, logger interfaces.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{gateway: gateway, logger: logger}
}

// Execute creates the category. A *validation.ValidationError is returned
// when a field is invalid, nothing is stored in that case.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryIDOutput, error) {
	c, err := shared.Assemble(ctx, shared.CreateFailure(aggregateName), nil,
		func(h validation.Handler) (*category.Category, error) {
			return shared.Validated(category.NewCategory(cmd.Name, cmd.Description, cmd.IsActive), h)
		})
	if err != nil {
		uc.logger.Warn("Category rejected", interfaces.Error(err))
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not create category "+c.ID().String(), err)
	}

	uc.logger.Info("Category created", interfaces.String("id", created.ID().String()))
	return &CategoryIDOutput{ID: created.ID()}, nil
}

// UpdateCategoryUseCase validates and stores changes to a category
type UpdateCategoryUseCase struct {
	gateway category.Gateway
	logger  interfaces.Logger
}

// NewUpdateCategoryUseCase creates the use case
func NewUpdateCategoryUseCase(gateway category.Gateway, logger interfaces.Logger) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{gateway: gateway, logger: logger}
}

// Execute updates the category or reports that it does not exist.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryIDOutput, error) {
	existing, err := findCategory(ctx, uc.gateway, cmd.ID)
	if err != nil {
		return nil, err
	}

	c, err := shared.Assemble(ctx, shared.UpdateFailure(aggregateName), nil,
		func(h validation.Handler) (*category.Category, error) {
			return shared.Validated(existing.Clone().Update(cmd.Name, cmd.Description, cmd.IsActive), h)
		})
	if err != nil {
		uc.logger.Warn("Category update rejected",
			interfaces.String("id", cmd.ID.String()),
			interfaces.Error(err))
		return nil, err
	}

	updated, err := uc.gateway.Update(ctx, c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not update category "+c.ID().String(), err)
	}

	uc.logger.Info("Category updated", interfaces.String("id", updated.ID().String()))
	return &CategoryIDOutput{ID: updated.ID()}, nil
}

// GetCategoryByIDUseCase loads one category
type GetCategoryByIDUseCase struct {
	gateway category.Gateway
}

// NewGetCategoryByIDUseCase creates the use case
func NewGetCategoryByIDUseCase(gateway category.Gateway) *GetCategoryByIDUseCase {
	return &GetCategoryByIDUseCase{gateway: gateway}
}

// Execute returns the category or a not found error.
func (uc *GetCategoryByIDUseCase) Execute(ctx context.Context, id category.ID) (*CategoryOutput, error) {
	c, err := findCategory(ctx, uc.gateway, id)
	if err != nil {
		return nil, err
	}
	return outputOf(c), nil
}

// DeleteCategoryUseCase removes a category
type DeleteCategoryUseCase struct {
	gateway category.Gateway
	logger  interfaces.Logger
}

// NewDeleteCategoryUseCase creates the use case
func NewDeleteCategoryUseCase(gateway category.Gateway, logger interfaces.Logger) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{gateway: gateway, logger: logger}
}

// Execute deletes the category. Deleting a missing category succeeds.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id category.ID) error {
	if err := uc.gateway.DeleteByID(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Category deleted", interfaces.String("id", id.String()))
	return nil
}

func findCategory(ctx context.Context, gateway category.Gateway, id category.ID) (*category.Category, error) {
	c, err := gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NotFoundFor(aggregateName, id)
	}
	return c, nil
}
