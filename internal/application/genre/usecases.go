// Package genre holds the genre use cases. Create and update check that
// every referenced category exists before anything is written.
package genre

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/application/shared"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const aggregateName = "Genre"

// CreateGenreUseCase validates and stores a new genre
type CreateGenreUseCase struct {
	genres     genre.Gateway
	categories category.Lookup
	logger     interfaces.Logger
}

// NewCreateGenreUseCase creates the use case
func NewCreateGenreUseCase(genres genre.Gateway, categories category.Lookup, logger interfaces.Logger) *CreateGenreUseCase {
	return &CreateGenreUseCase{genres: genres, categories: categories, logger: logger}
}

// Execute creates the genre. Missing categories and invalid fields are
// reported together in one *validation.ValidationError.
func (uc *CreateGenreUseCase) Execute(ctx context.Context, cmd CreateGenreCommand) (*GenreIDOutput, error) {
	checks := []shared.ReferenceCheck{
		shared.References(shared.KindCategories, cmd.Categories, uc.categories.ExistsByIDs),
	}

	g, err := shared.Assemble(ctx, shared.CreateFailure(aggregateName), checks,
		func(h validation.Handler) (*genre.Genre, error) {
			return shared.Validated(genre.NewGenre(cmd.Name, cmd.IsActive).AddCategories(cmd.Categories), h)
		})
	if err != nil {
		uc.logger.Warn("Genre rejected", interfaces.Error(err))
		return nil, err
	}

	created, err := uc.genres.Create(ctx, g)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not create genre "+g.ID().String(), err)
	}

	uc.logger.Info("Genre created",
		interfaces.String("id", created.ID().String()),
		interfaces.Int("categories", len(created.Categories())))
	return &GenreIDOutput{ID: created.ID()}, nil
}

// UpdateGenreUseCase validates and stores changes to a genre
type UpdateGenreUseCase struct {
	genres     genre.Gateway
	categories category.Lookup
	logger     interfaces.Logger
}

// NewUpdateGenreUseCase creates the use case
func NewUpdateGenreUseCase(genres genre.Gateway, categories category.Lookup, logger interfaces.Logger) *UpdateGenreUseCase {
	return &UpdateGenreUseCase{genres: genres, categories: categories, logger: logger}
}

// Execute updates the genre. The target is resolved before any validation.
func (uc *UpdateGenreUseCase) Execute(ctx context.Context, cmd UpdateGenreCommand) (*GenreIDOutput, error) {
	existing, err := findGenre(ctx, uc.genres, cmd.ID)
	if err != nil {
		return nil, err
	}

	checks := []shared.ReferenceCheck{
		shared.References(shared.KindCategories, cmd.Categories, uc.categories.ExistsByIDs),
	}

	g, err := shared.Assemble(ctx, shared.UpdateFailure(aggregateName), checks,
		func(h validation.Handler) (*genre.Genre, error) {
			return shared.Validated(existing.Clone().Update(cmd.Name, cmd.IsActive, cmd.Categories), h)
		})
	if err != nil {
		uc.logger.Warn("Genre update rejected",
			interfaces.String("id", cmd.ID.String()),
			interfaces.Error(err))
		return nil, err
	}

	updated, err := uc.genres.Update(ctx, g)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, "could not update genre "+g.ID().String(), err)
	}

	uc.logger.Info("Genre updated", interfaces.String("id", updated.ID().String()))
	return &GenreIDOutput{ID: updated.ID()}, nil
}

// GetGenreByIDUseCase loads one genre
type GetGenreByIDUseCase struct {
	genres genre.Gateway
}

// NewGetGenreByIDUseCase creates the use case
func NewGetGenreByIDUseCase(genres genre.Gateway) *GetGenreByIDUseCase {
	return &GetGenreByIDUseCase{genres: genres}
}

// Execute returns the genre or a not found error.
func (uc *GetGenreByIDUseCase) Execute(ctx context.Context, id genre.ID) (*GenreOutput, error) {
	g, err := findGenre(ctx, uc.genres, id)
	if err != nil {
		return nil, err
	}
	return outputOf(g), nil
}

// DeleteGenreUseCase removes a genre
type DeleteGenreUseCase struct {
	genres genre.Gateway
	logger interfaces.Logger
}

// NewDeleteGenreUseCase creates the use case
func NewDeleteGenreUseCase(genres genre.Gateway, logger interfaces.Logger) *DeleteGenreUseCase {
	return &DeleteGenreUseCase{genres: genres, logger: logger}
}

// Execute deletes the genre. Deleting a missing genre succeeds.
func (uc *DeleteGenreUseCase) Execute(ctx context.Context, id genre.ID) error {
	if err := uc.genres.DeleteByID(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Genre deleted", interfaces.String("id", id.String()))
	return nil
}

func findGenre(ctx context.Context, genres genre.Gateway, id genre.ID) (*genre.Genre, error) {
	g, err := genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.NotFoundFor(aggregateName, id)
	}
	return g, nil
}
