package genre

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
)

// CreateGenreCommand represents a command to create a genre
type CreateGenreCommand struct {
	Name       *string
	IsActive   bool
	Categories []category.ID
}

// UpdateGenreCommand represents a command to update a genre
type UpdateGenreCommand struct {
	ID         genre.ID
	Name       *string
	IsActive   bool
	Categories []category.ID
}

// GenreIDOutput carries the identifier of a written genre
type GenreIDOutput struct {
	ID genre.ID
}

// GenreOutput is the read model of a genre
type GenreOutput struct {
	ID         genre.ID
	Name       string
	IsActive   bool
	Categories []category.ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

func outputOf(g *genre.Genre) *GenreOutput {
	return &GenreOutput{
		ID:         g.ID(),
		Name:       g.Name(),
		IsActive:   g.IsActive(),
		Categories: g.Categories(),
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}
