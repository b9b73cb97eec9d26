// Package shared holds the validation flow shared by the create and update
// use cases of aggregates that reference other aggregates.
package shared

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// Reference kinds as they appear in error messages.
const (
	KindCategories  = "categories"
	KindGenres      = "genres"
	KindCastMembers = "cast members"
)

// ReferenceCheck reports missing references into h. A returned error is
// either an infrastructure failure or a handler asking to stop.
type ReferenceCheck func(ctx context.Context, h validation.Handler) error

// LookupFunc returns the subset of ids that exist.
type LookupFunc[ID identifier.ID] func(ctx context.Context, ids []ID) ([]ID, error)

// References checks that every id of one kind exists. An empty set is
// accepted without calling lookup. Otherwise lookup is called once with the
// whole set and, if some ids are missing, a single error
// "Some {kind} could not be found: a, b" is appended. Lookup failures are
// returned unchanged.
func References[ID identifier.ID](kind string, ids []ID, lookup LookupFunc[ID]) ReferenceCheck {
	return func(ctx context.Context, h validation.Handler) error {
		requested := identifier.Unique(ids)
		if len(requested) == 0 {
			return nil
		}

		existing, err := lookup(ctx, requested)
		if err != nil {
			return err
		}

		missing := identifier.Difference(requested, existing)
		if len(missing) == 0 {
			return nil
		}
		return h.Append(validation.NewError(
			fmt.Sprintf("Some %s could not be found: %s", kind, identifier.Join(missing, ", ")),
		))
	}
}
