package shared

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// Assemble validates a create or update request in one Notification. The
// reference checks run first, then build constructs or updates the aggregate
// and validates it against the same handler, so field errors come after
// reference errors. When anything was reported the result is a
// *validation.ValidationError with message and every error in order.
// Infrastructure failures from the checks are returned as is.
func Assemble[T any](ctx context.Context, message string, checks []ReferenceCheck, build func(h validation.Handler) (T, error)) (T, error) {
	var zero T
	n := validation.NewNotification()

	for _, check := range checks {
		if err := check(ctx, n); err != nil {
			return zero, err
		}
	}

	value, err := validation.Run(n, func() (T, error) {
		return build(n)
	})
	if err != nil {
		return zero, err
	}

	if n.HasErrors() {
		return zero, validation.NewValidationError(message, n.Errors())
	}
	return value, nil
}

// Validatable is an aggregate that reports its field errors into a handler.
type Validatable interface {
	Validate(h validation.Handler) error
}

// Validated runs v's checks against h and returns v.
func Validated[T Validatable](v T, h validation.Handler) (T, error) {
	if err := v.Validate(h); err != nil {
		return v, err
	}
	return v, nil
}

// CreateFailure and UpdateFailure are the messages of rejected requests.
func CreateFailure(aggregate string) string {
	return "could not create Aggregate " + aggregate
}

func UpdateFailure(aggregate string) string {
	return "could not update Aggregate " + aggregate
}
