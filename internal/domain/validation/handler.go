// Package validation provides the two strategies aggregates are validated
// against: a Notification that accumulates every error, and a FailFast handler
// that stops at the first one.
package validation

// Handler receives validation errors. Append returns a non-nil error only when
// the handler wants the caller to stop, so checks propagate that return value.
type Handler interface {
	// Append records a single error
	Append(err Error) error
	// AppendAll records every error held by another handler
	AppendAll(other Handler) error
	// Errors returns the recorded errors in insertion order
	Errors() []Error
	// HasErrors reports whether at least one error was recorded
	HasErrors() bool
}

// Notification accumulates errors and never asks the caller to stop.
type Notification struct {
	errors []Error
}

// NewNotification creates an empty Notification.
func NewNotification() *Notification {
	return &Notification{errors: make([]Error, 0)}
}

// NotificationWith creates a Notification holding err.
func NotificationWith(err Error) *Notification {
	n := NewNotification()
	n.errors = append(n.errors, err)
	return n
}

// Append records err.
func (n *Notification) Append(err Error) error {
	n.errors = append(n.errors, err)
	return nil
}

// AppendAll records every error of other.
func (n *Notification) AppendAll(other Handler) error {
	n.errors = append(n.errors, other.Errors()...)
	return nil
}

// Errors returns a copy of the recorded errors.
func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

// HasErrors reports whether any error was recorded.
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// FirstError returns the first recorded error.
func (n *Notification) FirstError() (Error, bool) {
	if len(n.errors) == 0 {
		return Error{}, false
	}
	return n.errors[0], true
}

// Err turns the notification into a *ValidationError with the given message,
// or nil when nothing was recorded.
func (n *Notification) Err(message string) error {
	if !n.HasErrors() {
		return nil
	}
	return NewValidationError(message, n.errors)
}

// FailFast rejects on the first appended error.
type FailFast struct{}

// NewFailFast creates a FailFast handler.
func NewFailFast() FailFast {
	return FailFast{}
}

// Append returns a *ValidationError holding err.
func (FailFast) Append(err Error) error {
	return NewSingleError(err)
}

// AppendAll returns a *ValidationError holding the errors of other. It
// returns nil when other holds nothing.
func (FailFast) AppendAll(other Handler) error {
	errs := other.Errors()
	if len(errs) == 0 {
		return nil
	}
	return NewValidationError(errs[0].Message, errs)
}

// Errors always returns an empty list since nothing is ever retained.
func (FailFast) Errors() []Error {
	return []Error{}
}

// HasErrors always returns false.
func (FailFast) HasErrors() bool {
	return false
}

// Run executes fn and folds its failure into h. A *ValidationError contributes
// its errors; any other error contributes its message as one error. On
// failure the zero value is returned together with whatever h.Append returned.
func Run[T any](h Handler, fn func() (T, error)) (T, error) {
	value, err := fn()
	if err == nil {
		return value, nil
	}

	var zero T
	if verr, ok := AsValidationError(err); ok {
		for _, e := range verr.Errors {
			if appendErr := h.Append(e); appendErr != nil {
				return zero, appendErr
			}
		}
		return zero, nil
	}
	return zero, h.Append(NewError(err.Error()))
}
