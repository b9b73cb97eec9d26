package genre

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 1
	nameMaxLength = 255
)

// Validator checks a Genre's fields.
type Validator struct {
	genre   *Genre
	handler validation.Handler
}

// NewValidator creates a Validator reporting to h.
func NewValidator(g *Genre, h validation.Handler) *Validator {
	return &Validator{genre: g, handler: h}
}

// Validate runs every check.
func (v *Validator) Validate() error {
	return v.checkNameConstraints()
}

func (v *Validator) checkNameConstraints() error {
	name := v.genre.name
	if name == nil {
		return v.handler.Append(validation.NewError("'name' should not be null"))
	}
	if validation.IsBlank(*name) {
		return v.handler.Append(validation.NewError("'name' should not be empty"))
	}
	if !validation.Within(*name, nameMinLength, nameMaxLength) {
		return v.handler.Append(validation.NewError("'name' must be between 1 and 255 characters"))
	}
	return nil
}
