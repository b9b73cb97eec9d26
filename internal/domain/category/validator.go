package category

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 3
	nameMaxLength = 255
)

// Validator checks a Category's fields.
type Validator struct {
	category *Category
	handler  validation.Handler
}

// NewValidator creates a Validator reporting to h.
func NewValidator(c *Category, h validation.Handler) *Validator {
	return &Validator{category: c, handler: h}
}

// Validate runs every check. It only fails when the handler asks it to stop.
func (v *Validator) Validate() error {
	return v.checkNameConstraints()
}

func (v *Validator) checkNameConstraints() error {
	name := v.category.name
	if name == nil {
		return v.handler.Append(validation.NewError("'name' should not be null"))
	}
	if validation.IsBlank(*name) {
		return v.handler.Append(validation.NewError("'name' should not be empty"))
	}
	if !validation.Within(*name, nameMinLength, nameMaxLength) {
		return v.handler.Append(validation.NewError("'name' must be between 3 and 255 characters"))
	}
	return nil
}
