package castmember

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	nameMinLength = 3
	nameMaxLength = 255
)

// Validator checks a CastMember's fields.
type Validator struct {
	member  *CastMember
	handler validation.Handler
}

// NewValidator creates a Validator reporting to h.
func NewValidator(m *CastMember, h validation.Handler) *Validator {
	return &Validator{member: m, handler: h}
}

// Validate runs every check in order.
func (v *Validator) Validate() error {
	if err := v.checkNameConstraints(); err != nil {
		return err
	}
	return v.checkTypeConstraints()
}

func (v *Validator) checkNameConstraints() error {
	name := v.member.name
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

func (v *Validator) checkTypeConstraints() error {
	if v.member.memberType == "" {
		return v.handler.Append(validation.NewError("'type' should not be null"))
	}
	return nil
}
