package video

import "github.com/narwhalmedia/catalog/internal/domain/validation"

const (
	titleMaxLength       = 255
	descriptionMaxLength = 4000
)

// Validator checks a Video's fields. Each check stops at the first problem it
// finds, later checks still run unless the handler asks to stop.
type Validator struct {
	video   *Video
	handler validation.Handler
}

// NewValidator creates a Validator reporting to h.
func NewValidator(v *Video, h validation.Handler) *Validator {
	return &Validator{video: v, handler: h}
}

// Validate runs the checks in a fixed order.
func (v *Validator) Validate() error {
	checks := []func() error{
		v.checkTitleConstraints,
		v.checkDescriptionConstraints,
		v.checkLaunchedAtConstraints,
		v.checkDurationConstraints,
		v.checkRatingConstraints,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) checkTitleConstraints() error {
	title := v.video.title
	if title == nil {
		return v.handler.Append(validation.NewError("'title' should not be null"))
	}
	if validation.IsBlank(*title) {
		return v.handler.Append(validation.NewError("'title' should not be empty"))
	}
	if validation.Length(*title) > titleMaxLength {
		return v.handler.Append(validation.NewError("'title' should be between 1 and 255 characters"))
	}
	return nil
}

func (v *Validator) checkDescriptionConstraints() error {
	description := v.video.description
	if description == nil {
		return v.handler.Append(validation.NewError("'description' should not be null"))
	}
	if validation.IsBlank(*description) {
		return v.handler.Append(validation.NewError("'description' should not be empty"))
	}
	if validation.Length(*description) > descriptionMaxLength {
		return v.handler.Append(validation.NewError("'description' should be between 1 and 4000 characters"))
	}
	return nil
}

func (v *Validator) checkLaunchedAtConstraints() error {
	if v.video.launchedAt == nil {
		return v.handler.Append(validation.NewError("'launchedAt' should not be null"))
	}
	return nil
}

func (v *Validator) checkDurationConstraints() error {
	if v.video.duration < 0 {
		return v.handler.Append(validation.NewError("'duration' should not be negative"))
	}
	return nil
}

// An unknown raw rating reaches the aggregate as the zero Rating, so it is
// reported the same way as a missing one.
func (v *Validator) checkRatingConstraints() error {
	if v.video.rating == "" {
		return v.handler.Append(validation.NewError("'rating' should not be null"))
	}
	return nil
}
