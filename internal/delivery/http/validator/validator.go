// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	domainerrors "herbwise/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate checks struct tags and maps failures onto the validation AppError.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
