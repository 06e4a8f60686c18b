// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "vault/internal/domain/errors"

	validatorv10 "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for Echo.
type CustomValidator struct {
	validate *validatorv10.Validate
}

// New creates the validator used for request DTOs.
func New() *CustomValidator {
	return &CustomValidator{validate: validatorv10.New()}
}

// Validate checks struct tags and converts failures into the application's
// validation error so the error handler renders them uniformly.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
