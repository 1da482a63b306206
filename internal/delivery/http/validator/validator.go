// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "biblio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance so Echo can run struct
// validation after binding.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator with struct-tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Tag failures surface as the
// validation error so the error middleware maps them to a 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
