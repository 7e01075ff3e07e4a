package utils

import (
	"booking-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validator tags of a request DTO and converts the
// first failure into a client-facing validation error.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
