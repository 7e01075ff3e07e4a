package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()

	customMessage, known := constvars.CustomValidationErrorMessages[tag]
	if !known {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
