package exceptions

import (
	"strings"

	"slotswap-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var customValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"min":         "is too short",
	"max":         "is too long",
	"slot_status": "must be either BUSY or SWAPPABLE",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		customMessage, ok := customValidationErrorMessages[firstErr.Tag()]
		if !ok {
			customMessage = "is invalid"
		}
		return fieldName + " " + customMessage
	}

	return constvars.ErrClientCannotProcessRequest
}
