package utils

import (
	"slotswap-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_status", validateSlotStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Only the owner-togglable statuses pass. SWAP_PENDING is reserved for
// the swap usecase and is not accepted from any request body.
func validateSlotStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SlotStatusBusy || value == constvars.SlotStatusSwappable
}
