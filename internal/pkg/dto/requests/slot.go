package requests

import "time"

type CreateSlot struct {
	Title       string    `json:"title" validate:"required,max=120"`
	Description string    `json:"description" validate:"max=500"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
}

// UpdateSlot carries the owner-editable fields. Status accepts only
// the owner-togglable values; SWAP_PENDING is rejected by validation
// so it can never be set through this endpoint.
type UpdateSlot struct {
	Title       string    `json:"title" validate:"omitempty,max=120"`
	Description string    `json:"description" validate:"max=500"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status" validate:"omitempty,slot_status"`
}
