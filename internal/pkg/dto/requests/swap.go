package requests

type CreateSwapRequest struct {
	MySlotID    string `json:"mySlotId" validate:"required"`
	TheirSlotID string `json:"theirSlotId" validate:"required"`
}

type RespondSwapRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}
