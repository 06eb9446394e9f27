package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess       = "user created successfully"
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	UpdatePasswordSuccess = "password updated successfully"

	// Slot messages
	SlotCreatedSuccess   = "slot created successfully"
	SlotListSuccess      = "slots fetched successfully"
	SlotUpdatedSuccess   = "slot updated successfully"
	SlotDeletedSuccess   = "slot deleted successfully"
	SwappableListSuccess = "swappable slots fetched successfully"

	// Swap messages
	SwapRequestCreatedSuccess = "swap request created"
	SwapRequestListSuccess    = "swap requests fetched successfully"
	SwapAcceptedSuccess       = "swap accepted successfully"
	SwapRejectedSuccess       = "swap request rejected"
)
