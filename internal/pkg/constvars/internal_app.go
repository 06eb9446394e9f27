package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         contextKey = "sessionData"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionSlots        = "slots"
	MongoCollectionSwapRequests = "swap_requests"
)

// Slot lifecycle. SwapPending is set and cleared only by the swap
// usecase; slot endpoints never write it.
const (
	SlotStatusBusy        = "BUSY"
	SlotStatusSwappable   = "SWAPPABLE"
	SlotStatusSwapPending = "SWAP_PENDING"
)

// Swap request lifecycle. Accepted and Rejected are terminal.
const (
	SwapStatusPending  = "PENDING"
	SwapStatusAccepted = "ACCEPTED"
	SwapStatusRejected = "REJECTED"
)

const (
	SlotPublicIDLength    = 8
	SwapRequestCodeLength = 6

	SwapRequestCodeMaxInsertRetries = 5
)

const (
	URLParamSlotID      = "slot_id"
	URLParamRequestCode = "request_code"
)
