package responses

import "time"

type CreateSwap struct {
	RequestCode string `json:"requestCode"`
}

type RespondSwap struct {
	Status string `json:"status"`
}

// SwapRequestEntry denormalizes one ledger entry for the inbox/outbox
// screens. Slots deleted out-of-band render as null, the entry itself
// is still listed since the ledger is never pruned.
type SwapRequestEntry struct {
	RequestCode string         `json:"requestCode"`
	Status      string         `json:"status"`
	MySlot      *SwappableSlot `json:"mySlot"`
	TheirSlot   *SwappableSlot `json:"theirSlot"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type SwapRequestList struct {
	IncomingCount int                `json:"incomingCount"`
	OutgoingCount int                `json:"outgoingCount"`
	Incoming      []SwapRequestEntry `json:"incoming"`
	Outgoing      []SwapRequestEntry `json:"outgoing"`
}
