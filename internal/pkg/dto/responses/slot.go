package responses

import "time"

type Slot struct {
	SlotID      string    `json:"slotId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
}

// SwappableSlot is the marketplace view: someone else's SWAPPABLE slot
// enriched with the read-only public identity of its current owner.
type SwappableSlot struct {
	Slot
	OwnerUsername string `json:"ownerUsername"`
}
