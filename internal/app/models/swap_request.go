package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"slotswap-service/internal/pkg/constvars"
)

// SwapRequest is the ledger entry for one negotiation. MySlotID is the
// slot offered by the requester, TheirSlotID the slot it targets; both
// are public slot codes, not ObjectIDs. Entries are never deleted, the
// ledger doubles as the audit trail.
type SwapRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RequestCode string             `bson:"requestCode"`
	RequesterID string             `bson:"requesterId"`
	ReceiverID  string             `bson:"receiverId"`
	MySlotID    string             `bson:"mySlotId"`
	TheirSlotID string             `bson:"theirSlotId"`
	Status      string             `bson:"status"`
	TimeModel   `bson:",inline"`
}

func (r *SwapRequest) IsPending() bool {
	return r.Status == constvars.SwapStatusPending
}
