package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"slotswap-service/internal/pkg/constvars"
)

// Slot is a bounded time interval owned by exactly one user. SlotID is
// the short public code used on the wire; OwnerID is the owner's user
// document ObjectID in hex. OwnerID changes hands only inside the swap
// usecase's accept transition.
type Slot struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SlotID      string             `bson:"slotId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	StartTime   time.Time          `bson:"startTime"`
	EndTime     time.Time          `bson:"endTime"`
	Status      string             `bson:"status"`
	OwnerID     string             `bson:"ownerId"`
	TimeModel   `bson:",inline"`
}

func (s *Slot) IsSwappable() bool {
	return s.Status == constvars.SlotStatusSwappable
}

func (s *Slot) IsSwapPending() bool {
	return s.Status == constvars.SlotStatusSwapPending
}
