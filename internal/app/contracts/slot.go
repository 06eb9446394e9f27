package contracts

import (
	"context"

	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
)

type SlotRepository interface {
	CreateSlot(ctx context.Context, slotModel *models.Slot) (*models.Slot, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]models.Slot, error)
	FindBySlotID(ctx context.Context, slotID string) (*models.Slot, error)
	FindByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (*models.Slot, error)
	FindSwappableExcludingOwner(ctx context.Context, ownerID string) ([]models.Slot, error)
	UpdateSlot(ctx context.Context, slotModel *models.Slot) error
	DeleteByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (deleted bool, err error)
}

type SlotUsecase interface {
	CreateSlot(ctx context.Context, sessionData string, request *requests.CreateSlot) (*responses.Slot, error)
	GetMySlots(ctx context.Context, sessionData string) ([]responses.Slot, error)
	UpdateSlot(ctx context.Context, sessionData, slotID string, request *requests.UpdateSlot) (*responses.Slot, error)
	DeleteSlot(ctx context.Context, sessionData, slotID string) error
}
