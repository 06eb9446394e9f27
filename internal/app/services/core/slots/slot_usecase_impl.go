package slots

import (
	"context"
	"time"

	"slotswap-service/internal/app/contracts"
	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/constvars"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
	"slotswap-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository contracts.SlotRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.SlotUsecase {
	return &slotUsecase{
		SlotRepository: slotRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *slotUsecase) CreateSlot(ctx context.Context, sessionData string, request *requests.CreateSlot) (*responses.Slot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if !request.EndTime.After(request.StartTime) {
		return nil, exceptions.ErrSlotTimeRangeInvalid(nil)
	}

	now := time.Now()
	slotModel := &models.Slot{
		Title:       request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Status:      constvars.SlotStatusBusy,
		OwnerID:     session.UserID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := uc.SlotRepository.CreateSlot(ctx, slotModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("slotUsecase.CreateSlot succeeded",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSlotIDKey, created.SlotID),
	)

	return buildSlotResponse(created), nil
}

func (uc *slotUsecase) GetMySlots(ctx context.Context, sessionData string) ([]responses.Slot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	slotModels, err := uc.SlotRepository.FindByOwnerID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	slots := make([]responses.Slot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, *buildSlotResponse(&slotModels[i]))
	}
	return slots, nil
}

func (uc *slotUsecase) UpdateSlot(ctx context.Context, sessionData, slotID string, request *requests.UpdateSlot) (*responses.Slot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	existingSlot, err := uc.SlotRepository.FindByOwnerAndSlotID(ctx, session.UserID, slotID)
	if err != nil {
		return nil, err
	}
	if existingSlot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	// A reserved slot belongs to its in-flight negotiation; the swap
	// usecase is the only writer until the negotiation resolves.
	if existingSlot.IsSwapPending() {
		return nil, exceptions.ErrSlotLockedByPendingSwap(nil)
	}

	if request.Title != "" {
		existingSlot.Title = request.Title
	}
	if request.Description != "" {
		existingSlot.Description = request.Description
	}
	if !request.StartTime.IsZero() {
		existingSlot.StartTime = request.StartTime
	}
	if !request.EndTime.IsZero() {
		existingSlot.EndTime = request.EndTime
	}
	if !existingSlot.EndTime.After(existingSlot.StartTime) {
		return nil, exceptions.ErrSlotTimeRangeInvalid(nil)
	}
	if request.Status != "" {
		existingSlot.Status = request.Status
	}
	existingSlot.UpdatedAt = time.Now()

	err = uc.SlotRepository.UpdateSlot(ctx, existingSlot)
	if err != nil {
		return nil, err
	}

	return buildSlotResponse(existingSlot), nil
}

func (uc *slotUsecase) DeleteSlot(ctx context.Context, sessionData, slotID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	existingSlot, err := uc.SlotRepository.FindByOwnerAndSlotID(ctx, session.UserID, slotID)
	if err != nil {
		return err
	}
	if existingSlot == nil {
		return exceptions.ErrSlotNotFound(nil)
	}
	if existingSlot.IsSwapPending() {
		return exceptions.ErrSlotLockedByPendingSwap(nil)
	}

	deleted, err := uc.SlotRepository.DeleteByOwnerAndSlotID(ctx, session.UserID, slotID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrSlotNotFound(nil)
	}

	uc.Log.Info("slotUsecase.DeleteSlot succeeded",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return nil
}

func buildSlotResponse(slotModel *models.Slot) *responses.Slot {
	return &responses.Slot{
		SlotID:      slotModel.SlotID,
		Title:       slotModel.Title,
		Description: slotModel.Description,
		StartTime:   slotModel.StartTime,
		EndTime:     slotModel.EndTime,
		Status:      slotModel.Status,
	}
}
