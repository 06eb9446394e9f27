package swaps

import (
	"context"
	"time"

	"slotswap-service/internal/app/config"
	"slotswap-service/internal/app/contracts"
	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/constvars"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
	"slotswap-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const unknownOwnerName = "Unknown User"

type swapUsecase struct {
	SlotRepository contracts.SlotRepository
	SwapRepository contracts.SwapRequestRepository
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSwapUsecase(
	slotRepository contracts.SlotRepository,
	swapRepository contracts.SwapRequestRepository,
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SwapUsecase {
	return &swapUsecase{
		SlotRepository: slotRepository,
		SwapRepository: swapRepository,
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *swapUsecase) GetSwappableSlots(ctx context.Context, sessionData string) ([]responses.SwappableSlot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	slotModels, err := uc.SlotRepository.FindSwappableExcludingOwner(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	ownerNames, err := uc.resolveOwnerNames(ctx, slotModels)
	if err != nil {
		return nil, err
	}

	slots := make([]responses.SwappableSlot, 0, len(slotModels))
	for i := range slotModels {
		slots = append(slots, *buildSwappableSlotResponse(&slotModels[i], ownerNames))
	}
	return slots, nil
}

// ProposeSwap reserves both slots for a new negotiation. The SWAPPABLE
// check on both sides is the sole gate keeping a slot inside at most
// one PENDING negotiation: a slot already reserved reads SWAP_PENDING
// here and the proposal fails before anything is written.
func (uc *swapUsecase) ProposeSwap(ctx context.Context, sessionData string, request *requests.CreateSwapRequest) (*responses.CreateSwap, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	mySlot, err := uc.SlotRepository.FindByOwnerAndSlotID(ctx, session.UserID, request.MySlotID)
	if err != nil {
		return nil, err
	}
	if mySlot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	// No ownership check on the target: any user's slot is eligible.
	theirSlot, err := uc.SlotRepository.FindBySlotID(ctx, request.TheirSlotID)
	if err != nil {
		return nil, err
	}
	if theirSlot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	if !mySlot.IsSwappable() || !theirSlot.IsSwappable() {
		return nil, exceptions.ErrSlotNotSwappable(nil)
	}

	now := time.Now()
	swapRequest := &models.SwapRequest{
		RequesterID: mySlot.OwnerID,
		ReceiverID:  theirSlot.OwnerID,
		MySlotID:    mySlot.SlotID,
		TheirSlotID: theirSlot.SlotID,
		Status:      constvars.SwapStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	swapRequest, err = uc.SwapRepository.CreateSwapRequest(ctx, swapRequest)
	if err != nil {
		return nil, err
	}

	// Reserve both slots. The writes are sequenced so that a failure
	// in between leaves both documents either SWAPPABLE or
	// SWAP_PENDING, never in diverged terminal states; SWAP_PENDING is
	// always re-drivable through the ledger entry created above.
	mySlot.Status = constvars.SlotStatusSwapPending
	mySlot.UpdatedAt = now
	if err := uc.SlotRepository.UpdateSlot(ctx, mySlot); err != nil {
		return nil, err
	}

	theirSlot.Status = constvars.SlotStatusSwapPending
	theirSlot.UpdatedAt = now
	if err := uc.SlotRepository.UpdateSlot(ctx, theirSlot); err != nil {
		uc.Log.Error("swapUsecase.ProposeSwap target slot reservation failed after offered slot was reserved",
			zap.String(constvars.LoggingRequestCodeKey, swapRequest.RequestCode),
			zap.String(constvars.LoggingSlotIDKey, theirSlot.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("swapUsecase.ProposeSwap succeeded",
		zap.String(constvars.LoggingRequestCodeKey, swapRequest.RequestCode),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String("my_slot_id", mySlot.SlotID),
		zap.String("their_slot_id", theirSlot.SlotID),
	)

	// Only the code goes back to the caller; the receiver discovers the
	// negotiation through their incoming list or out-of-band.
	return &responses.CreateSwap{RequestCode: swapRequest.RequestCode}, nil
}

func (uc *swapUsecase) RespondSwap(ctx context.Context, sessionData, requestCode string, request *requests.RespondSwapRequest) (*responses.RespondSwap, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	swapRequest, err := uc.SwapRepository.FindByRequestCode(ctx, requestCode)
	if err != nil {
		return nil, err
	}
	if swapRequest == nil {
		return nil, exceptions.ErrSwapRequestNotFound(nil)
	}

	if swapRequest.ReceiverID != session.UserID {
		return nil, exceptions.ErrSwapRequestNotReceiver(nil)
	}

	// Terminal statuses stay terminal: a repeated respond is rejected
	// here without touching either slot.
	if !swapRequest.IsPending() {
		return nil, exceptions.ErrSwapRequestResolved(nil)
	}

	mySlot, err := uc.SlotRepository.FindBySlotID(ctx, swapRequest.MySlotID)
	if err != nil {
		return nil, err
	}
	theirSlot, err := uc.SlotRepository.FindBySlotID(ctx, swapRequest.TheirSlotID)
	if err != nil {
		return nil, err
	}
	if mySlot == nil || theirSlot == nil {
		return nil, exceptions.ErrSwapSlotMissing(nil)
	}

	if uc.pendingRequestExpired(swapRequest) {
		if err := uc.resolveSwap(ctx, swapRequest, mySlot, theirSlot, false); err != nil {
			return nil, err
		}
		uc.Log.Warn("swapUsecase.RespondSwap expired request resolved as rejected",
			zap.String(constvars.LoggingRequestCodeKey, requestCode),
		)
		return nil, exceptions.ErrSwapRequestExpired(nil)
	}

	accepted := *request.Accept
	if err := uc.resolveSwap(ctx, swapRequest, mySlot, theirSlot, accepted); err != nil {
		return nil, err
	}

	uc.Log.Info("swapUsecase.RespondSwap succeeded",
		zap.String(constvars.LoggingRequestCodeKey, requestCode),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.Bool("accepted", accepted),
	)

	if accepted {
		return &responses.RespondSwap{Status: "accepted"}, nil
	}
	return &responses.RespondSwap{Status: "rejected"}, nil
}

// resolveSwap applies a terminal transition to the ledger entry and
// both slots. The ledger entry is written first: its terminal status is
// the recovery marker for the two slot writes that follow, so a crash
// mid-sequence leaves the slots SWAP_PENDING with a resolved entry
// rather than one slot resolved and the other reserved.
func (uc *swapUsecase) resolveSwap(ctx context.Context, swapRequest *models.SwapRequest, mySlot, theirSlot *models.Slot, accepted bool) error {
	now := time.Now()

	if accepted {
		swapRequest.Status = constvars.SwapStatusAccepted
	} else {
		swapRequest.Status = constvars.SwapStatusRejected
	}
	swapRequest.UpdatedAt = now
	if err := uc.SwapRepository.UpdateSwapRequest(ctx, swapRequest); err != nil {
		return err
	}

	if accepted {
		// The only place in the system where slot ownership changes.
		mySlot.OwnerID, theirSlot.OwnerID = theirSlot.OwnerID, mySlot.OwnerID
		mySlot.Status = constvars.SlotStatusBusy
		theirSlot.Status = constvars.SlotStatusBusy
	} else {
		mySlot.Status = constvars.SlotStatusSwappable
		theirSlot.Status = constvars.SlotStatusSwappable
	}
	mySlot.UpdatedAt = now
	theirSlot.UpdatedAt = now

	if err := uc.SlotRepository.UpdateSlot(ctx, mySlot); err != nil {
		return err
	}
	if err := uc.SlotRepository.UpdateSlot(ctx, theirSlot); err != nil {
		uc.Log.Error("swapUsecase.resolveSwap target slot write failed after offered slot was resolved",
			zap.String(constvars.LoggingRequestCodeKey, swapRequest.RequestCode),
			zap.String(constvars.LoggingSlotIDKey, theirSlot.SlotID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *swapUsecase) pendingRequestExpired(swapRequest *models.SwapRequest) bool {
	expiryInHour := uc.InternalConfig.App.SwapRequestExpiryInHour
	if expiryInHour <= 0 {
		return false
	}
	deadline := swapRequest.CreatedAt.Add(time.Duration(expiryInHour) * time.Hour)
	return time.Now().After(deadline)
}

func (uc *swapUsecase) GetMySwapRequests(ctx context.Context, sessionData string) (*responses.SwapRequestList, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	incomingModels, err := uc.SwapRepository.FindByReceiverID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	outgoingModels, err := uc.SwapRepository.FindByRequesterID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	slotsByID, err := uc.resolveReferencedSlots(ctx, incomingModels, outgoingModels)
	if err != nil {
		return nil, err
	}

	ownerNames, err := uc.resolveOwnerNamesFromMap(ctx, slotsByID)
	if err != nil {
		return nil, err
	}

	incoming := make([]responses.SwapRequestEntry, 0, len(incomingModels))
	for i := range incomingModels {
		incoming = append(incoming, buildSwapRequestEntry(&incomingModels[i], slotsByID, ownerNames))
	}
	outgoing := make([]responses.SwapRequestEntry, 0, len(outgoingModels))
	for i := range outgoingModels {
		outgoing = append(outgoing, buildSwapRequestEntry(&outgoingModels[i], slotsByID, ownerNames))
	}

	return &responses.SwapRequestList{
		IncomingCount: len(incoming),
		OutgoingCount: len(outgoing),
		Incoming:      incoming,
		Outgoing:      outgoing,
	}, nil
}

func (uc *swapUsecase) resolveReferencedSlots(ctx context.Context, requestLists ...[]models.SwapRequest) (map[string]*models.Slot, error) {
	slotsByID := make(map[string]*models.Slot)
	for _, list := range requestLists {
		for i := range list {
			for _, slotID := range []string{list[i].MySlotID, list[i].TheirSlotID} {
				if _, seen := slotsByID[slotID]; seen {
					continue
				}
				slot, err := uc.SlotRepository.FindBySlotID(ctx, slotID)
				if err != nil {
					return nil, err
				}
				// Deleted slots stay in the map as nil so entries can
				// render them as null instead of dropping the request.
				slotsByID[slotID] = slot
			}
		}
	}
	return slotsByID, nil
}

func (uc *swapUsecase) resolveOwnerNames(ctx context.Context, slotModels []models.Slot) (map[string]string, error) {
	ownerIDs := make([]string, 0, len(slotModels))
	seen := make(map[string]bool)
	for i := range slotModels {
		if !seen[slotModels[i].OwnerID] {
			seen[slotModels[i].OwnerID] = true
			ownerIDs = append(ownerIDs, slotModels[i].OwnerID)
		}
	}
	return uc.lookupUsernames(ctx, ownerIDs)
}

func (uc *swapUsecase) resolveOwnerNamesFromMap(ctx context.Context, slotsByID map[string]*models.Slot) (map[string]string, error) {
	ownerIDs := make([]string, 0, len(slotsByID))
	seen := make(map[string]bool)
	for _, slot := range slotsByID {
		if slot == nil || seen[slot.OwnerID] {
			continue
		}
		seen[slot.OwnerID] = true
		ownerIDs = append(ownerIDs, slot.OwnerID)
	}
	return uc.lookupUsernames(ctx, ownerIDs)
}

func (uc *swapUsecase) lookupUsernames(ctx context.Context, ownerIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return names, nil
	}
	users, err := uc.UserRepository.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	for i := range users {
		names[users[i].ID.Hex()] = users[i].Username
	}
	return names, nil
}

func buildSwappableSlotResponse(slotModel *models.Slot, ownerNames map[string]string) *responses.SwappableSlot {
	ownerName, ok := ownerNames[slotModel.OwnerID]
	if !ok {
		ownerName = unknownOwnerName
	}
	return &responses.SwappableSlot{
		Slot: responses.Slot{
			SlotID:      slotModel.SlotID,
			Title:       slotModel.Title,
			Description: slotModel.Description,
			StartTime:   slotModel.StartTime,
			EndTime:     slotModel.EndTime,
			Status:      slotModel.Status,
		},
		OwnerUsername: ownerName,
	}
}

func buildSwapRequestEntry(requestModel *models.SwapRequest, slotsByID map[string]*models.Slot, ownerNames map[string]string) responses.SwapRequestEntry {
	entry := responses.SwapRequestEntry{
		RequestCode: requestModel.RequestCode,
		Status:      requestModel.Status,
		CreatedAt:   requestModel.CreatedAt,
	}
	if slot := slotsByID[requestModel.MySlotID]; slot != nil {
		entry.MySlot = buildSwappableSlotResponse(slot, ownerNames)
	}
	if slot := slotsByID[requestModel.TheirSlotID]; slot != nil {
		entry.TheirSlot = buildSwappableSlotResponse(slot, ownerNames)
	}
	return entry
}
