package contracts

import (
	"context"

	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
)

type SwapRequestRepository interface {
	// CreateSwapRequest generates the public request code and retries
	// on code collision before giving up.
	CreateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) (*models.SwapRequest, error)
	FindByRequestCode(ctx context.Context, requestCode string) (*models.SwapRequest, error)
	FindByRequesterID(ctx context.Context, requesterID string) ([]models.SwapRequest, error)
	FindByReceiverID(ctx context.Context, receiverID string) ([]models.SwapRequest, error)
	UpdateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) error
}

type SwapUsecase interface {
	GetSwappableSlots(ctx context.Context, sessionData string) ([]responses.SwappableSlot, error)
	ProposeSwap(ctx context.Context, sessionData string, request *requests.CreateSwapRequest) (*responses.CreateSwap, error)
	RespondSwap(ctx context.Context, sessionData, requestCode string, request *requests.RespondSwapRequest) (*responses.RespondSwap, error)
	GetMySwapRequests(ctx context.Context, sessionData string) (*responses.SwapRequestList, error)
}
