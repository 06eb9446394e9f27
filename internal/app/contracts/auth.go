package contracts

import (
	"context"

	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.UserProfile, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
	UpdatePassword(ctx context.Context, sessionData string, request *requests.UpdatePassword) error
}
