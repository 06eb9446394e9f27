package auth

import (
	"context"
	"time"

	"slotswap-service/internal/app/config"
	"slotswap-service/internal/app/contracts"
	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/dto/responses"
	"slotswap-service/internal/pkg/exceptions"
	"slotswap-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.UserProfile, error) {
	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	userModel := &models.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String("username", request.Username),
	)

	return &responses.UserProfile{
		ID:       userID,
		Username: userModel.Username,
		Email:    userModel.Email,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionModel := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
	}

	err = uc.SessionService.CreateSession(ctx, sessionModel)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String("username", user.Username),
	)

	return &responses.Login{
		Token: token,
		User: responses.UserProfile{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) UpdatePassword(ctx context.Context, sessionData string, request *requests.UpdatePassword) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return exceptions.ErrPasswordDoNotMatch(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	user.Password = hashedPassword
	user.UpdatedAt = time.Now()
	return uc.UserRepository.UpdateUser(ctx, user)
}
