package swaps

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotswap-service/internal/app/config"
	"slotswap-service/internal/app/models"
	"slotswap-service/internal/pkg/constvars"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) CreateSlot(ctx context.Context, slotModel *models.Slot) (*models.Slot, error) {
	args := m.Called(ctx, slotModel)
	if slot, ok := args.Get(0).(*models.Slot); ok {
		return slot, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSlotRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]models.Slot, error) {
	args := m.Called(ctx, ownerID)
	if slots, ok := args.Get(0).([]models.Slot); ok {
		return slots, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSlotRepository) FindBySlotID(ctx context.Context, slotID string) (*models.Slot, error) {
	args := m.Called(ctx, slotID)
	if slot, ok := args.Get(0).(*models.Slot); ok {
		return slot, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSlotRepository) FindByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (*models.Slot, error) {
	args := m.Called(ctx, ownerID, slotID)
	if slot, ok := args.Get(0).(*models.Slot); ok {
		return slot, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSlotRepository) FindSwappableExcludingOwner(ctx context.Context, ownerID string) ([]models.Slot, error) {
	args := m.Called(ctx, ownerID)
	if slots, ok := args.Get(0).([]models.Slot); ok {
		return slots, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSlotRepository) UpdateSlot(ctx context.Context, slotModel *models.Slot) error {
	args := m.Called(ctx, slotModel)
	return args.Error(0)
}

func (m *MockSlotRepository) DeleteByOwnerAndSlotID(ctx context.Context, ownerID, slotID string) (bool, error) {
	args := m.Called(ctx, ownerID, slotID)
	return args.Bool(0), args.Error(1)
}

type MockSwapRequestRepository struct {
	mock.Mock
}

func (m *MockSwapRequestRepository) CreateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) (*models.SwapRequest, error) {
	args := m.Called(ctx, requestModel)
	if request, ok := args.Get(0).(*models.SwapRequest); ok {
		return request, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSwapRequestRepository) FindByRequestCode(ctx context.Context, requestCode string) (*models.SwapRequest, error) {
	args := m.Called(ctx, requestCode)
	if request, ok := args.Get(0).(*models.SwapRequest); ok {
		return request, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSwapRequestRepository) FindByRequesterID(ctx context.Context, requesterID string) ([]models.SwapRequest, error) {
	args := m.Called(ctx, requesterID)
	if requests, ok := args.Get(0).([]models.SwapRequest); ok {
		return requests, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSwapRequestRepository) FindByReceiverID(ctx context.Context, receiverID string) ([]models.SwapRequest, error) {
	args := m.Called(ctx, receiverID)
	if requests, ok := args.Get(0).([]models.SwapRequest); ok {
		return requests, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSwapRequestRepository) UpdateSwapRequest(ctx context.Context, requestModel *models.SwapRequest) error {
	args := m.Called(ctx, requestModel)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	args := m.Called(ctx, userIDs)
	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type swapUsecaseFixture struct {
	slotRepo    *MockSlotRepository
	swapRepo    *MockSwapRequestRepository
	userRepo    *MockUserRepository
	sessionSvc  *MockSessionService
	internalCfg *config.InternalConfig
}

func newSwapUsecaseFixture() *swapUsecaseFixture {
	return &swapUsecaseFixture{
		slotRepo:    new(MockSlotRepository),
		swapRepo:    new(MockSwapRequestRepository),
		userRepo:    new(MockUserRepository),
		sessionSvc:  new(MockSessionService),
		internalCfg: &config.InternalConfig{},
	}
}

func (f *swapUsecaseFixture) build() *swapUsecase {
	return NewSwapUsecase(
		f.slotRepo,
		f.swapRepo,
		f.userRepo,
		f.sessionSvc,
		f.internalCfg,
		zap.NewNop(),
	).(*swapUsecase)
}

func (f *swapUsecaseFixture) stubSession(sessionData, userID string) {
	f.sessionSvc.On("ParseSessionData", mock.Anything, sessionData).
		Return(&models.Session{SessionID: "session-1", UserID: userID, Username: "user-" + userID}, nil)
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected *exceptions.CustomError, got %T: %v", err, err)
	}
	return customErr.StatusCode
}

func boolPtr(v bool) *bool {
	return &v
}

func buildSlot(slotID, ownerID, status string) *models.Slot {
	return &models.Slot{
		ID:        primitive.NewObjectID(),
		SlotID:    slotID,
		Title:     "Slot " + slotID,
		StartTime: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		Status:    status,
		OwnerID:   ownerID,
	}
}

func TestSwapUsecase_ProposeSwap(t *testing.T) {
	ctx := context.Background()
	userA := primitive.NewObjectID().Hex()
	userB := primitive.NewObjectID().Hex()

	t.Run("creates ledger entry and reserves both slots", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwappable)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwappable)

		fixture.slotRepo.On("FindByOwnerAndSlotID", mock.Anything, userA, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)
		fixture.swapRepo.On("CreateSwapRequest", mock.Anything, mock.AnythingOfType("*models.SwapRequest")).
			Return(&models.SwapRequest{
				RequestCode: "XK92F1",
				RequesterID: userA,
				ReceiverID:  userB,
				MySlotID:    "AAAA1111",
				TheirSlotID: "BBBB2222",
				Status:      constvars.SwapStatusPending,
			}, nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotA).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotB).Return(nil)

		result, err := fixture.build().ProposeSwap(ctx, "session-a", &requests.CreateSwapRequest{
			MySlotID:    "AAAA1111",
			TheirSlotID: "BBBB2222",
		})

		assert.NoError(t, err)
		assert.Equal(t, "XK92F1", result.RequestCode)
		assert.Equal(t, constvars.SlotStatusSwapPending, slotA.Status)
		assert.Equal(t, constvars.SlotStatusSwapPending, slotB.Status)
		fixture.slotRepo.AssertExpectations(t)
		fixture.swapRepo.AssertExpectations(t)
	})

	t.Run("offered slot owned by someone else reports not found", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		fixture.slotRepo.On("FindByOwnerAndSlotID", mock.Anything, userA, "BBBB2222").Return(nil, nil)

		result, err := fixture.build().ProposeSwap(ctx, "session-a", &requests.CreateSwapRequest{
			MySlotID:    "BBBB2222",
			TheirSlotID: "AAAA1111",
		})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		fixture.swapRepo.AssertNotCalled(t, "CreateSwapRequest", mock.Anything, mock.Anything)
	})

	t.Run("missing target slot reports not found", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwappable)
		fixture.slotRepo.On("FindByOwnerAndSlotID", mock.Anything, userA, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "ZZZZ9999").Return(nil, nil)

		result, err := fixture.build().ProposeSwap(ctx, "session-a", &requests.CreateSwapRequest{
			MySlotID:    "AAAA1111",
			TheirSlotID: "ZZZZ9999",
		})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		fixture.swapRepo.AssertNotCalled(t, "CreateSwapRequest", mock.Anything, mock.Anything)
	})

	t.Run("busy offered slot cannot be proposed", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusBusy)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwappable)
		fixture.slotRepo.On("FindByOwnerAndSlotID", mock.Anything, userA, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)

		result, err := fixture.build().ProposeSwap(ctx, "session-a", &requests.CreateSwapRequest{
			MySlotID:    "AAAA1111",
			TheirSlotID: "BBBB2222",
		})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		assert.Equal(t, constvars.SlotStatusBusy, slotA.Status)
		fixture.swapRepo.AssertNotCalled(t, "CreateSwapRequest", mock.Anything, mock.Anything)
		fixture.slotRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
	})

	t.Run("target slot reserved by another negotiation cannot be proposed", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwappable)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwapPending)
		fixture.slotRepo.On("FindByOwnerAndSlotID", mock.Anything, userA, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)

		result, err := fixture.build().ProposeSwap(ctx, "session-a", &requests.CreateSwapRequest{
			MySlotID:    "AAAA1111",
			TheirSlotID: "BBBB2222",
		})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		assert.Equal(t, constvars.SlotStatusSwappable, slotA.Status)
		fixture.swapRepo.AssertNotCalled(t, "CreateSwapRequest", mock.Anything, mock.Anything)
	})
}

func TestSwapUsecase_RespondSwap(t *testing.T) {
	ctx := context.Background()
	userA := primitive.NewObjectID().Hex()
	userB := primitive.NewObjectID().Hex()

	pendingRequest := func() *models.SwapRequest {
		return &models.SwapRequest{
			ID:          primitive.NewObjectID(),
			RequestCode: "XK92F1",
			RequesterID: userA,
			ReceiverID:  userB,
			MySlotID:    "AAAA1111",
			TheirSlotID: "BBBB2222",
			Status:      constvars.SwapStatusPending,
			TimeModel:   models.TimeModel{CreatedAt: time.Now().Add(-time.Minute)},
		}
	}

	t.Run("accept exchanges owners and parks both slots busy", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-b", userB)

		request := pendingRequest()
		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwapPending)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwapPending)

		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)
		fixture.swapRepo.On("UpdateSwapRequest", mock.Anything, request).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotA).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotB).Return(nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(true)})

		assert.NoError(t, err)
		assert.Equal(t, "accepted", result.Status)
		assert.Equal(t, constvars.SwapStatusAccepted, request.Status)
		assert.Equal(t, userB, slotA.OwnerID)
		assert.Equal(t, userA, slotB.OwnerID)
		assert.Equal(t, constvars.SlotStatusBusy, slotA.Status)
		assert.Equal(t, constvars.SlotStatusBusy, slotB.Status)
		fixture.slotRepo.AssertExpectations(t)
		fixture.swapRepo.AssertExpectations(t)
	})

	t.Run("reject restores both slots without touching ownership", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-b", userB)

		request := pendingRequest()
		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwapPending)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwapPending)

		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)
		fixture.swapRepo.On("UpdateSwapRequest", mock.Anything, request).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotA).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotB).Return(nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(false)})

		assert.NoError(t, err)
		assert.Equal(t, "rejected", result.Status)
		assert.Equal(t, constvars.SwapStatusRejected, request.Status)
		assert.Equal(t, userA, slotA.OwnerID)
		assert.Equal(t, userB, slotB.OwnerID)
		assert.Equal(t, constvars.SlotStatusSwappable, slotA.Status)
		assert.Equal(t, constvars.SlotStatusSwappable, slotB.Status)
	})

	t.Run("unknown code reports not found", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-b", userB)

		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "NOPE42").Return(nil, nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "NOPE42", &requests.RespondSwapRequest{Accept: boolPtr(true)})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})

	t.Run("only the receiver may respond", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-a", userA)

		request := pendingRequest()
		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)

		result, err := fixture.build().RespondSwap(ctx, "session-a", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(true)})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
		assert.Equal(t, constvars.SwapStatusPending, request.Status)
		fixture.swapRepo.AssertNotCalled(t, "UpdateSwapRequest", mock.Anything, mock.Anything)
		fixture.slotRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
	})

	t.Run("resolved request cannot be responded to again", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-b", userB)

		request := pendingRequest()
		request.Status = constvars.SwapStatusAccepted
		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(false)})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(t, err))
		assert.Equal(t, constvars.SwapStatusAccepted, request.Status)
		fixture.swapRepo.AssertNotCalled(t, "UpdateSwapRequest", mock.Anything, mock.Anything)
		fixture.slotRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
	})

	t.Run("referenced slot deleted mid negotiation reports not found", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-b", userB)

		request := pendingRequest()
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwapPending)
		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "AAAA1111").Return(nil, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(true)})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
		fixture.swapRepo.AssertNotCalled(t, "UpdateSwapRequest", mock.Anything, mock.Anything)
	})

	t.Run("expired pending request resolves as rejected", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.internalCfg.App.SwapRequestExpiryInHour = 1
		fixture.stubSession("session-b", userB)

		request := pendingRequest()
		request.CreatedAt = time.Now().Add(-2 * time.Hour)
		slotA := buildSlot("AAAA1111", userA, constvars.SlotStatusSwapPending)
		slotB := buildSlot("BBBB2222", userB, constvars.SlotStatusSwapPending)

		fixture.swapRepo.On("FindByRequestCode", mock.Anything, "XK92F1").Return(request, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "AAAA1111").Return(slotA, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(slotB, nil)
		fixture.swapRepo.On("UpdateSwapRequest", mock.Anything, request).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotA).Return(nil)
		fixture.slotRepo.On("UpdateSlot", mock.Anything, slotB).Return(nil)

		result, err := fixture.build().RespondSwap(ctx, "session-b", "XK92F1", &requests.RespondSwapRequest{Accept: boolPtr(true)})

		assert.Nil(t, result)
		assert.Equal(t, constvars.StatusGone, statusCodeOf(t, err))
		assert.Equal(t, constvars.SwapStatusRejected, request.Status)
		assert.Equal(t, userA, slotA.OwnerID)
		assert.Equal(t, constvars.SlotStatusSwappable, slotA.Status)
		assert.Equal(t, constvars.SlotStatusSwappable, slotB.Status)
	})
}

func TestSwapUsecase_GetSwappableSlots(t *testing.T) {
	ctx := context.Background()
	caller := primitive.NewObjectID().Hex()
	owner1 := primitive.NewObjectID()
	owner2 := primitive.NewObjectID()

	t.Run("enriches slots with owner usernames", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-c", caller)

		fixture.slotRepo.On("FindSwappableExcludingOwner", mock.Anything, caller).Return([]models.Slot{
			*buildSlot("AAAA1111", owner1.Hex(), constvars.SlotStatusSwappable),
			*buildSlot("BBBB2222", owner2.Hex(), constvars.SlotStatusSwappable),
		}, nil)
		fixture.userRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return([]models.User{
			{ID: owner1, Username: "alice"},
		}, nil)

		result, err := fixture.build().GetSwappableSlots(ctx, "session-c")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "alice", result[0].OwnerUsername)
		assert.Equal(t, unknownOwnerName, result[1].OwnerUsername)
	})

	t.Run("empty marketplace returns empty list", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-c", caller)

		fixture.slotRepo.On("FindSwappableExcludingOwner", mock.Anything, caller).Return([]models.Slot{}, nil)

		result, err := fixture.build().GetSwappableSlots(ctx, "session-c")

		assert.NoError(t, err)
		assert.Empty(t, result)
		fixture.userRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})
}

func TestSwapUsecase_GetMySwapRequests(t *testing.T) {
	ctx := context.Background()
	caller := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID()

	t.Run("splits requests into incoming and outgoing", func(t *testing.T) {
		fixture := newSwapUsecaseFixture()
		fixture.stubSession("session-c", caller)

		incoming := models.SwapRequest{
			RequestCode: "INC111",
			RequesterID: other.Hex(),
			ReceiverID:  caller,
			MySlotID:    "AAAA1111",
			TheirSlotID: "BBBB2222",
			Status:      constvars.SwapStatusPending,
		}
		outgoing := models.SwapRequest{
			RequestCode: "OUT222",
			RequesterID: caller,
			ReceiverID:  other.Hex(),
			MySlotID:    "BBBB2222",
			TheirSlotID: "CCCC3333",
			Status:      constvars.SwapStatusRejected,
		}

		fixture.swapRepo.On("FindByReceiverID", mock.Anything, caller).Return([]models.SwapRequest{incoming}, nil)
		fixture.swapRepo.On("FindByRequesterID", mock.Anything, caller).Return([]models.SwapRequest{outgoing}, nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "AAAA1111").Return(buildSlot("AAAA1111", other.Hex(), constvars.SlotStatusSwapPending), nil)
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "BBBB2222").Return(buildSlot("BBBB2222", caller, constvars.SlotStatusSwapPending), nil)
		// CCCC3333 was deleted after the negotiation resolved.
		fixture.slotRepo.On("FindBySlotID", mock.Anything, "CCCC3333").Return(nil, nil)
		fixture.userRepo.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return([]models.User{
			{ID: other, Username: "bob"},
		}, nil)

		result, err := fixture.build().GetMySwapRequests(ctx, "session-c")

		assert.NoError(t, err)
		assert.Equal(t, 1, result.IncomingCount)
		assert.Equal(t, 1, result.OutgoingCount)
		assert.Equal(t, "INC111", result.Incoming[0].RequestCode)
		assert.Equal(t, "bob", result.Incoming[0].MySlot.OwnerUsername)
		assert.NotNil(t, result.Outgoing[0].MySlot)
		assert.Nil(t, result.Outgoing[0].TheirSlot)
		// Each referenced slot is fetched once even when shared.
		fixture.slotRepo.AssertNumberOfCalls(t, "FindBySlotID", 3)
	})
}
