package swaps

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"slotswap-service/internal/app/contracts"
	"slotswap-service/internal/pkg/constvars"
	"slotswap-service/internal/pkg/dto/requests"
	"slotswap-service/internal/pkg/exceptions"
	"slotswap-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SwapController struct {
	Log         *zap.Logger
	SwapUsecase contracts.SwapUsecase
}

func NewSwapController(logger *zap.Logger, swapUsecase contracts.SwapUsecase) *SwapController {
	return &SwapController{
		Log:         logger,
		SwapUsecase: swapUsecase,
	}
}

func (ctrl *SwapController) GetSwappableSlots(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.GetSwappableSlots(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SwappableListSuccess, result)
}

func (ctrl *SwapController) CreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSwapRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateSwapRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.ProposeSwap(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SwapRequestCreatedSuccess, result)
}

func (ctrl *SwapController) RespondSwapRequest(w http.ResponseWriter, r *http.Request) {
	requestCode := chi.URLParam(r, constvars.URLParamRequestCode)
	if requestCode == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamRequestCode))
		return
	}

	request := new(requests.RespondSwapRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.RespondSwap(ctx, sessionData, requestCode, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SwapRejectedSuccess
	if result.Status == "accepted" {
		message = constvars.SwapAcceptedSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *SwapController) GetMySwapRequests(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SwapUsecase.GetMySwapRequests(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SwapRequestListSuccess, result)
}
