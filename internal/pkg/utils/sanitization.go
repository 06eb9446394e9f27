package utils

import (
	"strings"

	"slotswap-service/internal/pkg/dto/requests"
)

func SanitizeRegisterRequest(request *requests.Register) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateSlotRequest(request *requests.CreateSlot) {
	request.Title = strings.TrimSpace(request.Title)
	request.Description = strings.TrimSpace(request.Description)
}

func SanitizeUpdateSlotRequest(request *requests.UpdateSlot) {
	request.Title = strings.TrimSpace(request.Title)
	request.Description = strings.TrimSpace(request.Description)
	request.Status = strings.ToUpper(strings.TrimSpace(request.Status))
}

func SanitizeCreateSwapRequest(request *requests.CreateSwapRequest) {
	request.MySlotID = strings.TrimSpace(request.MySlotID)
	request.TheirSlotID = strings.TrimSpace(request.TheirSlotID)
}
