package routers

import (
	"slotswap-service/internal/app/delivery/http/middlewares"
	"slotswap-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *slots.SlotController) {
	router.With(middlewares.Authenticate).Post("/", slotController.CreateSlot)
	router.With(middlewares.Authenticate).Get("/", slotController.GetMySlots)
	router.With(middlewares.Authenticate).Put("/{slot_id}", slotController.UpdateSlot)
	router.With(middlewares.Authenticate).Delete("/{slot_id}", slotController.DeleteSlot)
}
