package routers

import (
	"slotswap-service/internal/app/delivery/http/middlewares"
	"slotswap-service/internal/app/services/core/swaps"

	"github.com/go-chi/chi/v5"
)

func attachSwapRoutes(router chi.Router, middlewares *middlewares.Middlewares, swapController *swaps.SwapController) {
	router.With(middlewares.Authenticate).Get("/swappable-slots", swapController.GetSwappableSlots)
	router.With(middlewares.Authenticate).Post("/requests", swapController.CreateSwapRequest)
	router.With(middlewares.Authenticate).Get("/requests", swapController.GetMySwapRequests)
	router.With(middlewares.Authenticate).Post("/requests/{request_code}/respond", swapController.RespondSwapRequest)
}
