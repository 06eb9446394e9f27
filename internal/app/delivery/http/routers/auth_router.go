package routers

import (
	"slotswap-service/internal/app/delivery/http/middlewares"
	"slotswap-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
	router.With(middlewares.Authenticate).Put("/update-password", authController.UpdatePassword)
}
