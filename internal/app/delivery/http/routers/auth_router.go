package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := newLoginRateLimiter()

	router.Post("/register", authController.RegisterUser)
	router.With(loginLimiter.Limit).Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
	router.Get("/doctors", authController.FindAllDoctors)
}

func newLoginRateLimiter() *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(5, time.Second, 5*time.Minute)
}
