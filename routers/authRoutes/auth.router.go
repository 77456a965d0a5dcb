package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	"lms/store"
	"lms/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App, s *store.Store) {
	ctl := authController.New(s)

	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidator.Register(), ctl.Register)
	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, ctl.Me)
}
