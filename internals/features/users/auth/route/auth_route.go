package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hrbuddy_backend/internals/features/users/auth/controller"
	middlewares "hrbuddy_backend/internals/middlewares"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
