package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/constants"
	dashboardController "hrbuddy_backend/internals/features/dashboard/controller"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := app.Group("/api/dashboard",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("dashboard"), constants.RoleAdmin),
	)
	dashboard.Get("/stats", ctrl.GetStats)
}
