package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/constants"
	reportController "hrbuddy_backend/internals/features/report/controller"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := app.Group("/api/reports",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("reports"), constants.RoleAdmin),
	)
	reports.Get("/monthly", ctrl.GetMonthlyReport)
}
