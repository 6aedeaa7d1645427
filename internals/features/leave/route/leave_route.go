package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/constants"
	leaveController "hrbuddy_backend/internals/features/leave/controller"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func LeaveRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := leaveController.NewLeaveController(db)

	leave := app.Group("/api/leave", authMiddleware.AuthMiddleware())

	// Employee routes
	leave.Post("/apply",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("leave application"), constants.AdminAndEmployee...),
		ctrl.ApplyLeave)
	leave.Get("/my",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("leave history"), constants.AdminAndEmployee...),
		ctrl.GetMyLeaves)
	leave.Put("/edit/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("leave editing"), constants.AdminAndEmployee...),
		ctrl.EditLeave)
	leave.Delete("/cancel/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("leave cancellation"), constants.AdminAndEmployee...),
		ctrl.CancelLeave)

	// Admin routes
	leave.Get("/all",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("leave overview"), constants.RoleAdmin),
		ctrl.GetAllLeaves)
	leave.Put("/status/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("leave decisions"), constants.RoleAdmin),
		ctrl.UpdateLeaveStatus)
}
