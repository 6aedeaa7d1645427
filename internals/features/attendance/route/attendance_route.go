package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/constants"
	attendanceController "hrbuddy_backend/internals/features/attendance/controller"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := app.Group("/api/attendance", authMiddleware.AuthMiddleware())
	attendance.Post("/mark",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("attendance marking"), constants.AdminAndEmployee...),
		ctrl.MarkAttendance)
	attendance.Get("/my",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployee("attendance history"), constants.AdminAndEmployee...),
		ctrl.GetMyAttendance)
	attendance.Get("/all",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("attendance overview"), constants.RoleAdmin),
		ctrl.GetAllAttendance)

	// manual sweep re-trigger, same end state as the scheduled run
	cron := app.Group("/api/cron", authMiddleware.AuthMiddleware())
	cron.Post("/auto-absent",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("cron trigger"), constants.RoleAdmin),
		ctrl.RunAutoAbsent)
}
