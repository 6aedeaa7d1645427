package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "hrbuddy_backend/internals/features/attendance/route"
	dashboardRoute "hrbuddy_backend/internals/features/dashboard/route"
	leaveRoute "hrbuddy_backend/internals/features/leave/route"
	reportRoute "hrbuddy_backend/internals/features/report/route"
	authRoute "hrbuddy_backend/internals/features/users/auth/route"
	userRoute "hrbuddy_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":        "HR Buddy Server is running",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up EmployeeRoutes...")
	userRoute.EmployeeRoutes(app, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[INFO] Setting up LeaveRoutes...")
	leaveRoute.LeaveRoutes(app, db)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(app, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(app, db)
}
