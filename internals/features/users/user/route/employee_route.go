package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/constants"
	userController "hrbuddy_backend/internals/features/users/user/controller"
	authMiddleware "hrbuddy_backend/internals/middlewares/auth"
)

func EmployeeRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewEmployeeController(db)

	employees := app.Group("/api/employees",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("employee roster"), constants.RoleAdmin),
	)
	employees.Get("/", ctrl.GetEmployees)
}
