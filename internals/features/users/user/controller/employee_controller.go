package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	"hrbuddy_backend/internals/features/users/user/dto"
	"hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// GET /api/employees — roster with per-employee attendance totals (admin)
func (ec *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	var employees []model.UserModel
	if err := ec.DB.Where("role = ?", "employee").Find(&employees).Error; err != nil {
		log.Println("[ERROR] Failed to fetch employees:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve employees")
	}

	result := make([]dto.EmployeeStatsResponse, 0, len(employees))
	for i := range employees {
		employee := &employees[i]

		var attendance []attendanceModel.AttendanceModel
		if err := ec.DB.Where("user_id = ?", employee.ID).Find(&attendance).Error; err != nil {
			log.Println("[ERROR] Failed to fetch attendance for", employee.Email, ":", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
		}

		present := 0
		absent := 0
		for _, rec := range attendance {
			switch rec.Status {
			case attendanceModel.StatusPresent:
				present++
			case attendanceModel.StatusAbsent:
				absent++
			}
		}

		result = append(result, dto.EmployeeStatsResponse{
			UserResponse: dto.ToUserResponse(employee),
			TotalDays:    len(attendance),
			PresentDays:  present,
			AbsentDays:   absent,
		})
	}

	log.Printf("[SUCCESS] Retrieved %d employees\n", len(result))
	return helper.Success(c, "Employees fetched successfully", fiber.Map{
		"total":     len(result),
		"employees": result,
	})
}
