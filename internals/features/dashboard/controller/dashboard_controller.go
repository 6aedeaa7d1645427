package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	leaveModel "hrbuddy_backend/internals/features/leave/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/stats (admin)
func (dc *DashboardController) GetStats(c *fiber.Ctx) error {
	today := helper.Today()

	var totalEmployees int64
	if err := dc.DB.Model(&userModel.UserModel{}).
		Where("role = ?", "employee").
		Count(&totalEmployees).Error; err != nil {
		log.Println("[ERROR] Dashboard employee count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve stats")
	}

	var pendingLeaves int64
	if err := dc.DB.Model(&leaveModel.LeaveModel{}).
		Where("status = ?", leaveModel.StatusPending).
		Count(&pendingLeaves).Error; err != nil {
		log.Println("[ERROR] Dashboard pending leave count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve stats")
	}

	var todayPresent int64
	if err := dc.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("date = ? AND status = ?", today, attendanceModel.StatusPresent).
		Count(&todayPresent).Error; err != nil {
		log.Println("[ERROR] Dashboard present count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve stats")
	}

	var todayAbsent int64
	if err := dc.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("date = ? AND status = ?", today, attendanceModel.StatusAbsent).
		Count(&todayAbsent).Error; err != nil {
		log.Println("[ERROR] Dashboard absent count:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve stats")
	}

	return helper.Success(c, "Dashboard stats fetched successfully", fiber.Map{
		"total_employees": totalEmployees,
		"pending_leaves":  pendingLeaves,
		"today_present":   todayPresent,
		"today_absent":    todayAbsent,
	})
}
