package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/features/attendance/dto"
	"hrbuddy_backend/internals/features/attendance/model"
	"hrbuddy_backend/internals/features/attendance/scheduler"
	"hrbuddy_backend/internals/features/attendance/service"
	helper "hrbuddy_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance/mark — today only, one record per day
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	rec, err := service.MarkToday(ac.DB, userID, date, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotToday):
			return helper.Error(c, fiber.StatusBadRequest, "You can only mark attendance for today!")
		case errors.Is(err, service.ErrBeforeJoining):
			return helper.Error(c, fiber.StatusBadRequest, "Cannot mark attendance before your joining date")
		case errors.Is(err, service.ErrInvalidStatus):
			return helper.Error(c, fiber.StatusBadRequest, "Invalid status")
		case errors.Is(err, service.ErrAlreadyMarked):
			return helper.Error(c, fiber.StatusConflict, "Attendance already marked for this date")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] Mark attendance failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance marked successfully", rec)
}

// GET /api/attendance/my
func (ac *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var attendance []model.AttendanceModel
	if err := ac.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&attendance).Error; err != nil {
		log.Println("[ERROR] Failed to fetch attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.Success(c, "Attendance fetched successfully", fiber.Map{
		"total":      len(attendance),
		"attendance": attendance,
	})
}

// GET /api/attendance/all (admin)
func (ac *AttendanceController) GetAllAttendance(c *fiber.Ctx) error {
	var attendance []model.AttendanceModel
	if err := ac.DB.
		Preload("User").
		Order("date DESC").
		Find(&attendance).Error; err != nil {
		log.Println("[ERROR] Failed to fetch attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.Success(c, "Attendance fetched successfully", fiber.Map{
		"total":      len(attendance),
		"attendance": attendance,
	})
}

// POST /api/cron/auto-absent — manual sweep trigger (admin)
func (ac *AttendanceController) RunAutoAbsent(c *fiber.Ctx) error {
	if err := scheduler.RunAutoAbsentNow(ac.DB); err != nil {
		log.Println("[ERROR] Manual auto-absent run failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Auto-absent job failed")
	}
	return helper.Success(c, "Auto-absent job executed successfully", nil)
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id in context")
	}
	return uuid.Parse(userIDStr)
}
