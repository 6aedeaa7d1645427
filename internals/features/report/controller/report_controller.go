package controller

import (
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/configs"
	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type employeeReport struct {
	EmployeeID           uuid.UUID `json:"employee_id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	TotalDays            int       `json:"total_days"`
	PresentDays          int       `json:"present_days"`
	AbsentDays           int       `json:"absent_days"`
	UnrecordedDays       int       `json:"unrecorded_days"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}

// GET /api/reports/monthly?month=&year= (admin)
func (rc *ReportController) GetMonthlyReport(c *fiber.Ctx) error {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid month. Must be between 1 and 12")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid year")
	}

	loc := configs.AppLocation()
	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Nanosecond)
	totalDaysInMonth := startDate.AddDate(0, 1, -1).Day()

	var employees []userModel.UserModel
	if err := rc.DB.Where("role = ?", "employee").Find(&employees).Error; err != nil {
		log.Println("[ERROR] Report employee fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while generating report")
	}

	var records []attendanceModel.AttendanceModel
	if err := rc.DB.
		Where("date >= ? AND date <= ?", startDate, endDate).
		Find(&records).Error; err != nil {
		log.Println("[ERROR] Report attendance fetch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Server error while generating report")
	}

	byUser := make(map[uuid.UUID][]attendanceModel.AttendanceModel, len(employees))
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	report := make([]employeeReport, 0, len(employees))
	totalPresent := 0
	totalAbsent := 0
	sumPercentage := 0.0

	for _, employee := range employees {
		present := 0
		absent := 0
		for _, rec := range byUser[employee.ID] {
			switch rec.Status {
			case attendanceModel.StatusPresent:
				present++
			case attendanceModel.StatusAbsent:
				absent++
			}
		}
		recorded := present + absent

		percentage := 0.0
		if recorded > 0 {
			percentage = round2(float64(present) / float64(recorded) * 100)
		}

		report = append(report, employeeReport{
			EmployeeID:           employee.ID,
			FullName:             employee.FullName,
			Email:                employee.Email,
			TotalDays:            totalDaysInMonth,
			PresentDays:          present,
			AbsentDays:           absent,
			UnrecordedDays:       totalDaysInMonth - recorded,
			AttendancePercentage: percentage,
		})

		totalPresent += present
		totalAbsent += absent
		sumPercentage += percentage
	}

	avgAttendance := 0.0
	if len(report) > 0 {
		avgAttendance = round2(sumPercentage / float64(len(report)))
	}

	return helper.Success(c, "Monthly report generated successfully", fiber.Map{
		"month":              month,
		"year":               year,
		"total_working_days": totalDaysInMonth,
		"statistics": fiber.Map{
			"total_employees":    len(report),
			"average_attendance": avgAttendance,
			"total_present_days": totalPresent,
			"total_absent_days":  totalAbsent,
		},
		"employees": report,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
