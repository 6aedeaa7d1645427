package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrbuddy_backend/internals/features/leave/dto"
	"hrbuddy_backend/internals/features/leave/model"
	"hrbuddy_backend/internals/features/leave/service"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

var validate = validator.New()

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

// POST /api/leave/apply
func (lc *LeaveController) ApplyLeave(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid start_date format, expected YYYY-MM-DD")
	}
	end, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid end_date format, expected YYYY-MM-DD")
	}

	var user userModel.UserModel
	if err := lc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	leave, err := service.Apply(lc.DB, &user, req.LeaveType, start, end, req.Reason)
	if err != nil {
		var overlapErr *service.OverlapError
		if errors.As(err, &overlapErr) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		var balanceErr *service.InsufficientBalanceError
		var joiningErr *service.BeforeJoiningError
		if errors.As(err, &balanceErr) || errors.As(err, &joiningErr) ||
			errors.Is(err, service.ErrEndBeforeStart) || errors.Is(err, service.ErrSundayEndpoint) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] Apply leave failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to apply for leave")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Leave applied successfully", leave)
}

// GET /api/leave/my
func (lc *LeaveController) GetMyLeaves(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var leaves []model.LeaveModel
	if err := lc.DB.
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Find(&leaves).Error; err != nil {
		log.Println("[ERROR] Failed to fetch leaves:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve leave requests")
	}

	return helper.Success(c, "Leave requests fetched successfully", fiber.Map{
		"total":  len(leaves),
		"leaves": leaves,
	})
}

// PUT /api/leave/edit/:id — owner, Pending only
func (lc *LeaveController) EditLeave(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	leave, errResp := lc.ownedPendingLeave(c, userID)
	if leave == nil {
		return errResp
	}

	var req dto.EditLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.LeaveType != nil {
		leave.LeaveType = *req.LeaveType
	}
	if req.Reason != nil && *req.Reason != "" {
		leave.Reason = *req.Reason
	}

	// Dates only move together; re-validate and recompute the day count.
	if req.StartDate != nil && req.EndDate != nil {
		start, err := helper.ParseDate(*req.StartDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid start_date format, expected YYYY-MM-DD")
		}
		end, err := helper.ParseDate(*req.EndDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid end_date format, expected YYYY-MM-DD")
		}
		if err := service.ValidateSpan(start, end); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		leave.StartDate = helper.AtMidnight(start)
		leave.EndDate = helper.AtMidnight(end)
		leave.TotalDays = service.CountChargeableDays(start, end)
	}

	if err := lc.DB.Save(leave).Error; err != nil {
		log.Println("[ERROR] Failed to update leave:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update leave request")
	}

	return helper.Success(c, "Leave request updated successfully", leave)
}

// DELETE /api/leave/cancel/:id — owner, Pending only
func (lc *LeaveController) CancelLeave(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	leave, errResp := lc.ownedPendingLeave(c, userID)
	if leave == nil {
		return errResp
	}

	if err := lc.DB.Delete(leave).Error; err != nil {
		log.Println("[ERROR] Failed to cancel leave:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel leave request")
	}

	return helper.Success(c, "Leave request cancelled successfully", nil)
}

// GET /api/leave/all (admin)
func (lc *LeaveController) GetAllLeaves(c *fiber.Ctx) error {
	var leaves []model.LeaveModel
	if err := lc.DB.
		Preload("User").
		Order("applied_date DESC").
		Find(&leaves).Error; err != nil {
		log.Println("[ERROR] Failed to fetch leaves:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve leave requests")
	}

	return helper.Success(c, "Leave requests fetched successfully", fiber.Map{
		"total":  len(leaves),
		"leaves": leaves,
	})
}

// PUT /api/leave/status/:id (admin)
func (lc *LeaveController) UpdateLeaveStatus(c *fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid leave ID")
	}

	var req dto.UpdateLeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	leave, err := service.Decide(lc.DB, leaveID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Leave request not found")
		case errors.Is(err, service.ErrAlreadyProcessed):
			return helper.Error(c, fiber.StatusConflict, "Leave request already processed")
		}
		log.Println("[ERROR] Update leave status failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update leave status")
	}

	return helper.Success(c, "Leave status updated successfully", leave)
}

// ownedPendingLeave loads :id, checks ownership and Pending status. On
// failure the first return is nil and the second is the response already
// written.
func (lc *LeaveController) ownedPendingLeave(c *fiber.Ctx, userID uuid.UUID) (*model.LeaveModel, error) {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid leave ID")
	}

	var leave model.LeaveModel
	if err := lc.DB.First(&leave, "id = ?", leaveID).Error; err != nil {
		return nil, helper.Error(c, fiber.StatusNotFound, "Leave request not found")
	}

	if leave.UserID != userID {
		return nil, helper.Error(c, fiber.StatusForbidden, "Not authorized to modify this leave request")
	}
	if leave.Status != model.StatusPending {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Can only modify pending leave requests")
	}

	return &leave, nil
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id in context")
	}
	return uuid.Parse(userIDStr)
}
