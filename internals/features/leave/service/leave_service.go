package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	leaveModel "hrbuddy_backend/internals/features/leave/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
	"hrbuddy_backend/internals/helpers/mailer"
)

var (
	ErrEndBeforeStart   = errors.New("End date must be after start date")
	ErrSundayEndpoint   = errors.New("Sundays are holidays! Please select working days only.")
	ErrNotPending       = errors.New("Can only modify pending leave requests")
	ErrAlreadyProcessed = errors.New("Leave request already processed")
	ErrNotOwner         = errors.New("Not authorized to modify this leave request")
)

// OverlapError lists every conflicting span, formatted dd/mm/yyyy.
type OverlapError struct {
	Conflicts []string
}

func (e *OverlapError) Error() string {
	return "Leave already applied for overlapping dates: " + strings.Join(e.Conflicts, ", ")
}

// InsufficientBalanceError reports the days the user still has.
type InsufficientBalanceError struct {
	Remaining int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient leave balance. You have %d days remaining", e.Remaining)
}

// BeforeJoiningError rejects applications made before the joining date.
type BeforeJoiningError struct {
	Joining time.Time
}

func (e *BeforeJoiningError) Error() string {
	return fmt.Sprintf("You cannot apply for leave before your joining date (%s)", e.Joining.Format(helper.DisplayDateLayout))
}

// CountChargeableDays scans the inclusive span day by day and counts every
// non-Sunday. Callers must ensure end >= start; ordering is not validated
// here. A Sunday inside a multi-day span is silently excluded, and a
// single-Sunday span yields 0.
func CountChargeableDays(start, end time.Time) int {
	count := 0
	for d := helper.AtMidnight(start); !d.After(helper.AtMidnight(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

// ValidateSpan enforces ordering and the no-Sunday-endpoint rule.
func ValidateSpan(start, end time.Time) error {
	if helper.AtMidnight(end).Before(helper.AtMidnight(start)) {
		return ErrEndBeforeStart
	}
	if start.Weekday() == time.Sunday || end.Weekday() == time.Sunday {
		return ErrSundayEndpoint
	}
	return nil
}

// FindOverlapping returns the user's Pending/Approved requests whose
// inclusive span intersects [start, end]. Symmetric interval overlap:
// existing.start <= end AND existing.end >= start, which also catches full
// containment either way.
func FindOverlapping(db *gorm.DB, userID uuid.UUID, start, end time.Time) ([]leaveModel.LeaveModel, error) {
	var overlapping []leaveModel.LeaveModel
	err := db.
		Where("user_id = ? AND status IN ?", userID, []string{leaveModel.StatusPending, leaveModel.StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", helper.AtMidnight(end), helper.AtMidnight(start)).
		Find(&overlapping).Error
	return overlapping, err
}

// ValidateNoOverlap wraps FindOverlapping into the user-visible conflict.
func ValidateNoOverlap(db *gorm.DB, userID uuid.UUID, start, end time.Time) error {
	overlapping, err := FindOverlapping(db, userID, start, end)
	if err != nil {
		return err
	}
	if len(overlapping) == 0 {
		return nil
	}

	conflicts := make([]string, 0, len(overlapping))
	for _, l := range overlapping {
		conflicts = append(conflicts, fmt.Sprintf("%s to %s",
			l.StartDate.Format(helper.DisplayDateLayout),
			l.EndDate.Format(helper.DisplayDateLayout)))
	}
	return &OverlapError{Conflicts: conflicts}
}

// Apply runs the full validation chain, first failure wins:
// joining-date gate, ordering, Sunday endpoints, overlap, balance.
func Apply(db *gorm.DB, user *userModel.UserModel, leaveType string, start, end time.Time, reason string) (*leaveModel.LeaveModel, error) {
	joining := helper.AtMidnight(user.DateOfJoining)
	if helper.Today().Before(joining) {
		return nil, &BeforeJoiningError{Joining: joining}
	}

	if err := ValidateSpan(start, end); err != nil {
		return nil, err
	}

	if err := ValidateNoOverlap(db, user.ID, start, end); err != nil {
		return nil, err
	}

	totalDays := CountChargeableDays(start, end)
	if user.LeaveBalance < totalDays {
		return nil, &InsufficientBalanceError{Remaining: user.LeaveBalance}
	}

	leave := leaveModel.LeaveModel{
		UserID:      user.ID,
		LeaveType:   leaveType,
		StartDate:   helper.AtMidnight(start),
		EndDate:     helper.AtMidnight(end),
		TotalDays:   totalDays,
		Status:      leaveModel.StatusPending,
		Reason:      reason,
		AppliedDate: time.Now(),
	}
	if err := db.Create(&leave).Error; err != nil {
		return nil, err
	}

	return &leave, nil
}

// Decide transitions a Pending request to Approved or Rejected. Approval
// debits the owner's leave balance by TotalDays inside the same
// transaction; rejection touches no balance. Both outcomes emit the
// notification mail as a detached task.
func Decide(db *gorm.DB, leaveID uuid.UUID, status string) (*leaveModel.LeaveModel, error) {
	var leave leaveModel.LeaveModel
	if err := db.First(&leave, "id = ?", leaveID).Error; err != nil {
		return nil, err
	}
	if leave.Status != leaveModel.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", leave.UserID).Error; err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&leave).Update("status", status).Error; err != nil {
			return err
		}
		if status == leaveModel.StatusApproved {
			if err := tx.Model(&user).
				Update("leave_balance", gorm.Expr("leave_balance - ?", leave.TotalDays)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	leave.Status = status

	// fire-and-forget: delivery failure never alters the recorded transition
	go mailer.SendLeaveStatusEmail(mailer.LeaveStatusEvent{
		EmployeeName:  user.FullName,
		EmployeeEmail: user.Email,
		Status:        status,
		LeaveType:     leave.LeaveType,
		StartDate:     leave.StartDate,
		EndDate:       leave.EndDate,
		TotalDays:     leave.TotalDays,
	})

	log.Printf("[SUCCESS] Leave %s %s for %s (%d days)", leave.ID, status, user.Email, leave.TotalDays)
	return &leave, nil
}
