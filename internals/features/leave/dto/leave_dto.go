package dto

import "strings"

// ApplyLeaveRequest — new leave application
type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=Sick Casual Vacation"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

func (r *ApplyLeaveRequest) Normalize() {
	r.LeaveType = strings.TrimSpace(r.LeaveType)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.Reason = strings.TrimSpace(r.Reason)
}

// EditLeaveRequest — partial update while Pending (pointers distinguish
// omitted fields from empty ones)
type EditLeaveRequest struct {
	LeaveType *string `json:"leave_type,omitempty" validate:"omitempty,oneof=Sick Casual Vacation"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *EditLeaveRequest) Normalize() {
	if r.LeaveType != nil {
		v := strings.TrimSpace(*r.LeaveType)
		r.LeaveType = &v
	}
	if r.StartDate != nil {
		v := strings.TrimSpace(*r.StartDate)
		r.StartDate = &v
	}
	if r.EndDate != nil {
		v := strings.TrimSpace(*r.EndDate)
		r.EndDate = &v
	}
	if r.Reason != nil {
		v := strings.TrimSpace(*r.Reason)
		r.Reason = &v
	}
}

// UpdateLeaveStatusRequest — admin decision
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

func (r *UpdateLeaveStatusRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}
