package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "hrbuddy_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// RegisterRequest — self-service employee registration
type RegisterRequest struct {
	FullName      string `json:"full_name" validate:"required,min=3,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,min=6"`
	JobTitle      string `json:"job_title" validate:"required,max=100"`
	DateOfJoining string `json:"date_of_joining" validate:"required,datetime=2006-01-02"`
}

// Normalize — trim & lowercase the identity fields
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.DateOfJoining = strings.TrimSpace(r.DateOfJoining)
}

// ToModel — hash the password in the controller, not here
func (r *RegisterRequest) ToModel(dateOfJoining time.Time) *uModel.UserModel {
	return &uModel.UserModel{
		FullName:      r.FullName,
		Email:         r.Email,
		Password:      r.Password,
		JobTitle:      r.JobTitle,
		DateOfJoining: dateOfJoining,
		Role:          "employee", // registration never creates admins
		LeaveBalance:  20,
	}
}

// LoginRequest — email + password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — the profile shape returned by auth endpoints
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	JobTitle      string    `json:"job_title"`
	DateOfJoining time.Time `json:"date_of_joining"`
	LeaveBalance  int       `json:"leave_balance"`
}

func ToUserResponse(u *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Role:          u.Role,
		JobTitle:      u.JobTitle,
		DateOfJoining: u.DateOfJoining,
		LeaveBalance:  u.LeaveBalance,
	}
}

// EmployeeStatsResponse — roster row with attendance totals
type EmployeeStatsResponse struct {
	UserResponse
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
}
