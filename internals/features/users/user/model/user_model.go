package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName      string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password      string    `gorm:"not null" json:"-" validate:"required,min=6"`
	Role          string    `gorm:"type:varchar(20);not null;default:'employee'" json:"role" validate:"omitempty,oneof=employee admin"`
	JobTitle      string    `gorm:"size:100" json:"job_title" validate:"required_if=Role employee"`
	DateOfJoining time.Time `gorm:"not null" json:"date_of_joining" validate:"required"`
	// Debited on leave approval, never auto-replenished.
	LeaveBalance int       `gorm:"not null" json:"leave_balance"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetDefaultValues fills defaults before validation.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "employee"
	}
}

// Validate checks the struct against the rules above.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errorMessages := make(map[string]string)
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required", "required_if":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " is required."
		case "email":
			errorMessages[fieldErr.Field()] = "Invalid email format."
		case "min":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters."
		case "max":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be less than " + fieldErr.Param() + " characters."
		case "oneof":
			errorMessages[fieldErr.Field()] = fieldErr.Field() + " must be one of " + fieldErr.Param() + "."
		default:
			errorMessages[fieldErr.Field()] = "Invalid format."
		}
	}
	return errors.New(formatErrorMessage(errorMessages))
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
