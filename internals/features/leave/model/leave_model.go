package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "hrbuddy_backend/internals/features/users/user/model"
)

var validate = validator.New()

const (
	TypeSick     = "Sick"
	TypeCasual   = "Casual"
	TypeVacation = "Vacation"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveModel is a date-range leave request owned by one user. StartDate and
// EndDate are an inclusive span, midnight-normalized. TotalDays is the
// chargeable count (Sundays excluded) computed at apply/edit time.
type LeaveModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LeaveType   string    `gorm:"type:varchar(20);not null" json:"leave_type" validate:"required,oneof=Sick Casual Vacation"`
	StartDate   time.Time `gorm:"not null" json:"start_date" validate:"required"`
	EndDate     time.Time `gorm:"not null" json:"end_date" validate:"required"`
	TotalDays   int       `gorm:"not null" json:"total_days"`
	Status      string    `gorm:"type:varchar(10);not null;default:'Pending'" json:"status" validate:"omitempty,oneof=Pending Approved Rejected"`
	Reason      string    `gorm:"type:text;not null" json:"reason" validate:"required"`
	AppliedDate time.Time `gorm:"not null" json:"applied_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (LeaveModel) TableName() string {
	return "leave_requests"
}

func (l *LeaveModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	if l.AppliedDate.IsZero() {
		l.AppliedDate = time.Now()
	}
	return nil
}

func (l *LeaveModel) Validate() error {
	return validate.Struct(l)
}

func ValidDecision(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
