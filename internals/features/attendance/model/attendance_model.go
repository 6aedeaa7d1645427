package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "hrbuddy_backend/internals/features/users/user/model"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// AttendanceModel is one calendar-day fact for one user. The composite
// unique index is the central invariant of the whole system: at most one
// record per (user_id, date). Every writer (interactive mark, backfill,
// sweep) leans on it instead of locking.
type AttendanceModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	// Normalized to midnight in the app timezone; no time component is
	// meaningful.
	Date      time.Time `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	Status    string    `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func ValidStatus(status string) bool {
	return status == StatusPresent || status == StatusAbsent
}
