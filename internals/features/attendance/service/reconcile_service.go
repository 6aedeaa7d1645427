package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

// Rule violations surfaced to the interactive marking endpoint. The
// backfill and sweep paths never return these; their duplicate writes are
// swallowed by ON CONFLICT DO NOTHING.
var (
	ErrNotToday      = errors.New("attendance can only be marked for today")
	ErrBeforeJoining = errors.New("cannot mark attendance before the joining date")
	ErrInvalidStatus = errors.New("status must be Present or Absent")
	ErrAlreadyMarked = errors.New("attendance already marked for this date")
)

// BackfillMissingAttendance inserts an Absent record for every calendar day
// from the user's joining date up to (but excluding) today that has no
// record yet. Idempotent: a second run inserts nothing. Runs as a detached
// task after login/registration, so it logs failures instead of returning
// them to a request.
func BackfillMissingAttendance(db *gorm.DB, user *userModel.UserModel) error {
	joining := helper.AtMidnight(user.DateOfJoining)
	today := helper.Today()

	// Joined today or in the future: nothing to fill.
	if !joining.Before(today) {
		return nil
	}

	var existing []attendanceModel.AttendanceModel
	if err := db.Select("date").
		Where("user_id = ?", user.ID).
		Find(&existing).Error; err != nil {
		return err
	}

	existingDates := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		existingDates[helper.AtMidnight(rec.Date).Format(helper.DateLayout)] = struct{}{}
	}

	var missing []attendanceModel.AttendanceModel
	for d := joining; d.Before(today); d = d.AddDate(0, 0, 1) {
		if _, ok := existingDates[d.Format(helper.DateLayout)]; ok {
			continue
		}
		missing = append(missing, attendanceModel.AttendanceModel{
			UserID: user.ID,
			Date:   d,
			Status: attendanceModel.StatusAbsent,
		})
	}

	if len(missing) == 0 {
		return nil
	}

	// A concurrent login may have inserted the same days between our read
	// and this write; the unique index plus DO NOTHING makes that benign.
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&missing).Error; err != nil {
		return err
	}

	log.Printf("✅ Auto-filled %d absent days for %s (%s)", len(missing), user.FullName, user.Email)
	return nil
}

// BackfillAsync runs the backfill as a fire-and-forget task. Failure must
// never fail the login/registration that triggered it.
func BackfillAsync(db *gorm.DB, user *userModel.UserModel) {
	go func() {
		if err := BackfillMissingAttendance(db, user); err != nil {
			log.Printf("[ERROR] Auto-fill attendance for %s: %v", user.Email, err)
		}
	}()
}

// SweepAbsencesForToday creates an Absent record for today for every
// employee (never admins) who joined on or before today and has no record
// yet. Safe to run any number of times for the same day.
func SweepAbsencesForToday(db *gorm.DB) error {
	log.Println("[SWEEP] Running auto-absent sweep...")

	today := helper.Today()

	var employees []userModel.UserModel
	if err := db.Where("role = ?", "employee").Find(&employees).Error; err != nil {
		return err
	}

	marked := 0
	for _, employee := range employees {
		if helper.AtMidnight(employee.DateOfJoining).After(today) {
			continue // not joined yet
		}

		rec := attendanceModel.AttendanceModel{
			UserID: employee.ID,
			Date:   today,
			Status: attendanceModel.StatusAbsent,
		}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
		if res.Error != nil {
			log.Printf("[ERROR] Sweep insert for %s: %v", employee.Email, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			marked++
			log.Printf("[SWEEP] Auto-marked absent: %s (%s)", employee.FullName, employee.Email)
		}
	}

	log.Printf("[SWEEP] Auto-absent sweep completed, %d employees marked", marked)
	return nil
}

// MarkToday is the interactive gate: one record, today only, not before the
// joining date. A racing writer that loses to the unique index gets the same
// conflict as the pre-check would have produced.
func MarkToday(db *gorm.DB, userID uuid.UUID, date time.Time, status string) (*attendanceModel.AttendanceModel, error) {
	if !attendanceModel.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	day := helper.AtMidnight(date)
	today := helper.Today()

	if !day.Equal(today) {
		return nil, ErrNotToday
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if today.Before(helper.AtMidnight(user.DateOfJoining)) {
		return nil, ErrBeforeJoining
	}

	var count int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ? AND date = ?", userID, day).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyMarked
	}

	rec := attendanceModel.AttendanceModel{
		UserID: userID,
		Date:   day,
		Status: status,
	}
	if err := db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against the sweep or a second interactive call
			return nil, ErrAlreadyMarked
		}
		return nil, err
	}

	return &rec, nil
}
