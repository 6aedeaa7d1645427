package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	leaveModel "hrbuddy_backend/internals/features/leave/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&leaveModel.LeaveModel{},
	))
	return db
}

func createEmployee(t *testing.T, db *gorm.DB, email string, joinedDaysAgo int) *userModel.UserModel {
	t.Helper()

	user := userModel.UserModel{
		FullName:      "Test Employee",
		Email:         email,
		Password:      "hashed",
		Role:          "employee",
		JobTitle:      "Engineer",
		DateOfJoining: helper.Today().AddDate(0, 0, -joinedDaysAgo),
		LeaveBalance:  20,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func countRecords(t *testing.T, db *gorm.DB, userID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error)
	return count
}

func TestBackfillMissingAttendance(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "backfill@test.com", 5)

	require.NoError(t, BackfillMissingAttendance(db, user))

	// joining day through yesterday: exactly 5 records, all Absent
	var records []attendanceModel.AttendanceModel
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("date ASC").Find(&records).Error)
	require.Len(t, records, 5)
	for _, rec := range records {
		assert.Equal(t, attendanceModel.StatusAbsent, rec.Status)
		assert.True(t, rec.Date.Before(helper.Today()), "backfill must never touch today")
	}
	assert.True(t, helper.SameDay(records[0].Date, user.DateOfJoining))

	// idempotent: a second run inserts nothing
	require.NoError(t, BackfillMissingAttendance(db, user))
	assert.EqualValues(t, 5, countRecords(t, db, user.ID))
}

func TestBackfillSkipsExistingDays(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "partial@test.com", 3)

	// the employee marked Present two days ago
	marked := helper.Today().AddDate(0, 0, -2)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		UserID: user.ID,
		Date:   marked,
		Status: attendanceModel.StatusPresent,
	}).Error)

	require.NoError(t, BackfillMissingAttendance(db, user))

	assert.EqualValues(t, 3, countRecords(t, db, user.ID))

	// the Present day survives untouched
	var rec attendanceModel.AttendanceModel
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, marked).First(&rec).Error)
	assert.Equal(t, attendanceModel.StatusPresent, rec.Status)
}

func TestBackfillNoopForNewJoiner(t *testing.T) {
	db := setupTestDB(t)

	joinedToday := createEmployee(t, db, "today@test.com", 0)
	require.NoError(t, BackfillMissingAttendance(db, joinedToday))
	assert.EqualValues(t, 0, countRecords(t, db, joinedToday.ID))

	joinsTomorrow := createEmployee(t, db, "future@test.com", -1)
	require.NoError(t, BackfillMissingAttendance(db, joinsTomorrow))
	assert.EqualValues(t, 0, countRecords(t, db, joinsTomorrow.ID))
}

func TestSweepAbsencesForToday(t *testing.T) {
	db := setupTestDB(t)

	unmarked := createEmployee(t, db, "unmarked@test.com", 10)
	marked := createEmployee(t, db, "marked@test.com", 10)
	notJoined := createEmployee(t, db, "future@test.com", -5)

	admin := userModel.UserModel{
		FullName:      "The Admin",
		Email:         "admin@test.com",
		Password:      "hashed",
		Role:          "admin",
		DateOfJoining: helper.Today().AddDate(0, 0, -30),
	}
	require.NoError(t, db.Create(&admin).Error)

	// marked employee already has a Present record for today
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		UserID: marked.ID,
		Date:   helper.Today(),
		Status: attendanceModel.StatusPresent,
	}).Error)

	require.NoError(t, SweepAbsencesForToday(db))

	// unmarked employee got a synthetic Absent
	var rec attendanceModel.AttendanceModel
	require.NoError(t, db.Where("user_id = ? AND date = ?", unmarked.ID, helper.Today()).First(&rec).Error)
	assert.Equal(t, attendanceModel.StatusAbsent, rec.Status)

	// the existing Present record was not overwritten (fresh dest struct so
	// the previous lookup's primary key is not reused as a condition)
	rec = attendanceModel.AttendanceModel{}
	require.NoError(t, db.Where("user_id = ? AND date = ?", marked.ID, helper.Today()).First(&rec).Error)
	assert.Equal(t, attendanceModel.StatusPresent, rec.Status)

	// not-yet-joined employees and admins are untouched
	assert.EqualValues(t, 0, countRecords(t, db, notJoined.ID))
	assert.EqualValues(t, 0, countRecords(t, db, admin.ID))
}

func TestSweepIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "idem@test.com", 1)

	require.NoError(t, SweepAbsencesForToday(db))
	first := countRecords(t, db, user.ID)

	// a second run (manual re-trigger) must produce identical state
	require.NoError(t, SweepAbsencesForToday(db))
	assert.Equal(t, first, countRecords(t, db, user.ID))
}

func TestMarkToday(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "mark@test.com", 5)

	rec, err := MarkToday(db, user.ID, helper.Today(), attendanceModel.StatusPresent)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusPresent, rec.Status)
	assert.True(t, helper.SameDay(rec.Date, helper.Today()))
}

func TestMarkTodayRejectsOtherDates(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "dates@test.com", 5)

	_, err := MarkToday(db, user.ID, helper.Today().AddDate(0, 0, -1), attendanceModel.StatusPresent)
	assert.ErrorIs(t, err, ErrNotToday)

	_, err = MarkToday(db, user.ID, helper.Today().AddDate(0, 0, 1), attendanceModel.StatusPresent)
	assert.ErrorIs(t, err, ErrNotToday)
}

func TestMarkTodayRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "dup@test.com", 5)

	_, err := MarkToday(db, user.ID, helper.Today(), attendanceModel.StatusPresent)
	require.NoError(t, err)

	_, err = MarkToday(db, user.ID, helper.Today(), attendanceModel.StatusAbsent)
	assert.ErrorIs(t, err, ErrAlreadyMarked)

	// exactly one stored record, the first writer's
	assert.EqualValues(t, 1, countRecords(t, db, user.ID))
	var rec attendanceModel.AttendanceModel
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&rec).Error)
	assert.Equal(t, attendanceModel.StatusPresent, rec.Status)
}

func TestMarkTodayRacingSweep(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "race@test.com", 5)

	// sweep wins the day first
	require.NoError(t, SweepAbsencesForToday(db))

	_, err := MarkToday(db, user.ID, helper.Today(), attendanceModel.StatusPresent)
	assert.ErrorIs(t, err, ErrAlreadyMarked)
	assert.EqualValues(t, 1, countRecords(t, db, user.ID))
}

func TestMarkTodayBeforeJoining(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "early@test.com", -3) // joins in 3 days

	_, err := MarkToday(db, user.ID, helper.Today(), attendanceModel.StatusPresent)
	assert.ErrorIs(t, err, ErrBeforeJoining)
}

func TestMarkTodayInvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "status@test.com", 5)

	_, err := MarkToday(db, user.ID, helper.Today(), "Late")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBackfillThenSweepCoversFullHistory(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "full@test.com", 7)

	require.NoError(t, BackfillMissingAttendance(db, user))
	require.NoError(t, SweepAbsencesForToday(db))

	// 7 backfilled days + today
	assert.EqualValues(t, 8, countRecords(t, db, user.ID))

	// Sundays are NOT excluded from attendance: a full week of history
	// must contain exactly one Sunday record.
	var records []attendanceModel.AttendanceModel
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&records).Error)
	sundays := 0
	for _, rec := range records {
		if rec.Date.Weekday() == time.Sunday {
			sundays++
		}
	}
	assert.Equal(t, 1, sundays)
}
