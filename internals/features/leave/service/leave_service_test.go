package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	attendanceModel "hrbuddy_backend/internals/features/attendance/model"
	leaveModel "hrbuddy_backend/internals/features/leave/model"
	userModel "hrbuddy_backend/internals/features/users/user/model"
	helper "hrbuddy_backend/internals/helpers"
)

// 2024-03-03 is a Sunday; the week that follows anchors every span below.
var (
	sun03 = time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	mon04 = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tue05 = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	wed06 = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	fri08 = time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	sat09 = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	mon11 = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
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

func createEmployee(t *testing.T, db *gorm.DB, email string, balance int) *userModel.UserModel {
	t.Helper()

	user := userModel.UserModel{
		FullName:      "Test Employee",
		Email:         email,
		Password:      "hashed",
		Role:          "employee",
		JobTitle:      "Engineer",
		DateOfJoining: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaveBalance:  balance,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestCountChargeableDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single weekday", mon04, mon04, 1},
		{"single sunday", sun03, sun03, 0},
		{"mon through wed", mon04, wed06, 3},
		{"fri through mon skips sunday", fri08, mon11, 3},
		{"full week mon to sat", mon04, sat09, 6},
		{"sun through sun", sun03, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountChargeableDays(tt.start, tt.end))
		})
	}
}

func TestValidateSpan(t *testing.T) {
	assert.NoError(t, ValidateSpan(mon04, wed06))
	assert.NoError(t, ValidateSpan(mon04, mon04))

	assert.ErrorIs(t, ValidateSpan(wed06, mon04), ErrEndBeforeStart)
	assert.ErrorIs(t, ValidateSpan(sun03, mon04), ErrSundayEndpoint)
	assert.ErrorIs(t, ValidateSpan(fri08, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)), ErrSundayEndpoint)

	// ordering is checked before the Sunday rule
	assert.ErrorIs(t, ValidateSpan(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), sun03), ErrEndBeforeStart)
}

func TestApplyCreatesPendingLeave(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "apply@test.com", 20)

	leave, err := Apply(db, user, leaveModel.TypeCasual, mon04, wed06, "family function")
	require.NoError(t, err)

	assert.Equal(t, leaveModel.StatusPending, leave.Status)
	assert.Equal(t, 3, leave.TotalDays)
	assert.Equal(t, leaveModel.TypeCasual, leave.LeaveType)
	assert.False(t, leave.AppliedDate.IsZero())

	// applying does not touch the balance; only approval does
	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 20, fresh.LeaveBalance)
}

func TestApplySundaysInsideSpanAreFree(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "sunday@test.com", 20)

	// Sat 09 .. Mon 11 contains Sunday 10 but neither endpoint is a Sunday
	leave, err := Apply(db, user, leaveModel.TypeVacation, sat09, mon11, "weekend trip")
	require.NoError(t, err)
	assert.Equal(t, 2, leave.TotalDays)
}

func TestApplyRejectsOverlap(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "overlap@test.com", 20)

	_, err := Apply(db, user, leaveModel.TypeSick, mon04, wed06, "flu")
	require.NoError(t, err)

	// shared boundary day counts as overlap
	_, err = Apply(db, user, leaveModel.TypeCasual, wed06, fri08, "errand")
	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Contains(t, overlapErr.Error(), "04/03/2024 to 06/03/2024")

	// full containment either way is also caught
	_, err = Apply(db, user, leaveModel.TypeCasual, tue05, tue05, "errand")
	assert.ErrorAs(t, err, &overlapErr)
	_, err = Apply(db, user, leaveModel.TypeCasual, mon04, fri08, "errand")
	assert.ErrorAs(t, err, &overlapErr)

	// a disjoint later span is fine
	_, err = Apply(db, user, leaveModel.TypeCasual, mon11, mon11, "errand")
	assert.NoError(t, err)
}

func TestApplyIgnoresRejectedLeaves(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "rejected@test.com", 20)

	leave, err := Apply(db, user, leaveModel.TypeSick, mon04, wed06, "flu")
	require.NoError(t, err)
	_, err = Decide(db, leave.ID, leaveModel.StatusRejected)
	require.NoError(t, err)

	// rejected spans no longer block new requests
	_, err = Apply(db, user, leaveModel.TypeCasual, mon04, wed06, "retry")
	assert.NoError(t, err)
}

func TestApplyInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "broke@test.com", 2)

	_, err := Apply(db, user, leaveModel.TypeVacation, mon04, wed06, "trip")
	var balErr *InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, 2, balErr.Remaining)
}

func TestApplyBeforeJoining(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "newbie@test.com", 20)
	user.DateOfJoining = helper.Today().AddDate(0, 0, 7)
	require.NoError(t, db.Save(user).Error)

	_, err := Apply(db, user, leaveModel.TypeCasual, mon04, wed06, "early")
	var joinErr *BeforeJoiningError
	assert.ErrorAs(t, err, &joinErr)
}

func TestDecideApproveDebitsBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "approve@test.com", 3)

	leave, err := Apply(db, user, leaveModel.TypeCasual, mon04, wed06, "family")
	require.NoError(t, err)

	decided, err := Decide(db, leave.ID, leaveModel.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leaveModel.StatusApproved, decided.Status)

	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 0, fresh.LeaveBalance)
}

func TestDecideRejectKeepsBalance(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "reject@test.com", 20)

	leave, err := Apply(db, user, leaveModel.TypeSick, mon04, wed06, "flu")
	require.NoError(t, err)

	decided, err := Decide(db, leave.ID, leaveModel.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, leaveModel.StatusRejected, decided.Status)

	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 20, fresh.LeaveBalance)
}

func TestDecideIsSingleShot(t *testing.T) {
	db := setupTestDB(t)
	user := createEmployee(t, db, "twice@test.com", 20)

	leave, err := Apply(db, user, leaveModel.TypeCasual, mon04, wed06, "family")
	require.NoError(t, err)

	_, err = Decide(db, leave.ID, leaveModel.StatusApproved)
	require.NoError(t, err)

	// a second decision of either kind is refused and the balance stays put
	_, err = Decide(db, leave.ID, leaveModel.StatusRejected)
	assert.True(t, errors.Is(err, ErrAlreadyProcessed))

	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 17, fresh.LeaveBalance)
}
