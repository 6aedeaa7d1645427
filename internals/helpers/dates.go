package helper

import (
	"time"

	"hrbuddy_backend/internals/configs"
)

// All calendar-day comparisons in the app go through these helpers so every
// caller agrees on which instant "midnight" is. The location is fixed by
// APP_TIMEZONE; mixing server-local and UTC truncation is how the bugs start.

const DateLayout = "2006-01-02"

// DisplayDateLayout matches the dd/mm/yyyy format used in user-facing
// messages and notification mail.
const DisplayDateLayout = "02/01/2006"

// AtMidnight truncates t to 00:00:00 in the app timezone.
func AtMidnight(t time.Time) time.Time {
	loc := configs.AppLocation()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today returns midnight of the current day in the app timezone.
func Today() time.Time {
	return AtMidnight(time.Now())
}

// ParseDate parses a YYYY-MM-DD string as midnight in the app timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, configs.AppLocation())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return AtMidnight(a).Equal(AtMidnight(b))
}
