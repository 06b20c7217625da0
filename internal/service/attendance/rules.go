package attendance

import (
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
)

// The rules in this file are pure functions of their inputs. They never touch
// a repository; the service snapshots the day's records and hands them in.

// filterEmployeeDay narrows a log slice to one employee's records on the
// calendar day of `day`, local wall clock, midnight to midnight inclusive.
func filterEmployeeDay(employeeID string, day time.Time, log []attendance.Record) []attendance.Record {
	var out []attendance.Record
	for _, rec := range log {
		if rec.EmployeeID == employeeID && rec.SameDay(day) {
			out = append(out, rec)
		}
	}
	return out
}

// DetermineCheckType decides what a new scan at `now` represents for the
// employee: the day's check-in, the day's check-out, or nothing. ok is false
// when the employee has already completed attendance for the day (or the log
// is in a malformed state, e.g. a lone check-out), meaning no further action
// today.
func DetermineCheckType(employeeID string, now time.Time, log []attendance.Record) (checkType attendance.CheckType, ok bool) {
	today := filterEmployeeDay(employeeID, now, log)

	if len(today) == 0 {
		return attendance.CheckIn, true
	}
	if len(today) == 1 && today[0].Type == attendance.CheckIn {
		return attendance.CheckOut, true
	}
	return "", false
}

// ValidateRecord re-derives the day's records and confirms that appending an
// event of the given type keeps the one-check-in, one-check-out invariant.
// It overlaps with DetermineCheckType on purpose: both guards must agree
// before a record is appended.
func ValidateRecord(employeeID string, checkType attendance.CheckType, now time.Time, log []attendance.Record) error {
	today := filterEmployeeDay(employeeID, now, log)

	hasCheckIn := false
	hasCheckOut := false
	for _, rec := range today {
		switch rec.Type {
		case attendance.CheckIn:
			hasCheckIn = true
		case attendance.CheckOut:
			hasCheckOut = true
		}
	}

	if checkType == attendance.CheckIn {
		if hasCheckIn {
			return attendance.ErrAlreadyCheckedIn
		}
		return nil
	}

	if hasCheckOut {
		return attendance.ErrAlreadyCheckedOut
	}
	if !hasCheckIn {
		return attendance.ErrNotCheckedIn
	}
	return nil
}

// CalculateLateStatus classifies a check-in instant against the configured
// login time. Minutes are whole minutes, truncated; arrivals at or before the
// expected instant report zero. IsLate flips only past the threshold, so a
// check-in exactly `lateThreshold` minutes after the login time is still on
// time. Lateness is purely a time-of-day comparison on the timestamp's own
// calendar date.
func CalculateLateStatus(timestamp time.Time, cfg settings.Settings) attendance.LateStatus {
	hour, minute := cfg.LoginClock()
	expected := time.Date(
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		hour, minute, 0, 0,
		timestamp.Location(),
	)

	minutesLate := int(timestamp.Sub(expected) / time.Minute)
	if minutesLate <= 0 {
		return attendance.LateStatus{IsLate: false, MinutesLate: 0}
	}

	return attendance.LateStatus{
		IsLate:      minutesLate > cfg.LateThreshold,
		MinutesLate: minutesLate,
	}
}
