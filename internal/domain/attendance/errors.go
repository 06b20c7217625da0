package attendance

import "errors"

// Attendance domain errors. These are business-rule rejections, not faults:
// the rule either holds or it does not, and retrying does not change the
// outcome.
var (
	// Scan rejections
	ErrAlreadyCheckedIn  = errors.New("already logged in today")
	ErrAlreadyCheckedOut = errors.New("already logged out today")
	ErrNotCheckedIn      = errors.New("must log in before logging out")
	ErrDayCompleted      = errors.New("already completed attendance for today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrDuplicateEvent = errors.New("attendance event already recorded for this day")
)
