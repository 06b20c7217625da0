package settings

import (
	"strings"
	"time"
)

// Settings is process-wide scheduling configuration: when the workday starts,
// how many minutes of lateness are tolerated, and which weekdays count as
// working days. Read by the rules engine and the report projection, mutated
// only by an administrator.
type Settings struct {
	LoginTime     string
	LateThreshold int
	WorkDays      []string
	LogoURL       *string
	UpdatedAt     time.Time
}

// Default returns the out-of-the-box configuration: 09:00 start, 15 minute
// threshold, Monday through Friday.
func Default() Settings {
	return Settings{
		LoginTime:     "09:00",
		LateThreshold: 15,
		WorkDays:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}
}

// WeekdayNames holds the accepted work-day identifiers, in week order.
var WeekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// IsWorkDay reports whether the given day's weekday is configured as working.
func (s Settings) IsWorkDay(day time.Time) bool {
	name := strings.ToLower(day.Weekday().String())
	for _, wd := range s.WorkDays {
		if wd == name {
			return true
		}
	}
	return false
}

// LoginClock parses LoginTime ("HH:MM") into hour and minute. The zero
// values are returned when the stored string is malformed; Validate on the
// update DTO keeps that from happening.
func (s Settings) LoginClock() (hour, minute int) {
	t, err := time.Parse("15:04", s.LoginTime)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
