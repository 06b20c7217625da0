package attendance

import (
	"time"
)

type CheckType string

const (
	CheckIn  CheckType = "check-in"
	CheckOut CheckType = "check-out"
)

// Record is a single attendance event. The log of records is the source of
// truth for who was present when; presence and lateness are derived from it.
type Record struct {
	ID         string
	EmployeeID string
	StoreCode  string
	Timestamp  time.Time
	Type       CheckType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LateStatus is the classification of a check-in against the configured
// login time and threshold.
type LateStatus struct {
	IsLate      bool
	MinutesLate int
}

// SameDay reports whether the record's timestamp falls on the given local
// calendar day.
func (r Record) SameDay(day time.Time) bool {
	y1, m1, d1 := r.Timestamp.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
