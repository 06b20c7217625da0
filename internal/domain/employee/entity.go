package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee is directory leaf data. IDs are operator-assigned (they are what
// the kiosk scans), unique and stable.
type Employee struct {
	ID        string
	FullName  string
	PhotoURL  string
	StoreCode string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the employee may generate new attendance events.
func (e Employee) Active() bool {
	return e.Status == StatusActive
}
