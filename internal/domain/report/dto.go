package report

import (
	"time"

	"github.com/storetrack/attendance-backend-go/internal/pkg/validator"
)

// RowStatus is the per-day presence classification.
type RowStatus string

const (
	StatusPresent       RowStatus = "Present"
	StatusAbsent        RowStatus = "Absent"
	StatusNonWorkingDay RowStatus = "Non-working Day"
)

// LatenessTier mirrors the display badge: on-time, within the threshold, or
// beyond it.
type LatenessTier string

const (
	TierOnTime   LatenessTier = "On Time"
	TierLate     LatenessTier = "Late"
	TierVeryLate LatenessTier = "Very Late"
)

// Request selects a reporting period. Exactly one of Month (YYYY-MM) or the
// From/To pair must be set; a single-day range is the daily report.
type Request struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Month     string `json:"month"`
	StoreCode string `json:"store_code"`
}

func (r *Request) Validate() error {
	var errs validator.ValidationErrors

	hasRange := r.From != "" || r.To != ""
	hasMonth := r.Month != ""

	switch {
	case hasMonth && hasRange:
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and from/to are mutually exclusive",
		})
	case hasMonth:
		if _, err := time.Parse("2006-01", r.Month); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	case hasRange:
		from, fromOK := validator.IsValidDate(r.From)
		to, toOK := validator.IsValidDate(r.To)
		if !fromOK {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
		if fromOK && toOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must not precede from",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "either month or from/to is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period resolves the request into an inclusive day range.
func (r *Request) Period() (from, to time.Time) {
	if r.Month != "" {
		start, _ := time.Parse("2006-01", r.Month)
		start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, -1)
	}
	from, _ = validator.IsValidDate(r.From)
	to, _ = validator.IsValidDate(r.To)
	return time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local),
		time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)
}

// Row is one employee on one calendar day.
type Row struct {
	Date         string       `json:"date"`
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	PhotoURL     string       `json:"photo_url,omitempty"`
	StoreCode    string       `json:"store_code"`
	StoreName    string       `json:"store_name"`
	CheckIn      string       `json:"check_in,omitempty"`
	CheckOut     string       `json:"check_out,omitempty"`
	Status       RowStatus    `json:"status"`
	Lateness     LatenessTier `json:"lateness,omitempty"`
	MinutesLate  int          `json:"minutes_late"`
}

// Report is the projected table plus its period metadata.
type Report struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	StoreCode   string `json:"store_code,omitempty"`
	GeneratedAt string `json:"generated_at"`
	Rows        []Row  `json:"rows"`
}
