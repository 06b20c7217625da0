package attendance

import (
	"time"

	"github.com/storetrack/attendance-backend-go/internal/pkg/validator"
)

// ScanRequest carries the employee identifier produced by the kiosk, either
// typed manually or decoded from a QR code. Identifier format is owned by
// the caller; the service only checks it is present.
type ScanRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest corrects a record's timestamp.
type UpdateRecordRequest struct {
	Timestamp string `json:"timestamp"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseTimestamp(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be a valid RFC 3339 instant",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListRequest filters the administrative log view.
type ListRequest struct {
	From       *time.Time
	To         *time.Time
	EmployeeID string
	StoreCode  string
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StoreCode  string `json:"store_code"`
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type"`
}

// ScanResponse tells the kiosk what just happened so it can show the
// employee's name, photo and a confirmation or lateness badge.
type ScanResponse struct {
	Record       RecordResponse `json:"record"`
	EmployeeName string         `json:"employee_name"`
	PhotoURL     string         `json:"photo_url"`
	CheckType    string         `json:"check_type"`
	IsLate       bool           `json:"is_late"`
	MinutesLate  int            `json:"minutes_late"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StoreCode:  r.StoreCode,
		Timestamp:  r.Timestamp.Format(time.RFC3339),
		Type:       string(r.Type),
	}
}
