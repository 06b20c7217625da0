package settings

import (
	"time"

	"github.com/storetrack/attendance-backend-go/internal/pkg/validator"
)

// UpdateRequest is a partial update: nil fields keep their stored value.
type UpdateRequest struct {
	LoginTime     *string   `json:"login_time"`
	LateThreshold *int      `json:"late_threshold"`
	WorkDays      *[]string `json:"work_days"`
	LogoURL       *string   `json:"logo_url"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LoginTime != nil {
		if _, err := time.Parse("15:04", *r.LoginTime); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "login_time",
				Message: "login_time must be in HH:MM format",
			})
		}
	}

	if r.LateThreshold != nil && *r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold",
			Message: "late_threshold must not be negative",
		})
	}

	if r.WorkDays != nil {
		for _, day := range *r.WorkDays {
			if !validator.IsInSlice(day, WeekdayNames) {
				errs = append(errs, validator.ValidationError{
					Field:   "work_days",
					Message: "unknown weekday name: " + day,
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	LoginTime     string   `json:"login_time"`
	LateThreshold int      `json:"late_threshold"`
	WorkDays      []string `json:"work_days"`
	LogoURL       *string  `json:"logo_url,omitempty"`
}

func NewResponse(s Settings) Response {
	return Response{
		LoginTime:     s.LoginTime,
		LateThreshold: s.LateThreshold,
		WorkDays:      s.WorkDays,
		LogoURL:       s.LogoURL,
	}
}
