package response

import (
	"errors"
	"net/http"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/report"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	"github.com/storetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance protocol rejections
	case errors.Is(err, attendance.ErrDayCompleted):
		Conflict(w, "Already completed attendance for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already logged in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already logged out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Must log in before logging out")
	case errors.Is(err, attendance.ErrDuplicateEvent):
		Conflict(w, "Attendance event already recorded")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		UnprocessableEntity(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreCodeExists):
		Conflict(w, "Store code already exists")
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google sign-in is not configured", nil)
	case errors.Is(err, auth.ErrOAuthEmailMismatch):
		Forbidden(w, "Google account does not match the administrator account")

	// Report errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
