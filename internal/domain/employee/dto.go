package employee

import (
	"time"

	"github.com/storetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	PhotoURL  string `json:"photo_url"`
	StoreCode string `json:"store_code"`
	Status    string `json:"status"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id may contain only letters, digits and dashes (max 32 chars)",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.StoreCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_code",
			Message: "store_code is required",
		})
	}

	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	FullName  string `json:"full_name"`
	PhotoURL  string `json:"photo_url"`
	StoreCode string `json:"store_code"`
	Status    string `json:"status"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.StoreCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_code",
			Message: "store_code is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	PhotoURL  string `json:"photo_url"`
	StoreCode string `json:"store_code"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewResponse(e Employee) Response {
	return Response{
		ID:        e.ID,
		FullName:  e.FullName,
		PhotoURL:  e.PhotoURL,
		StoreCode: e.StoreCode,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
