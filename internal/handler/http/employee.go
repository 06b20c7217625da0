package http

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/storetrack/attendance-backend-go/internal/service/directory"
	"github.com/storetrack/attendance-backend-go/internal/service/file"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	directoryService directory.DirectoryService
	fileService      file.FileService
}

func NewEmployeeHandler(directoryService directory.DirectoryService, fileService file.FileService) EmployeeHandler {
	return &employeeHandlerImpl{
		directoryService: directoryService,
		fileService:      fileService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.directoryService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.directoryService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.directoryService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", emp)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.directoryService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", emp)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.directoryService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// UploadPhoto implements EmployeeHandler. The photo is stored and the
// employee's photo URL is updated in one request.
func (h *employeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer photo.Close()

	path, err := h.fileService.UploadEmployeePhoto(r.Context(), id, photo, header.Filename)
	if err != nil {
		slog.Error("Failed to upload employee photo", "employee_id", id, "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	emp, err := h.directoryService.SetEmployeePhoto(r.Context(), id, h.fileService.FileURL(path))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Photo uploaded", emp)
}

// Import implements EmployeeHandler. Accepts a CSV file upload and creates
// one employee per row; rejected rows are reported back, not fatal.
func (h *employeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	rows, ok := readCSVUpload(w, r)
	if !ok {
		return
	}

	result, err := h.directoryService.ImportEmployees(r.Context(), rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}

// readCSVUpload parses the "file" field of a multipart upload into rows.
// It writes the error response itself so callers can just return.
func readCSVUpload(w http.ResponseWriter, r *http.Request) ([][]string, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, false
	}

	f, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return nil, false
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		response.BadRequest(w, "Invalid CSV file", nil)
		return nil, false
	}

	return rows, true
}
