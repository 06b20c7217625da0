package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/storetrack/attendance-backend-go/internal/service/file"
	settingsservice "github.com/storetrack/attendance-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settingsservice.SettingsService
	fileService     file.FileService
}

func NewSettingsHandler(settingsService settingsservice.SettingsService, fileService file.FileService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
		fileService:     fileService,
	}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// Update implements SettingsHandler. Fields absent from the body keep their
// stored value.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", cfg)
}

// UploadLogo implements SettingsHandler.
func (h *settingsHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	logo, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Field 'logo' is required", nil)
		return
	}
	defer logo.Close()

	path, err := h.fileService.UploadLogo(r.Context(), logo, header.Filename)
	if err != nil {
		slog.Error("Failed to upload logo", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	logoURL := h.fileService.FileURL(path)
	cfg, err := h.settingsService.SetLogo(r.Context(), &logoURL)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded", cfg)
}
