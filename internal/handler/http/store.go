package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/response"
	"github.com/storetrack/attendance-backend-go/internal/service/directory"
)

type StoreHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type storeHandlerImpl struct {
	directoryService directory.DirectoryService
}

func NewStoreHandler(directoryService directory.DirectoryService) StoreHandler {
	return &storeHandlerImpl{
		directoryService: directoryService,
	}
}

// List implements StoreHandler.
func (h *storeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.directoryService.ListStores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stores)
}

// Get implements StoreHandler.
func (h *storeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	st, err := h.directoryService.GetStore(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, st)
}

// Create implements StoreHandler.
func (h *storeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	st, err := h.directoryService.CreateStore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created", st)
}

// Update implements StoreHandler.
func (h *storeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req store.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	st, err := h.directoryService.UpdateStore(r.Context(), code, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated", st)
}

// Delete implements StoreHandler. Employees assigned to the store keep
// their assignment; reports show the raw code from then on.
func (h *storeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.directoryService.DeleteStore(r.Context(), code); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted", nil)
}

// Import implements StoreHandler.
func (h *storeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	rows, ok := readCSVUpload(w, r)
	if !ok {
		return
	}

	result, err := h.directoryService.ImportStores(r.Context(), rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}
