package http

import (
	"fmt"
	"net/http"

	"github.com/storetrack/attendance-backend-go/internal/domain/report"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportRequest(r *http.Request) report.Request {
	q := r.URL.Query()
	return report.Request{
		From:      q.Get("from"),
		To:        q.Get("to"),
		Month:     q.Get("month"),
		StoreCode: q.Get("store_code"),
	}
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req := reportRequest(r)

	result, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler. The format query parameter selects csv
// or xlsx; the document is streamed as a download.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := reportRequest(r)

	format := report.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = report.FormatCSV
	}

	data, filename, contentType, err := h.reportService.Export(r.Context(), req, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
