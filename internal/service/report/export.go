package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Date", "Employee ID", "Employee Name", "Store",
	"Check In", "Check Out", "Status", "Lateness", "Minutes Late",
}

// Export implements report.Service. The exporters are pure serializers of
// the projected rows; they never look at the log directly.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.Request, format report.ExportFormat) ([]byte, string, string, error) {
	rep, err := s.Generate(ctx, req)
	if err != nil {
		return nil, "", "", err
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case report.FormatCSV:
		data, err := exportCSV(rep)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("attendance-report-%s.csv", stamp), "text/csv", nil
	case report.FormatXLSX:
		data, err := exportXLSX(rep)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("attendance-report-%s.xlsx", stamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return nil, "", "", report.ErrUnsupportedFormat
	}
}

func rowCells(row report.Row) []interface{} {
	return []interface{}{
		row.Date,
		row.EmployeeID,
		row.EmployeeName,
		row.StoreName,
		row.CheckIn,
		row.CheckOut,
		string(row.Status),
		string(row.Lateness),
		row.MinutesLate,
	}
}

func exportCSV(rep report.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rep.Rows {
		record := make([]string, 0, len(exportHeader))
		for _, cell := range rowCells(row) {
			record = append(record, fmt.Sprint(cell))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func exportXLSX(rep report.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, row := range rep.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		cells := rowCells(row)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
