package report

import "context"

// ExportFormat names a tabular export encoding.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

type Service interface {
	// Generate projects the attendance log into per-employee, per-day rows
	// for the requested period.
	Generate(ctx context.Context, req Request) (Report, error)

	// Export serializes the projected rows. Returns the document bytes, a
	// suggested filename and the content type.
	Export(ctx context.Context, req Request, format ExportFormat) ([]byte, string, string, error)
}
