package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
)

// ImportResult summarizes a bulk import: how many rows were created and
// which were rejected, keyed by 1-based data row number.
type ImportResult struct {
	Imported int               `json:"imported"`
	Rejected map[string]string `json:"rejected,omitempty"`
}

var employeeImportHeader = []string{"id", "full_name", "photo_url", "store_code", "status"}
var storeImportHeader = []string{"code", "name", "location"}

// ImportEmployees ingests CSV rows (header row first). Each data row is
// validated like a single create; bad rows are reported, good rows are
// created. A duplicate ID rejects the row rather than aborting the import.
func (s *directoryServiceImpl) ImportEmployees(ctx context.Context, rows [][]string) (ImportResult, error) {
	if err := checkHeader(rows, employeeImportHeader); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Rejected: make(map[string]string)}
	for i, row := range rows[1:] {
		rowKey := fmt.Sprintf("%d", i+1)
		if len(row) < len(employeeImportHeader) {
			result.Rejected[rowKey] = "not enough columns"
			continue
		}

		req := employee.CreateRequest{
			ID:        strings.TrimSpace(row[0]),
			FullName:  strings.TrimSpace(row[1]),
			PhotoURL:  strings.TrimSpace(row[2]),
			StoreCode: strings.TrimSpace(row[3]),
			Status:    strings.TrimSpace(row[4]),
		}
		if _, err := s.CreateEmployee(ctx, req); err != nil {
			result.Rejected[rowKey] = err.Error()
			continue
		}
		result.Imported++
	}

	if len(result.Rejected) == 0 {
		result.Rejected = nil
	}
	slog.Info("Employee import finished", "imported", result.Imported, "rejected", len(result.Rejected))
	return result, nil
}

// ImportStores ingests CSV rows (header row first) in the same fashion.
func (s *directoryServiceImpl) ImportStores(ctx context.Context, rows [][]string) (ImportResult, error) {
	if err := checkHeader(rows, storeImportHeader); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Rejected: make(map[string]string)}
	for i, row := range rows[1:] {
		rowKey := fmt.Sprintf("%d", i+1)
		if len(row) < len(storeImportHeader) {
			result.Rejected[rowKey] = "not enough columns"
			continue
		}

		req := store.CreateRequest{
			Code:     strings.TrimSpace(row[0]),
			Name:     strings.TrimSpace(row[1]),
			Location: strings.TrimSpace(row[2]),
		}
		if _, err := s.CreateStore(ctx, req); err != nil {
			result.Rejected[rowKey] = err.Error()
			continue
		}
		result.Imported++
	}

	if len(result.Rejected) == 0 {
		result.Rejected = nil
	}
	slog.Info("Store import finished", "imported", result.Imported, "rejected", len(result.Rejected))
	return result, nil
}

func checkHeader(rows [][]string, want []string) error {
	if len(rows) < 2 {
		return fmt.Errorf("no records found in the file")
	}
	header := rows[0]
	if len(header) < len(want) {
		return fmt.Errorf("expected header columns: %s", strings.Join(want, ","))
	}
	for i, col := range want {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return fmt.Errorf("expected header columns: %s", strings.Join(want, ","))
		}
	}
	return nil
}
