package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
)

type ServiceImpl struct {
	tx             attendance.TxRunner
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	settingsRepo   settings.Repository

	// Serializes the read-decide-write sequence so two rapid scans for the
	// same employee cannot both observe "no check-in yet". The transaction
	// plus the unique (employee, day, type) index backstop this across
	// processes.
	mu sync.Mutex

	// now is swapped out in tests.
	now func() time.Time
}

func NewAttendanceService(
	tx attendance.TxRunner,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	settingsRepo settings.Repository,
) attendance.Service {
	return &ServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

func (s *ServiceImpl) currentSettings(ctx context.Context) settings.Settings {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			slog.Error("Failed to load settings, using defaults", "error", err)
		}
		return settings.Default()
	}
	return cfg
}

// RecordScan implements attendance.Service. It either appends exactly one
// record or rejects the scan with a business-rule error; a rejected scan
// never mutates the log.
func (s *ServiceImpl) RecordScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	var resp attendance.ScanResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to look up employee: %w", err)
		}
		if !emp.Active() {
			return employee.ErrEmployeeInactive
		}

		dayRecords, err := s.attendanceRepo.ListByEmployeeAndDay(ctx, emp.ID, now)
		if err != nil {
			return fmt.Errorf("failed to load today's records: %w", err)
		}

		checkType, ok := DetermineCheckType(emp.ID, now, dayRecords)
		if !ok {
			return attendance.ErrDayCompleted
		}
		if err := ValidateRecord(emp.ID, checkType, now, dayRecords); err != nil {
			return err
		}

		record := attendance.Record{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			StoreCode:  emp.StoreCode,
			Timestamp:  now,
			Type:       checkType,
		}

		created, err := s.attendanceRepo.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to append attendance record: %w", err)
		}

		var late attendance.LateStatus
		if checkType == attendance.CheckIn {
			late = CalculateLateStatus(now, s.currentSettings(ctx))
		}

		resp = attendance.ScanResponse{
			Record:       attendance.NewRecordResponse(created),
			EmployeeName: emp.FullName,
			PhotoURL:     emp.PhotoURL,
			CheckType:    string(checkType),
			IsLate:       late.IsLate,
			MinutesLate:  late.MinutesLate,
		}
		return nil
	})
	if err != nil {
		return attendance.ScanResponse{}, err
	}

	slog.Info("Attendance recorded",
		"employee_id", resp.Record.EmployeeID,
		"type", resp.CheckType,
		"minutes_late", resp.MinutesLate,
	)
	return resp, nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, req attendance.ListRequest) ([]attendance.RecordResponse, error) {
	filter := attendance.Filter{
		EmployeeID: req.EmployeeID,
		StoreCode:  req.StoreCode,
	}
	if req.From != nil {
		filter.From = *req.From
	}
	if req.To != nil {
		filter.To = *req.To
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	out := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.NewRecordResponse(rec))
	}
	return out, nil
}

// UpdateRecord implements attendance.Service. Only the timestamp is
// correctable; type and ownership are fixed at creation time. A correction
// that would land a second event of the same type on the employee's target
// day is rejected, so the one-check-in-one-check-out-per-day rule holds for
// admin edits as well as scans.
func (s *ServiceImpl) UpdateRecord(ctx context.Context, id string, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var record attendance.Record
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.attendanceRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		ts, _ := time.Parse(time.RFC3339, req.Timestamp)

		dayRecords, err := s.attendanceRepo.ListByEmployeeAndDay(ctx, record.EmployeeID, ts)
		if err != nil {
			return fmt.Errorf("failed to load target day's records: %w", err)
		}
		for _, existing := range dayRecords {
			if existing.ID != record.ID && existing.Type == record.Type {
				return attendance.ErrDuplicateEvent
			}
		}

		record.Timestamp = ts
		if err := s.attendanceRepo.Update(ctx, record); err != nil {
			if errors.Is(err, attendance.ErrDuplicateEvent) {
				return attendance.ErrDuplicateEvent
			}
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("Attendance record corrected", "id", id, "timestamp", req.Timestamp)
	return attendance.NewRecordResponse(record), nil
}

// DeleteRecord implements attendance.Service.
func (s *ServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	slog.Info("Attendance record deleted", "id", id)
	return nil
}
