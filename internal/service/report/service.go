package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/report"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	attendanceservice "github.com/storetrack/attendance-backend-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	storeRepo      store.Repository
	settingsRepo   settings.Repository
}

func NewReportService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	storeRepo store.Repository,
	settingsRepo settings.Repository,
) report.Service {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		storeRepo:      storeRepo,
		settingsRepo:   settingsRepo,
	}
}

// Generate implements report.Service. The projection emits one row per
// (employee, day) across the period; a single-day range degenerates to the
// classic one-row-per-employee daily report.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.Request) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	from, to := req.Period()
	endOfRange := to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	records, err := s.attendanceRepo.List(ctx, attendance.Filter{
		From:      from,
		To:        endOfRange,
		StoreCode: req.StoreCode,
	})
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to load employees: %w", err)
	}

	storeNames, err := s.storeNames(ctx)
	if err != nil {
		return report.Report{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return report.Report{}, fmt.Errorf("failed to load settings: %w", err)
		}
		cfg = settings.Default()
	}

	// Index records by employee and day; List returns them in timestamp
	// order so the first hit per type is the day's first event.
	type dayKey struct {
		employeeID string
		day        string
	}
	firstByType := make(map[dayKey]map[attendance.CheckType]attendance.Record)
	for _, rec := range records {
		key := dayKey{rec.EmployeeID, rec.Timestamp.Format("2006-01-02")}
		if firstByType[key] == nil {
			firstByType[key] = make(map[attendance.CheckType]attendance.Record)
		}
		if _, seen := firstByType[key][rec.Type]; !seen {
			firstByType[key][rec.Type] = rec
		}
	}

	var rows []report.Row
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayStr := day.Format("2006-01-02")
		for _, emp := range employees {
			if req.StoreCode != "" && emp.StoreCode != req.StoreCode {
				continue
			}

			events := firstByType[dayKey{emp.ID, dayStr}]
			row := report.Row{
				Date:         dayStr,
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				PhotoURL:     emp.PhotoURL,
			}

			// The record's store code wins over the employee's current
			// assignment: it was captured at scan time.
			rowStoreCode := emp.StoreCode
			if checkIn, ok := events[attendance.CheckIn]; ok {
				rowStoreCode = checkIn.StoreCode
				row.CheckIn = checkIn.Timestamp.Format("15:04:05")
			}
			if checkOut, ok := events[attendance.CheckOut]; ok {
				row.CheckOut = checkOut.Timestamp.Format("15:04:05")
			}
			row.StoreCode = rowStoreCode
			row.StoreName = storeNames[rowStoreCode]
			if row.StoreName == "" {
				// Missing join target: show the raw code.
				row.StoreName = rowStoreCode
			}

			switch {
			case !cfg.IsWorkDay(day):
				row.Status = report.StatusNonWorkingDay
			case row.CheckIn != "":
				row.Status = report.StatusPresent
				late := attendanceservice.CalculateLateStatus(events[attendance.CheckIn].Timestamp, cfg)
				row.MinutesLate = late.MinutesLate
				switch {
				case late.MinutesLate == 0:
					row.Lateness = report.TierOnTime
				case !late.IsLate:
					row.Lateness = report.TierLate
				default:
					row.Lateness = report.TierVeryLate
				}
			default:
				row.Status = report.StatusAbsent
			}

			rows = append(rows, row)
		}
	}

	return report.Report{
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.Format("2006-01-02"),
		StoreCode:   req.StoreCode,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

func (s *ReportServiceImpl) storeNames(ctx context.Context) (map[string]string, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	names := make(map[string]string, len(stores))
	for _, st := range stores {
		names[st.Code] = st.Name
	}
	return names, nil
}
