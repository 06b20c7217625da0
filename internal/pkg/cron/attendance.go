package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
)

// AttendanceJobs holds the periodic log hygiene sweeps.
type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	settingsRepo   settings.Repository
}

func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	settingsRepo settings.Repository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_unclosed_check_ins", 1*time.Hour, j.ReportUnclosedCheckIns)
}

// ReportUnclosedCheckIns logs every employee who checked in yesterday but
// never checked out, so an administrator can correct the record. It only does
// work during the first hour of the day, and skips non-working days.
func (j *AttendanceJobs) ReportUnclosedCheckIns(ctx context.Context) error {
	if time.Now().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().AddDate(0, 0, -1)

	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		if err == settings.ErrSettingsNotFound {
			cfg = settings.Default()
		} else {
			return fmt.Errorf("failed to load settings: %w", err)
		}
	}
	if !cfg.IsWorkDay(yesterday) {
		return nil
	}

	unclosed, err := j.attendanceRepo.ListUnclosedCheckIns(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list unclosed check-ins: %w", err)
	}

	for _, rec := range unclosed {
		name := rec.EmployeeID
		if emp, err := j.employeeRepo.GetByID(ctx, rec.EmployeeID); err == nil {
			name = emp.FullName
		}
		slog.Warn("Employee has no check-out for previous day",
			"employee_id", rec.EmployeeID,
			"employee_name", name,
			"check_in", rec.Timestamp.Format(time.RFC3339),
		)
	}

	if len(unclosed) > 0 {
		slog.Info("Unclosed check-in sweep finished", "day", yesterday.Format("2006-01-02"), "count", len(unclosed))
	}
	return nil
}
