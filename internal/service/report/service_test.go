package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/report"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	"github.com/storetrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportEnv struct {
	service        report.Service
	attendanceRepo *memory.AttendanceRepository
	employeeRepo   *memory.EmployeeRepository
	storeRepo      *memory.StoreRepository
	settingsRepo   *memory.SettingsRepository
}

func newReportEnv(t *testing.T) *reportEnv {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	storeRepo := memory.NewStoreRepository()
	settingsRepo := memory.NewSettingsRepository()

	require.NoError(t, settingsRepo.Save(context.Background(), settings.Settings{
		LoginTime:     "09:00",
		LateThreshold: 15,
		WorkDays:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}))

	return &reportEnv{
		service:        NewReportService(attendanceRepo, employeeRepo, storeRepo, settingsRepo),
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		storeRepo:      storeRepo,
		settingsRepo:   settingsRepo,
	}
}

func (e *reportEnv) seedEmployee(t *testing.T, id, name, storeCode string) {
	t.Helper()
	_, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:        id,
		FullName:  name,
		StoreCode: storeCode,
		Status:    employee.StatusActive,
	})
	require.NoError(t, err)
}

func (e *reportEnv) seedStore(t *testing.T, code, name string) {
	t.Helper()
	_, err := e.storeRepo.Create(context.Background(), store.Store{Code: code, Name: name})
	require.NoError(t, err)
}

func (e *reportEnv) seedRecord(t *testing.T, employeeID, storeCode string, ts time.Time, checkType attendance.CheckType) {
	t.Helper()
	_, err := e.attendanceRepo.Create(context.Background(), attendance.Record{
		ID:         employeeID + "-" + string(checkType) + "-" + ts.Format(time.RFC3339),
		EmployeeID: employeeID,
		StoreCode:  storeCode,
		Timestamp:  ts,
		Type:       checkType,
	})
	require.NoError(t, err)
}

func findRow(t *testing.T, rows []report.Row, employeeID, date string) report.Row {
	t.Helper()
	for _, row := range rows {
		if row.EmployeeID == employeeID && row.Date == date {
			return row
		}
	}
	t.Fatalf("no row for employee %s on %s", employeeID, date)
	return report.Row{}
}

// 2025-03-10 is a Monday.
func TestGenerateDailyReport(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedStore(t, "ST-01", "Downtown")
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")
	env.seedEmployee(t, "EMP-2", "Ben Okafor", "ST-01")
	env.seedEmployee(t, "EMP-3", "Choi Minju", "ST-01")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	env.seedRecord(t, "EMP-1", "ST-01", day.Add(8*time.Hour+55*time.Minute), attendance.CheckIn)
	env.seedRecord(t, "EMP-1", "ST-01", day.Add(17*time.Hour), attendance.CheckOut)
	env.seedRecord(t, "EMP-2", "ST-01", day.Add(9*time.Hour+40*time.Minute), attendance.CheckIn)

	rep, err := env.service.Generate(ctx, report.Request{From: "2025-03-10", To: "2025-03-10"})
	require.NoError(t, err)
	require.Len(t, rep.Rows, 3)

	onTime := findRow(t, rep.Rows, "EMP-1", "2025-03-10")
	assert.Equal(t, report.StatusPresent, onTime.Status)
	assert.Equal(t, report.TierOnTime, onTime.Lateness)
	assert.Equal(t, "08:55:00", onTime.CheckIn)
	assert.Equal(t, "17:00:00", onTime.CheckOut)
	assert.Equal(t, "Downtown", onTime.StoreName)

	veryLate := findRow(t, rep.Rows, "EMP-2", "2025-03-10")
	assert.Equal(t, report.StatusPresent, veryLate.Status)
	assert.Equal(t, report.TierVeryLate, veryLate.Lateness)
	assert.Equal(t, 40, veryLate.MinutesLate)
	assert.Empty(t, veryLate.CheckOut)

	absent := findRow(t, rep.Rows, "EMP-3", "2025-03-10")
	assert.Equal(t, report.StatusAbsent, absent.Status)
	assert.Empty(t, absent.CheckIn)
}

func TestGenerateWithinThresholdIsLateTier(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	env.seedRecord(t, "EMP-1", "ST-01", day.Add(9*time.Hour+10*time.Minute), attendance.CheckIn)

	rep, err := env.service.Generate(ctx, report.Request{From: "2025-03-10", To: "2025-03-10"})
	require.NoError(t, err)

	row := findRow(t, rep.Rows, "EMP-1", "2025-03-10")
	assert.Equal(t, report.TierLate, row.Lateness)
	assert.Equal(t, 10, row.MinutesLate)
}

func TestGenerateNonWorkingDay(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")

	// 2025-03-09 is a Sunday.
	rep, err := env.service.Generate(ctx, report.Request{From: "2025-03-09", To: "2025-03-09"})
	require.NoError(t, err)

	row := findRow(t, rep.Rows, "EMP-1", "2025-03-09")
	assert.Equal(t, report.StatusNonWorkingDay, row.Status)
}

func TestGenerateStoreNameFallsBackToCode(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-GONE")

	rep, err := env.service.Generate(ctx, report.Request{From: "2025-03-10", To: "2025-03-10"})
	require.NoError(t, err)

	row := findRow(t, rep.Rows, "EMP-1", "2025-03-10")
	assert.Equal(t, "ST-GONE", row.StoreName)
}

func TestGenerateMonthEmitsRowPerEmployeeDay(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")
	env.seedEmployee(t, "EMP-2", "Ben Okafor", "ST-01")

	rep, err := env.service.Generate(ctx, report.Request{Month: "2025-03"})
	require.NoError(t, err)

	// Two employees, 31 days in March.
	assert.Len(t, rep.Rows, 62)
	assert.Equal(t, "2025-03-01", rep.PeriodStart)
	assert.Equal(t, "2025-03-31", rep.PeriodEnd)
}

func TestGenerateStoreFilter(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedStore(t, "ST-01", "Downtown")
	env.seedStore(t, "ST-02", "Uptown")
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")
	env.seedEmployee(t, "EMP-2", "Ben Okafor", "ST-02")

	rep, err := env.service.Generate(ctx, report.Request{
		From: "2025-03-10", To: "2025-03-10", StoreCode: "ST-02",
	})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "EMP-2", rep.Rows[0].EmployeeID)
}

func TestGenerateRejectsMonthAndRange(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	_, err := env.service.Generate(ctx, report.Request{Month: "2025-03", From: "2025-03-10"})
	assert.Error(t, err)

	_, err = env.service.Generate(ctx, report.Request{})
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedStore(t, "ST-01", "Downtown")
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	env.seedRecord(t, "EMP-1", "ST-01", day.Add(9*time.Hour+40*time.Minute), attendance.CheckIn)

	data, filename, contentType, err := env.service.Export(ctx,
		report.Request{From: "2025-03-10", To: "2025-03-10"}, report.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", contentType)
	assert.True(t, strings.HasPrefix(filename, "attendance-report-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Employee Name")
	assert.Contains(t, lines[1], "Ana Martinez")
	assert.Contains(t, lines[1], "Very Late")
}

func TestExportXLSX(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)
	env.seedEmployee(t, "EMP-1", "Ana Martinez", "ST-01")

	data, filename, contentType, err := env.service.Export(ctx,
		report.Request{From: "2025-03-10", To: "2025-03-10"}, report.FormatXLSX)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
}

func TestExportUnknownFormat(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	_, _, _, err := env.service.Export(ctx,
		report.Request{From: "2025-03-10", To: "2025-03-10"}, report.ExportFormat("pdf"))
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}
