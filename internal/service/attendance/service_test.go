package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service        *ServiceImpl
	attendanceRepo *memory.AttendanceRepository
	employeeRepo   *memory.EmployeeRepository
	settingsRepo   *memory.SettingsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	attendanceRepo := memory.NewAttendanceRepository()
	employeeRepo := memory.NewEmployeeRepository()
	settingsRepo := memory.NewSettingsRepository()

	svc := NewAttendanceService(memory.NewTxRunner(), attendanceRepo, employeeRepo, settingsRepo)
	impl, ok := svc.(*ServiceImpl)
	require.True(t, ok)

	return &testEnv{
		service:        impl,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
	}
}

func (e *testEnv) seedEmployee(t *testing.T, id string, status employee.Status) {
	t.Helper()
	_, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		ID:        id,
		FullName:  "Ana Martinez",
		PhotoURL:  "http://localhost:8080/uploads/photos/" + id + ".jpg",
		StoreCode: "ST-01",
		Status:    status,
	})
	require.NoError(t, err)
}

func (e *testEnv) setClock(ts time.Time) {
	e.service.now = func() time.Time { return ts }
}

func (e *testEnv) logSize(t *testing.T) int {
	t.Helper()
	records, err := e.attendanceRepo.List(context.Background(), attendance.Filter{})
	require.NoError(t, err)
	return len(records)
}

func TestRecordScanNormalDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	morning := time.Date(2025, 3, 10, 8, 55, 0, 0, time.Local)
	env.setClock(morning)

	first, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.CheckIn), first.CheckType)
	assert.Equal(t, "Ana Martinez", first.EmployeeName)
	assert.False(t, first.IsLate)
	assert.Equal(t, 0, first.MinutesLate)
	assert.Equal(t, "ST-01", first.Record.StoreCode)

	env.setClock(morning.Add(8 * time.Hour))

	second, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.CheckOut), second.CheckType)

	assert.Equal(t, 2, env.logSize(t))
}

func TestRecordScanThirdScanRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	env.setClock(time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local))
	_, err = env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	env.setClock(time.Date(2025, 3, 10, 17, 5, 0, 0, time.Local))
	_, err = env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	assert.ErrorIs(t, err, attendance.ErrDayCompleted)

	// The rejected scan must not have touched the log.
	assert.Equal(t, 2, env.logSize(t))
}

func TestRecordScanUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "NOBODY"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, 0, env.logSize(t))
}

func TestRecordScanInactiveEmployee(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-9", employee.StatusInactive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-9"})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	assert.Equal(t, 0, env.logSize(t))
}

func TestRecordScanLateCheckIn(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	require.NoError(t, env.settingsRepo.Save(ctx, settings.Settings{
		LoginTime:     "09:00",
		LateThreshold: 15,
		WorkDays:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}))

	// 09:40 is 40 minutes past the login time, beyond the 15 minute threshold.
	env.setClock(time.Date(2025, 3, 10, 9, 40, 0, 0, time.Local))

	resp, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.Equal(t, 40, resp.MinutesLate)
}

func TestRecordScanCheckOutNeverLate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	// Even hours past the login time, a check-out carries no lateness.
	env.setClock(time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local))
	resp, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
	assert.Equal(t, 0, resp.MinutesLate)
}

func TestRecordScanNewDayStartsFresh(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	env.setClock(time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local))
	_, err = env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	// Yesterday's completed pair does not block a new check-in.
	env.setClock(time.Date(2025, 3, 11, 8, 58, 0, 0, time.Local))
	resp, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.CheckIn), resp.CheckType)
}

func TestRecordScanMissingEmployeeID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{})
	assert.Error(t, err)
}

func TestRecordScanDefaultSettingsWhenUnconfigured(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	// No settings saved: the 09:00 / 15 minute defaults apply.
	env.setClock(time.Date(2025, 3, 10, 9, 20, 0, 0, time.Local))
	resp, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.Equal(t, 20, resp.MinutesLate)
}

func TestUpdateRecordCorrectsTimestamp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	created, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	corrected := time.Date(2025, 3, 10, 8, 45, 0, 0, time.Local)
	updated, err := env.service.UpdateRecord(ctx, created.Record.ID, attendance.UpdateRecordRequest{
		Timestamp: corrected.Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, corrected.Format(time.RFC3339), updated.Timestamp)
}

func TestUpdateRecordRejectsDayCollision(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	_, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	env.setClock(time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local))
	second, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	// Moving the second check-in onto a day that already holds one must fail.
	_, err = env.service.UpdateRecord(ctx, second.Record.ID, attendance.UpdateRecordRequest{
		Timestamp: time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)

	records, err := env.attendanceRepo.ListByEmployeeAndDay(ctx, "EMP-1", time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestUpdateRecordSameDayReorderAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	checkIn, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	env.setClock(time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local))
	_, err = env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	// A correction within the same day collides only with itself.
	corrected := time.Date(2025, 3, 10, 8, 50, 0, 0, time.Local)
	updated, err := env.service.UpdateRecord(ctx, checkIn.Record.ID, attendance.UpdateRecordRequest{
		Timestamp: corrected.Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, corrected.Format(time.RFC3339), updated.Timestamp)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seedEmployee(t, "EMP-1", employee.StatusActive)

	env.setClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	created, err := env.service.RecordScan(ctx, attendance.ScanRequest{EmployeeID: "EMP-1"})
	require.NoError(t, err)

	require.NoError(t, env.service.DeleteRecord(ctx, created.Record.ID))
	assert.Equal(t, 0, env.logSize(t))

	err = env.service.DeleteRecord(ctx, created.Record.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
