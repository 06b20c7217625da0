package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
)

func TestAttendanceCreateRejectsDuplicateEvent(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	_, err := repo.Create(ctx, attendance.Record{
		ID:         "rec-1",
		EmployeeID: "EMP-1",
		StoreCode:  "ST-01",
		Timestamp:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
		Type:       attendance.CheckIn,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Record{
		ID:         "rec-2",
		EmployeeID: "EMP-1",
		StoreCode:  "ST-01",
		Timestamp:  time.Date(2025, 3, 10, 9, 5, 0, 0, time.Local),
		Type:       attendance.CheckIn,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)
}

func TestAttendanceUpdateRejectsDayCollision(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	first, err := repo.Create(ctx, attendance.Record{
		ID:         "rec-1",
		EmployeeID: "EMP-1",
		StoreCode:  "ST-01",
		Timestamp:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local),
		Type:       attendance.CheckIn,
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, attendance.Record{
		ID:         "rec-2",
		EmployeeID: "EMP-1",
		StoreCode:  "ST-01",
		Timestamp:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local),
		Type:       attendance.CheckIn,
	})
	require.NoError(t, err)

	second.Timestamp = time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local)
	assert.ErrorIs(t, repo.Update(ctx, second), attendance.ErrDuplicateEvent)

	// Moving a record within its own day is not a collision.
	first.Timestamp = time.Date(2025, 3, 10, 8, 45, 0, 0, time.Local)
	require.NoError(t, repo.Update(ctx, first))

	day, err := repo.ListByEmployeeAndDay(ctx, "EMP-1", time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, day, 1)
}
