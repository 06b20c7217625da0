package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
)

// AttendanceRepository keeps the log in memory. Used by tests and as the
// reference implementation of the repository contract.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Record),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID &&
			existing.Type == record.Type &&
			existing.SameDay(record.Timestamp) {
			return attendance.Record{}, attendance.ErrDuplicateEvent
		}
	}

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.Record
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.SameDay(day) {
			out = append(out, record)
		}
	}
	sortByTimestamp(out)
	return out, nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.Record
	for _, record := range r.records {
		if !filter.From.IsZero() && record.Timestamp.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && record.Timestamp.After(filter.To) {
			continue
		}
		if filter.EmployeeID != "" && record.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.StoreCode != "" && record.StoreCode != filter.StoreCode {
			continue
		}
		out = append(out, record)
	}
	sortByTimestamp(out)
	return out, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrRecordNotFound
	}

	for _, existing := range r.records {
		if existing.ID != record.ID &&
			existing.EmployeeID == record.EmployeeID &&
			existing.Type == record.Type &&
			existing.SameDay(record.Timestamp) {
			return attendance.ErrDuplicateEvent
		}
	}

	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *AttendanceRepository) ListUnclosedCheckIns(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checkedOut := make(map[string]bool)
	for _, record := range r.records {
		if record.Type == attendance.CheckOut && record.SameDay(day) {
			checkedOut[record.EmployeeID] = true
		}
	}

	var out []attendance.Record
	for _, record := range r.records {
		if record.Type == attendance.CheckIn && record.SameDay(day) && !checkedOut[record.EmployeeID] {
			out = append(out, record)
		}
	}
	sortByTimestamp(out)
	return out, nil
}

func sortByTimestamp(records []attendance.Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
}
