package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/storetrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository. The attendance_records table
// carries a unique index on (employee_id, day, type) so a duplicate event
// for the same employee-day is rejected by the database even if two
// transactions race past the service checks.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, store_code, timestamp, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.StoreCode,
		record.Timestamp,
		record.Type,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateEvent
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, store_code, timestamp, type, created_at, updated_at
		FROM attendance_records
		WHERE id = $1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.StoreCode,
		&record.Timestamp, &record.Type, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// ListByEmployeeAndDay implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	start, end := dayBounds(day)
	query := `
		SELECT id, employee_id, store_code, timestamp, type, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records for day: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, store_code, timestamp, type, created_at, updated_at
		FROM attendance_records
		WHERE 1=1
	`
	var args []any

	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND timestamp <= $%d", len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.StoreCode != "" {
		args = append(args, filter.StoreCode)
		query += fmt.Sprintf(" AND store_code = $%d", len(args))
	}
	query += " ORDER BY timestamp ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET timestamp = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, record.ID, record.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateEvent
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListUnclosedCheckIns implements attendance.Repository.
func (a *attendanceRepository) ListUnclosedCheckIns(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	start, end := dayBounds(day)
	query := `
		SELECT ci.id, ci.employee_id, ci.store_code, ci.timestamp, ci.type, ci.created_at, ci.updated_at
		FROM attendance_records ci
		WHERE ci.type = 'check-in'
		  AND ci.timestamp >= $1
		  AND ci.timestamp < $2
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_records co
			WHERE co.employee_id = ci.employee_id
			  AND co.type = 'check-out'
			  AND co.timestamp >= $1
			  AND co.timestamp < $2
		  )
		ORDER BY ci.timestamp ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclosed check-ins: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.StoreCode,
			&record.Timestamp, &record.Type, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}

// dayBounds returns the half-open [start, end) range of the local calendar
// day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
