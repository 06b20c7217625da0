package attendance

import (
	"context"
	"time"
)

// Filter narrows List to a time range and, optionally, one store.
type Filter struct {
	From       time.Time
	To         time.Time
	EmployeeID string
	StoreCode  string
}

// Repository defines data access for the attendance log. Append (Create) is
// the only mutation the recording protocol performs; Update and Delete exist
// for administrative corrections.
type Repository interface {
	// Create appends a new record to the log.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a single record.
	GetByID(ctx context.Context, id string) (Record, error)

	// ListByEmployeeAndDay retrieves an employee's records whose timestamp
	// falls on the given local calendar day, ordered by timestamp.
	// Used by the recording protocol to enforce one check-in and one
	// check-out per day.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]Record, error)

	// List retrieves records matching the filter, ordered by timestamp.
	List(ctx context.Context, filter Filter) ([]Record, error)

	// Update overwrites an existing record (timestamp correction).
	Update(ctx context.Context, record Record) error

	// Delete removes a record from the log.
	Delete(ctx context.Context, id string) error

	// ListUnclosedCheckIns returns check-in records on the given day that
	// have no matching check-out. Used by the nightly sweep job.
	ListUnclosedCheckIns(ctx context.Context, day time.Time) ([]Record, error)
}

// TxRunner executes fn against a consistent snapshot of the log. The
// read-decide-write sequence of the recording protocol runs inside it so two
// rapid scans for the same employee cannot both observe "no check-in yet".
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
