package attendance

import "context"

type Service interface {
	// RecordScan runs the full recording protocol for one scan: employee
	// lookup, activity check, check-type derivation, validation, append.
	RecordScan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// List returns log records for the administrative view.
	List(ctx context.Context, req ListRequest) ([]RecordResponse, error)

	// UpdateRecord corrects a record's timestamp.
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)

	// DeleteRecord removes a record from the log.
	DeleteRecord(ctx context.Context, id string) error
}
