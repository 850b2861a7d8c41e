package ports

import "context"

// Entity kinds understood by the record store.
const (
	KindTask     = "task"
	KindCategory = "category"
)

// RawRecord is an entity as the record store sees it: wire field names,
// string-encoded enums and booleans. The repositories own the mapping to
// domain entities.
type RawRecord = map[string]any

// FieldError is a field-level message attached to a failed record.
type FieldError struct {
	FieldLabel string
	Message    string
}

// RecordResult is the outcome for one record of a batch write.
type RecordResult struct {
	Success bool
	Data    RawRecord
	Errors  []FieldError
	Message string
}

// BatchResult is the record store's response shape for writes. A batch
// may mix successes and failures; Success is true only when every record
// succeeded.
type BatchResult struct {
	Success bool
	Results []RecordResult
}

// RecordStore is the persistence collaborator: either the in-memory mock
// or a SQL-backed store. The core depends only on this shape.
type RecordStore interface {
	Ping(ctx context.Context) error
	FetchAll(ctx context.Context, kind string) ([]RawRecord, error)
	FetchOne(ctx context.Context, kind string, id int) (RawRecord, error)
	CreateOne(ctx context.Context, kind string, fields RawRecord) (BatchResult, error)
	UpdateOne(ctx context.Context, kind string, fields RawRecord) (BatchResult, error)
	DeleteOne(ctx context.Context, kind string, ids []int) (BatchResult, error)
}
