package records

import (
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// splitBatch separates a batch result into the records that succeeded and
// the failures, with field-level messages when the store supplied them.
// Successful records must never be discarded because siblings failed.
func splitBatch(res ports.BatchResult) (succeeded []ports.RawRecord, failed []domain.RecordFailure) {
	for _, r := range res.Results {
		if r.Success {
			succeeded = append(succeeded, r.Data)
			continue
		}
		failure := domain.RecordFailure{Message: r.Message}
		for _, fe := range r.Errors {
			failure.Fields = append(failure.Fields, domain.FieldMessage{
				Field:   fe.FieldLabel,
				Message: fe.Message,
			})
		}
		failed = append(failed, failure)
	}
	return succeeded, failed
}

// firstRecord resolves a single-record write: the record when it
// succeeded, a BatchError carrying the store's messages when it did not.
func firstRecord(res ports.BatchResult) (ports.RawRecord, error) {
	succeeded, failed := splitBatch(res)
	if len(succeeded) > 0 {
		return succeeded[0], nil
	}
	if len(failed) > 0 {
		return nil, &domain.BatchError{Failures: failed}
	}
	return nil, &domain.BatchError{Failures: []domain.RecordFailure{{Message: "empty batch result"}}}
}
