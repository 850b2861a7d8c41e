package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrRecordNotFound   = errors.New("record not found")

	// ErrStoreUnavailable wraps transport-level faults from the record
	// store collaborator.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ValidationError reports a required field missing or malformed before
// any collaborator call is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldMessage is a field-level failure reported by the record store for
// a single record of a batch write.
type FieldMessage struct {
	Field   string
	Message string
}

// RecordFailure is one failed record of a batch result.
type RecordFailure struct {
	Message string
	Fields  []FieldMessage
}

// BatchError reports the failed records of a batch write. Successful
// records of the same batch are applied before this is returned.
type BatchError struct {
	Failures []RecordFailure
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msg := f.Message
		for _, fm := range f.Fields {
			msg += fmt.Sprintf(" [%s: %s]", fm.Field, fm.Message)
		}
		parts = append(parts, strings.TrimSpace(msg))
	}
	return fmt.Sprintf("batch write failed for %d record(s): %s", len(e.Failures), strings.Join(parts, "; "))
}
