package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is the sentinel for a missing row on lookup, update or delete.
var ErrNotFound = errors.New("not found")

// FieldError carries one rejected field and the reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a changeset as a unit, one entry per invalid field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func Validation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// StorageKind classifies persistence faults for callers that want to retry
// outside this layer. The layer itself never retries.
type StorageKind string

const (
	StorageConflict     StorageKind = "conflict"     // unique violation
	StoragePrecondition StorageKind = "precondition" // foreign key violation
	StorageRetryable    StorageKind = "retryable"    // serialization/deadlock/timeout
	StorageInternal     StorageKind = "internal"
)

// StorageError wraps any persistence fault that is neither NotFound nor a
// validation failure. It is surfaced upward unchanged.
type StorageError struct {
	Op   string
	Kind StorageKind
	Err  error
}

func (e *StorageError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MapStorage converts a lower-level error into the layer's taxonomy. NotFound
// and ValidationError pass through untouched.
func MapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &StorageError{Op: op, Kind: StorageRetryable, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return &StorageError{Op: op, Kind: StorageConflict, Err: err}
		case "23503":
			return &StorageError{Op: op, Kind: StoragePrecondition, Err: err}
		case "40001", "40P01", "55P03":
			return &StorageError{Op: op, Kind: StorageRetryable, Err: err}
		}
	}
	return &StorageError{Op: op, Kind: StorageInternal, Err: err}
}
