package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies the errors that can occur around a verification
// run. The checker itself never fails; these cover configuration, snapshot
// transport and storage.
type ErrorCategory int

const (
	// ErrorConfig indicates invalid options or an unreadable config file.
	ErrorConfig ErrorCategory = iota + 1

	// ErrorCodec indicates a snapshot that could not be encoded or decoded,
	// such as truncated wire data or a boundary value of the wrong width.
	ErrorCodec

	// ErrorCompression indicates errors during snapshot compression or
	// decompression.
	ErrorCompression

	// ErrorStorage indicates errors related to underlying storage operations
	// such as file I/O, disk space or permissions.
	ErrorStorage

	// ErrorShard indicates a shard worker that stopped before finishing,
	// usually because its context was cancelled.
	ErrorShard
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorConfig:
		return "config"
	case ErrorCodec:
		return "codec"
	case ErrorCompression:
		return "compression"
	case ErrorStorage:
		return "storage"
	case ErrorShard:
		return "shard"
	default:
		return "unknown"
	}
}

// CheckError is a categorized error raised outside the checker's hot path.
type CheckError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// New creates a CheckError stamped with the current time.
func New(category ErrorCategory, operation string, err error) *CheckError {
	return &CheckError{Err: err, Operation: operation, Category: category, Timestamp: time.Now()}
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *CheckError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStorage:
		// Storage errors might be temporary (e.g., disk full).
		return true
	case ErrorShard:
		// A cancelled run can be started again from scratch.
		return true
	default:
		return false
	}
}
