package vectorstore

import (
	"errors"
	"fmt"
)

// Failure kinds shared by all adapters. Match with errors.Is.
var (
	// ErrConnection is returned when handle construction or a health
	// check fails.
	ErrConnection = errors.New("vectorstore: connection failure")

	// ErrProvisioning is returned when table create, drop, or
	// schema-set fails.
	ErrProvisioning = errors.New("vectorstore: provisioning failure")

	// ErrWrite is returned when a row or batch fails to persist.
	ErrWrite = errors.New("vectorstore: write failure")

	// ErrRead is returned when query execution fails.
	ErrRead = errors.New("vectorstore: read failure")

	// ErrUsage is returned for caller contract violations, such as a
	// delete without any condition. It is raised before any backend
	// call is issued.
	ErrUsage = errors.New("vectorstore: usage error")

	// ErrNotImplemented is returned by operations the backend does not
	// support.
	ErrNotImplemented = errors.New("vectorstore: not implemented")
)

// Error is the structured failure every adapter operation returns. It
// carries the failure kind, the table the operation targeted, and the
// underlying cause, all reachable through errors.Is / errors.As.
type Error struct {
	Kind  error
	Table string
	Cause error
}

// NewError builds an *Error. kind should be one of the sentinel errors
// above; table may be empty for operations without a table target.
func NewError(kind error, table string, cause error) *Error {
	return &Error{Kind: kind, Table: table, Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Table != "" && e.Cause != nil:
		return fmt.Sprintf("%s: table %q: %v", e.Kind, e.Table, e.Cause)
	case e.Table != "":
		return fmt.Sprintf("%s: table %q", e.Kind, e.Table)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// IsUsageError reports whether err is a caller contract violation.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsConnectionError reports whether err is a connection failure.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}
