package progress

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound is returned when an operation references a deleted or
// nonexistent profile ID. No mutation occurs.
var ErrProfileNotFound = errors.New("profile not found")

// ErrNoCurrentProfile is returned by CurrentProfile when no profile is
// selected.
var ErrNoCurrentProfile = errors.New("no current profile")

// PersistenceError reports a failed storage read/write. It is non-fatal:
// the in-memory document stays authoritative for the session and later
// writes retry persistence.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
