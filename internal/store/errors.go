package store

import "fmt"

// PersistenceError marks a failed database read or write. Callers in the
// notification engine treat these as recoverable: the failing step is
// logged and skipped rather than aborting the sweep.
type PersistenceError struct {
	Op  string
	Err error
}

// Error returns the error message for a PersistenceError.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying database error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// persistErr wraps err as a PersistenceError describing op.
func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
