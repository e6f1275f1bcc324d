package usecase

import (
	"fmt"

	"conserta_ja/internal/domain/entities"
)

// StateError wraps a lifecycle sentinel with the authoritative status the
// job actually had when the operation was rejected. Every rejected
// transition surfaces this so clients can resynchronize instead of retrying
// blind; errors.Is against the sentinel keeps working through Unwrap.
type StateError struct {
	Err    error
	Actual entities.JobStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v (actual status: %s)", e.Err, e.Actual)
}

func (e *StateError) Unwrap() error { return e.Err }

func stateErr(err error, j entities.Job) error {
	return &StateError{Err: err, Actual: j.Status}
}

// ActualStatusOf extracts the authoritative status from an error chain, if
// any rejected transition recorded one.
func ActualStatusOf(err error) (entities.JobStatus, bool) {
	for err != nil {
		if se, ok := err.(*StateError); ok {
			return se.Actual, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return "", false
		}
		err = u.Unwrap()
	}
	return "", false
}
