package interfaces

import "errors"

var (
	// ErrVersionConflict is returned when a technician day changed between the
	// read and the conditional write.
	ErrVersionConflict = errors.New("technician day version changed")

	// ErrConditionFailed is returned when a conditional write on a single item
	// did not hold (stale status, stale location).
	ErrConditionFailed = errors.New("conditional write failed")
)
