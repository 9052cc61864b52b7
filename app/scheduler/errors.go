package scheduler

import "errors"

// Domain errors surfaced to the caller. Coverage gaps (no free teacher, no
// duty replacement) are never errors; they are recorded outcomes.
var (
	// ErrNotFound marks an unknown absence, request or staff ID.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks bad caller input (date ranges, unknown IDs).
	ErrInvalidInput = errors.New("invalid input")
	// ErrStateConflict marks an operation the current state forbids, such
	// as a decline past the cutoff or allocating a cancelled absence.
	ErrStateConflict = errors.New("state conflict")
)
