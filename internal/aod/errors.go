package aod

import "errors"

// Error taxonomy for the core package. Callers use errors.Is against
// these sentinels; collaborators wrap them with fmt.Errorf("...: %w", err)
// for additional context before logging at the boundary.
var (
	// ErrInvalidArgument covers a missing handle, an out-of-range angle,
	// or a nil/zero-length MAC.
	ErrInvalidArgument = errors.New("aod: invalid argument")

	// ErrNotFound means a MAC is absent from the beacon registry.
	ErrNotFound = errors.New("aod: not found")

	// ErrNoSpace means the beacon registry is at capacity on Put.
	ErrNoSpace = errors.New("aod: no space")

	// ErrParallelLines means the solver's skew-line denominator fell
	// below ParallelEpsilon.
	ErrParallelLines = errors.New("aod: parallel lines")
)
