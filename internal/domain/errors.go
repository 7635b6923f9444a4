package domain

import "errors"

// Domain errors represent error conditions in rainwater.
// They can be checked with errors.Is.
var (
	// ErrVolumeMismatch is returned when the divide-and-conquer result
	// disagrees with the reference computation.
	ErrVolumeMismatch = errors.New("rainwater: volume mismatch")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("rainwater: invalid configuration")
)
