// SPDX-License-Identifier: MIT
// Package cowvec: sentinel error set.
// This file defines ONLY package-level sentinel errors used across cowvec.
// All operations MUST return these sentinels (wrapped with context via
// fmt.Errorf("...: %w", ErrX) at the public surface) and tests MUST check
// them via errors.Is. Panics are reserved for violations of the unchecked
// tier's contract, which the Go runtime reports itself.

package cowvec

import "errors"

var (
	// ErrInvalidCapacity is returned when a constructor is asked for a
	// vector of zero or negative capacity, or handed an empty source slice.
	ErrInvalidCapacity = errors.New("cowvec: capacity must be > 0")

	// ErrOutOfRange indicates that a checked offset is outside [0, Cap()).
	// Public checked accessors (At/SetAt) MUST return this, not panic.
	ErrOutOfRange = errors.New("cowvec: offset out of range")

	// ErrCapacityMismatch indicates that a two-operand kernel received
	// vectors of different capacities.
	ErrCapacityMismatch = errors.New("cowvec: capacity mismatch")

	// ErrNilVec indicates that a nil *Vec was passed to a kernel.
	ErrNilVec = errors.New("cowvec: nil vector")
)
