// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels — wrapped with
// context via fmt.Errorf("...: %w", ErrX) at the public surface — and tests
// MUST check them via errors.Is. Public indexers (At/Set) MUST return, not
// panic; panics are reserved for violations of the unchecked tier's
// contract and for internally unreachable states.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the
	// declared shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates that a supplied buffer or vector does not
	// hold exactly rows*cols elements. This is the one-time construction
	// check standing in for compile-time shape arithmetic; once a Matrix
	// exists, its shape/capacity agreement is trusted.
	ErrShapeMismatch = errors.New("matrix: buffer length does not match shape")

	// ErrDimensionMismatch indicates incompatible operand shapes for Mul:
	// the left operand's row count must equal the right operand's column
	// count (the shared dimension).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
