// SPDX-License-Identifier: MIT
// Package cowvec: bulk float32 kernels over whole vectors.
// All kernels validate operands up front, then delegate the numeric work to
// the vek SIMD library (AVX2/NEON with a pure-Go fallback). Mutating kernels
// route through MutData so copy-on-write promotion applies to the bulk path
// exactly as it does to single-element writes.

package cowvec

import (
	"fmt"
	"math"

	"github.com/viterin/vek/vek32"
)

// Operation name constants for unified error wrapping.
const (
	opDot      = "Dot"
	opDistance = "Distance"
	opCosine   = "CosineSimilarity"
	opAxpy     = "Axpy"
)

// opErrorf wraps err with a kernel tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatePair checks that a and b are non-nil and share one capacity.
func validatePair(tag string, a, b *Vec[float32]) error {
	if a == nil || b == nil {
		return opErrorf(tag, ErrNilVec)
	}
	if a.Cap() != b.Cap() {
		return opErrorf(tag, fmt.Errorf("%d vs %d: %w", a.Cap(), b.Cap(), ErrCapacityMismatch))
	}

	return nil
}

// Dot computes the inner product sum(a[i]*b[i]) over the full capacity.
// Errors: ErrNilVec, ErrCapacityMismatch.
// Complexity: O(n), SIMD-accelerated where available.
func Dot(a, b *Vec[float32]) (float32, error) {
	if err := validatePair(opDot, a, b); err != nil {
		return 0, err
	}

	return vek32.Dot(a.Data(), b.Data()), nil
}

// Norm returns the Euclidean (L2) norm of v, or 0 for a nil vector.
// Complexity: O(n).
func Norm(v *Vec[float32]) float32 {
	if v == nil {
		return 0
	}

	return vek32.Norm(v.Data())
}

// Distance returns the Euclidean distance between a and b.
// Errors: ErrNilVec, ErrCapacityMismatch.
// Complexity: O(n).
func Distance(a, b *Vec[float32]) (float32, error) {
	if err := validatePair(opDistance, a, b); err != nil {
		return 0, err
	}

	return vek32.Distance(a.Data(), b.Data()), nil
}

// CosineSimilarity returns the cosine of the angle between a and b in
// [-1, 1]. A zero vector has no direction; vek yields NaN there, which is
// normalized to 0 so callers can treat "no direction" as orthogonal.
// Errors: ErrNilVec, ErrCapacityMismatch.
// Complexity: O(n).
func CosineSimilarity(a, b *Vec[float32]) (float32, error) {
	if err := validatePair(opCosine, a, b); err != nil {
		return 0, err
	}
	sim := vek32.CosineSimilarity(a.Data(), b.Data())
	if math.IsNaN(float64(sim)) {
		return 0, nil
	}

	return sim, nil
}

// Scale multiplies every element of v by s in place. A Borrowed vector is
// promoted first, so the original source is never scaled.
// Complexity: O(n), plus the one-time promotion copy when Borrowed.
func Scale(v *Vec[float32], s float32) {
	if v == nil {
		return
	}
	vek32.MulNumber_Inplace(v.MutData(), s)
}

// Axpy computes y = y + alpha*x in place over the full capacity, promoting
// y first when Borrowed. x is never mutated.
// Errors: ErrNilVec, ErrCapacityMismatch.
// Complexity: O(n) time, O(n) scratch for the scaled copy of x.
func Axpy(alpha float32, x, y *Vec[float32]) error {
	if err := validatePair(opAxpy, x, y); err != nil {
		return err
	}
	vek32.Add_Inplace(y.MutData(), vek32.MulNumber(x.Data(), alpha))

	return nil
}
