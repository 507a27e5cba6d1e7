// SPDX-License-Identifier: MIT
// Package matrix: the multiplication kernel.
// Mul validates operands, allocates the zeroed Owned result, and hands the
// numeric work to one narrow sgemm marshalling call. Everything backend-
// facing (layout, transpose flags, dimensions, strides, scale factors) is
// confined to sgemm so the BLAS implementation can be swapped via
// blas32.Use without touching the Matrix contract.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

const opMul = "Mul"

// Mul computes the product of a (K×M) and b (N×K) as a new Owned N×M
// matrix, where K = a.Rows() = b.Cols() is the shared dimension that lines
// up the operands and does not appear in the result's shape.
//
// Implementation:
//   - Stage 1: Validate operands are non-nil and a.Rows() == b.Cols().
//   - Stage 2: Allocate the zeroed Owned result (N×M).
//   - Stage 3: Delegate the O(K·M·N) work to sgemm.
//
// Behavior highlights:
//   - Operands are never mutated; the result never shares storage with them.
//   - Shape mismatch is the only error surface; the backend reports none.
//
// Inputs:
//   - a: left operand, shape (rows=K, cols=M).
//   - b: right operand, shape (rows=N, cols=K).
//
// Returns:
//   - *Matrix[float32]: new Owned result of shape (rows=N, cols=M).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (a.Rows() != b.Cols()),
//     both wrapped with the operand shapes.
//
// Complexity:
//   - Time O(K·M·N) in the backend, Space O(N·M) for the result.
func Mul(a, b *Matrix[float32]) (*Matrix[float32], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opMul, ErrNilMatrix)
	}
	if a.rows != b.cols {
		return nil, fmt.Errorf("%s: %dx%d times %dx%d: %w",
			opMul, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	out, err := Zeros[float32](b.rows, a.cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMul, err)
	}
	sgemm(a, b, out)

	return out, nil
}

// sgemm marshals the operands into the dense multiply backend.
//
// Preconditions (established by Mul): a is K×M, b is N×K, out is N×M,
// zero-filled, and Owned.
//
// A column-major K×M buffer read row-major is the M×K transpose, so the
// three buffers are presented to the backend as row-major views:
//
//	A: M×K, leading dimension K (the shared dimension)
//	B: K×N, leading dimension N (the result's row count)
//	C: M×N, leading dimension N
//
// with no transpose on either operand, a unit scale on the product, and a
// zero scale on the already-zeroed accumulation target. The backend writes
// the full product into out's storage in place and reports no error; a
// backend fault is fatal to the process.
func sgemm(a, b, out *Matrix[float32]) {
	m, n, k := a.cols, b.rows, a.rows
	blas32.Gemm(blas.NoTrans, blas.NoTrans,
		1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a.Data()},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b.Data()},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: out.MutData()},
	)
}
