// Package matrix: the Matrix type — construction, shape, the
// checked/unchecked 2D access tiers, and transpose. Multiplication lives in
// impl_mul.go; sentinel errors live in errors.go.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cowmat/cowvec"
)

// matrixErrorf wraps an underlying error with Matrix method context, the
// offending indices, and the declared shape.
func matrixErrorf(method string, r, c, rows, cols int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): shape %dx%d: %w", method, r, c, rows, cols, err)
}

// Matrix is a rows×cols, column-major matrix over a fixed-capacity
// copy-on-write vector. The invariant rows*cols == vec.Cap() is established
// by every constructor and never re-checked afterwards.
type Matrix[T cowvec.Scalar] struct {
	rows, cols int            // declared shape, immutable after construction
	vec        *cowvec.Vec[T] // backing storage, capacity == rows*cols
}

// offset maps (r, c) to the column-major linear offset r + c*rows.
// Callers are responsible for r < rows and c < cols.
func (m *Matrix[T]) offset(r, c int) int {
	return r + c*m.rows
}

// Zeros creates an Owned rows×cols matrix with every entry set to the
// scalar zero value.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the zeroed backing vector.
// Stage 3 (Finalize): return new Matrix or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func Zeros[T cowvec.Scalar](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("Zeros", rows, cols, rows, cols, ErrInvalidDimensions)
	}
	v, err := cowvec.Zeros[T](rows * cols)
	if err != nil {
		return nil, matrixErrorf("Zeros", rows, cols, rows, cols, err)
	}

	return &Matrix[T]{rows: rows, cols: cols, vec: v}, nil
}

// Borrow creates a Borrowed rows×cols view over src without copying. src is
// read column-major: src[r + c*rows] is element (r, c). The caller's buffer
// stays visible through the matrix until the first write promotes it.
// Stage 1 (Validate): rows, cols > 0 and len(src) == rows*cols.
// Stage 2 (Finalize): wrap a borrowing vector.
// Complexity: O(1).
func Borrow[T cowvec.Scalar](rows, cols int, src []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("Borrow", rows, cols, rows, cols, ErrInvalidDimensions)
	}
	if len(src) != rows*cols {
		return nil, fmt.Errorf("Matrix.Borrow: len %d for shape %dx%d: %w",
			len(src), rows, cols, ErrShapeMismatch)
	}
	v, err := cowvec.Borrow(src)
	if err != nil {
		return nil, matrixErrorf("Borrow", rows, cols, rows, cols, err)
	}

	return &Matrix[T]{rows: rows, cols: cols, vec: v}, nil
}

// Own creates an Owned rows×cols matrix holding a private copy of src
// (column-major, as in Borrow). The source and the matrix are decoupled
// from the start.
// Complexity: O(rows*cols) time and memory.
func Own[T cowvec.Scalar](rows, cols int, src []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("Own", rows, cols, rows, cols, ErrInvalidDimensions)
	}
	if len(src) != rows*cols {
		return nil, fmt.Errorf("Matrix.Own: len %d for shape %dx%d: %w",
			len(src), rows, cols, ErrShapeMismatch)
	}
	v, err := cowvec.Own(src)
	if err != nil {
		return nil, matrixErrorf("Own", rows, cols, rows, cols, err)
	}

	return &Matrix[T]{rows: rows, cols: cols, vec: v}, nil
}

// FromVec imposes a rows×cols shape on an existing vector. The vector is
// wrapped, not copied, so its current storage mode carries over.
// Returns ErrShapeMismatch when the vector's capacity is not rows*cols.
// Complexity: O(1).
func FromVec[T cowvec.Scalar](rows, cols int, v *cowvec.Vec[T]) (*Matrix[T], error) {
	if v == nil {
		return nil, matrixErrorf("FromVec", rows, cols, rows, cols, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("FromVec", rows, cols, rows, cols, ErrInvalidDimensions)
	}
	if v.Cap() != rows*cols {
		return nil, fmt.Errorf("Matrix.FromVec: capacity %d for shape %dx%d: %w",
			v.Cap(), rows, cols, ErrShapeMismatch)
	}

	return &Matrix[T]{rows: rows, cols: cols, vec: v}, nil
}

// Rows returns the declared row count.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared column count.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// IsBorrowed reports whether the backing vector still views borrowed storage.
func (m *Matrix[T]) IsBorrowed() bool { return m.vec.IsBorrowed() }

// IsOwned reports whether the backing vector exclusively owns its storage.
func (m *Matrix[T]) IsOwned() bool { return m.vec.IsOwned() }

// Vec exposes the backing vector for linear/bulk operations (e.g. the
// cowvec float32 kernels). Storage-mode semantics apply unchanged.
func (m *Matrix[T]) Vec() *cowvec.Vec[T] { return m.vec }

// Data returns the column-major backing storage for read-only bulk access.
// While Borrowed it aliases the caller's source; callers MUST NOT write
// through it.
func (m *Matrix[T]) Data() []T { return m.vec.Data() }

// MutData returns writable column-major storage, promoting first when
// Borrowed (returning a writable buffer implies intent to write).
func (m *Matrix[T]) MutData() []T { return m.vec.MutData() }

// At retrieves the element at (r, c).
// Stage 1 (Validate): 0 ≤ r < Rows() and 0 ≤ c < Cols(); on violation
// return ErrOutOfRange wrapped with the indices and the declared shape.
// Stage 2 (Execute): delegate to the vector's unchecked read — the bound
// check above is exactly what makes the unchecked offset safe.
// Complexity: O(1).
func (m *Matrix[T]) At(r, c int) (T, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		var zero T
		return zero, matrixErrorf("At", r, c, m.rows, m.cols, ErrOutOfRange)
	}

	return m.vec.Get(m.offset(r, c)), nil
}

// Set assigns value x at (r, c), promoting a Borrowed matrix to Owned
// before the write. Same validation contract as At.
// Complexity: O(1) when Owned; O(rows*cols) on the single promoting write.
func (m *Matrix[T]) Set(r, c int, x T) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return matrixErrorf("Set", r, c, m.rows, m.cols, ErrOutOfRange)
	}
	m.vec.Put(m.offset(r, c), x)

	return nil
}

// Get reads element (r, c) without validation.
// Contract: the caller guarantees r < Rows() and c < Cols(); a violation
// faults at runtime. Reserved for loops whose bounds come from the shape.
func (m *Matrix[T]) Get(r, c int) T {
	return m.vec.Get(m.offset(r, c))
}

// Put writes element (r, c) without validation, promoting first when
// Borrowed. Same caller contract as Get.
func (m *Matrix[T]) Put(r, c int, x T) {
	m.vec.Put(m.offset(r, c), x)
}

// Transpose returns a new Owned cols×rows matrix with
// out(c, r) = m(r, c) for every valid (r, c) of the input.
// The loops visit every pair exactly once with bounds taken from the
// receiver's declared shape, which is what makes the unchecked accesses
// provably in range. The input is never mutated and never shares storage
// with the result.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out, err := Zeros[T](m.cols, m.rows)
	if err != nil {
		// Unreachable: the receiver's shape was validated at construction.
		panic(err)
	}
	var r, c int // loop iterators (deterministic r→c order)
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.cols; c++ {
			out.Put(c, r, m.Get(r, c))
		}
	}

	return out
}

// Clone returns a deep, Owned copy of the matrix with the same shape.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, vec: m.vec.Clone()}
}

// Equal reports whether a and b have the same shape and identical elements.
// Nil matrices compare equal only to nil.
// Complexity: O(rows*cols).
func Equal[T cowvec.Scalar](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad { // flat comparison: same shape implies same layout
		if ad[i] != bd[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var r, c int
	for r = 0; r < m.rows; r++ { // iterate over rows
		b.WriteByte('[')
		for c = 0; c < m.cols; c++ { // iterate over columns
			fmt.Fprintf(&b, "%v", m.Get(r, c))
			if c < m.cols-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
