// Package matrix provides a column-major Matrix value type over a
// fixed-capacity copy-on-write vector (package cowvec).
//
// A Matrix imposes a rows×cols grid on a cowvec.Vec of exactly rows*cols
// elements. The logical element (r, c) lives at linear offset r + c*rows:
// consecutive rows are contiguous, columns are strided by the row count.
// The shape is validated once at construction and trusted thereafter; it
// never changes over the matrix's lifetime.
//
// Storage-mode semantics are inherited unchanged from cowvec: a Matrix
// built with Borrow reads through to the caller's buffer until the first
// write promotes it to Owned; Zeros, Own, Transpose, and Mul always yield
// Owned results decoupled from any input's lifetime.
//
// Access mirrors cowvec's two tiers. At/Set validate the (row, col) pair
// and return ErrOutOfRange naming the indices and the declared shape; on
// success they delegate to the vector's unchecked tier — the bound check is
// what makes that delegation safe. Get/Put skip validation; their
// precondition (r < Rows(), c < Cols()) is the caller's contract and is
// used internally only where loop bounds are derived from the shape itself.
//
// Multiplication is float32-only and delegates the O(K·M·N) work to the
// BLAS implementation registered with gonum's blas32 package; see Mul.
package matrix
