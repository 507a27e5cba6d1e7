// Package cowvec provides a fixed-capacity, copy-on-write numeric vector.
//
// A Vec holds exactly Cap() scalars, fixed at construction, and is in one of
// two storage modes:
//
//   - Borrowed: the vector is a read-through view over caller-supplied
//     storage; the caller's data stays visible through the Vec until the
//     first write.
//   - Owned: the vector exclusively owns its backing buffer.
//
// Every mutating entry point (SetAt, Put, MutData, the in-place kernels)
// promotes a Borrowed vector to Owned by duplicating the full contents
// before the write is applied, so a borrowed source is never modified
// through a Vec. Promotion happens exactly once; Owned is terminal.
//
// Access comes in two tiers. At/SetAt validate the offset and return
// ErrOutOfRange with the offending index and the capacity. Get/Put skip
// validation entirely: the precondition offset < Cap() is the caller's
// contract, intended for loops whose bounds are already derived from the
// same capacity (see matrix.Transpose for the canonical use).
//
// Vec is not safe for concurrent use; the surrounding program must not
// mutate shared backing storage across goroutines while a Borrowed view of
// it is live.
package cowvec
