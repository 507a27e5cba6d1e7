// Package cowvec: the Vec type — construction, storage modes, and the
// checked/unchecked access tiers. Kernels over float32 vectors live in
// ops.go; sentinel errors live in errors.go.
package cowvec

import "fmt"

// Scalar constrains Vec element types to the ordinary numeric kinds.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// vecErrorf wraps an underlying error with Vec method context, the offending
// offset, and the declared capacity.
func vecErrorf(method string, i, capacity int, err error) error {
	return fmt.Errorf("Vec.%s(%d): capacity %d: %w", method, i, capacity, err)
}

// Vec is a fixed-capacity vector of exactly len(data) scalars.
// The capacity is set once at construction and never changes; owned reports
// whether data is a private buffer or still aliases borrowed caller storage.
type Vec[T Scalar] struct {
	data  []T  // backing storage, length == capacity, never reallocated to a different length
	owned bool // false while data aliases the borrowed source
}

// Zeros creates an Owned vector of capacity n with every element set to the
// scalar zero value.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate the backing slice (zeroed by the runtime).
// Stage 3 (Finalize): return new Vec or ErrInvalidCapacity.
// Complexity: O(n) time and memory.
func Zeros[T Scalar](n int) (*Vec[T], error) {
	if n <= 0 {
		return nil, vecErrorf("Zeros", n, n, ErrInvalidCapacity)
	}

	return &Vec[T]{data: make([]T, n), owned: true}, nil
}

// Borrow creates a Borrowed vector viewing src without copying. The
// capacity is fixed to len(src). Reads observe the caller's data until the
// first write promotes the vector to Owned; src itself is never written.
// Complexity: O(1).
func Borrow[T Scalar](src []T) (*Vec[T], error) {
	if len(src) == 0 {
		return nil, vecErrorf("Borrow", 0, 0, ErrInvalidCapacity)
	}

	// Alias the caller's storage; length pins the capacity.
	return &Vec[T]{data: src[:len(src):len(src)], owned: false}, nil
}

// Own creates an Owned vector holding a private copy of src. The source and
// the vector are fully decoupled from the start.
// Complexity: O(n) time and memory.
func Own[T Scalar](src []T) (*Vec[T], error) {
	if len(src) == 0 {
		return nil, vecErrorf("Own", 0, 0, ErrInvalidCapacity)
	}
	dup := make([]T, len(src))
	copy(dup, src)

	return &Vec[T]{data: dup, owned: true}, nil
}

// Cap returns the fixed capacity of the vector.
// Complexity: O(1).
func (v *Vec[T]) Cap() int {
	return len(v.data)
}

// IsBorrowed reports whether the vector still views borrowed storage.
// Complexity: O(1).
func (v *Vec[T]) IsBorrowed() bool {
	return !v.owned
}

// IsOwned reports whether the vector exclusively owns its storage.
// Complexity: O(1).
func (v *Vec[T]) IsOwned() bool {
	return v.owned
}

// promote transitions Borrowed→Owned by duplicating the full contents into
// newly allocated storage. No-op when already Owned; the transition happens
// at most once over the vector's lifetime.
func (v *Vec[T]) promote() {
	if v.owned {
		return
	}
	dup := make([]T, len(v.data))
	copy(dup, v.data)
	v.data = dup
	v.owned = true
}

// At retrieves the element at linear offset i.
// Stage 1 (Validate): bounds check 0 ≤ i < Cap().
// Stage 2 (Execute): read from the backing slice.
// Returns ErrOutOfRange (wrapped with offset and capacity) on violation.
// Complexity: O(1).
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vecErrorf("At", i, len(v.data), ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetAt assigns value x at linear offset i.
// Stage 1 (Validate): bounds check 0 ≤ i < Cap().
// Stage 2 (Promote): copy-on-write if currently Borrowed.
// Stage 3 (Execute): write into the (now owned or already owned) slice.
// Complexity: O(1) when Owned; O(n) on the single promoting write.
func (v *Vec[T]) SetAt(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf("SetAt", i, len(v.data), ErrOutOfRange)
	}
	v.promote()
	v.data[i] = x

	return nil
}

// Get reads the element at offset i without validation.
// Contract: the caller guarantees 0 ≤ i < Cap(); a violation is a
// programmer error and faults at runtime rather than returning an error.
// Intended for loops whose bounds are derived from Cap() itself.
// Complexity: O(1).
func (v *Vec[T]) Get(i int) T {
	return v.data[i]
}

// Put writes x at offset i without validation, promoting first if the
// vector is Borrowed. Same caller contract as Get.
// Complexity: O(1) when Owned; O(n) on the single promoting write.
func (v *Vec[T]) Put(i int, x T) {
	v.promote()
	v.data[i] = x
}

// Data returns the backing storage for read-only bulk access (backend
// interop, serialization). While Borrowed, the slice aliases the caller's
// source; callers MUST NOT write through it.
// Complexity: O(1).
func (v *Vec[T]) Data() []T {
	return v.data
}

// MutData returns writable backing storage. Handing out a writable slice
// implies intent to write, so a Borrowed vector is promoted to Owned first;
// the returned slice therefore never aliases the borrowed source.
// Complexity: O(1) when Owned; O(n) on promotion.
func (v *Vec[T]) MutData() []T {
	v.promote()

	return v.data
}

// Clone returns a deep, Owned copy of the vector.
// Complexity: O(n) time and memory.
func (v *Vec[T]) Clone() *Vec[T] {
	dup := make([]T, len(v.data))
	copy(dup, v.data)

	return &Vec[T]{data: dup, owned: true}
}
