// Package cowvec_test contains unit tests for the fixed-capacity
// copy-on-write Vec type.
package cowvec_test

import (
	"testing"

	"github.com/katalvlaran/cowmat/cowvec"
	"github.com/stretchr/testify/require"
)

// TestZerosInvalidCapacity ensures Zeros rejects non-positive capacities.
func TestZerosInvalidCapacity(t *testing.T) {
	_, err := cowvec.Zeros[float64](0)                    // attempt zero capacity
	require.ErrorIs(t, err, cowvec.ErrInvalidCapacity)    // expect ErrInvalidCapacity

	_, err = cowvec.Zeros[float64](-3)                    // attempt negative capacity
	require.ErrorIs(t, err, cowvec.ErrInvalidCapacity)    // expect ErrInvalidCapacity
}

// TestZerosOwnedAndZeroFilled verifies Zeros yields an Owned, zero-filled vector.
func TestZerosOwnedAndZeroFilled(t *testing.T) {
	v, err := cowvec.Zeros[float32](4) // create a 4-element owned vector
	require.NoError(t, err)            // assert construction succeeded

	require.True(t, v.IsOwned())      // zeros construction is Owned
	require.False(t, v.IsBorrowed())  // and therefore not Borrowed
	require.Equal(t, 4, v.Cap())      // capacity is fixed to 4

	for i := 0; i < v.Cap(); i++ {
		x, err := v.At(i)              // checked read of every offset
		require.NoError(t, err)        // valid offsets never error
		require.Equal(t, float32(0), x) // every element is the scalar zero
	}
}

// TestBorrowEmptySource ensures Borrow and Own reject empty sources.
func TestBorrowEmptySource(t *testing.T) {
	_, err := cowvec.Borrow[int](nil)                  // borrow of nil slice
	require.ErrorIs(t, err, cowvec.ErrInvalidCapacity) // expect ErrInvalidCapacity

	_, err = cowvec.Own([]int{})                       // owned copy of empty slice
	require.ErrorIs(t, err, cowvec.ErrInvalidCapacity) // expect ErrInvalidCapacity
}

// TestCheckedAccessOutOfRange ensures At and SetAt report ErrOutOfRange.
func TestCheckedAccessOutOfRange(t *testing.T) {
	v, err := cowvec.Zeros[int](3) // 3-element vector
	require.NoError(t, err)

	_, err = v.At(-1)                             // negative offset
	require.ErrorIs(t, err, cowvec.ErrOutOfRange) // expect ErrOutOfRange

	_, err = v.At(3)                              // offset == capacity
	require.ErrorIs(t, err, cowvec.ErrOutOfRange) // expect ErrOutOfRange

	err = v.SetAt(7, 42)                          // far out-of-range write
	require.ErrorIs(t, err, cowvec.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetAtGetRoundTrip validates checked writes followed by reads.
func TestSetAtGetRoundTrip(t *testing.T) {
	v, err := cowvec.Zeros[float64](3)
	require.NoError(t, err)

	require.NoError(t, v.SetAt(1, 7.5)) // checked write at offset 1

	x, err := v.At(1)           // checked read back
	require.NoError(t, err)     // valid offset never errors
	require.Equal(t, 7.5, x)    // value round-trips
	require.Equal(t, 7.5, v.Get(1)) // unchecked read agrees
}

// TestBorrowReadsThrough verifies a Borrowed vector observes the source.
func TestBorrowReadsThrough(t *testing.T) {
	src := []float32{1, 2, 3}
	v, err := cowvec.Borrow(src)
	require.NoError(t, err)

	require.True(t, v.IsBorrowed()) // borrow-construction starts Borrowed

	src[2] = 30                             // mutate the source directly
	require.Equal(t, float32(30), v.Get(2)) // the view reads through
}

// TestPromotionOnSetAt verifies copy-on-write: the source is never written,
// the vector flips to Owned, and promotion happens exactly once.
func TestPromotionOnSetAt(t *testing.T) {
	src := []int{10, 20, 30}
	v, err := cowvec.Borrow(src)
	require.NoError(t, err)

	require.NoError(t, v.SetAt(0, 99)) // first write triggers promotion

	require.True(t, v.IsOwned())      // Borrowed→Owned happened
	require.Equal(t, 10, src[0])      // the borrowed source is untouched
	require.Equal(t, 99, v.Get(0))    // the vector holds the new value
	require.Equal(t, 20, v.Get(1))    // untouched elements were copied over

	src[1] = 2000                     // source mutation after promotion
	require.Equal(t, 20, v.Get(1))    // no longer visible: storage decoupled
}

// TestPromotionOnPut verifies the unchecked writer also promotes.
func TestPromotionOnPut(t *testing.T) {
	src := []float32{1, 2}
	v, err := cowvec.Borrow(src)
	require.NoError(t, err)

	v.Put(1, 5)                          // unchecked write
	require.True(t, v.IsOwned())         // promotion applied
	require.Equal(t, float32(2), src[1]) // source untouched
	require.Equal(t, float32(5), v.Get(1))
}

// TestMutDataPromotes verifies that requesting writable storage promotes,
// while Data on a Borrowed vector still aliases the source.
func TestMutDataPromotes(t *testing.T) {
	src := []float64{4, 5, 6}
	v, err := cowvec.Borrow(src)
	require.NoError(t, err)

	require.Same(t, &src[0], &v.Data()[0]) // read view aliases the source

	buf := v.MutData()                   // writable storage implies a write
	require.True(t, v.IsOwned())         // so promotion already happened
	require.NotSame(t, &src[0], &buf[0]) // returned slice never aliases the source

	buf[0] = -1                       // write through the mutable view
	require.Equal(t, 4.0, src[0])     // source remains untouched
	require.Equal(t, -1.0, v.Get(0))  // vector observes the write
}

// TestOwnCopiesImmediately verifies Own decouples from the source up front.
func TestOwnCopiesImmediately(t *testing.T) {
	src := []int{1, 2, 3}
	v, err := cowvec.Own(src)
	require.NoError(t, err)

	require.True(t, v.IsOwned()) // by-value construction is Owned from the start

	src[0] = 100                  // source mutation after construction
	require.Equal(t, 1, v.Get(0)) // not visible through the vector
}

// TestCloneIndependence ensures Clone returns an Owned deep copy.
func TestCloneIndependence(t *testing.T) {
	src := []float32{1, 2}
	v, err := cowvec.Borrow(src)
	require.NoError(t, err)

	c := v.Clone()               // deep copy of a Borrowed vector
	require.True(t, c.IsOwned()) // clones always own their storage

	c.Put(0, 9)                            // mutate the clone
	require.Equal(t, float32(1), v.Get(0)) // original unaffected
	require.Equal(t, float32(1), src[0])   // source unaffected
}

// TestUncheckedViolationFaults documents the unchecked tier's contract: an
// out-of-range Get is a programmer error and faults at runtime.
func TestUncheckedViolationFaults(t *testing.T) {
	v, err := cowvec.Zeros[int](2)
	require.NoError(t, err)

	require.Panics(t, func() { _ = v.Get(2) }) // offset == capacity faults
}
