// Package cowmat is a compact linear-algebra value-type library built on a
// fixed-capacity, copy-on-write numeric buffer.
//
// 🚀 What is cowmat?
//
//	A small, deterministic library that lets callers treat borrowed external
//	data and owned computed data uniformly as vectors and matrices:
//		• cowvec: fixed-capacity vectors that either borrow caller storage or
//		  own a private buffer, promoting borrow→own on the first write
//		• matrix: a two-dimensional, column-major view over a cowvec with
//		  checked and unchecked element access
//		• transpose & multiplication that always produce freshly owned
//		  results, decoupled from any input's lifetime
//		• bulk float32 kernels (dot, norm, distance, scale) backed by SIMD
//
// ✨ Why choose cowmat?
//
//   - Zero-surprise ownership – a borrowed source is never written through;
//     mutation copies first, exactly once
//   - Two access tiers – checked access returns descriptive errors, the
//     unchecked tier costs nothing inside loops whose bounds are already
//     shape-derived
//   - Swappable multiply backend – the gemm call goes through gonum's blas32,
//     so an accelerated BLAS can be installed with blas32.Use without
//     touching the matrix contract
//
// Under the hood, everything is organized under two subpackages:
//
//	cowvec/ — fixed-capacity copy-on-write vector + float32 bulk kernels
//	matrix/ — column-major Matrix over a cowvec: indexing, transpose, Mul
//
// Quick sketch:
//
//	buf := []float32{1, 2, 3, 4, 5, 6}
//	a, _ := matrix.Borrow(3, 2, buf) // view: 3 rows, 2 cols, no copy
//	_ = a.Set(0, 0, 9)               // promotes: buf stays untouched
//	t := a.Transpose()               // fresh owned 2×3 result
//
//	go get github.com/katalvlaran/cowmat
package cowmat
