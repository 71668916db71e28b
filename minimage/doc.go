// Package minimage answers minimum-image distance queries under
// periodic boundary conditions: among all periodic translations of one
// point, find the image closest to another point.
//
// 🚀 What is the minimum-image problem?
//
//	In a periodic cell, every point has infinitely many images at
//	integer lattice offsets. The distance between two fractional
//	positions is the length of the SHORTEST Cartesian vector connecting
//	any pair of images. With a near-orthogonal (LLL-reduced) cell the
//	nearest image is guaranteed to lie within one layer of neighboring
//	cells, so enumerating the 3ⁿ offsets {−1,0,1}ⁿ is exact.
//
// ✨ Key features:
//   - Solver precomputes the Cartesian image-shift table once and is
//     reused across many queries
//   - fixed lexicographic enumeration order with first-occurrence
//     tie-break: results are fully deterministic
//   - fractional inputs may lie outside [0,1); no wrapping is required
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlattice/minimage"
//
//	res, _ := lll.Reduce(lattice, nil)
//	inv, _ := res.MappingInverse()
//	sol, err := minimage.NewSolver(res.Basis, inv)
//	vec, dist, err := sol.Shortest(fracA, fracB)
//
// Performance:
//
//   - Setup: O(3ⁿ·n²) — 27 shift vectors at n=3
//   - Query: O(3ⁿ·n)
//
// The brute-force single-layer search is only valid for cells that are
// not extremely skewed; feeding a reduced basis (package lll) satisfies
// that precondition, which is why reduction is a prerequisite for
// correct periodic distance queries. Package structure wires the two
// together.
package minimage
