// Package lvlattice analyzes periodic lattices (crystallographic unit
// cells): it computes LLL-reduced, near-orthogonal bases and answers
// true minimum-image distance queries under periodic boundary
// conditions.
//
// 🚀 What is lvlattice?
//
//	A small, deterministic numerical library that brings together:
//		• Gram-Schmidt orthogonalization with projection coefficients
//		• Lenstra–Lenstra–Lovász (LLL) basis reduction with the
//		  unimodular mapping between original and reduced bases
//		• Exact periodic minimum-image distance queries over the
//		  reduced cell (3ⁿ neighbor enumeration, 27 images in 3D)
//		• A Structure wrapper owning lattice, atomic coordinates and
//		  species, with lazy reduction and cached derived state
//
// ✨ Why choose lvlattice?
//
//   - Deterministic — fixed enumeration orders, documented tie-breaks
//   - Fail-fast — sentinel errors before any computation, no silent NaNs
//   - Generic dimension n, with 3D crystal cells as the reference case
//   - Built on gonum for the dense linear-algebra plumbing
//
// Under the hood, everything is organized under four subpackages:
//
//	gramschmidt/ — orthogonal bases, projection coefficients, norms
//	lll/         — the reducer: size reduction, Lovász test, mapping
//	minimage/    — periodic nearest-image search over a reduced cell
//	structure/   — lattice + atoms owner, lazy reduction, distances
//
// Dive into each package's doc.go for the algorithm outlines, error
// contracts and runnable examples.
//
//	go get github.com/katalvlaran/lvlattice
package lvlattice
