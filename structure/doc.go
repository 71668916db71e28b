// Package structure ties the pieces together: a Structure owns a
// periodic lattice, a list of fractional atomic coordinates and a
// parallel list of species tags, and answers true periodic distance
// queries on top of packages lll and minimage.
//
// 🚀 What is a Structure?
//
//	A crystallographic unit cell: an n×n lattice matrix (row i = i-th
//	lattice vector in Cartesian units) plus one fractional coordinate
//	row and one integer species tag per atom. Species tags need not be
//	unique; their only contract is positional parity with the
//	coordinate rows.
//
// ✨ Key features:
//   - GetDistances: minimum-image displacement + distance between two
//     fractional points (not required to lie in [0,1))
//   - AtomDistance: the same query between two stored atoms
//   - lazy reduction: the LLL-reduced basis, its unimodular mapping,
//     the mapping inverse and the image table are computed on first
//     need and cached for the Structure's lifetime
//   - lattice and coordinates are immutable after construction
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/lvlattice/structure"
//	)
//
//	lattice := mat.NewDense(3, 3, []float64{2, 0, 0, 0.1, 1.8, 0, 0.1, 0.2, 0.9})
//	coords := mat.NewDense(2, 3, []float64{0.5, 0.5, 0.5, 1.5, 0.5, 0.5})
//	st, err := structure.New(lattice, coords, []int{1, 0})
//	vec, dist, err := st.GetDistances([]float64{0, 0, 0}, []float64{0.9, 0.9, 0.9})
//
// Concurrency: the cached reduced-basis state is written once, on the
// first distance query. Trigger that first query from a single
// goroutine (or call Reduced eagerly); afterwards queries only read the
// cache. Independent Structure instances never share state.
package structure
