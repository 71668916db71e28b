// Package gramschmidt computes orthogonal bases and projection
// coefficients via the classical Gram-Schmidt process, in the exact
// (non-normalized) form used by lattice-reduction algorithms.
//
// 🚀 What is Gram-Schmidt orthogonalization?
//
//	Given linearly independent vectors a_0..a_{n-1}, the process builds
//	orthogonal vectors b_0..b_{n-1} spanning the same space:
//	  b_0 = a_0
//	  b_i = a_i − Σ_{j<i} μ[i][j]·b_j,  μ[i][j] = (a_i·b_j)/(b_j·b_j)
//	The b_i are NOT unit length: lattice reduction needs the raw squared
//	norms ‖b_i‖² and the projection coefficients μ, so no normalization
//	is performed.
//
// ✨ Key features:
//   - Orthogonalize: one full pass over an n-vector basis
//   - State.Update: incremental recompute of a row window after the
//     caller mutates or swaps basis vectors (the LLL inner step)
//   - arbitrary dimension n, deterministic loop order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlattice/gramschmidt"
//
//	gs, err := gramschmidt.Orthogonalize(basis) // basis: n rows of length n
//	if err != nil {
//	  // ErrDegenerateBasis / ErrBadBasis
//	}
//	_ = gs.Mu   // lower-triangular projection coefficients
//	_ = gs.Norm // squared norms ‖b_i‖²
//
// Performance:
//
//   - Time:   O(n³) full pass, O(w·n²) for a window of w rows
//   - Memory: O(n²)
//
// Degenerate (linearly dependent) input is a fatal precondition
// violation and reported as ErrDegenerateBasis, never as silent NaNs.
package gramschmidt
