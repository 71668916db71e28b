// SPDX-License-Identifier: MIT
// Package gramschmidt: orthogonalization kernel shared by lattice reduction.
// All exported entry points validate fail-fast and return sentinel errors;
// kernels below the validators assume well-shaped input.

package gramschmidt

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrBadBasis indicates a nil, empty or non-square basis
	// (every vector must have length equal to the number of vectors).
	ErrBadBasis = errors.New("gramschmidt: basis must be square and non-empty")

	// ErrDegenerateBasis indicates linearly dependent input: a zero
	// squared norm appeared during orthogonalization, so projection
	// coefficients are undefined.
	ErrDegenerateBasis = errors.New("gramschmidt: basis vectors are linearly dependent")

	// ErrBadWindow indicates an Update row window outside [0, n).
	ErrBadWindow = errors.New("gramschmidt: row window out of range")
)

// State holds the Gram-Schmidt data for one basis:
//
//   - Ortho[i] — the orthogonal (not normalized) vector b_i
//   - Mu[i][j] — projection coefficient (a_i·b_j)/‖b_j‖² for j < i;
//     entries with j ≥ i are never read and stay zero
//   - Norm[i]  — squared norm ‖b_i‖²
//
// A State is exclusively owned by one reduction run; it is not safe for
// concurrent mutation.
type State struct {
	Ortho [][]float64
	Mu    [][]float64
	Norm  []float64
}

// Dim returns the dimension n of the orthogonalized basis.
func (s *State) Dim() int { return len(s.Norm) }

// newState allocates zeroed Gram-Schmidt storage for dimension n.
func newState(n int) *State {
	s := &State{
		Ortho: make([][]float64, n),
		Mu:    make([][]float64, n),
		Norm:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.Ortho[i] = make([]float64, n)
		s.Mu[i] = make([]float64, n)
	}

	return s
}

// validateBasis checks that basis is non-empty and square.
// Returns ErrBadBasis on violation; never inspects values.
func validateBasis(basis [][]float64) error {
	n := len(basis)
	if n == 0 {
		return ErrBadBasis
	}
	for i := 0; i < n; i++ {
		if len(basis[i]) != n {
			return ErrBadBasis
		}
	}

	return nil
}

// Orthogonalize runs a full Gram-Schmidt pass over basis (n rows, each
// the next basis vector) and returns a fresh State. The input is never
// mutated.
//
// Errors:
//   - ErrBadBasis        — nil/empty/non-square input.
//   - ErrDegenerateBasis — linearly dependent vectors (zero norm).
func Orthogonalize(basis [][]float64) (*State, error) {
	if err := validateBasis(basis); err != nil {
		return nil, err
	}

	s := newState(len(basis))
	if err := s.Update(basis, 0, len(basis)-1); err != nil {
		return nil, err
	}

	return s, nil
}

// Update recomputes rows lo..hi (inclusive) of the Gram-Schmidt data
// after the caller changed the corresponding basis vectors, then
// refreshes the coefficients Mu[i][lo..hi] of every later row i > hi
// against the new orthogonal vectors.
//
// Precondition: the mutation left the span of every basis prefix outside
// [lo, hi] unchanged (true for the adjacent-swap and size-reduction steps
// of LLL), so Ortho[i] for i > hi is still valid and only its projection
// coefficients onto the recomputed window are stale.
//
// Errors:
//   - ErrBadBasis        — shape mismatch with the State.
//   - ErrBadWindow       — lo/hi outside [0, n) or lo > hi.
//   - ErrDegenerateBasis — zero squared norm encountered.
func (s *State) Update(basis [][]float64, lo, hi int) error {
	n := s.Dim()
	if err := validateBasis(basis); err != nil {
		return err
	}
	if len(basis) != n {
		return ErrBadBasis
	}
	if lo < 0 || hi >= n || lo > hi {
		return ErrBadWindow
	}

	// Recompute the window rows in index order: each b_i depends on all
	// earlier b_j, which are up to date by the time row i is reached.
	for i := lo; i <= hi; i++ {
		copy(s.Ortho[i], basis[i])
		for j := 0; j < i; j++ {
			if s.Norm[j] == 0 {
				return ErrDegenerateBasis
			}
			mu := floats.Dot(basis[i], s.Ortho[j]) / s.Norm[j]
			s.Mu[i][j] = mu
			floats.AddScaled(s.Ortho[i], -mu, s.Ortho[j])
		}
		s.Norm[i] = floats.Dot(s.Ortho[i], s.Ortho[i])
		if s.Norm[i] == 0 {
			return ErrDegenerateBasis
		}
	}

	// Later rows keep their orthogonal vectors, but their projections
	// onto the recomputed window changed with it.
	for i := hi + 1; i < n; i++ {
		for j := lo; j <= hi && j < i; j++ {
			s.Mu[i][j] = floats.Dot(basis[i], s.Ortho[j]) / s.Norm[j]
		}
	}

	return nil
}
