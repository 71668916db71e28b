// SPDX-License-Identifier: MIT

package lll

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlattice/gramschmidt"
)

// Result is the outcome of one reduction run.
//
// Basis holds the reduced lattice vectors as rows. Mapping is the
// accumulated unimodular transform, so that
//
//	Basis = Mapping · original
//
// (row form). Mapping is stored in float64 but its entries are exact
// small integers: every update either swaps two rows or subtracts an
// integer multiple of one row from another, starting from the identity.
type Result struct {
	Basis   [][]float64
	Mapping [][]float64
}

// Dim returns the dimension n of the reduced basis.
func (r *Result) Dim() int { return len(r.Basis) }

// MappingInverse materializes the real inverse of the unimodular
// mapping, used to re-express fractional coordinates of the original
// lattice in the reduced basis.
//
// Errors: ErrSingularMapping (internal invariant violation; the mapping
// has determinant ±1 by construction).
func (r *Result) MappingInverse() (*mat.Dense, error) {
	n := r.Dim()
	inv := mat.NewDense(n, n, nil)
	if err := inv.Inverse(asDense(r.Mapping)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMapping, err)
	}

	return inv, nil
}

// MappingDet returns the determinant of the mapping matrix. For a
// correct run it is ±1 up to floating round-off (unimodularity).
func (r *Result) MappingDet() float64 {
	return mat.Det(asDense(r.Mapping))
}

// Reduce runs LLL reduction on basis (n rows, row i = i-th lattice
// vector) and returns the reduced basis together with the unimodular
// mapping. The input is never mutated; opts == nil selects
// DefaultOptions.
//
// Errors:
//   - ErrBadDelta        — δ outside (0.25, 1).
//   - ErrBadBasis        — nil/empty/non-square basis.
//   - ErrDegenerateBasis — linearly dependent basis vectors.
func Reduce(basis [][]float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := validateBasis(basis); err != nil {
		return nil, err
	}

	n := len(basis)
	work := cloneRows(basis)
	mapping := identity(n)

	gs, err := gramschmidt.Orthogonalize(work)
	if err != nil {
		return nil, liftGramSchmidt(err)
	}

	// Cursor over positions 1..n-1. Each iteration size-reduces the
	// current vector against all earlier ones, then either advances on a
	// satisfied Lovász condition or swaps and retreats.
	k := 1
	for k < n {
		// Size reduction: walk earlier vectors from nearest to farthest,
		// updating the μ row incrementally instead of re-running
		// Gram-Schmidt (the orthogonal vectors are unchanged by this step).
		for i := k - 1; i >= 0; i-- {
			if math.Abs(gs.Mu[k][i]) <= sizeReductionBound {
				continue
			}
			q := math.Round(gs.Mu[k][i])
			floats.AddScaled(work[k], -q, work[i])
			floats.AddScaled(mapping[k], -q, mapping[i])
			for j := 0; j < i; j++ {
				gs.Mu[k][j] -= q * gs.Mu[i][j]
			}
			gs.Mu[k][i] -= q
		}

		// Lovász test at position k; exact comparison, no tolerance.
		if gs.Norm[k] >= (o.Delta-gs.Mu[k][k-1]*gs.Mu[k][k-1])*gs.Norm[k-1] {
			k++

			continue
		}

		work[k-1], work[k] = work[k], work[k-1]
		mapping[k-1], mapping[k] = mapping[k], mapping[k-1]
		if err = gs.Update(work, k-1, k); err != nil {
			return nil, liftGramSchmidt(err)
		}
		if k > 1 {
			k--
		}
	}

	return &Result{Basis: work, Mapping: mapping}, nil
}

// IsReduced reports whether basis already satisfies both LLL conditions
// for the given δ: |μ[i][j]| ≤ 0.5 for all j < i, and the Lovász
// inequality at every adjacent pair. Running Reduce on a basis for which
// IsReduced is true performs no swaps and returns an identity mapping.
//
// Errors: ErrBadDelta, ErrBadBasis, ErrDegenerateBasis.
func IsReduced(basis [][]float64, delta float64) (bool, error) {
	o := Options{Delta: delta}
	if err := o.validate(); err != nil {
		return false, err
	}

	gs, err := gramschmidt.Orthogonalize(basis)
	if err != nil {
		return false, liftGramSchmidt(err)
	}

	n := len(basis)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if math.Abs(gs.Mu[i][j]) > sizeReductionBound {
				return false, nil
			}
		}
		if gs.Norm[i] < (delta-gs.Mu[i][i-1]*gs.Mu[i][i-1])*gs.Norm[i-1] {
			return false, nil
		}
	}

	return true, nil
}

// validateBasis mirrors the gramschmidt shape check with the lll sentinel.
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

// liftGramSchmidt converts gramschmidt sentinels into lll sentinels so
// callers only depend on this package's error surface.
func liftGramSchmidt(err error) error {
	switch {
	case errors.Is(err, gramschmidt.ErrDegenerateBasis):
		return ErrDegenerateBasis
	case errors.Is(err, gramschmidt.ErrBadBasis):
		return ErrBadBasis
	default:
		return err
	}
}

// cloneRows deep-copies a row-major basis.
func cloneRows(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i := range src {
		dst[i] = make([]float64, len(src[i]))
		copy(dst[i], src[i])
	}

	return dst
}

// identity allocates an n×n identity in row-slice form.
func identity(n int) [][]float64 {
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}

	return m
}

// asDense copies a square row-slice matrix into a gonum Dense.
func asDense(rows [][]float64) *mat.Dense {
	n := len(rows)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.SetRow(i, rows[i])
	}

	return d
}
