package lll_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/lll"
)

const tol = 1e-9

// referenceCell is the skewed 3×3 lattice used across the suite
// (rows = lattice vectors). Its third Gram-Schmidt norm is small enough
// to force swap steps at δ = 0.75.
func referenceCell() [][]float64 {
	return [][]float64{
		{2, 0, 0},
		{0.1, 1.8, 0},
		{0.1, 0.2, 0.9},
	}
}

// mulRows computes a·b for row-slice matrices (used to verify the
// mapping relation reduced = Mapping · original).
func mulRows(a, b [][]float64) [][]float64 {
	n := len(a)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// TestReduce_BadDelta verifies that δ outside the open interval
// (0.25, 1) is rejected, including both exact endpoints.
func TestReduce_BadDelta(t *testing.T) {
	basis := referenceCell()

	for _, delta := range []float64{0.25, 1.0, 0, -0.5, 1.5} {
		opts := lll.Options{Delta: delta}
		_, err := lll.Reduce(basis, &opts)
		assert.ErrorIs(t, err, lll.ErrBadDelta, "delta=%v must be rejected", delta)
	}
}

// TestReduce_BadBasis verifies fail-fast shape validation.
func TestReduce_BadBasis(t *testing.T) {
	_, err := lll.Reduce(nil, nil)
	assert.ErrorIs(t, err, lll.ErrBadBasis)

	_, err = lll.Reduce([][]float64{{1, 0}, {1}}, nil)
	assert.ErrorIs(t, err, lll.ErrBadBasis)
}

// TestReduce_Degenerate verifies that a linearly dependent basis is a
// fatal precondition violation.
func TestReduce_Degenerate(t *testing.T) {
	_, err := lll.Reduce([][]float64{
		{1, 1, 0},
		{2, 2, 0},
		{0, 0, 1},
	}, nil)
	assert.ErrorIs(t, err, lll.ErrDegenerateBasis)
}

// TestReduce_ReductionConditions verifies that after a run both LLL
// conditions hold: |μ[i][j]| ≤ 0.5 for all j < i and the Lovász
// inequality at every adjacent pair (checked by IsReduced through a
// fresh, full Gram-Schmidt pass).
func TestReduce_ReductionConditions(t *testing.T) {
	res, err := lll.Reduce(referenceCell(), nil)
	require.NoError(t, err)

	ok, err := lll.IsReduced(res.Basis, lll.DefaultDelta)
	require.NoError(t, err)
	assert.True(t, ok, "output must satisfy both reduction conditions")
}

// TestReduce_Unimodularity verifies det(Mapping) = ±1 and that every
// mapping entry is an exact integer despite float64 storage.
func TestReduce_Unimodularity(t *testing.T) {
	res, err := lll.Reduce(referenceCell(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, math.Abs(res.MappingDet()), tol, "mapping determinant must be ±1")

	for i, row := range res.Mapping {
		for j, v := range row {
			assert.InDelta(t, math.Round(v), v, tol, "Mapping[%d][%d] must be integral", i, j)
		}
	}
}

// TestReduce_LatticeEquivalence verifies the mapping relation in both
// directions: reduced = Mapping·original, and the original basis is
// recovered via the mapping inverse.
func TestReduce_LatticeEquivalence(t *testing.T) {
	original := referenceCell()
	res, err := lll.Reduce(original, nil)
	require.NoError(t, err)

	combined := mulRows(res.Mapping, original)
	for i := range combined {
		for j := range combined {
			assert.InDelta(t, res.Basis[i][j], combined[i][j], tol,
				"Mapping·original must equal the reduced basis at (%d,%d)", i, j)
		}
	}

	inv, err := res.MappingInverse()
	require.NoError(t, err)
	for i := 0; i < res.Dim(); i++ {
		for j := 0; j < res.Dim(); j++ {
			var sum float64
			for k := 0; k < res.Dim(); k++ {
				sum += inv.At(i, k) * res.Basis[k][j]
			}
			assert.InDelta(t, original[i][j], sum, tol,
				"inverse mapping must recover the original basis at (%d,%d)", i, j)
		}
	}
}

// TestReduce_Idempotence verifies that reducing an already-reduced
// basis performs no swaps: the returned mapping is the identity and the
// basis passes through unchanged.
func TestReduce_Idempotence(t *testing.T) {
	first, err := lll.Reduce(referenceCell(), nil)
	require.NoError(t, err)

	second, err := lll.Reduce(first.Basis, nil)
	require.NoError(t, err)

	for i := range second.Mapping {
		for j := range second.Mapping {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, second.Mapping[i][j], tol, "re-reduction mapping (%d,%d)", i, j)
		}
	}
	assert.Equal(t, first.Basis, second.Basis, "re-reduction must not move any vector")
}

// TestReduce_InputNotMutated verifies the no-aliasing contract on the
// caller's basis.
func TestReduce_InputNotMutated(t *testing.T) {
	basis := referenceCell()
	_, err := lll.Reduce(basis, nil)
	require.NoError(t, err)

	assert.Equal(t, referenceCell(), basis, "input must stay untouched")
}

// TestReduce_SkewedIdentity reduces a heavily sheared unimodular image
// of the identity: each later vector carries a +7 shear along the first
// axis. LLL must shrink every vector back to unit length.
func TestReduce_SkewedIdentity(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		basis := make([][]float64, n)
		for i := 0; i < n; i++ {
			basis[i] = make([]float64, n)
			basis[i][i] = 1
			if i > 0 {
				basis[i][0] = 7
			}
		}

		res, err := lll.Reduce(basis, nil)
		require.NoError(t, err, "n=%d", n)

		ok, err := lll.IsReduced(res.Basis, lll.DefaultDelta)
		require.NoError(t, err)
		assert.True(t, ok, "n=%d output must be reduced", n)
		assert.InDelta(t, 1.0, math.Abs(res.MappingDet()), tol, "n=%d determinant", n)

		for i, row := range res.Basis {
			var sq float64
			for _, v := range row {
				sq += v * v
			}
			assert.InDelta(t, 1.0, sq, tol, "n=%d vector %d must shrink to unit length", n, i)
		}
	}
}

// TestIsReduced_Basics covers the predicate on both sides: the identity
// is reduced; a sheared pair with |μ| > 0.5 is not; δ is validated.
func TestIsReduced_Basics(t *testing.T) {
	ok, err := lll.IsReduced([][]float64{{1, 0}, {0, 1}}, lll.DefaultDelta)
	require.NoError(t, err)
	assert.True(t, ok, "identity must be reduced")

	ok, err = lll.IsReduced([][]float64{{1, 0}, {0.9, 1}}, lll.DefaultDelta)
	require.NoError(t, err)
	assert.False(t, ok, "|mu|=0.9 violates size reduction")

	_, err = lll.IsReduced([][]float64{{1, 0}, {0, 1}}, 1.0)
	assert.ErrorIs(t, err, lll.ErrBadDelta)
}

// TestReduce_DeltaTradeoff verifies that a stricter δ still converges
// and yields a basis reduced for the looser default as well.
func TestReduce_DeltaTradeoff(t *testing.T) {
	opts := lll.Options{Delta: 0.99}
	res, err := lll.Reduce(referenceCell(), &opts)
	require.NoError(t, err)

	ok, err := lll.IsReduced(res.Basis, 0.99)
	require.NoError(t, err)
	assert.True(t, ok, "output must satisfy the stricter Lovász bound")

	ok, err = lll.IsReduced(res.Basis, lll.DefaultDelta)
	require.NoError(t, err)
	assert.True(t, ok, "δ=0.99 reduction implies δ=0.75 reduction")
}
