// SPDX-License-Identifier: MIT

package structure

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlattice/lll"
	"github.com/katalvlaran/lvlattice/minimage"
)

// Structure owns a periodic lattice together with fractional atomic
// coordinates and species tags. All owned state is copied at
// construction and never mutated afterwards; the reduced basis and the
// minimum-image solver are derived lazily on first need.
type Structure struct {
	lattice *mat.Dense // n×n, row i = i-th lattice vector
	coords  *mat.Dense // natoms×n fractional coordinates
	species []int      // one tag per coordinate row

	// Derived state, populated by ensureReduced on the first query.
	reduced *lll.Result
	solver  *minimage.Solver
}

// New constructs a Structure from a lattice (rows = lattice vectors in
// Cartesian units), fractional coordinates (one row per atom) and a
// parallel species list. All inputs are copied.
//
// Errors:
//   - ErrBadLattice      — nil or non-square lattice.
//   - ErrBadCoords       — nil coordinates or column count ≠ lattice dimension.
//   - ErrSpeciesMismatch — len(species) ≠ number of coordinate rows.
func New(lattice, coords *mat.Dense, species []int) (*Structure, error) {
	if lattice == nil {
		return nil, ErrBadLattice
	}
	n, c := lattice.Dims()
	if n == 0 || n != c {
		return nil, ErrBadLattice
	}
	if coords == nil {
		return nil, ErrBadCoords
	}
	atoms, cc := coords.Dims()
	if cc != n {
		return nil, ErrBadCoords
	}
	if len(species) != atoms {
		return nil, ErrSpeciesMismatch
	}

	s := &Structure{
		lattice: mat.DenseCopyOf(lattice),
		coords:  mat.DenseCopyOf(coords),
		species: make([]int, atoms),
	}
	copy(s.species, species)

	return s, nil
}

// Dim returns the lattice dimension n.
func (s *Structure) Dim() int {
	n, _ := s.lattice.Dims()

	return n
}

// NumAtoms returns the number of stored atoms.
func (s *Structure) NumAtoms() int {
	atoms, _ := s.coords.Dims()

	return atoms
}

// Lattice returns a copy of the lattice matrix.
func (s *Structure) Lattice() *mat.Dense {
	return mat.DenseCopyOf(s.lattice)
}

// Species returns the species tag of atom i.
//
// Errors: ErrAtomIndex.
func (s *Structure) Species(i int) (int, error) {
	if i < 0 || i >= s.NumAtoms() {
		return 0, ErrAtomIndex
	}

	return s.species[i], nil
}

// FracCoord returns a copy of the fractional coordinates of atom i.
//
// Errors: ErrAtomIndex.
func (s *Structure) FracCoord(i int) ([]float64, error) {
	if i < 0 || i >= s.NumAtoms() {
		return nil, ErrAtomIndex
	}

	frac := make([]float64, s.Dim())
	mat.Row(frac, i, s.coords)

	return frac, nil
}

// Reduced returns the cached lll.Result for the lattice, running the
// reduction on first call. The default Lovász parameter δ = 0.75 is
// used; the cache is never invalidated because the lattice cannot
// change after construction.
func (s *Structure) Reduced() (*lll.Result, error) {
	if err := s.ensureReduced(); err != nil {
		return nil, err
	}

	return s.reduced, nil
}

// GetDistances returns the minimum-image Cartesian displacement from
// fracA to fracB and its length. Both points are fractional coordinates
// of the ORIGINAL lattice and need not lie in [0,1). The stored lattice
// and coordinates are never mutated.
//
// Errors: reduction sentinels from package lll on the first call,
// minimage.ErrBadPoint on malformed query points.
func (s *Structure) GetDistances(fracA, fracB []float64) ([]float64, float64, error) {
	if err := s.ensureReduced(); err != nil {
		return nil, 0, err
	}

	return s.solver.Shortest(fracA, fracB)
}

// AtomDistance returns the minimum-image displacement and distance
// between stored atoms i and j.
//
// Errors: ErrAtomIndex, plus everything GetDistances can return.
func (s *Structure) AtomDistance(i, j int) ([]float64, float64, error) {
	fracA, err := s.FracCoord(i)
	if err != nil {
		return nil, 0, err
	}
	fracB, err := s.FracCoord(j)
	if err != nil {
		return nil, 0, err
	}

	return s.GetDistances(fracA, fracB)
}

// ensureReduced populates the derived state exactly once: LLL-reduce
// the lattice, materialize the mapping inverse and build the image
// table. Write-once, read-many afterwards (see package doc for the
// concurrency contract).
func (s *Structure) ensureReduced() error {
	if s.solver != nil {
		return nil
	}

	n := s.Dim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		mat.Row(rows[i], i, s.lattice)
	}

	reduced, err := lll.Reduce(rows, nil)
	if err != nil {
		return err
	}
	inv, err := reduced.MappingInverse()
	if err != nil {
		return err
	}
	solver, err := minimage.NewSolver(reduced.Basis, inv)
	if err != nil {
		return err
	}

	s.reduced = reduced
	s.solver = solver

	return nil
}
