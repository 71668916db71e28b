// SPDX-License-Identifier: MIT
// Package minimage: periodic nearest-image search over a reduced cell.
// The Solver owns immutable copies of its inputs; queries never mutate
// Solver state and are safe to run concurrently on one Solver.

package minimage

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadLattice indicates a nil, empty or non-square reduced lattice.
	ErrBadLattice = errors.New("minimage: lattice must be square and non-empty")

	// ErrBadMapping indicates a mapping inverse whose shape does not
	// match the lattice dimension.
	ErrBadMapping = errors.New("minimage: mapping inverse shape mismatch")

	// ErrBadPoint indicates a fractional point whose length differs from
	// the lattice dimension.
	ErrBadPoint = errors.New("minimage: fractional point has wrong dimension")
)

// Solver answers minimum-image queries against one reduced cell.
//
// It stores the reduced lattice (row vectors), the inverse of the
// unimodular mapping produced by the reduction (to re-express fractional
// coordinates of the ORIGINAL lattice in the reduced basis), and the
// precomputed table of 3ⁿ Cartesian image shifts in fixed {−1,0,1}ⁿ
// lexicographic order (first axis slowest).
type Solver struct {
	lattice [][]float64
	inv     *mat.Dense
	shifts  [][]float64
	n       int
}

// NewSolver builds a reusable Solver from a reduced lattice (rows =
// lattice vectors) and the inverse mapping from lll.Result.
// Both inputs are copied; the Solver never aliases caller memory.
//
// Errors: ErrBadLattice, ErrBadMapping.
func NewSolver(reduced [][]float64, mappingInv mat.Matrix) (*Solver, error) {
	n := len(reduced)
	if n == 0 {
		return nil, ErrBadLattice
	}
	for i := 0; i < n; i++ {
		if len(reduced[i]) != n {
			return nil, ErrBadLattice
		}
	}
	if r, c := mappingInv.Dims(); r != n || c != n {
		return nil, ErrBadMapping
	}

	s := &Solver{
		lattice: make([][]float64, n),
		inv:     mat.DenseCopyOf(mappingInv),
		n:       n,
	}
	for i := 0; i < n; i++ {
		s.lattice[i] = make([]float64, n)
		copy(s.lattice[i], reduced[i])
	}
	s.shifts = s.imageShifts()

	return s, nil
}

// Dim returns the cell dimension n.
func (s *Solver) Dim() int { return s.n }

// imageShifts enumerates the 3ⁿ integer offsets {−1,0,1}ⁿ in
// lexicographic order (last axis fastest) and converts each to the
// Cartesian shift offset·lattice. Index 0 is (−1,…,−1); the zero offset
// sits exactly in the middle of the table.
func (s *Solver) imageShifts() [][]float64 {
	count := 1
	for a := 0; a < s.n; a++ {
		count *= 3
	}

	shifts := make([][]float64, count)
	for idx := 0; idx < count; idx++ {
		shift := make([]float64, s.n)
		rem := idx
		for a := s.n - 1; a >= 0; a-- {
			off := float64(rem%3 - 1)
			rem /= 3
			if off != 0 {
				floats.AddScaled(shift, off, s.lattice[a])
			}
		}
		shifts[idx] = shift
	}

	return shifts
}

// toCartesian converts a fractional point of the ORIGINAL lattice into
// Cartesian space: first re-express it in the reduced basis through the
// mapping inverse (row-vector right-multiplication), then combine the
// reduced lattice rows.
func (s *Solver) toCartesian(frac []float64) []float64 {
	reducedFrac := make([]float64, s.n)
	for j := 0; j < s.n; j++ {
		sum := 0.0
		for i := 0; i < s.n; i++ {
			sum += frac[i] * s.inv.At(i, j)
		}
		reducedFrac[j] = sum
	}

	cart := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		floats.AddScaled(cart, reducedFrac[i], s.lattice[i])
	}

	return cart
}

// Shortest returns the minimum-length Cartesian displacement from fracA
// to fracB under periodic boundary conditions, together with its length.
// Fractional inputs refer to the ORIGINAL lattice and need not lie in
// [0,1).
//
// Candidates are scanned in the fixed image order; a strictly smaller
// squared length is required to displace the incumbent, so equal-length
// ties resolve to the first occurrence deterministically.
//
// Errors: ErrBadPoint.
func (s *Solver) Shortest(fracA, fracB []float64) ([]float64, float64, error) {
	if len(fracA) != s.n || len(fracB) != s.n {
		return nil, 0, ErrBadPoint
	}

	cartA := s.toCartesian(fracA)
	cartB := s.toCartesian(fracB)

	preImage := make([]float64, s.n)
	floats.SubTo(preImage, cartB, cartA)

	best := make([]float64, s.n)
	bestSq := math.Inf(1)
	candidate := make([]float64, s.n)
	for _, shift := range s.shifts {
		floats.AddTo(candidate, preImage, shift)
		if sq := floats.Dot(candidate, candidate); sq < bestSq {
			bestSq = sq
			copy(best, candidate)
		}
	}

	return best, math.Sqrt(bestSq), nil
}
