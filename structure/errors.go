// Package structure: sentinel error set, matched via errors.Is.
package structure

import "errors"

var (
	// ErrBadLattice indicates a nil or non-square lattice matrix.
	ErrBadLattice = errors.New("structure: lattice must be a non-empty square matrix")

	// ErrBadCoords indicates a nil coordinate matrix or one whose column
	// count differs from the lattice dimension.
	ErrBadCoords = errors.New("structure: coordinate columns must match lattice dimension")

	// ErrSpeciesMismatch indicates that the species list and the
	// coordinate rows have different lengths. Reported at construction,
	// before any computation.
	ErrSpeciesMismatch = errors.New("structure: species and coordinate counts differ")

	// ErrAtomIndex indicates an atom index outside [0, NumAtoms).
	ErrAtomIndex = errors.New("structure: atom index out of range")
)
