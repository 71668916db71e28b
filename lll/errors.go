// SPDX-License-Identifier: MIT
// Package lll: sentinel error set. All exported functions return these
// sentinels (possibly wrapped with fmt.Errorf("…: %w", …) for context);
// tests and callers match them via errors.Is.

package lll

import "errors"

var (
	// ErrBadDelta is returned when the Lovász parameter δ lies outside
	// the open interval (0.25, 1). Values ≤ 0.25 break the derivation of
	// the Lovász condition; values ≥ 1 void the termination guarantee.
	ErrBadDelta = errors.New("lll: delta must lie in (0.25, 1)")

	// ErrBadBasis indicates a nil, empty or non-square input basis.
	ErrBadBasis = errors.New("lll: basis must be square and non-empty")

	// ErrDegenerateBasis indicates linearly dependent basis vectors,
	// surfaced from the Gram-Schmidt stage.
	ErrDegenerateBasis = errors.New("lll: basis vectors are linearly dependent")

	// ErrSingularMapping indicates that inverting the accumulated
	// unimodular mapping failed. The mapping has determinant ±1 by
	// construction, so this is an internal invariant violation, not a
	// recoverable input condition.
	ErrSingularMapping = errors.New("lll: mapping matrix is singular")
)
