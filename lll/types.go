// Package lll: options and documented defaults.
package lll

// Defaults and bounds for the Lovász parameter δ.
const (
	// DefaultDelta is the classical LLL trade-off parameter. Larger
	// values give a shorter, more orthogonal basis at the cost of more
	// swap steps.
	DefaultDelta = 0.75

	// MinDelta is the exclusive lower bound for δ. The Lovász condition
	// is meaningless at or below it.
	MinDelta = 0.25

	// MaxDelta is the exclusive upper bound for δ. Termination of the
	// reduction is not guaranteed at δ = 1.
	MaxDelta = 1.0
)

// sizeReductionBound is the |μ| threshold of the size-reduction step.
// Comparisons against it are exact; no tolerance band is applied, to
// keep the numeric behavior of the classical algorithm.
const sizeReductionBound = 0.5

// Options configures a reduction run.
//
// Fields:
//   - Delta — Lovász parameter δ ∈ (0.25, 1); see DefaultDelta.
//
// Example:
//
//	opts := lll.DefaultOptions()
//	opts.Delta = 0.99 // near-optimal reduction, more iterations
//	res, err := lll.Reduce(basis, &opts)
type Options struct {
	Delta float64
}

// DefaultOptions returns the documented defaults (δ = 0.75).
func DefaultOptions() Options {
	return Options{Delta: DefaultDelta}
}

// validate rejects out-of-range δ with ErrBadDelta.
func (o *Options) validate() error {
	if !(o.Delta > MinDelta && o.Delta < MaxDelta) {
		return ErrBadDelta
	}

	return nil
}
