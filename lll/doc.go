// Package lll implements Lenstra–Lenstra–Lovász (LLL) lattice basis
// reduction, producing a near-orthogonal basis for the same lattice
// together with the unimodular integer transform that maps the original
// basis to the reduced one.
//
// 🚀 What is LLL reduction?
//
//	A lattice basis can be very skewed: long, almost-parallel vectors
//	generating the same point set as short, almost-orthogonal ones.
//	LLL walks a cursor k over the basis and alternates two steps:
//	  • size reduction — subtract integer multiples of earlier vectors
//	    until every projection coefficient satisfies |μ[k][i]| ≤ 0.5;
//	  • swap test — if the Lovász condition
//	      ‖b_k‖² ≥ (δ − μ[k][k−1]²)·‖b_{k−1}‖²
//	    fails, swap vectors k−1 and k and retreat the cursor.
//	Termination for δ < 1 follows from a potential argument: the product
//	of leading Gram-Schmidt norms strictly decreases on every swap.
//
// ✨ Key features:
//   - Reduce: reduced basis + unimodular mapping in one call
//   - IsReduced: cheap predicate (powers idempotence checks)
//   - Result.MappingInverse / MappingDet via gonum/mat
//   - arbitrary dimension n; reference use is 3×3 crystal cells
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlattice/lll"
//
//	opts := lll.DefaultOptions() // δ = 0.75
//	res, err := lll.Reduce(basis, &opts)
//	if err != nil {
//	  // ErrBadDelta / ErrBadBasis / ErrDegenerateBasis
//	}
//	_ = res.Basis   // reduced lattice vectors (rows)
//	_ = res.Mapping // reduced = Mapping · original
//
// Performance:
//
//   - Time:   polynomial in n and the bit size of the input for δ < 1
//   - Memory: O(n²)
//
// Why it matters here: a reduced cell makes the 3ⁿ neighbor enumeration
// of package minimage sufficient for exact periodic minimum-image
// distances. See minimage and structure for the consumers.
package lll
