// Package kernel supplies the geometric predicates consumed by the
// triangulation engine: orientation of a simplex, lexicographic comparison,
// affine-hull membership and the stateful coaffine orientation used while the
// point set does not yet span the ambient space.
//
// What:
//
//   - Point:               a tuple of D float64 coordinates (nil marks the vertex at infinity)
//   - Sign:                Negative, Zero, Positive
//   - Kernel:              the predicate contract (Orientation, CompareLexicographically,
//     ContainedInAffineHull, IndependentAxes)
//   - Exact:               exact predicates over math/big rationals (the default)
//   - Float:               floating-point predicates on gonum/mat with a tolerance
//   - CoaffineOrientation: orientation inside a k-flat, rebased explicitly whenever
//     the dimension of the flat changes
//
// Why:
//
//	The walk in triangulation.Locate is only correct when the orientation
//	predicate is globally consistent. Exact evaluates the sign of every
//	determinant without rounding, so degenerate inputs (collinear, coplanar,
//	duplicated points) are classified exactly. Float trades that guarantee for
//	speed on well-conditioned data.
//
// Complexity:
//
//   - Orientation:           O(d³) arithmetic operations for d+1 points in dimension d
//   - ContainedInAffineHull: O(k²·D)
//   - IndependentAxes:       O(k²·D)
//
// Errors:
//
//   - ErrDimensionMismatch  point tuple does not match the predicate arity (panic)
//   - ErrNonFinite          NaN or ±Inf coordinate reached the exact kernel (panic)
//   - ErrCoaffineNotReady   CoaffineOrientation used before Rebase (panic)
//   - ErrDegenerateBasis    Rebase received an affinely dependent simplex (panic)
//
// All kernel errors are programmer contracts: predicates panic with a wrapped
// sentinel, callers match them with errors.Is after recover.
package kernel
