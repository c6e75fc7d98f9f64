package kernel

import (
	"fmt"
	"slices"
)

// Point is a position in the ambient space. The vertex at infinity carries a
// nil Point.
type Point []float64

// Clone returns a copy of p that does not alias its backing array.
func (p Point) Clone() Point {
	return slices.Clone(p)
}

// Sign is the result of an orientation predicate.
type Sign int8

// Orientation outcomes.
const (
	Negative Sign = -1 // clockwise / inverted
	Zero     Sign = 0  // degenerate (flat)
	Positive Sign = 1  // counter-clockwise / correctly oriented
)

// Neg returns the opposite sign.
func (s Sign) Neg() Sign { return -s }

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "NEGATIVE"
	case Zero:
		return "ZERO"
	case Positive:
		return "POSITIVE"
	}

	return fmt.Sprintf("Sign(%d)", int8(s))
}

// Kernel is the set of geometric predicates the triangulation consumes.
//
// Implementations must be globally consistent: evaluating Orientation on two
// orderings of the same points that differ by an odd permutation must yield
// opposite signs, otherwise the visibility walk may cycle.
type Kernel interface {
	// Orientation returns the sign of det[p_i - p_0], i = 1..d, for d+1
	// points with d coordinates each. A single point is Positive.
	Orientation(pts []Point) Sign

	// CompareLexicographically returns -1, 0 or +1 comparing p and q
	// coordinate by coordinate.
	CompareLexicographically(p, q Point) int

	// ContainedInAffineHull reports whether q lies in the affine hull of the
	// affinely independent points pts.
	ContainedInAffineHull(pts []Point, q Point) bool

	// IndependentAxes returns, in increasing order, coordinate axes on which
	// the difference vectors p_i - p_0 are linearly independent. For an
	// affinely independent tuple of k+1 points the result has k axes, and the
	// projection onto them is injective on the affine hull.
	IndependentAxes(pts []Point) []int
}

// compareLexicographically is shared by the kernels: the order on
// coordinates is exact for every float64.
func compareLexicographically(p, q Point) int {
	if len(p) != len(q) {
		panic(fmt.Errorf("%w: comparing %d and %d coordinates", ErrDimensionMismatch, len(p), len(q)))
	}
	for i := range p {
		if p[i] < q[i] {
			return -1
		}
		if p[i] > q[i] {
			return 1
		}
	}

	return 0
}

// checkSimplex validates that pts holds d+1 points of d coordinates.
func checkSimplex(pts []Point) int {
	d := len(pts) - 1
	if d < 0 {
		panic(fmt.Errorf("%w: empty point tuple", ErrDimensionMismatch))
	}
	for i, p := range pts {
		if len(p) != d {
			panic(fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), d))
		}
	}

	return d
}

// checkTuple validates that every point of pts (and q, when given) has the
// same number of coordinates, and returns it.
func checkTuple(pts []Point, q Point) int {
	if len(pts) == 0 {
		panic(fmt.Errorf("%w: empty point tuple", ErrDimensionMismatch))
	}
	dim := len(pts[0])
	for i, p := range pts {
		if len(p) != dim {
			panic(fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), dim))
		}
	}
	if q != nil && len(q) != dim {
		panic(fmt.Errorf("%w: query has %d coordinates, want %d", ErrDimensionMismatch, len(q), dim))
	}

	return dim
}
