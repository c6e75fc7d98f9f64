package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultEps is the relative tolerance used by a zero-valued Float.
const DefaultEps = 1e-12

// Float evaluates predicates in float64 arithmetic through gonum/mat.
//
// A determinant whose magnitude is at most Eps times the Hadamard bound of
// its rows is reported as Zero; ranks count singular values above Eps times
// the largest one. Float is fast but not robust on nearly degenerate input.
type Float struct {
	Eps float64
}

var _ Kernel = Float{}

// NewFloat returns a Float kernel with the given tolerance; a non-positive
// eps selects DefaultEps.
func NewFloat(eps float64) Float {
	if eps <= 0 {
		eps = DefaultEps
	}

	return Float{Eps: eps}
}

func (k Float) eps() float64 {
	if k.Eps <= 0 {
		return DefaultEps
	}

	return k.Eps
}

// Orientation returns the sign of det[p_i - p_0] with a relative tolerance.
func (k Float) Orientation(pts []Point) Sign {
	d := checkSimplex(pts)
	if d == 0 {
		return Positive
	}
	m := denseDifferences(pts, nil)
	bound := 1.0
	for i := 0; i < d; i++ {
		bound *= mat.Norm(m.RowView(i), 2)
	}
	det := mat.Det(m)
	switch {
	case math.IsNaN(det):
		panic(fmt.Errorf("%w: determinant is NaN", ErrNonFinite))
	case math.Abs(det) <= k.eps()*bound:
		return Zero
	case det < 0:
		return Negative
	}

	return Positive
}

// CompareLexicographically compares p and q coordinate by coordinate.
func (Float) CompareLexicographically(p, q Point) int {
	return compareLexicographically(p, q)
}

// ContainedInAffineHull compares the numerical rank of the difference
// matrix with and without q.
func (k Float) ContainedInAffineHull(pts []Point, q Point) bool {
	checkTuple(pts, q)
	if len(pts) == 1 {
		return k.rank(denseDifferences(pts, q)) == 0
	}

	return k.rank(denseDifferences(pts, nil)) == k.rank(denseDifferences(pts, q))
}

// IndependentAxes greedily keeps every column that raises the numerical
// rank of the difference matrix restricted to the columns kept so far.
func (k Float) IndependentAxes(pts []Point) []int {
	dim := checkTuple(pts, nil)
	axes := make([]int, 0, len(pts)-1)
	if len(pts) == 1 {
		return axes
	}
	m := denseDifferences(pts, nil)
	rows := len(pts) - 1
	for c := 0; c < dim && len(axes) < rows; c++ {
		sub := mat.NewDense(rows, len(axes)+1, nil)
		for i := 0; i < rows; i++ {
			for j, a := range axes {
				sub.Set(i, j, m.At(i, a))
			}
			sub.Set(i, len(axes), m.At(i, c))
		}
		if k.rank(sub) == len(axes)+1 {
			axes = append(axes, c)
		}
	}

	return axes
}

// denseDifferences lays out p_i - p_0 (and q - p_0) as matrix rows.
func denseDifferences(pts []Point, q Point) *mat.Dense {
	rows := len(pts) - 1
	if q != nil {
		rows++
	}
	cols := len(pts[0])
	data := make([]float64, 0, rows*cols)
	appendRow := func(p Point) {
		for j := range p {
			data = append(data, p[j]-pts[0][j])
		}
	}
	for _, p := range pts[1:] {
		appendRow(p)
	}
	if q != nil {
		appendRow(q)
	}

	return mat.NewDense(rows, cols, data)
}

func (k Float) rank(m *mat.Dense) int {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		panic(fmt.Errorf("%w: singular value decomposition failed", ErrNonFinite))
	}
	if svd.Values(nil)[0] == 0 {
		return 0
	}

	return svd.Rank(k.eps())
}
