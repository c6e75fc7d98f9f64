// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math/big"
)

// Exact evaluates every predicate over math/big rationals. Each float64
// coordinate converts to a rational without loss, so the sign of every
// determinant is the true sign for the given inputs.
type Exact struct{}

var _ Kernel = Exact{}

// Orientation returns the exact sign of det[p_i - p_0].
func (Exact) Orientation(pts []Point) Sign {
	d := checkSimplex(pts)
	if d == 0 {
		return Positive
	}
	m := ratDifferences(pts, nil)
	pivots, swaps := eliminate(m)
	if len(pivots) < d {
		return Zero
	}
	sign := 1
	if swaps%2 == 1 {
		sign = -sign
	}
	for i := 0; i < d; i++ {
		sign *= m[i][pivots[i]].Sign()
	}

	return Sign(sign)
}

// CompareLexicographically compares p and q coordinate by coordinate.
func (Exact) CompareLexicographically(p, q Point) int {
	return compareLexicographically(p, q)
}

// ContainedInAffineHull reports whether q lies in aff(pts).
func (Exact) ContainedInAffineHull(pts []Point, q Point) bool {
	checkTuple(pts, q)
	base := ratDifferences(pts, nil)
	rank, _ := eliminate(base)
	with := ratDifferences(pts, q)
	rankWith, _ := eliminate(with)

	return len(rank) == len(rankWith)
}

// IndependentAxes returns the pivot columns of the difference matrix.
func (Exact) IndependentAxes(pts []Point) []int {
	checkTuple(pts, nil)
	pivots, _ := eliminate(ratDifferences(pts, nil))

	return pivots
}

// ratDifferences builds the rows p_i - p_0 (i ≥ 1), followed by q - p_0 when
// q is non-nil.
func ratDifferences(pts []Point, q Point) [][]*big.Rat {
	origin := toRats(pts[0])
	rows := make([][]*big.Rat, 0, len(pts))
	appendRow := func(p Point) {
		row := toRats(p)
		for j := range row {
			row[j].Sub(row[j], origin[j])
		}
		rows = append(rows, row)
	}
	for _, p := range pts[1:] {
		appendRow(p)
	}
	if q != nil {
		appendRow(q)
	}

	return rows
}

func toRats(p Point) []*big.Rat {
	out := make([]*big.Rat, len(p))
	for i, x := range p {
		r := new(big.Rat).SetFloat64(x)
		if r == nil {
			panic(fmt.Errorf("%w: %v", ErrNonFinite, x))
		}
		out[i] = r
	}

	return out
}

// eliminate reduces m to row echelon form in place. It returns the pivot
// column of every non-zero row and the number of row swaps performed.
func eliminate(m [][]*big.Rat) (pivots []int, swaps int) {
	pivots = make([]int, 0, len(m))
	if len(m) == 0 {
		return pivots, 0
	}
	cols := len(m[0])
	factor := new(big.Rat)
	term := new(big.Rat)
	r := 0
	for c := 0; c < cols && r < len(m); c++ {
		p := -1
		for i := r; i < len(m); i++ {
			if m[i][c].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != r {
			m[p], m[r] = m[r], m[p]
			swaps++
		}
		for i := r + 1; i < len(m); i++ {
			if m[i][c].Sign() == 0 {
				continue
			}
			factor.Quo(m[i][c], m[r][c])
			for j := c; j < cols; j++ {
				term.Mul(factor, m[r][j])
				m[i][j].Sub(m[i][j], term)
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return pivots, swaps
}
