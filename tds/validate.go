package tds

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks the combinatorial invariants of the structure and returns
// every violation found, joined, or nil.
//
// Level 0 checks neighbor symmetry, dangling references and repeated
// vertices. Level 1 adds facet agreement between neighbors and the
// vertex-to-cell back references. Level 2 adds orientation consistency:
// in dimension 2 and above, adjacent cells must induce opposite orientations
// on their common facet.
func (t *TDS) Validate(level int) error {
	var errs []error
	cur := t.curDim
	if cur == -2 {
		return nil
	}
	for _, c := range t.FullCells() {
		rec := &t.cells[c]
		for i := 0; i <= cur; i++ {
			v := rec.vertices[i]
			if !t.IsVertex(v) {
				errs = append(errs, fmt.Errorf("%w: cell %d slot %d names vertex %d", ErrDanglingReference, c, i, v))
				continue
			}
			if slices.Index(rec.vertices[:i], v) >= 0 {
				errs = append(errs, fmt.Errorf("%w: cell %d repeats vertex %d", ErrDuplicateVertex, c, v))
			}
		}
		for i := 0; i <= cur; i++ {
			n := rec.neighbors[i]
			if !t.IsFullCell(n) {
				errs = append(errs, fmt.Errorf("%w: cell %d neighbor %d is %d", ErrDanglingReference, c, i, n))
				continue
			}
			j := slices.Index(t.cells[n].neighbors[:cur+1], c)
			if j < 0 {
				errs = append(errs, fmt.Errorf("%w: cell %d lists %d as neighbor %d, not conversely", ErrNeighborAsymmetry, c, n, i))
				continue
			}
			if level < 1 {
				continue
			}
			if !t.sameFacet(c, i, n, j) {
				errs = append(errs, fmt.Errorf("%w: cells %d and %d", ErrFacetMismatch, c, n))
				continue
			}
			if level >= 2 && cur >= 2 && c < n && !t.oppositeOrientation(c, i, n, j) {
				errs = append(errs, fmt.Errorf("%w: cells %d and %d", ErrInconsistentOrientation, c, n))
			}
		}
	}
	if level >= 1 {
		for _, v := range t.Vertices() {
			c := t.vertices[v].cell
			if !t.IsFullCell(c) || !t.HasVertex(c, v) {
				errs = append(errs, fmt.Errorf("%w: vertex %d points at cell %d", ErrBadBackReference, v, c))
			}
		}
	}

	return errors.Join(errs...)
}

// facetVertices lists the vertices of c except slot i, in slot order.
func (t *TDS) facetVertices(c CellID, i int) []VertexID {
	out := make([]VertexID, 0, t.curDim)
	for j := 0; j <= t.curDim; j++ {
		if j != i {
			out = append(out, t.cells[c].vertices[j])
		}
	}

	return out
}

func (t *TDS) sameFacet(c CellID, i int, n CellID, j int) bool {
	a := t.facetVertices(c, i)
	b := t.facetVertices(n, j)
	slices.Sort(a)
	slices.Sort(b)

	return slices.Equal(a, b)
}

// oppositeOrientation reports whether (-1)^(i+j) times the sign of the
// permutation carrying the facet of c onto the facet of n is -1.
func (t *TDS) oppositeOrientation(c CellID, i int, n CellID, j int) bool {
	a := t.facetVertices(c, i)
	b := t.facetVertices(n, j)
	perm := make([]int, len(a))
	for p, v := range a {
		perm[p] = slices.Index(b, v)
	}
	inversions := 0
	for p := range perm {
		for q := p + 1; q < len(perm); q++ {
			if perm[p] > perm[q] {
				inversions++
			}
		}
	}

	return (i+j+inversions)%2 == 1
}
