package tds

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// InsertInFullCell splits c into k+1 cells around a new vertex and returns
// that vertex.
func (t *TDS) InsertInFullCell(c CellID) VertexID {
	v, _ := t.InsertInHole([]CellID{c}, Facet{Cell: c, Index: 0})

	return v
}

// InsertInFacet splits the two cells sharing f around a new vertex.
func (t *TDS) InsertInFacet(f Facet) VertexID {
	n := t.Neighbor(f.Cell, f.Index)
	boundary := Facet{Cell: f.Cell, Index: (f.Index + 1) % (t.curDim + 1)}
	v, _ := t.InsertInHole([]CellID{f.Cell, n}, boundary)

	return v
}

// InsertInFace splits every cell incident to f around a new vertex.
func (t *TDS) InsertInFace(f Face) VertexID {
	if len(f.Indices) == 0 {
		panic(fmt.Errorf("%w: empty face", ErrInvalidHandle))
	}
	hole := t.IncidentFullCellsOfFace(f)
	v, _ := t.InsertInHole(hole, Facet{Cell: f.Cell, Index: f.Indices[0]})

	return v
}

// InsertInHole replaces the cells of hole by the cone from a new vertex to
// the hole boundary. facet must be a facet of a hole cell whose neighbor lies
// outside the hole. The new vertex and the created cells are returned.
//
// The hole must be a topological ball; otherwise the boundary cannot be
// closed up and InsertInHole panics with ErrHoleNotBall.
func (t *TDS) InsertInHole(hole []CellID, facet Facet) (VertexID, []CellID) {
	if len(hole) == 0 {
		panic(ErrEmptyHole)
	}
	t.nextEpoch()
	for _, c := range hole {
		t.mustCell(c)
		t.mark(c)
	}
	if !t.marked(facet.Cell) || t.marked(t.Neighbor(facet.Cell, facet.Index)) {
		panic(fmt.Errorf("%w: (%d, %d)", ErrNotBoundaryFacet, facet.Cell, facet.Index))
	}

	return t.stellate(hole)
}

// ContractFace collapses f to a single new vertex. The star of f (every cell
// incident to one of its vertices) is re-triangulated as the cone from the
// new vertex to the star boundary, and the vertices of f are deleted.
// Any other vertex left without an incident cell is deleted as well.
func (t *TDS) ContractFace(f Face) VertexID {
	if t.curDim < 1 {
		panic(fmt.Errorf("%w: contract in dimension %d", ErrDimensionTooLow, t.curDim))
	}
	verts := t.FaceVertices(f)
	star := t.Star(f)
	var inner []VertexID
	t.nextEpoch()
	for _, c := range star {
		t.mark(c)
		for i := 0; i <= t.curDim; i++ {
			w := t.cells[c].vertices[i]
			if !slices.Contains(verts, w) && !slices.Contains(inner, w) {
				inner = append(inner, w)
			}
		}
	}
	v, _ := t.stellate(star)
	for _, w := range verts {
		t.DeleteVertex(w)
	}
	for _, w := range inner {
		if !t.IsFullCell(t.vertices[w].cell) || !t.HasVertex(t.vertices[w].cell, w) {
			t.DeleteVertex(w)
		}
	}

	return v
}

// stellate cones the boundary of the marked hole to a new vertex, deletes
// the hole and returns the new vertex with the cells it created.
func (t *TDS) stellate(hole []CellID) (VertexID, []CellID) {
	cur := t.curDim
	if cur < 1 {
		panic(fmt.Errorf("%w: hole insertion in dimension %d", ErrDimensionTooLow, cur))
	}
	v := t.NewVertex(nil)
	created := make([]CellID, 0, len(hole)*cur)
	apex := make([]int, 0, cap(created))
	for _, s := range hole {
		for i := 0; i <= cur; i++ {
			n := t.cells[s].neighbors[i]
			if t.marked(n) {
				continue
			}
			j := t.MirrorIndex(s, i)
			c := t.NewFullCell()
			for k := 0; k <= cur; k++ {
				if k == i {
					t.AssociateVertexWithFullCell(c, k, v)
				} else {
					t.AssociateVertexWithFullCell(c, k, t.cells[s].vertices[k])
				}
			}
			t.SetNeighbors(c, i, n, j)
			created = append(created, c)
			apex = append(apex, i)
		}
	}
	if len(created) == 0 {
		panic(fmt.Errorf("%w: hole has no boundary", ErrHoleNotBall))
	}
	if err := t.linkFacets(created, func(k int, i int) bool { return i != apex[k] }); err != nil {
		panic(err)
	}
	for _, s := range hole {
		t.DeleteFullCell(s)
	}

	return v, created
}

// linkFacets pairs up the facets of cells selected by want (cell position,
// slot) that carry the same vertex set, and makes the owning cells
// neighbors. Every selected facet must find exactly one partner.
func (t *TDS) linkFacets(cells []CellID, want func(k, i int) bool) error {
	cur := t.curDim
	pending := make(map[string]Facet, len(cells)*cur)
	ids := make([]VertexID, 0, cur)
	key := make([]byte, 0, 4*cur)
	for k, c := range cells {
		for i := 0; i <= cur; i++ {
			if !want(k, i) {
				continue
			}
			ids = ids[:0]
			for j := 0; j <= cur; j++ {
				if j != i {
					ids = append(ids, t.cells[c].vertices[j])
				}
			}
			slices.Sort(ids)
			key = key[:0]
			for _, id := range ids {
				key = binary.LittleEndian.AppendUint32(key, uint32(id))
			}
			if other, ok := pending[string(key)]; ok {
				t.SetNeighbors(c, i, other.Cell, other.Index)
				delete(pending, string(key))
				continue
			}
			pending[string(key)] = Facet{Cell: c, Index: i}
		}
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: %d unmatched facets", ErrHoleNotBall, len(pending))
	}

	return nil
}
