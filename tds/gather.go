package tds

import "slices"

// GatherFullCells collects the connected set of cells reachable from seed
// by crossing facets accepted by pred. pred receives the facet seen from the
// cell already collected; the neighbor across it joins the set when pred
// returns true. Cells are returned in breadth-first order, seed first.
//
// pred must not call back into traversals of the same TDS.
func (t *TDS) GatherFullCells(seed CellID, pred func(Facet) bool) []CellID {
	t.mustCell(seed)
	t.nextEpoch()
	t.mark(seed)
	out := []CellID{seed}
	for head := 0; head < len(out); head++ {
		s := out[head]
		for i := 0; i <= t.curDim; i++ {
			n := t.cells[s].neighbors[i]
			if n == NoCell || t.marked(n) {
				continue
			}
			if pred(Facet{Cell: s, Index: i}) {
				t.mark(n)
				out = append(out, n)
			}
		}
	}

	return out
}

// IncidentFullCells returns every cell having v as a vertex.
func (t *TDS) IncidentFullCells(v VertexID) []CellID {
	seed := t.FullCell(v)

	return t.GatherFullCells(seed, func(f Facet) bool {
		return t.cells[f.Cell].vertices[f.Index] != v
	})
}

// IncidentFullCellsOfFace returns every cell containing all vertices of f.
func (t *TDS) IncidentFullCellsOfFace(f Face) []CellID {
	verts := t.FaceVertices(f)

	return t.GatherFullCells(f.Cell, func(ft Facet) bool {
		return !slices.Contains(verts, t.cells[ft.Cell].vertices[ft.Index])
	})
}

// Star returns every cell containing at least one vertex of f.
func (t *TDS) Star(f Face) []CellID {
	verts := t.FaceVertices(f)

	return t.GatherFullCells(f.Cell, func(ft Facet) bool {
		n := t.cells[ft.Cell].neighbors[ft.Index]
		for i := 0; i <= t.curDim; i++ {
			if slices.Contains(verts, t.cells[n].vertices[i]) {
				return true
			}
		}

		return false
	})
}
