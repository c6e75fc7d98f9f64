package tds

import "fmt"

// InsertIncreaseDimension adds a vertex lying outside the affine hull of
// the current vertices and raises the current dimension by one. star is the
// vertex every new cell is coned from (the vertex at infinity of a
// triangulation); it is ignored when the TDS is empty, in which case the
// returned vertex is the first one and should play that role.
//
// From dimension k-1 to k every cell receives the new vertex in slot k, and
// every cell not containing star gets a twin cell spanned by star and its old
// vertices. Slots are ordered so that adjacent cells keep opposite induced
// orientations.
func (t *TDS) InsertIncreaseDimension(star VertexID) VertexID {
	prev := t.curDim
	if prev >= t.maxDim {
		panic(fmt.Errorf("%w: already at dimension %d", ErrDimensionOverflow, prev))
	}
	if prev != -2 {
		t.mustVertex(star)
	}
	t.curDim = prev + 1
	v := t.NewVertex(nil)
	switch prev {
	case -2:
		c := t.NewFullCell()
		t.AssociateVertexWithFullCell(c, 0, v)
	case -1:
		inf := t.FullCell(star)
		c := t.NewFullCell()
		t.AssociateVertexWithFullCell(c, 0, v)
		t.SetNeighbors(inf, 0, c, 0)
	default:
		t.lift(v, star)
	}

	return v
}

// lift performs the cone construction for current dimension k ≥ 1.
func (t *TDS) lift(x, star VertexID) {
	k := t.curDim
	old := t.FullCells()
	cells := make([]CellID, 0, 2*len(old))
	swapMe := NoCell
	for _, s := range old {
		cells = append(cells, s)
		if !t.HasVertex(s, star) {
			twin := t.NewFullCell()
			t.AssociateVertexWithFullCell(twin, 0, star)
			for j := 1; j <= k; j++ {
				t.AssociateVertexWithFullCell(twin, j, t.cells[s].vertices[j-1])
			}
			if k%2 == 0 {
				t.SwapVertices(twin, 1, 2)
			}
			cells = append(cells, twin)
		} else if k == 2 && t.MirrorIndex(s, 0) == 0 {
			// In dimension 1 the unbounded cell at this end sees its finite
			// neighbor through slot 0 on both sides and needs a flip.
			swapMe = s
		}
		t.AssociateVertexWithFullCell(s, k, x)
	}
	if swapMe != NoCell {
		t.SwapVertices(swapMe, 1, 2)
	}
	for _, c := range cells {
		rec := &t.cells[c]
		for i := range rec.neighbors {
			rec.neighbors[i] = NoCell
		}
	}
	if err := t.linkFacets(cells, func(int, int) bool { return true }); err != nil {
		panic(err)
	}
}
