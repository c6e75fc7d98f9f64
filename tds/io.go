package tds

import "fmt"

// WriteFullCells exports the live cells in handle order as index rows.
// index maps every vertex referenced by a cell to its exported position.
func (t *TDS) WriteFullCells(index map[VertexID]int) Connectivity {
	cells := t.FullCells()
	position := make(map[CellID]int, len(cells))
	for r, c := range cells {
		position[c] = r
	}
	width := t.curDim + 1
	conn := Connectivity{
		Cells:     make([][]int, len(cells)),
		Neighbors: make([][]int, len(cells)),
	}
	for r, c := range cells {
		rec := &t.cells[c]
		vs := make([]int, width)
		ns := make([]int, width)
		for i := 0; i < width; i++ {
			p, ok := index[rec.vertices[i]]
			if !ok {
				panic(fmt.Errorf("%w: vertex %d has no export index", ErrInvalidHandle, rec.vertices[i]))
			}
			vs[i] = p
			ns[i] = position[rec.neighbors[i]]
		}
		conn.Cells[r] = vs
		conn.Neighbors[r] = ns
	}

	return conn
}

// ReadFullCells replaces every cell by those described in conn. Vertex index
// p in conn names vertices[p]; the vertices must already exist and the
// current dimension must already be set. The rebuilt structure is checked
// with Validate(1); a failure wraps ErrMalformedConnectivity.
func (t *TDS) ReadFullCells(vertices []VertexID, conn Connectivity) error {
	cur := t.curDim
	if cur < 0 {
		return fmt.Errorf("%w: current dimension %d", ErrMalformedConnectivity, cur)
	}
	if len(conn.Cells) != len(conn.Neighbors) {
		return fmt.Errorf("%w: %d cell rows, %d neighbor rows", ErrMalformedConnectivity, len(conn.Cells), len(conn.Neighbors))
	}
	for _, v := range vertices {
		if !t.IsVertex(v) {
			return fmt.Errorf("%w: vertex %d", ErrMalformedConnectivity, v)
		}
	}
	for r := range conn.Cells {
		if len(conn.Cells[r]) != cur+1 || len(conn.Neighbors[r]) != cur+1 {
			return fmt.Errorf("%w: row %d has the wrong width", ErrMalformedConnectivity, r)
		}
		for i := 0; i <= cur; i++ {
			if p := conn.Cells[r][i]; p < 0 || p >= len(vertices) {
				return fmt.Errorf("%w: row %d vertex index %d", ErrMalformedConnectivity, r, p)
			}
			if p := conn.Neighbors[r][i]; p < 0 || p >= len(conn.Cells) {
				return fmt.Errorf("%w: row %d neighbor index %d", ErrMalformedConnectivity, r, p)
			}
		}
	}

	for _, c := range t.FullCells() {
		t.DeleteFullCell(c)
	}
	for _, v := range vertices {
		t.vertices[v].cell = NoCell
	}
	ids := make([]CellID, len(conn.Cells))
	for r := range ids {
		ids[r] = t.NewFullCell()
	}
	for r, row := range conn.Cells {
		for i, p := range row {
			t.AssociateVertexWithFullCell(ids[r], i, vertices[p])
		}
		for i, p := range conn.Neighbors[r] {
			t.cells[ids[r]].neighbors[i] = ids[p]
		}
	}
	if err := t.Validate(1); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedConnectivity, err)
	}

	return nil
}
