// SPDX-License-Identifier: MIT

package tds

import (
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
)

// TDS is a triangulation data structure of maximal dimension MaximalDimension.
type TDS struct {
	maxDim int
	curDim int

	vertices []vertexRecord
	cells    []cellRecord

	freeVertices []VertexID
	freeCells    []CellID

	nVertices int
	nCells    int

	// epoch stamps cells visited by the current traversal; a cell is marked
	// when its mark equals epoch.
	epoch uint32
}

// New returns an empty TDS (current dimension -2) whose full cells hold at
// most maxDim+1 vertices.
func New(maxDim int) *TDS {
	if maxDim < 0 {
		panic(fmt.Errorf("%w: maximal dimension %d", ErrDimensionOverflow, maxDim))
	}

	return &TDS{maxDim: maxDim, curDim: -2}
}

// Clear removes every vertex and full cell and resets the current dimension
// to -2.
func (t *TDS) Clear() {
	t.vertices = t.vertices[:0]
	t.cells = t.cells[:0]
	t.freeVertices = t.freeVertices[:0]
	t.freeCells = t.freeCells[:0]
	t.nVertices, t.nCells = 0, 0
	t.curDim = -2
	t.epoch = 0
}

// MaximalDimension returns the largest current dimension the TDS accepts.
func (t *TDS) MaximalDimension() int { return t.maxDim }

// CurrentDimension returns the dimension of the full cells, from -2 (empty)
// to MaximalDimension.
func (t *TDS) CurrentDimension() int { return t.curDim }

// SetCurrentDimension overrides the current dimension. It is meant for
// loaders that rebuild the structure through ReadFullCells.
func (t *TDS) SetCurrentDimension(d int) {
	if d < -2 || d > t.maxDim {
		panic(fmt.Errorf("%w: dimension %d, maximum %d", ErrDimensionOverflow, d, t.maxDim))
	}
	t.curDim = d
}

// NumberOfVertices counts live vertices, including any vertex at infinity
// owned by the caller.
func (t *TDS) NumberOfVertices() int { return t.nVertices }

// NumberOfFullCells counts live full cells.
func (t *TDS) NumberOfFullCells() int { return t.nCells }

// IsVertex reports whether v names a live vertex.
func (t *TDS) IsVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(t.vertices) && t.vertices[v].alive
}

// IsFullCell reports whether c names a live full cell.
func (t *TDS) IsFullCell(c CellID) bool {
	return c >= 0 && int(c) < len(t.cells) && t.cells[c].alive
}

// Vertices returns the live vertices in handle order.
func (t *TDS) Vertices() []VertexID {
	out := make([]VertexID, 0, t.nVertices)
	for i := range t.vertices {
		if t.vertices[i].alive {
			out = append(out, VertexID(i))
		}
	}

	return out
}

// FullCells returns the live full cells in handle order.
func (t *TDS) FullCells() []CellID {
	out := make([]CellID, 0, t.nCells)
	for i := range t.cells {
		if t.cells[i].alive {
			out = append(out, CellID(i))
		}
	}

	return out
}

// NewVertex creates a vertex carrying p and no incident cell.
func (t *TDS) NewVertex(p kernel.Point) VertexID {
	var v VertexID
	if n := len(t.freeVertices); n > 0 {
		v = t.freeVertices[n-1]
		t.freeVertices = t.freeVertices[:n-1]
	} else {
		v = VertexID(len(t.vertices))
		t.vertices = append(t.vertices, vertexRecord{})
	}
	t.vertices[v] = vertexRecord{point: p, cell: NoCell, alive: true}
	t.nVertices++

	return v
}

// DeleteVertex releases v. Cells still referencing v become dangling.
func (t *TDS) DeleteVertex(v VertexID) {
	t.mustVertex(v)
	t.vertices[v] = vertexRecord{cell: NoCell}
	t.freeVertices = append(t.freeVertices, v)
	t.nVertices--
}

// NewFullCell creates a full cell with every vertex and neighbor slot empty.
func (t *TDS) NewFullCell() CellID {
	var c CellID
	if n := len(t.freeCells); n > 0 {
		c = t.freeCells[n-1]
		t.freeCells = t.freeCells[:n-1]
	} else {
		c = CellID(len(t.cells))
		t.cells = append(t.cells, cellRecord{
			vertices:  make([]VertexID, t.maxDim+1),
			neighbors: make([]CellID, t.maxDim+1),
		})
	}
	rec := &t.cells[c]
	for i := range rec.vertices {
		rec.vertices[i] = NoVertex
		rec.neighbors[i] = NoCell
	}
	rec.mark = 0
	rec.alive = true
	t.nCells++

	return c
}

// DeleteFullCell releases c. Neighbors still referencing c become dangling.
func (t *TDS) DeleteFullCell(c CellID) {
	t.mustCell(c)
	t.cells[c].alive = false
	t.freeCells = append(t.freeCells, c)
	t.nCells--
}

// Vertex returns the vertex in slot i of c.
func (t *TDS) Vertex(c CellID, i int) VertexID {
	return t.mustCell(c).vertices[i]
}

// Neighbor returns the full cell across the facet of c opposite slot i.
func (t *TDS) Neighbor(c CellID, i int) CellID {
	return t.mustCell(c).neighbors[i]
}

// FullCell returns the incident full cell recorded on v.
func (t *TDS) FullCell(v VertexID) CellID {
	return t.mustVertex(v).cell
}

// Point returns the payload of v.
func (t *TDS) Point(v VertexID) kernel.Point {
	return t.mustVertex(v).point
}

// SetPoint replaces the payload of v.
func (t *TDS) SetPoint(v VertexID, p kernel.Point) {
	t.mustVertex(v).point = p
}

// AssociateVertexWithFullCell stores v in slot i of c and records c as the
// incident cell of v.
func (t *TDS) AssociateVertexWithFullCell(c CellID, i int, v VertexID) {
	t.mustCell(c).vertices[i] = v
	if v != NoVertex {
		t.mustVertex(v).cell = c
	}
}

// SetNeighbors makes c and n adjacent through slot i of c and slot j of n.
func (t *TDS) SetNeighbors(c CellID, i int, n CellID, j int) {
	t.mustCell(c).neighbors[i] = n
	t.mustCell(n).neighbors[j] = c
}

// IndexOf returns the slot of v in c, or -1. In dimension -1 the single
// cell still holds its vertex in slot 0.
func (t *TDS) IndexOf(c CellID, v VertexID) int {
	rec := t.mustCell(c)
	for i := 0; i <= max(t.curDim, 0); i++ {
		if rec.vertices[i] == v {
			return i
		}
	}

	return -1
}

// HasVertex reports whether v is a vertex of c.
func (t *TDS) HasVertex(c CellID, v VertexID) bool {
	return t.IndexOf(c, v) >= 0
}

// MirrorIndex returns the slot of c in the neighbor list of its neighbor i.
func (t *TDS) MirrorIndex(c CellID, i int) int {
	n := t.Neighbor(c, i)
	rec := t.mustCell(n)
	for j := 0; j <= t.curDim; j++ {
		if rec.neighbors[j] == c {
			return j
		}
	}
	panic(fmt.Errorf("%w: cell %d is not a neighbor of its neighbor %d", ErrNeighborAsymmetry, c, n))
}

// MirrorVertex returns the vertex of neighbor i of c that is not in c.
func (t *TDS) MirrorVertex(c CellID, i int) VertexID {
	return t.Vertex(t.Neighbor(c, i), t.MirrorIndex(c, i))
}

// SwapVertices exchanges slots i and j of c, neighbors included.
func (t *TDS) SwapVertices(c CellID, i, j int) {
	rec := t.mustCell(c)
	rec.vertices[i], rec.vertices[j] = rec.vertices[j], rec.vertices[i]
	rec.neighbors[i], rec.neighbors[j] = rec.neighbors[j], rec.neighbors[i]
}

// FaceVertices returns the vertices spanning f, in index order.
func (t *TDS) FaceVertices(f Face) []VertexID {
	rec := t.mustCell(f.Cell)
	out := make([]VertexID, len(f.Indices))
	for k, i := range f.Indices {
		out[k] = rec.vertices[i]
	}

	return out
}

func (t *TDS) mustVertex(v VertexID) *vertexRecord {
	if !t.IsVertex(v) {
		panic(fmt.Errorf("%w: vertex %d", ErrInvalidHandle, v))
	}

	return &t.vertices[v]
}

func (t *TDS) mustCell(c CellID) *cellRecord {
	if !t.IsFullCell(c) {
		panic(fmt.Errorf("%w: full cell %d", ErrInvalidHandle, c))
	}

	return &t.cells[c]
}

// nextEpoch starts a traversal: no cell is marked afterwards.
func (t *TDS) nextEpoch() {
	t.epoch++
	if t.epoch == 0 {
		for i := range t.cells {
			t.cells[i].mark = 0
		}
		t.epoch = 1
	}
}

func (t *TDS) mark(c CellID)        { t.cells[c].mark = t.epoch }
func (t *TDS) marked(c CellID) bool { return c >= 0 && t.cells[c].mark == t.epoch }
