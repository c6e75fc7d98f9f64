package tds

import "github.com/katalvlaran/simplicia/kernel"

// VertexID is a stable handle to a vertex.
type VertexID int32

// CellID is a stable handle to a full cell.
type CellID int32

// Null handles.
const (
	NoVertex VertexID = -1
	NoCell   CellID   = -1
)

// Facet designates the (k-1)-face of Cell opposite its vertex at Index.
type Facet struct {
	Cell  CellID
	Index int
}

// Face designates the face of Cell spanned by the vertices at Indices.
type Face struct {
	Cell    CellID
	Indices []int
}

// FaceDimension is len(Indices)-1; an empty face has dimension -1.
func (f Face) FaceDimension() int { return len(f.Indices) - 1 }

// Connectivity is the index form of a set of full cells, as produced by
// WriteFullCells and consumed by ReadFullCells. Row r of Cells lists the
// vertex indices of cell r in slot order; row r of Neighbors lists the
// indices of its neighbor cells in the same order.
type Connectivity struct {
	Cells     [][]int
	Neighbors [][]int
}

type vertexRecord struct {
	point kernel.Point
	cell  CellID
	alive bool
}

type cellRecord struct {
	vertices  []VertexID
	neighbors []CellID
	mark      uint32
	alive     bool
}
