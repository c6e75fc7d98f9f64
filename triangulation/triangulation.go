// SPDX-License-Identifier: MIT

package triangulation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
)

// Triangulation is an incremental triangulation of a point set in R^D,
// closed into a topological sphere by a vertex at infinity.
//
// The current dimension k is the dimension of the affine hull of the finite
// vertices. Every full cell holds k+1 vertices; a cell containing the vertex
// at infinity (always in slot 0) is unbounded and stands for the unbounded
// region beyond one hull facet.
type Triangulation struct {
	ambient int
	tds     *tds.TDS

	kernel   kernel.Kernel
	coaffine *kernel.CoaffineOrientation
	infinity tds.VertexID

	orientations []kernel.Sign
	scratch      []kernel.Point

	rng      *rand.Rand
	logf     func(format string, args ...any)
	walkSize uint64
}

// New returns an empty triangulation of R^ambient.
func New(ambient int, opts ...Option) *Triangulation {
	if ambient < 1 {
		panic(fmt.Errorf("%w: got %d", ErrAmbientDimension, ambient))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Triangulation{
		ambient:      ambient,
		tds:          tds.New(ambient),
		kernel:       o.Kernel,
		coaffine:     kernel.NewCoaffineOrientation(o.Kernel),
		orientations: make([]kernel.Sign, ambient+1),
		scratch:      make([]kernel.Point, ambient+1),
		rng:          rngFromSeed(o.Seed),
		logf:         o.Logf,
	}
	t.Clear()

	return t
}

// Clear removes every finite vertex. Only the vertex at infinity and its
// single full cell remain; the current dimension is -1.
func (t *Triangulation) Clear() {
	t.tds.Clear()
	t.infinity = t.tds.InsertIncreaseDimension(tds.NoVertex)
	t.coaffine.Reset()
	t.walkSize = 0
}

// AmbientDimension returns D.
func (t *Triangulation) AmbientDimension() int { return t.ambient }

// CurrentDimension returns the dimension of the affine hull of the finite
// vertices, -1 when there are none.
func (t *Triangulation) CurrentDimension() int { return t.tds.CurrentDimension() }

// Empty reports whether there is no finite vertex.
func (t *Triangulation) Empty() bool { return t.CurrentDimension() == -1 }

// NumberOfVertices counts finite vertices.
func (t *Triangulation) NumberOfVertices() int { return t.tds.NumberOfVertices() - 1 }

// NumberOfFullCells counts all full cells, unbounded ones included.
func (t *Triangulation) NumberOfFullCells() int { return t.tds.NumberOfFullCells() }

// NumberOfFiniteFullCells counts full cells not incident to infinity.
func (t *Triangulation) NumberOfFiniteFullCells() int {
	if t.CurrentDimension() < 0 {
		return 0
	}

	return t.NumberOfFullCells() - len(t.tds.IncidentFullCells(t.infinity))
}

// WalkSize returns the number of cells visited by point location walks
// since the last Clear.
func (t *Triangulation) WalkSize() uint64 { return t.walkSize }

// TDS exposes the underlying combinatorial structure for read access.
func (t *Triangulation) TDS() *tds.TDS { return t.tds }

// Kernel returns the predicate implementation.
func (t *Triangulation) Kernel() kernel.Kernel { return t.kernel }

// CoaffineOrientation returns the predicate used while the current dimension
// is below the ambient one.
func (t *Triangulation) CoaffineOrientation() *kernel.CoaffineOrientation { return t.coaffine }

// InfiniteVertex returns the vertex at infinity.
func (t *Triangulation) InfiniteVertex() tds.VertexID { return t.infinity }

// InfiniteFullCell returns the full cell recorded on the vertex at infinity.
func (t *Triangulation) InfiniteFullCell() tds.CellID { return t.tds.FullCell(t.infinity) }

// IsInfiniteVertex reports whether v is the vertex at infinity.
func (t *Triangulation) IsInfiniteVertex(v tds.VertexID) bool { return v == t.infinity }

// IsInfiniteCell reports whether c is unbounded.
func (t *Triangulation) IsInfiniteCell(c tds.CellID) bool {
	return t.tds.Vertex(c, 0) == t.infinity
}

// IsInfiniteFacet reports whether f contains the vertex at infinity.
func (t *Triangulation) IsInfiniteFacet(f tds.Facet) bool {
	return t.IsInfiniteCell(f.Cell) && f.Index != 0
}

// IsInfiniteFace reports whether f contains the vertex at infinity.
func (t *Triangulation) IsInfiniteFace(f tds.Face) bool {
	for _, v := range t.tds.FaceVertices(f) {
		if v == t.infinity {
			return true
		}
	}

	return false
}

// Point returns the point of a finite vertex.
func (t *Triangulation) Point(v tds.VertexID) kernel.Point { return t.tds.Point(v) }

// FiniteVertices returns the finite vertices in handle order.
func (t *Triangulation) FiniteVertices() []tds.VertexID {
	vs := t.tds.Vertices()
	out := vs[:0]
	for _, v := range vs {
		if v != t.infinity {
			out = append(out, v)
		}
	}

	return out
}

// FiniteFullCells returns the bounded full cells in handle order.
func (t *Triangulation) FiniteFullCells() []tds.CellID {
	if t.CurrentDimension() < 0 {
		return nil
	}
	cs := t.tds.FullCells()
	out := cs[:0]
	for _, c := range cs {
		if !t.IsInfiniteCell(c) {
			out = append(out, c)
		}
	}

	return out
}

// Orientation returns the orientation of the finite full cell c, evaluated
// with the kernel at full dimension and with the coaffine predicate below
// it. In dimension 0 every cell is Positive.
func (t *Triangulation) Orientation(c tds.CellID) kernel.Sign {
	if t.IsInfiniteCell(c) && t.CurrentDimension() > 0 {
		panic(fmt.Errorf("%w: orientation of cell %d", ErrInfiniteCell, c))
	}
	if t.CurrentDimension() == 0 {
		return kernel.Positive
	}

	return t.orient(t.cellPoints(c))
}

// orient dispatches to the kernel or to the coaffine predicate.
func (t *Triangulation) orient(pts []kernel.Point) kernel.Sign {
	if t.CurrentDimension() == t.ambient {
		return t.kernel.Orientation(pts)
	}

	return t.coaffine.Orientation(pts)
}

// cellPoints gathers the points of c into the scratch buffer. The vertex at
// infinity contributes nil. The slice is overwritten by the next call.
func (t *Triangulation) cellPoints(c tds.CellID) []kernel.Point {
	k := t.CurrentDimension()
	pts := t.scratch[:k+1]
	for i := range pts {
		pts[i] = t.tds.Point(t.tds.Vertex(c, i))
	}

	return pts
}

// rebase points the coaffine predicate at the flat of the current vertices.
// It is a no-op at full dimension and below dimension 1.
func (t *Triangulation) rebase() {
	t.coaffine.Reset()
	k := t.CurrentDimension()
	if k < 1 || k == t.ambient {
		return
	}
	t.coaffine.Rebase(t.cellPoints(t.tds.Neighbor(t.InfiniteFullCell(), 0)))
}

func (t *Triangulation) checkPoint(p kernel.Point) {
	if len(p) != t.ambient {
		panic(fmt.Errorf("%w: %d coordinates, want %d", ErrPointDimension, len(p), t.ambient))
	}
}
