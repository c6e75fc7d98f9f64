package triangulation

import (
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/spatial"
	"github.com/katalvlaran/simplicia/tds"
)

// Insert adds p, locating it from hint, and returns its vertex. A point equal
// to an existing vertex replaces that vertex's point and returns it.
func (t *Triangulation) Insert(p kernel.Point, hint tds.CellID) tds.VertexID {
	return t.InsertAt(p, t.Locate(p, hint))
}

// InsertFromVertex adds p, locating it from the cell incident to v.
func (t *Triangulation) InsertFromVertex(p kernel.Point, v tds.VertexID) tds.VertexID {
	return t.InsertAt(p, t.LocateFromVertex(p, v))
}

// InsertAt adds p at a location previously computed by Locate.
func (t *Triangulation) InsertAt(p kernel.Point, loc Location) tds.VertexID {
	switch loc.Type {
	case OutsideAffineHull:
		return t.InsertOutsideAffineHull(p)
	case OutsideConvexHull:
		return t.InsertOutsideConvexHull(p, loc.Cell)
	case InSimplex:
		return t.InsertInFullCell(p, loc.Cell)
	case InFacet:
		return t.InsertInFacet(p, loc.Facet)
	case InFace:
		return t.InsertInFace(p, loc.Face)
	case OnVertex:
		v := t.tds.Vertex(loc.Cell, loc.Face.Indices[0])
		t.tds.SetPoint(v, p.Clone())
		return v
	}
	panic(fmt.Errorf("%w: %v", ErrBadLocation, loc.Type))
}

// InsertAll inserts points in a shuffled, spatially sorted order, each
// insertion hinted by the previous one, and returns the number of new
// vertices. The input slice is left untouched.
func (t *Triangulation) InsertAll(points []kernel.Point) int {
	before := t.NumberOfVertices()
	pts := make([]kernel.Point, len(points))
	copy(pts, points)
	shufflePoints(pts, t.rng)
	spatial.Sort(pts)
	hint := tds.NoCell
	for _, p := range pts {
		v := t.Insert(p, hint)
		hint = t.tds.FullCell(v)
	}

	return t.NumberOfVertices() - before
}

// InsertInFullCell splits the finite cell c containing p.
func (t *Triangulation) InsertInFullCell(p kernel.Point, c tds.CellID) tds.VertexID {
	t.checkPoint(p)
	if t.IsInfiniteCell(c) {
		panic(fmt.Errorf("%w: cell %d", ErrInfiniteCell, c))
	}
	v := t.tds.InsertInFullCell(c)
	t.tds.SetPoint(v, p.Clone())

	return v
}

// InsertInFacet splits the two cells sharing the finite facet f containing p.
func (t *Triangulation) InsertInFacet(p kernel.Point, f tds.Facet) tds.VertexID {
	t.checkPoint(p)
	if t.IsInfiniteFacet(f) {
		panic(fmt.Errorf("%w: facet (%d, %d)", ErrInfiniteFace, f.Cell, f.Index))
	}
	v := t.tds.InsertInFacet(f)
	t.tds.SetPoint(v, p.Clone())

	return v
}

// InsertInFace splits every cell incident to the finite face f containing p.
func (t *Triangulation) InsertInFace(p kernel.Point, f tds.Face) tds.VertexID {
	t.checkPoint(p)
	if t.IsInfiniteFace(f) {
		panic(fmt.Errorf("%w: face of cell %d", ErrInfiniteFace, f.Cell))
	}
	v := t.tds.InsertInFace(f)
	t.tds.SetPoint(v, p.Clone())

	return v
}

// InsertInHole replaces the cells of hole by the cone from p to the hole
// boundary; f must be a boundary facet of the hole. It returns the new vertex
// and the created cells.
func (t *Triangulation) InsertInHole(p kernel.Point, hole []tds.CellID, f tds.Facet) (tds.VertexID, []tds.CellID) {
	t.checkPoint(p)
	v, created := t.tds.InsertInHole(hole, f)
	t.tds.SetPoint(v, p.Clone())

	return v, created
}

// InsertOutsideConvexHull adds p, which lies in the affine hull but outside
// the convex hull, given the unbounded cell c returned by Locate. Every
// unbounded cell whose hull facet p sees strictly is replaced.
func (t *Triangulation) InsertOutsideConvexHull(p kernel.Point, c tds.CellID) tds.VertexID {
	t.checkPoint(p)
	if !t.IsInfiniteCell(c) {
		panic(fmt.Errorf("%w: cell %d", ErrFiniteCell, c))
	}
	if t.CurrentDimension() == 1 {
		return t.extendSegment(p, c)
	}
	hole := t.tds.GatherFullCells(c, func(f tds.Facet) bool {
		n := t.tds.Neighbor(f.Cell, f.Index)
		if !t.IsInfiniteCell(n) {
			return false
		}
		pts := t.cellPoints(n)
		pts[0] = p

		return t.orient(pts) == kernel.Positive
	})
	v, _ := t.InsertInHole(p, hole, tds.Facet{Cell: c, Index: 0})

	return v
}

// extendSegment handles the one-dimensional hull, where the unbounded cell
// at either end is split and the new bounded cell may need reordering.
func (t *Triangulation) extendSegment(p kernel.Point, c tds.CellID) tds.VertexID {
	swap := t.tds.MirrorIndex(c, 0) == 0
	v, created := t.InsertInHole(p, []tds.CellID{c}, tds.Facet{Cell: c, Index: 0})
	if swap {
		for _, n := range created {
			if t.tds.Vertex(n, 0) == v {
				t.tds.SwapVertices(n, 0, 1)
			}
		}
	}

	return v
}

// InsertOutsideAffineHull adds p, which lies outside the affine hull of the
// vertices, raising the current dimension by one.
func (t *Triangulation) InsertOutsideAffineHull(p kernel.Point) tds.VertexID {
	t.checkPoint(p)
	if t.CurrentDimension() >= t.ambient {
		panic(fmt.Errorf("%w: dimension %d", ErrAffineHullFull, t.CurrentDimension()))
	}
	v := t.tds.InsertIncreaseDimension(t.infinity)
	t.tds.SetPoint(v, p.Clone())
	t.rebase()
	if t.CurrentDimension() >= 1 {
		s := t.tds.Neighbor(t.InfiniteFullCell(), 0)
		if t.Orientation(s) == kernel.Negative {
			t.reorient()
		}
	}

	return v
}

// reorient flips every cell by exchanging its last two slots. In dimension 1
// the unbounded cells keep their order.
func (t *Triangulation) reorient() {
	k := t.CurrentDimension()
	for _, c := range t.tds.FullCells() {
		if k == 1 && t.IsInfiniteCell(c) {
			continue
		}
		t.tds.SwapVertices(c, k-1, k)
	}
}

// ContractFace collapses the finite face f to a single vertex at p and
// returns it. The caller must ensure the result is a valid triangulation;
// if the cells around the new vertex are not positively oriented a report
// is logged.
func (t *Triangulation) ContractFace(p kernel.Point, f tds.Face) tds.VertexID {
	t.checkPoint(p)
	if t.IsInfiniteFace(f) {
		panic(fmt.Errorf("%w: face of cell %d", ErrInfiniteFace, f.Cell))
	}
	v := t.tds.ContractFace(f)
	t.tds.SetPoint(v, p.Clone())
	if !t.AreIncidentFullCellsValid(v, false) {
		t.logf("triangulation: contracted vertex %d leaves invalid cells around it", v)
	}

	return v
}
