package triangulation

import (
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
)

// Locate finds where p lies, walking from hint (NoCell starts next to
// infinity). An unbounded hint is replaced by its bounded neighbor.
//
// The walk is a remembering stochastic visibility walk: in the current cell
// the facets are tested in cyclic order from a random start, skipping the
// facet just crossed, and the walk moves across the first facet whose
// supporting hyperplane separates the cell from p. It stops in the cell that
// sees p on the non-negative side of every facet, or as soon as it enters an
// unbounded cell.
func (t *Triangulation) Locate(p kernel.Point, hint tds.CellID) Location {
	t.checkPoint(p)
	if t.CurrentDimension() == t.ambient {
		return t.walk(p, hint, t.kernel.Orientation)
	}

	return t.walk(p, hint, t.coaffine.Orientation)
}

// LocateFromVertex locates p starting from the cell incident to v.
func (t *Triangulation) LocateFromVertex(p kernel.Point, v tds.VertexID) Location {
	if v == tds.NoVertex {
		v = t.infinity
	}

	return t.Locate(p, t.tds.FullCell(v))
}

// IsVertex returns the vertex located exactly at p, if any.
func (t *Triangulation) IsVertex(p kernel.Point) (tds.VertexID, bool) {
	loc := t.Locate(p, tds.NoCell)
	if loc.Type != OnVertex {
		return tds.NoVertex, false
	}

	return t.tds.Vertex(loc.Cell, loc.Face.Indices[0]), true
}

func (t *Triangulation) walk(p kernel.Point, hint tds.CellID, orientation func([]kernel.Point) kernel.Sign) Location {
	cur := t.CurrentDimension()
	loc := Location{
		Cell:  tds.NoCell,
		Face:  tds.Face{Cell: tds.NoCell},
		Facet: tds.Facet{Cell: tds.NoCell, Index: -1},
	}
	switch cur {
	case -1:
		loc.Type = OutsideAffineHull
		return loc
	case 0:
		c := t.tds.Neighbor(t.InfiniteFullCell(), 0)
		if t.kernel.CompareLexicographically(p, t.tds.Point(t.tds.Vertex(c, 0))) != 0 {
			loc.Type = OutsideAffineHull
			return loc
		}
		loc.Type = OnVertex
		loc.Cell = c
		loc.Face = tds.Face{Cell: c, Indices: []int{0}}
		return loc
	}

	s := hint
	switch {
	case s == tds.NoCell:
		s = t.tds.Neighbor(t.InfiniteFullCell(), 0)
	case !t.tds.IsFullCell(s):
		panic(fmt.Errorf("%w: %d", ErrBadHint, s))
	case t.IsInfiniteCell(s):
		s = t.tds.Neighbor(s, 0)
	}
	if cur < t.ambient && !t.kernel.ContainedInAffineHull(t.cellPoints(s), p) {
		loc.Type = OutsideAffineHull
		return loc
	}

	previous := tds.NoCell
	for {
		t.walkSize++
		i := t.rng.Intn(cur + 1)
		j := 0
		for ; j <= cur; j, i = j+1, (i+1)%(cur+1) {
			next := t.tds.Neighbor(s, i)
			if next == previous {
				t.orientations[i] = kernel.Positive
				continue
			}
			pts := t.cellPoints(s)
			pts[i] = p
			t.orientations[i] = orientation(pts)
			if t.orientations[i] != kernel.Negative {
				continue
			}
			previous, s = s, next
			if t.IsInfiniteCell(s) {
				loc.Type = OutsideConvexHull
				loc.Cell = s
				loc.Face.Cell = s
				return loc
			}
			break
		}
		if j > cur {
			break
		}
	}

	loc.Cell = s
	loc.Face.Cell = s
	num := 0
	indices := make([]int, 0, cur+1)
	for i := 0; i <= cur; i++ {
		if t.orientations[i] == kernel.Zero {
			num++
			loc.Facet = tds.Facet{Cell: s, Index: i}
		} else {
			indices = append(indices, i)
		}
	}
	switch {
	case num == 0:
		loc.Type = InSimplex
	case num == cur:
		loc.Type = OnVertex
		loc.Face.Indices = indices
	case num == 1:
		loc.Type = InFacet
		loc.Face.Indices = indices
	default:
		loc.Type = InFace
		loc.Face.Indices = indices
	}
	if loc.Type != InFacet {
		loc.Facet = tds.Facet{Cell: tds.NoCell, Index: -1}
	}

	return loc
}
