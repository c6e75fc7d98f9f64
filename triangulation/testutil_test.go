// Package triangulation_test holds helpers shared by the test files of this
// package.
package triangulation_test

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
	"github.com/katalvlaran/simplicia/triangulation"
)

// gridPoints draws n points with integer coordinates in [0, side), so that
// duplicates and collinear or coplanar subsets are common.
func gridPoints(seed int64, n, dim, side int) []kernel.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]kernel.Point, n)
	for i := range pts {
		p := make(kernel.Point, dim)
		for j := range p {
			p[j] = float64(rng.Intn(side))
		}
		pts[i] = p
	}

	return pts
}

// uniformPoints draws n points uniformly in the unit cube.
func uniformPoints(seed int64, n, dim int) []kernel.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]kernel.Point, n)
	for i := range pts {
		p := make(kernel.Point, dim)
		for j := range p {
			p[j] = rng.Float64()
		}
		pts[i] = p
	}

	return pts
}

func distinct(pts []kernel.Point) int {
	seen := make(map[string]struct{}, len(pts))
	for _, p := range pts {
		seen[pointKey(p)] = struct{}{}
	}

	return len(seen)
}

func pointKey(p kernel.Point) string {
	if p == nil {
		return "inf"
	}
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// requireValid checks validity at the strictest level, the neighbor
// symmetry seen through vertex sets, and that every vertex is found again.
func requireValid(t *testing.T, tr *triangulation.Triangulation) {
	t.Helper()
	require.NoError(t, tr.Validate(2))
	requireNeighborSymmetry(t, tr)
	for _, v := range tr.FiniteVertices() {
		loc := tr.Locate(tr.Point(v), tds.NoCell)
		require.Equal(t, triangulation.OnVertex, loc.Type, "vertex %d at %v", v, tr.Point(v))
		require.Equal(t, v, tr.TDS().Vertex(loc.Cell, loc.Face.Indices[0]))
	}
}

// requireNeighborSymmetry checks that for every cell c and slot i, the
// neighbor n across slot i has c across the slot of its only vertex not in c.
func requireNeighborSymmetry(t *testing.T, tr *triangulation.Triangulation) {
	t.Helper()
	d := tr.TDS()
	k := tr.CurrentDimension()
	if k < 0 {
		return
	}
	for _, c := range d.FullCells() {
		for i := 0; i <= k; i++ {
			n := d.Neighbor(c, i)
			j := -1
			for s := 0; s <= k; s++ {
				if !d.HasVertex(c, d.Vertex(n, s)) {
					require.Equal(t, -1, j, "cells %d and %d differ in more than one vertex", c, n)
					j = s
				}
			}
			require.NotEqual(t, -1, j, "cells %d and %d have the same vertices", c, n)
			require.Equal(t, c, d.Neighbor(n, j))
		}
	}
}

// topology is a handle-free description of a triangulation: every cell as
// its ordered point list, and every (cell, slot, neighbor) triple.
type topology struct {
	Dim      int
	Vertices []string
	Cells    []string
	Adjacent []string
}

func describe(tr *triangulation.Triangulation) topology {
	d := tr.TDS()
	k := tr.CurrentDimension()
	top := topology{Dim: k}
	for _, v := range tr.FiniteVertices() {
		top.Vertices = append(top.Vertices, pointKey(tr.Point(v)))
	}
	slices.Sort(top.Vertices)
	if k < 0 {
		return top
	}
	cellKey := func(c tds.CellID) string {
		parts := make([]string, k+1)
		for i := range parts {
			parts[i] = pointKey(d.Point(d.Vertex(c, i)))
		}

		return strings.Join(parts, " ")
	}
	for _, c := range d.FullCells() {
		top.Cells = append(top.Cells, cellKey(c))
		for i := 0; i <= k; i++ {
			top.Adjacent = append(top.Adjacent, fmt.Sprintf("%s #%d %s", cellKey(c), i, cellKey(d.Neighbor(c, i))))
		}
	}
	slices.Sort(top.Cells)
	slices.Sort(top.Adjacent)

	return top
}

// build inserts pts one by one, each insertion hinted by the previous one.
func build(t *testing.T, ambient int, pts []kernel.Point, opts ...triangulation.Option) *triangulation.Triangulation {
	t.Helper()
	tr := triangulation.New(ambient, opts...)
	hint := tds.NoCell
	for _, p := range pts {
		v := tr.Insert(p, hint)
		hint = tr.TDS().FullCell(v)
	}

	return tr
}

// assertPanicsWith checks that fn panics with an error matching target.
func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
