// Package simplicia is a dimension-generic incremental triangulation
// library: insert points of R^D one at a time (or in bulk) and keep a valid
// triangulation of their convex hull, closed into a topological sphere by a
// vertex at infinity.
//
// What is in the box?
//
//	kernel/        orientation, lexicographic order, affine-hull membership;
//	               exact (math/big) and floating-point (gonum/mat) kernels
//	tds/           the combinatorial triangulation data structure: stable
//	               handles, neighbor relations, hole insertion, dimension lifting
//	spatial/       spatial sorting of input points on a gonum k-d tree
//	triangulation/ geometric layer: point location, insertion, face
//	               contraction, validity checks, text and binary I/O
//
// The current dimension grows with the input: a single point is a
// 0-dimensional triangulation, collinear points a 1-dimensional one, and so
// on up to D. Degenerate inputs (duplicates, points on facets or lower-
// dimensional faces) are classified exactly with the default kernel.
//
// Quick example (D = 2):
//
//	tr := triangulation.New(2)
//	tr.Insert(kernel.Point{0, 0}, tds.NoCell)
//	tr.Insert(kernel.Point{1, 0}, tds.NoCell)
//	tr.Insert(kernel.Point{0, 1}, tds.NoCell)
//	// one bounded triangle, three unbounded cells
//
// Nothing here is safe for concurrent mutation; distinct triangulations are
// independent.
//
//	go get github.com/katalvlaran/simplicia
package simplicia
