// Package spatial orders points so that consecutive points are close in
// space. Feeding a triangulation in that order keeps every point location
// walk short, because the hint taken from the previous insertion is already
// near the next point.
//
// Sort builds a median-split k-d tree (gonum.org/v1/gonum/spatial/kdtree)
// over the points, cycling the split axis with depth, and emits the points
// in in-order traversal. Each split stably sorts its slice along the split
// axis and takes the middle element, so the order is deterministic for a
// given input order, ties included.
package spatial
