// Package triangulation maintains an incremental triangulation of points in
// R^D on top of a tds.TDS.
//
// 🚀 What:
//
//   - Locate / LocateFromVertex: remembering stochastic visibility walk that
//     classifies a point as OnVertex, InFace, InFacet, InSimplex,
//     OutsideConvexHull or OutsideAffineHull
//   - Insert / InsertAll: location-driven insertion; InsertAll shuffles the
//     input with the owned random source and spatially sorts it first
//   - InsertInFullCell, InsertInFacet, InsertInFace, InsertInHole,
//     InsertOutsideConvexHull, InsertOutsideAffineHull: the primitive updates
//   - ContractFace: collapse a finite face to a new vertex
//   - Validate / IsValid: combinatorial and orientation checks
//   - WriteText / ReadText, MarshalBinary / UnmarshalBinary: persistence
//
// ✨ Model:
//
//	A vertex at infinity turns the triangulation into a topological sphere:
//	every hull facet is capped by an unbounded full cell holding the vertex
//	at infinity in slot 0. Neighbor i of a cell is across the facet
//	opposite vertex i. While the finite vertices span a k-flat with k < D,
//	orientation is evaluated inside the flat through
//	kernel.CoaffineOrientation, rebased whenever k changes.
//
// ⚙️ Options:
//
//	New(D, WithKernel(k), WithSeed(s), WithLogger(logf))
//	Kernel defaults to kernel.Exact; the seed drives both the walk and bulk
//	shuffles, so equal seeds and inputs give identical triangulations.
//
// Errors:
//
//   - Validate joins findings wrapping ErrInfiniteVertexMisplaced,
//     ErrCellInverted, ErrCellFlat, or the tds sentinels.
//   - ReadText / UnmarshalBinary return ErrDimensionTooHigh or
//     ErrMalformedInput.
//   - Contract violations (wrong point dimension, an unbounded cell where a
//     bounded one is required, a dead hint) panic with a wrapped sentinel.
//
// Complexity:
//
//	Expected O(n^(1/D)) cells visited per walk on spatially sorted input.
//	Insertion is linear in the size of the conflict region.
//
// A Triangulation is not safe for concurrent use.
package triangulation
