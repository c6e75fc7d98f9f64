// Package tds implements a dimension-generic triangulation data structure: the
// purely combinatorial layer beneath triangulation.Triangulation.
//
// A TDS stores vertices and full cells in two arenas addressed by stable
// integer handles (VertexID, CellID). Every full cell of the current
// dimension k holds k+1 vertex slots and k+1 neighbor slots, with the
// convention that neighbor i is the cell sharing the facet opposite vertex i.
// Every vertex points back at one incident full cell.
//
// What:
//
//   - Element lifecycle: NewVertex, NewFullCell, DeleteVertex, DeleteFullCell
//   - Incidence: AssociateVertexWithFullCell, SetNeighbors, MirrorIndex, SwapVertices
//   - Topology mutators: InsertInFullCell, InsertInFacet, InsertInFace,
//     InsertInHole, InsertIncreaseDimension, ContractFace
//   - Traversal: GatherFullCells, IncidentFullCells, IncidentFullCellsOfFace, Star
//   - Persistence: WriteFullCells, ReadFullCells
//   - Checks: Validate
//
// Geometry is out of scope here. Points are opaque payloads stored on
// vertices; orientation is maintained only combinatorially (adjacent cells
// induce opposite orientations on their common facet).
//
// Handles of deleted elements are recycled through free lists. A handle held
// across a mutating operation may therefore name a different element
// afterwards; callers re-derive handles from the structure.
//
// Errors:
//
//   - Precondition violations (dead handles, a facet that is not on the
//     boundary of a hole, a dimension past the maximum) panic with a wrapped
//     sentinel.
//   - Validate returns every finding joined with errors.Join, each wrapping one
//     of ErrNeighborAsymmetry, ErrDanglingReference, ErrDuplicateVertex,
//     ErrFacetMismatch, ErrBadBackReference, ErrInconsistentOrientation.
//
// A TDS is not safe for concurrent use.
package tds
