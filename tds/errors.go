package tds

import "errors"

// Validation findings.
var (
	ErrNeighborAsymmetry       = errors.New("tds: neighbor relation is not symmetric")
	ErrDanglingReference       = errors.New("tds: reference to a deleted or unknown element")
	ErrDuplicateVertex         = errors.New("tds: vertex repeated in a full cell")
	ErrFacetMismatch           = errors.New("tds: neighbors disagree on their common facet")
	ErrBadBackReference        = errors.New("tds: vertex does not belong to its incident full cell")
	ErrInconsistentOrientation = errors.New("tds: adjacent full cells induce the same facet orientation")
)

// Precondition violations, raised with panic.
var (
	ErrInvalidHandle         = errors.New("tds: invalid handle")
	ErrNotBoundaryFacet      = errors.New("tds: facet is not on the boundary of the hole")
	ErrHoleNotBall           = errors.New("tds: hole boundary is not a closed pseudo-manifold")
	ErrDimensionOverflow     = errors.New("tds: current dimension would exceed the maximal dimension")
	ErrDimensionTooLow       = errors.New("tds: operation requires a higher current dimension")
	ErrEmptyHole             = errors.New("tds: hole has no full cells")
	ErrMalformedConnectivity = errors.New("tds: malformed connectivity")
)
