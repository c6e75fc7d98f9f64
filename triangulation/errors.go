package triangulation

import "errors"

// Validation findings returned (joined) by Validate.
var (
	ErrInfiniteVertexMisplaced = errors.New("triangulation: vertex at infinity is not in slot 0")
	ErrCellInverted            = errors.New("triangulation: full cell has negative orientation")
	ErrCellFlat                = errors.New("triangulation: full cell is flat")
)

// Deserialization failures.
var (
	ErrDimensionTooHigh = errors.New("triangulation: input dimension exceeds the ambient dimension")
	ErrMalformedInput   = errors.New("triangulation: malformed input")
)

// Precondition violations, raised with panic.
var (
	ErrAmbientDimension = errors.New("triangulation: ambient dimension must be at least 1")
	ErrPointDimension   = errors.New("triangulation: point does not have ambient dimension")
	ErrInfiniteCell     = errors.New("triangulation: operation requires a finite full cell")
	ErrFiniteCell       = errors.New("triangulation: operation requires an unbounded full cell")
	ErrInfiniteFace     = errors.New("triangulation: operation requires a finite face")
	ErrAffineHullFull   = errors.New("triangulation: points already span the ambient space")
	ErrBadHint          = errors.New("triangulation: hint is not a live full cell")
	ErrBadLocation      = errors.New("triangulation: unknown locate type")
)
