package triangulation

import (
	"fmt"
	"log"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
)

// LocateType classifies where a query point lies relative to the
// triangulation.
type LocateType int

const (
	// OnVertex: the point coincides with an existing vertex.
	OnVertex LocateType = iota
	// InFace: the point lies in the relative interior of a face of
	// dimension 1..k-2.
	InFace
	// InFacet: the point lies in the relative interior of a facet.
	InFacet
	// InSimplex: the point lies in the interior of a finite full cell.
	InSimplex
	// OutsideConvexHull: the point lies in the affine hull but outside the
	// convex hull; the located cell is unbounded.
	OutsideConvexHull
	// OutsideAffineHull: the point does not lie in the affine hull of the
	// vertices (always the case for an empty triangulation).
	OutsideAffineHull
)

// String implements fmt.Stringer.
func (lt LocateType) String() string {
	switch lt {
	case OnVertex:
		return "ON_VERTEX"
	case InFace:
		return "IN_FACE"
	case InFacet:
		return "IN_FACET"
	case InSimplex:
		return "IN_SIMPLEX"
	case OutsideConvexHull:
		return "OUTSIDE_CONVEX_HULL"
	case OutsideAffineHull:
		return "OUTSIDE_AFFINE_HULL"
	}

	return fmt.Sprintf("LocateType(%d)", int(lt))
}

// Location is the result of a point location.
//
// Cell is the located full cell (NoCell for OutsideAffineHull). Face holds
// the indices of Cell spanning the face containing the point for OnVertex
// (one index), InFacet and InFace. Facet is set for InFacet.
type Location struct {
	Cell  tds.CellID
	Type  LocateType
	Face  tds.Face
	Facet tds.Facet
}

// Options configures a Triangulation.
//
// Kernel – geometric predicates; default kernel.Exact.
// Seed   – seed of the random source driving the walk and bulk shuffles;
//
//	0 selects a fixed default so runs are reproducible.
//
// Logf   – sink for verbose validity reports; default log.Printf.
type Options struct {
	Kernel kernel.Kernel
	Seed   int64
	Logf   func(format string, args ...any)
}

// Option is a functional option for New.
type Option func(*Options)

// WithKernel selects the predicate implementation. A nil kernel is ignored.
func WithKernel(k kernel.Kernel) Option {
	return func(o *Options) {
		if k != nil {
			o.Kernel = k
		}
	}
}

// WithSeed seeds the random source owned by the triangulation.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes verbose reports to logf. A nil logf silences them.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(o *Options) {
		if logf == nil {
			logf = func(string, ...any) {}
		}
		o.Logf = logf
	}
}

// DefaultOptions returns the configuration used by New before options apply.
//
// Defaults:
//   - Kernel: kernel.Exact{}
//   - Seed:   0 (fixed default stream)
//   - Logf:   log.Printf
func DefaultOptions() Options {
	return Options{
		Kernel: kernel.Exact{},
		Seed:   0,
		Logf:   log.Printf,
	}
}
