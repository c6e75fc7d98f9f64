package triangulation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplicia/kernel"
	"github.com/katalvlaran/simplicia/tds"
)

// Validate checks the combinatorial structure at the given level (see
// tds.TDS.Validate) and then the geometry: the vertex at infinity sits in
// slot 0 of every unbounded cell and every cell is positively oriented. An
// unbounded cell is oriented like its bounded neighbor across the hull
// facet, with the vertex at infinity replaced by that neighbor's opposite
// vertex and the sign reversed.
//
// All findings are joined; nil means valid.
func (t *Triangulation) Validate(level int) error {
	if err := t.tds.Validate(level); err != nil {
		return err
	}
	var errs []error
	for _, c := range t.tds.FullCells() {
		if i := t.tds.IndexOf(c, t.infinity); i > 0 {
			errs = append(errs, fmt.Errorf("%w: cell %d slot %d", ErrInfiniteVertexMisplaced, c, i))
		}
	}
	k := t.CurrentDimension()
	if len(errs) > 0 || k < 1 {
		return errors.Join(errs...)
	}
	for _, c := range t.tds.FullCells() {
		var o kernel.Sign
		switch {
		case !t.IsInfiniteCell(c):
			o = t.Orientation(c)
		case k == 1:
			o = kernel.Positive
		default:
			opposite := t.tds.Point(t.tds.MirrorVertex(c, 0))
			pts := t.cellPoints(c)
			pts[0] = opposite
			o = t.orient(pts).Neg()
		}
		switch o {
		case kernel.Negative:
			errs = append(errs, fmt.Errorf("%w: cell %d", ErrCellInverted, c))
		case kernel.Zero:
			errs = append(errs, fmt.Errorf("%w: cell %d", ErrCellFlat, c))
		}
	}

	return errors.Join(errs...)
}

// IsValid reports whether Validate(level) finds nothing. When verbose, every
// finding is logged.
func (t *Triangulation) IsValid(verbose bool, level int) bool {
	err := t.Validate(level)
	if err == nil {
		return true
	}
	if verbose {
		for _, e := range flatten(err) {
			t.logf("triangulation: invalid: %v", e)
		}
	}

	return false
}

// AreIncidentFullCellsValid checks that every bounded cell incident to v is
// positively oriented.
func (t *Triangulation) AreIncidentFullCellsValid(v tds.VertexID, verbose bool) bool {
	if t.CurrentDimension() < 1 {
		return true
	}
	ok := true
	for _, c := range t.tds.IncidentFullCells(v) {
		if t.IsInfiniteCell(c) {
			continue
		}
		if o := t.Orientation(c); o != kernel.Positive {
			ok = false
			if verbose {
				t.logf("triangulation: cell %d around vertex %d has orientation %v", c, v, o)
			}
		}
	}

	return ok
}

// flatten expands errors.Join trees into their leaves.
func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}

	return out
}
