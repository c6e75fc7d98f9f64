package kernel

import "errors"

var (
	// ErrDimensionMismatch indicates a point tuple whose size or coordinate
	// count does not fit the predicate being evaluated.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrNonFinite indicates a NaN or infinite coordinate reached a predicate.
	ErrNonFinite = errors.New("kernel: non-finite coordinate")

	// ErrCoaffineNotReady indicates CoaffineOrientation.Orientation was called
	// before Rebase chose a projection basis.
	ErrCoaffineNotReady = errors.New("kernel: coaffine orientation has no basis")

	// ErrDegenerateBasis indicates Rebase received points that do not span a
	// flat of the expected dimension.
	ErrDegenerateBasis = errors.New("kernel: degenerate basis simplex")
)
