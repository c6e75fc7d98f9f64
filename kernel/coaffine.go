package kernel

import "fmt"

// CoaffineOrientation evaluates orientation inside a k-flat of a larger
// ambient space by projecting onto k independent coordinate axes.
//
// The projection basis is chosen by Rebase from a non-degenerate k-simplex
// of the flat and stays valid until the flat changes. The sign it yields is
// consistent inside the flat but carries no global normalization: the caller
// decides which side is Positive by reorienting its simplices after a rebase.
type CoaffineOrientation struct {
	k     Kernel
	axes  []int
	ready bool
	proj  []Point
}

// NewCoaffineOrientation returns a predicate with no basis. Call Rebase
// before Orientation.
func NewCoaffineOrientation(k Kernel) *CoaffineOrientation {
	return &CoaffineOrientation{k: k}
}

// Reset forgets the basis. The next Orientation panics until Rebase runs.
func (c *CoaffineOrientation) Reset() {
	c.axes = c.axes[:0]
	c.ready = false
}

// Ready reports whether a basis is in place.
func (c *CoaffineOrientation) Ready() bool { return c.ready }

// Axes returns the projection axes; the slice is owned by c.
func (c *CoaffineOrientation) Axes() []int { return c.axes }

// Rebase chooses the projection basis from an affinely independent simplex
// spanning the current flat. It panics with ErrDegenerateBasis otherwise.
func (c *CoaffineOrientation) Rebase(simplex []Point) {
	axes := c.k.IndependentAxes(simplex)
	if len(axes) != len(simplex)-1 {
		panic(fmt.Errorf("%w: %d points span %d axes", ErrDegenerateBasis, len(simplex), len(axes)))
	}
	c.axes = append(c.axes[:0], axes...)
	c.ready = true
}

// Orientation returns the orientation of the projected simplex. pts must
// hold exactly len(Axes())+1 points of the flat.
func (c *CoaffineOrientation) Orientation(pts []Point) Sign {
	if !c.ready {
		panic(ErrCoaffineNotReady)
	}
	if len(pts) != len(c.axes)+1 {
		panic(fmt.Errorf("%w: %d points for a %d-flat", ErrDimensionMismatch, len(pts), len(c.axes)))
	}
	for len(c.proj) < len(pts) {
		c.proj = append(c.proj, nil)
	}
	for i, p := range pts {
		q := c.proj[i][:0]
		for _, a := range c.axes {
			q = append(q, p[a])
		}
		c.proj[i] = q
	}

	return c.k.Orientation(c.proj[:len(pts)])
}
