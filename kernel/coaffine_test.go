package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicia/kernel"
)

func TestCoaffine_PanicsBeforeRebase(t *testing.T) {
	c := kernel.NewCoaffineOrientation(kernel.Exact{})
	require.False(t, c.Ready())
	assertPanicsWith(t, kernel.ErrCoaffineNotReady, func() {
		c.Orientation([]kernel.Point{{0, 0, 0}, {1, 0, 0}})
	})
}

func TestCoaffine_OrientationInsideFlat(t *testing.T) {
	for kname, k := range kernels() {
		t.Run(kname, func(t *testing.T) {
			c := kernel.NewCoaffineOrientation(k)
			a, b, d := kernel.Point{0, 0, 1}, kernel.Point{1, 0, 1}, kernel.Point{0, 1, 1}
			c.Rebase([]kernel.Point{a, b, d})
			require.True(t, c.Ready())
			assert.Equal(t, []int{0, 1}, c.Axes())

			assert.Equal(t, kernel.Positive, c.Orientation([]kernel.Point{a, b, d}))
			assert.Equal(t, kernel.Negative, c.Orientation([]kernel.Point{a, d, b}))
			assert.Equal(t, kernel.Zero, c.Orientation([]kernel.Point{a, b, {2, 0, 1}}))

			assertPanicsWith(t, kernel.ErrDimensionMismatch, func() {
				c.Orientation([]kernel.Point{a, b})
			})
		})
	}
}

func TestCoaffine_VerticalLineUsesSecondAxis(t *testing.T) {
	c := kernel.NewCoaffineOrientation(kernel.Exact{})
	c.Rebase([]kernel.Point{{3, 0}, {3, 5}})
	assert.Equal(t, []int{1}, c.Axes())
	assert.Equal(t, kernel.Positive, c.Orientation([]kernel.Point{{3, 1}, {3, 2}}))
	assert.Equal(t, kernel.Negative, c.Orientation([]kernel.Point{{3, 2}, {3, 1}}))
}

func TestCoaffine_ResetAndDegenerateRebase(t *testing.T) {
	c := kernel.NewCoaffineOrientation(kernel.Exact{})
	c.Rebase([]kernel.Point{{0, 0}, {1, 0}})
	c.Reset()
	assert.False(t, c.Ready())
	assertPanicsWith(t, kernel.ErrCoaffineNotReady, func() {
		c.Orientation([]kernel.Point{{0, 0}, {1, 0}})
	})
	assertPanicsWith(t, kernel.ErrDegenerateBasis, func() {
		c.Rebase([]kernel.Point{{0, 0}, {1, 1}, {2, 2}})
	})
	assert.False(t, c.Ready())
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "NEGATIVE", kernel.Negative.String())
	assert.Equal(t, "ZERO", kernel.Zero.String())
	assert.Equal(t, "POSITIVE", kernel.Positive.String())
	assert.Equal(t, kernel.Negative, kernel.Positive.Neg())
	assert.Equal(t, kernel.Zero, kernel.Zero.Neg())
}
