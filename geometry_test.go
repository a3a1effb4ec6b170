package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
)

func TestParabolaY(t *testing.T) {
	focus := point.New(0, 4)
	// Directrix at y=0: vertex of the parabola sits halfway between focus and directrix.
	assert.InDelta(t, 2.0, parabolaY(focus, 0, 0), 1e-9)
}

func TestParabolaY_DegenerateOnDirectrix(t *testing.T) {
	focus := point.New(3, 5)
	assert.True(t, math.IsInf(parabolaY(focus, 5, 3), -1))
	assert.True(t, math.IsInf(parabolaY(focus, 5, 7), 1))
}

func TestBreakpointX_Symmetric(t *testing.T) {
	left := point.New(-2, 2)
	right := point.New(2, 2)
	opts := options.GeometryOptions{}
	// Two foci at the same height: the breakpoint sits directly between them by symmetry.
	assert.InDelta(t, 0.0, breakpointX(left, right, 0, opts), 1e-9)
}

func TestCircumcenter(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(2, 0)
	c := point.New(0, 2)
	center, radius, ok := circumcenter(a, b, c, options.GeometryOptions{})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, center.X(), 1e-9)
	assert.InDelta(t, 1.0, center.Y(), 1e-9)
	assert.InDelta(t, math.Sqrt2, radius, 1e-9)
}

func TestCircumcenter_Collinear(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 1)
	c := point.New(2, 2)
	_, _, ok := circumcenter(a, b, c, options.GeometryOptions{})
	assert.False(t, ok)
}

func TestBisectorY(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(0, 4)
	// Bisector of a vertical segment is horizontal, at the midpoint's y, for every x.
	assert.InDelta(t, 2.0, bisectorY(a, b, 10), 1e-9)
}

func TestBisectorY_Horizontal(t *testing.T) {
	a := point.New(0, 2)
	b := point.New(4, 2)
	// The true bisector is the vertical line x=2; substituting a tiny nonzero denominator for the
	// zero a.Y()-b.Y() yields an enormous slope that overflows to -Inf at this x, rather than NaN.
	assert.True(t, math.IsInf(bisectorY(a, b, 1), -1))
}

func TestDistanceFromPlane(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 0)
	left := point.New(0, 1)
	right := point.New(0, -1)
	assert.Greater(t, distanceFromPlane(left, a, b), 0.0)
	assert.Less(t, distanceFromPlane(right, a, b), 0.0)
}

func TestExtendSegment(t *testing.T) {
	start := point.New(0, 0)
	dir := point.New(1, 1)
	p := extendSegment(start, dir, 10)
	assert.InDelta(t, 10, p.X(), 1e-9)
	assert.InDelta(t, 10, p.Y(), 1e-9)
}

func TestExtendSegment_Vertical(t *testing.T) {
	start := point.New(3, 0)
	p := extendSegment(start, point.New(0, -1), 10)
	assert.InDelta(t, 3, p.X(), 1e-9)
	assert.InDelta(t, -10, p.Y(), 1e-9)
}
