package voronoi

import (
	"math"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
)

// parabolaY evaluates, at the given x, the y-coordinate of the parabola with focus and the
// horizontal line y = directrixY as directrix. When the focus sits exactly on the directrix, the
// parabola degenerates to a vertical ray through focus.X(); that is represented with the
// non-finite sentinels math.Inf(-1)/math.Inf(1) rather than a panic, per this engine's
// non-finite-arithmetic convention (focus.X() itself reports math.Inf(-1), everywhere else
// math.Inf(1), since the degenerate arc is "infinitely deep" directly under the focus).
func parabolaY(focus point.Point, directrixY, x float64) float64 {
	if focus.Y() == directrixY {
		if x == focus.X() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	denom := 2 * (focus.Y() - directrixY)
	return ((x-focus.X())*(x-focus.X()) + focus.Y()*focus.Y() - directrixY*directrixY) / denom
}

// breakpointX returns the x-coordinate at which the parabolas for left and right (in that
// left-to-right beachline order) intersect, given the sweepline at directrixY. This is the
// standard two-focus/shared-directrix intersection used to keep the beachline's arc sequence
// ordered without storing an explicit x on each arc.
func breakpointX(left, right point.Point, directrixY float64, opts options.GeometryOptions) float64 {
	d1 := 2 * (left.Y() - directrixY)
	d2 := 2 * (right.Y() - directrixY)

	if numeric.FloatEquals(d1, 0, opts.Epsilon) {
		return left.X()
	}
	if numeric.FloatEquals(d2, 0, opts.Epsilon) {
		return right.X()
	}

	a := 1/d1 - 1/d2
	b := -2 * (left.X()/d1 - right.X()/d2)
	c := (left.X()*left.X()+left.Y()*left.Y()-directrixY*directrixY)/d1 -
		(right.X()*right.X()+right.Y()*right.Y()-directrixY*directrixY)/d2

	if numeric.FloatEquals(a, 0, opts.Epsilon) {
		return -c / b
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0 // clamp: tangency lost to floating-point error, not a real negative discriminant
	}
	sq := math.Sqrt(disc)

	// a is positive exactly when left is the narrower parabola (left.Y() < right.Y()), and the
	// breakpoint is then the larger root; when a is negative it is the smaller root. Both cases
	// are the same expression.
	return (-b + sq) / (2 * a)
}

// circumcenter computes the center and radius of the circle through three non-collinear points.
// ok is false when the points are collinear (within epsilon), in which case no circle exists and
// center/radius are the zero value — callers report [DegenerateCircle] in that case.
func circumcenter(a, b, c point.Point, opts options.GeometryOptions) (center point.Point, radius float64, ok bool) {
	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	if numeric.FloatEquals(d, 0, opts.Epsilon) {
		return point.Point{}, 0, false
	}

	aSq := a.X()*a.X() + a.Y()*a.Y()
	bSq := b.X()*b.X() + b.Y()*b.Y()
	cSq := c.X()*c.X() + c.Y()*c.Y()

	ux := (aSq*(b.Y()-c.Y()) + bSq*(c.Y()-a.Y()) + cSq*(a.Y()-b.Y())) / d
	uy := (aSq*(c.X()-b.X()) + bSq*(a.X()-c.X()) + cSq*(b.X()-a.X())) / d

	center = point.New(ux, uy)
	radius = center.DistanceToPoint(a)
	return center, radius, true
}

// bisectorY returns the y-coordinate at x of the perpendicular bisector of segment ab. When ab is
// horizontal the bisector is itself vertical, so the true slope is undefined; rather than produce
// a non-finite result, the a.Y()-b.Y() denominator is substituted with the smallest representable
// positive increment, yielding the (correctly signed) near-vertical line that the true bisector
// converges to in the limit. For the far-x magnitudes this is evaluated at during finalization the
// result legitimately overflows to +/-Inf, which is consistent with this engine's non-finite
// arithmetic convention rather than a bug.
func bisectorY(a, b point.Point, x float64) float64 {
	denom := a.Y() - b.Y()
	if denom == 0 {
		denom = math.SmallestNonzeroFloat64
	}
	mid := a.Midpoint(b)
	slope := (b.X() - a.X()) / denom // perpendicular to AB's slope
	return mid.Y() + slope*(x-mid.X())
}

// distanceFromPlane returns the signed perpendicular distance of p from the directed line
// through a toward b, scaled by the length of a->b (the value is not normalized): positive when
// p is to the left of a->b, negative to the right, zero when p is on the line. Used only for its
// sign, to decide which side of a new edge an incoming vertex lies on.
func distanceFromPlane(p, a, b point.Point) float64 {
	dir := b.Sub(a)
	rel := p.Sub(a)
	return dir.X()*rel.Y() - dir.Y()*rel.X()
}

// extendSegment returns the point reached by walking from start in direction dir until the
// x-coordinate's magnitude reaches farX (or, for a vertical direction, by walking until the
// y-coordinate's magnitude reaches farX instead, since an x-envelope cannot bound a vertical ray).
func extendSegment(start, dir point.Point, farX float64) point.Point {
	if dir.X() == 0 {
		if dir.Y() >= 0 {
			return point.New(start.X(), farX)
		}
		return point.New(start.X(), -farX)
	}
	var targetX float64
	if dir.X() > 0 {
		targetX = farX
	} else {
		targetX = -farX
	}
	t := (targetX - start.X()) / dir.X()
	return point.New(targetX, start.Y()+dir.Y()*t)
}
