// Package point defines the foundational geometric primitive used throughout the voronoi
// engine, the Point type. Sites, Voronoi vertices, and edge endpoints are all Points.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. It provides the handful
// of vector operations the sweepline engine actually needs: translation, distance, and
// epsilon-tolerant equality. It intentionally does not carry the int/float32 generic machinery
// or the angle/rotation/projection surface of a general-purpose geometry library — the engine's
// data model (spec) is real-valued coordinates only.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/voronoi/numeric"
	"github.com/mikenye/voronoi/options"
)

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

// Add returns the sum of two points as if they were vectors:
//
//	(p.X()+q.X(), p.Y()+q.Y())
func (p Point) Add(q Point) Point {
	return New(p.x+q.x, p.y+q.y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return New((p.x+q.x)/2, (p.y+q.y)/2)
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q, avoiding
// the cost of a square root when only distance comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq determines whether p is equal to q, optionally within an epsilon tolerance
// (see [options.WithEpsilon]).
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// String returns a string representation of p in the format "(x,y)", each coordinate
// formatted with %f.
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}
