package brep

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is an immutable triple (x, y, z) of 64-bit floats. Equality is
// Euclidean distance below EQThreshold. The underlying vector algebra
// (add/sub/dot/cross/normalize) is sdfx's own v3.Vec, the same vector type
// pkg/kernel/sdfx already imports for its SDF3 construction — Point is a
// defined type over it so brep gets that algebra without re-deriving it.
type Point v3.Vec

// vec converts p to the underlying sdfx vector.
func (p Point) vec() v3.Vec {
	return v3.Vec(p)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point(p.vec().Add(q.vec()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point(p.vec().Sub(q.vec()))
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point(p.vec().MulScalar(k))
}

// Neg returns the additive inverse of p.
func (p Point) Neg() Point {
	return Point(p.vec().Neg())
}

// Dot returns the dot product p.q.
func (p Point) Dot(q Point) float64 {
	return p.vec().Dot(q.vec())
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point(p.vec().Cross(q.vec()))
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 {
	return p.vec().Length()
}

// Normalize returns p scaled to unit length. Panics if p is (near) zero;
// callers are expected to have already excluded degenerate directions.
func (p Point) Normalize() Point {
	if p.Norm() < EQThreshold {
		panic("brep: cannot normalize a near-zero vector")
	}
	return Point(p.vec().Normalize())
}

// Equal reports whether p and q are within EQThreshold of each other.
func (p Point) Equal(q Point) bool {
	return p.Sub(q).Norm() < EQThreshold
}

// IsZero reports whether p is within EQThreshold of the origin.
func (p Point) IsZero() bool {
	return p.Norm() < EQThreshold
}

// Lerp linearly interpolates between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// Min returns the component-wise minimum of p and q, used to accumulate
// axis-aligned bounding boxes (not a v3.Vec primitive, so composed locally).
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y), Z: math.Min(p.Z, q.Z)}
}

// Max returns the component-wise maximum of p and q, used to accumulate
// axis-aligned bounding boxes (not a v3.Vec primitive, so composed locally).
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y), Z: math.Max(p.Z, q.Z)}
}
