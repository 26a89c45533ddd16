package brep

import "math"

// Surface is a parameterized 2D manifold embedded in 3D: a plane or a
// sphere. Like Curve, the set of implementations is closed.
type Surface interface {
	PointAt(u, v float64) Point
	Project(p Point) (u, v float64)
	DerivativeU(u, v float64) Point
	DerivativeV(u, v float64) Point
	// Normal returns the unit surface normal at p: outward for Sphere,
	// fixed-side for Plane.
	Normal(p Point) Point
	Transform(t Transform) Surface

	surfaceSealed()
}

// ---------------------------------------------------------------------------
// Plane
// ---------------------------------------------------------------------------

// Plane is an infinite flat surface: basis point plus two (not necessarily
// unit, not necessarily orthogonal) in-plane slope vectors. The normal is
// derived as u_slope x v_slope.
type Plane struct {
	Basis   Point
	USlope  Point
	VSlope  Point
	normal  Point
	a11, a12, a22, det float64 // cached 2x2 Gram matrix for Project
}

// NewPlane constructs a Plane. Panics if USlope and VSlope are parallel
// (degenerate, no well-defined normal).
func NewPlane(basis, uSlope, vSlope Point) *Plane {
	n := uSlope.Cross(vSlope)
	if n.Norm() < EQThreshold {
		panic("brep: plane u_slope and v_slope must not be parallel")
	}
	p := &Plane{Basis: basis, USlope: uSlope, VSlope: vSlope, normal: n.Normalize()}
	p.a11 = uSlope.Dot(uSlope)
	p.a12 = uSlope.Dot(vSlope)
	p.a22 = vSlope.Dot(vSlope)
	p.det = p.a11*p.a22 - p.a12*p.a12
	return p
}

func (p *Plane) surfaceSealed() {}

func (p *Plane) PointAt(u, v float64) Point {
	return p.Basis.Add(p.USlope.Scale(u)).Add(p.VSlope.Scale(v))
}

// Project solves the 2x2 linear system for (u, v) such that
// p ~= basis + u*u_slope + v*v_slope, after dropping the off-plane
// component of the offset.
func (p *Plane) Project(pt Point) (u, v float64) {
	d := pt.Sub(p.Basis)
	inPlane := d.Sub(p.normal.Scale(d.Dot(p.normal)))
	b1 := inPlane.Dot(p.USlope)
	b2 := inPlane.Dot(p.VSlope)
	u = (b1*p.a22 - b2*p.a12) / p.det
	v = (b2*p.a11 - b1*p.a12) / p.det
	return u, v
}

func (p *Plane) DerivativeU(u, v float64) Point { return p.USlope }
func (p *Plane) DerivativeV(u, v float64) Point { return p.VSlope }

func (p *Plane) Normal(pt Point) Point { return p.normal }

func (p *Plane) Transform(t Transform) Surface {
	return NewPlane(t.Apply(p.Basis), t.ApplyDirection(p.USlope), t.ApplyDirection(p.VSlope))
}

// Neg returns the plane with u/v swapped, flipping the normal.
func (p *Plane) Neg() *Plane {
	return NewPlane(p.Basis, p.VSlope, p.USlope)
}

// DistanceTo returns the signed distance from pt to the plane along its
// normal.
func (p *Plane) DistanceTo(pt Point) float64 {
	return pt.Sub(p.Basis).Dot(p.normal)
}

// Equal reports whether p and other are the same oriented plane.
func (p *Plane) Equal(other *Plane) bool {
	if p.normal.Cross(other.normal).Norm() >= EQThreshold {
		return false
	}
	if p.normal.Dot(other.normal) < 0 {
		return false
	}
	return math.Abs(p.DistanceTo(other.Basis)) < EQThreshold
}

// ---------------------------------------------------------------------------
// Sphere
// ---------------------------------------------------------------------------

// Sphere is a sphere: basis (center) and radius > 0. Parametrized by
// (theta, phi) in the global frame: point_at(u,v) = basis + r*(cos(u)sin(v),
// sin(u)sin(v), cos(v)).
type Sphere struct {
	Basis  Point
	Radius float64
}

// NewSphere constructs a Sphere. Panics on non-positive radius.
func NewSphere(basis Point, radius float64) *Sphere {
	if radius <= 0 {
		panic("brep: sphere radius must be positive")
	}
	return &Sphere{Basis: basis, Radius: radius}
}

func (s *Sphere) surfaceSealed() {}

func (s *Sphere) PointAt(u, v float64) Point {
	x := s.Radius * math.Cos(u) * math.Sin(v)
	y := s.Radius * math.Sin(u) * math.Sin(v)
	z := s.Radius * math.Cos(v)
	return s.Basis.Add(Point{x, y, z})
}

// Project computes (theta, phi) = (atan2(y,x), acos(z/r)) in the
// sphere-local frame. The naive "treat it like a plane" projection noted
// as a known bug upstream is not reproduced here.
func (s *Sphere) Project(p Point) (u, v float64) {
	d := p.Sub(s.Basis)
	r := d.Norm()
	u = math.Atan2(d.Y, d.X)
	if u < 0 {
		u += 2 * math.Pi
	}
	if r < EQThreshold {
		return u, 0
	}
	cosPhi := d.Z / r
	if cosPhi > 1 {
		cosPhi = 1
	} else if cosPhi < -1 {
		cosPhi = -1
	}
	v = math.Acos(cosPhi)
	return u, v
}

func (s *Sphere) DerivativeU(u, v float64) Point {
	x := -s.Radius * math.Sin(u) * math.Sin(v)
	y := s.Radius * math.Cos(u) * math.Sin(v)
	return Point{x, y, 0}
}

func (s *Sphere) DerivativeV(u, v float64) Point {
	x := s.Radius * math.Cos(u) * math.Cos(v)
	y := s.Radius * math.Sin(u) * math.Cos(v)
	z := -s.Radius * math.Sin(v)
	return Point{x, y, z}
}

func (s *Sphere) Normal(p Point) Point {
	return p.Sub(s.Basis).Normalize()
}

func (s *Sphere) Transform(t Transform) Surface {
	basis := t.Apply(s.Basis)
	scale := t.ApplyDirection(Point{1, 0, 0}).Norm()
	return NewSphere(basis, s.Radius*scale)
}

// OnManifold reports whether p lies on the sphere's surface within
// EQThreshold.
func (s *Sphere) OnManifold(p Point) bool {
	return math.Abs(p.Sub(s.Basis).Norm()-s.Radius) < EQThreshold
}

// Equal reports whether s and other are the same sphere.
func (s *Sphere) Equal(other *Sphere) bool {
	return s.Basis.Equal(other.Basis) && math.Abs(s.Radius-other.Radius) < EQThreshold
}
