package brep

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Line / Plane
// ---------------------------------------------------------------------------

// LinePlaneKind discriminates the result of intersecting a line and a
// plane.
type LinePlaneKind int

const (
	LinePlaneNone LinePlaneKind = iota
	LinePlanePoint
	LinePlaneLine
)

// LinePlaneResult is the tagged result of IntersectLinePlane.
type LinePlaneResult struct {
	Kind  LinePlaneKind
	Point Point
	Line  *Line
}

// IntersectLinePlane intersects a line with a plane.
func IntersectLinePlane(l *Line, p *Plane) LinePlaneResult {
	denom := l.Direction.Dot(p.normal)
	if math.Abs(denom) < EQThreshold {
		if math.Abs(p.DistanceTo(l.Basis)) < EQThreshold {
			return LinePlaneResult{Kind: LinePlaneLine, Line: l}
		}
		return LinePlaneResult{Kind: LinePlaneNone}
	}
	t := -p.DistanceTo(l.Basis) / denom
	return LinePlaneResult{Kind: LinePlanePoint, Point: l.PointAt(t)}
}

// ---------------------------------------------------------------------------
// Plane / Plane
// ---------------------------------------------------------------------------

// PlanePlaneKind discriminates the result of intersecting two planes.
type PlanePlaneKind int

const (
	PlanePlaneNone PlanePlaneKind = iota
	PlanePlaneLine
	PlanePlanePlane
)

// PlanePlaneResult is the tagged result of IntersectPlanePlane.
type PlanePlaneResult struct {
	Kind  PlanePlaneKind
	Line  *Line
	Plane *Plane
}

// IntersectPlanePlane intersects two planes.
func IntersectPlanePlane(a, b *Plane) PlanePlaneResult {
	n1, n2 := a.normal, b.normal
	cross := n1.Cross(n2)
	if cross.Norm() < EQThreshold {
		if math.Abs(a.DistanceTo(b.Basis)) < EQThreshold {
			return PlanePlaneResult{Kind: PlanePlanePlane, Plane: a}
		}
		return PlanePlaneResult{Kind: PlanePlaneNone}
	}
	direction := cross.Normalize()

	c := n1.Dot(n2)
	d1 := n1.Dot(a.Basis)
	d2 := n2.Dot(b.Basis)
	det := 1 - c*c
	a1 := (d1 - c*d2) / det
	a2 := (d2 - c*d1) / det
	point := n1.Scale(a1).Add(n2.Scale(a2))

	return PlanePlaneResult{Kind: PlanePlaneLine, Line: NewLine(point, direction)}
}

// ---------------------------------------------------------------------------
// Line / Sphere
// ---------------------------------------------------------------------------

// LineSphereKind discriminates the result of intersecting a line and a
// sphere.
type LineSphereKind int

const (
	LineSphereNone LineSphereKind = iota
	LineSphereOnePoint
	LineSphereTwoPoint
)

// LineSphereResult is the tagged result of IntersectLineSphere.
type LineSphereResult struct {
	Kind   LineSphereKind
	Points []Point
}

// IntersectLineSphere intersects a line with a sphere by reduction to the
// 1D quadratic along the line.
func IntersectLineSphere(l *Line, s *Sphere) LineSphereResult {
	ts := solveDistanceAlongLine(l, s.Basis, s.Radius)
	switch len(ts) {
	case 0:
		return LineSphereResult{Kind: LineSphereNone}
	case 1:
		return LineSphereResult{Kind: LineSphereOnePoint, Points: []Point{l.PointAt(ts[0])}}
	default:
		return LineSphereResult{Kind: LineSphereTwoPoint, Points: []Point{l.PointAt(ts[0]), l.PointAt(ts[1])}}
	}
}

// ---------------------------------------------------------------------------
// Plane / Sphere
// ---------------------------------------------------------------------------

// PlaneSphereKind discriminates the result of intersecting a plane and a
// sphere.
type PlaneSphereKind int

const (
	PlaneSphereNone PlaneSphereKind = iota
	PlaneSpherePoint
	PlaneSphereCircle
)

// PlaneSphereResult is the tagged result of IntersectPlaneSphere.
type PlaneSphereResult struct {
	Kind   PlaneSphereKind
	Point  Point
	Circle *Circle
}

// IntersectPlaneSphere intersects a plane with a sphere.
func IntersectPlaneSphere(p *Plane, s *Sphere) PlaneSphereResult {
	d := p.DistanceTo(s.Basis)
	if math.Abs(d) > s.Radius+EQThreshold {
		return PlaneSphereResult{Kind: PlaneSphereNone}
	}
	center := s.Basis.Sub(p.normal.Scale(d))
	if math.Abs(math.Abs(d)-s.Radius) < EQThreshold {
		return PlaneSphereResult{Kind: PlaneSpherePoint, Point: center}
	}
	r := math.Sqrt(s.Radius*s.Radius - d*d)
	return PlaneSphereResult{Kind: PlaneSphereCircle, Circle: NewCircle(center, p.normal, r)}
}

// ---------------------------------------------------------------------------
// Circle / Sphere
// ---------------------------------------------------------------------------

// CircleSphereKind discriminates the result of intersecting a circle and a
// sphere.
type CircleSphereKind int

const (
	CircleSphereNone CircleSphereKind = iota
	CircleSphereOnePoint
	CircleSphereTwoPoint
	CircleSphereCircle
)

// CircleSphereResult is the tagged result of IntersectCircleSphere.
type CircleSphereResult struct {
	Kind   CircleSphereKind
	Points []Point
	Circle *Circle
}

// IntersectCircleSphere reduces to plane/sphere, then circle/circle within
// that plane.
func IntersectCircleSphere(c *Circle, s *Sphere) CircleSphereResult {
	switch ps := IntersectPlaneSphere(c.SupportPlane(), s); ps.Kind {
	case PlaneSphereNone:
		return CircleSphereResult{Kind: CircleSphereNone}
	case PlaneSpherePoint:
		if c.OnManifold(ps.Point) {
			return CircleSphereResult{Kind: CircleSphereOnePoint, Points: []Point{ps.Point}}
		}
		return CircleSphereResult{Kind: CircleSphereNone}
	case PlaneSphereCircle:
		switch cc := IntersectCircleCircle(c, ps.Circle); cc.Kind {
		case CircleCircleNone:
			return CircleSphereResult{Kind: CircleSphereNone}
		case CircleCircleOnePoint:
			return CircleSphereResult{Kind: CircleSphereOnePoint, Points: cc.Points}
		case CircleCircleTwoPoint:
			return CircleSphereResult{Kind: CircleSphereTwoPoint, Points: cc.Points}
		case CircleCircleCircle:
			return CircleSphereResult{Kind: CircleSphereCircle, Circle: c}
		default:
			panic(fmt.Sprintf("brep: unhandled CircleCircleKind %v", cc.Kind))
		}
	default:
		panic(fmt.Sprintf("brep: unhandled PlaneSphereKind %v", ps.Kind))
	}
}

// ---------------------------------------------------------------------------
// Sphere / Sphere
// ---------------------------------------------------------------------------

// SphereSphereKind discriminates the result of intersecting two spheres.
type SphereSphereKind int

const (
	SphereSphereNone SphereSphereKind = iota
	SphereSpherePoint
	SphereSphereCircle
	SphereSphereSphere
)

// SphereSphereResult is the tagged result of IntersectSphereSphere.
type SphereSphereResult struct {
	Kind   SphereSphereKind
	Point  Point
	Circle *Circle
}

// IntersectSphereSphere intersects two spheres: the result, when
// non-degenerate, is the circle lying in the plane perpendicular to the
// line joining the two centers.
func IntersectSphereSphere(a, b *Sphere) SphereSphereResult {
	if a.Equal(b) {
		return SphereSphereResult{Kind: SphereSphereSphere}
	}
	d := b.Basis.Sub(a.Basis).Norm()
	if d < EQThreshold {
		return SphereSphereResult{Kind: SphereSphereNone}
	}
	if d > a.Radius+b.Radius+EQThreshold || d < math.Abs(a.Radius-b.Radius)-EQThreshold {
		return SphereSphereResult{Kind: SphereSphereNone}
	}
	axis := b.Basis.Sub(a.Basis).Scale(1 / d)
	x := (d*d + a.Radius*a.Radius - b.Radius*b.Radius) / (2 * d)
	r2 := a.Radius*a.Radius - x*x
	center := a.Basis.Add(axis.Scale(x))
	if r2 < EQThreshold {
		return SphereSphereResult{Kind: SphereSpherePoint, Point: center}
	}
	return SphereSphereResult{Kind: SphereSphereCircle, Circle: NewCircle(center, axis, math.Sqrt(r2))}
}

// ---------------------------------------------------------------------------
// Curve / Surface generic dispatch used by face-edge intersection.
// ---------------------------------------------------------------------------

// CurveSurfaceResult is a uniform view over the various curve/surface
// intersection result shapes, used by IntersectFaceEdge.
type CurveSurfaceResult struct {
	Points []Point
	Curve  Curve // non-nil when the whole curve lies on the surface
}

// IntersectCurveSurface dispatches on the concrete curve/surface pair.
// Ellipse pairs and Sphere/Sphere-as-curve combinations outside the
// enumerated set panic.
func IntersectCurveSurface(c Curve, s Surface) CurveSurfaceResult {
	switch curve := c.(type) {
	case *Line:
		switch surf := s.(type) {
		case *Plane:
			switch r := IntersectLinePlane(curve, surf); r.Kind {
			case LinePlaneNone:
				return CurveSurfaceResult{}
			case LinePlanePoint:
				return CurveSurfaceResult{Points: []Point{r.Point}}
			default:
				return CurveSurfaceResult{Curve: curve}
			}
		case *Sphere:
			switch r := IntersectLineSphere(curve, surf); r.Kind {
			case LineSphereNone:
				return CurveSurfaceResult{}
			default:
				return CurveSurfaceResult{Points: r.Points}
			}
		}
	case *Circle:
		switch surf := s.(type) {
		case *Plane:
			switch r := intersectCirclePlane(curve, surf); r.Kind {
			case CirclePlaneNone:
				return CurveSurfaceResult{}
			case CirclePlanePoints:
				return CurveSurfaceResult{Points: r.Points}
			default:
				return CurveSurfaceResult{Curve: curve}
			}
		case *Sphere:
			switch r := IntersectCircleSphere(curve, surf); r.Kind {
			case CircleSphereNone:
				return CurveSurfaceResult{}
			case CircleSphereCircle:
				return CurveSurfaceResult{Curve: curve}
			default:
				return CurveSurfaceResult{Points: r.Points}
			}
		}
	}
	unimplementedCurveSurfacePair(c, s)
	panic("unreachable")
}

// CirclePlaneKind discriminates the result of intersecting a circle and a
// plane.
type CirclePlaneKind int

const (
	CirclePlaneNone CirclePlaneKind = iota
	CirclePlanePoints
	CirclePlaneCircle
)

// CirclePlaneResult is the tagged result of intersectCirclePlane.
type CirclePlaneResult struct {
	Kind   CirclePlaneKind
	Points []Point
}

// intersectCirclePlane implements the Circle/Plane algorithm: build the
// circle's supporting plane, intersect the two planes, then reduce to
// circle/line or return the whole circle.
func intersectCirclePlane(c *Circle, p *Plane) CirclePlaneResult {
	switch pp := IntersectPlanePlane(p, c.SupportPlane()); pp.Kind {
	case PlanePlaneNone:
		return CirclePlaneResult{Kind: CirclePlaneNone}
	case PlanePlanePlane:
		return CirclePlaneResult{Kind: CirclePlaneCircle}
	case PlanePlaneLine:
		switch cl := intersectCircleInPlaneLine(c, pp.Line); cl.Kind {
		case CircleLineNone:
			return CirclePlaneResult{Kind: CirclePlaneNone}
		default:
			return CirclePlaneResult{Kind: CirclePlanePoints, Points: cl.Points}
		}
	default:
		panic(fmt.Sprintf("brep: unhandled PlanePlaneKind %v", pp.Kind))
	}
}

func unimplementedCurveSurfacePair(c Curve, s Surface) {
	panic(fmt.Sprintf("brep: curve-surface intersection not implemented for %T / %T", c, s))
}
