package brep

import (
	"fmt"
	"math"
	"sort"
)

// ---------------------------------------------------------------------------
// Line / Line
// ---------------------------------------------------------------------------

// LineLineKind discriminates the result of intersecting two lines.
type LineLineKind int

const (
	LineLineNone LineLineKind = iota
	LineLinePoint
	LineLineLine
)

// LineLineResult is the tagged result of IntersectLineLine.
type LineLineResult struct {
	Kind  LineLineKind
	Point Point
	Line  *Line
}

// IntersectLineLine returns None, a single Point, or the shared Line when
// the two lines are collinear and overlapping.
func IntersectLineLine(a, b *Line) LineLineResult {
	w0 := a.Basis.Sub(b.Basis)
	d1, d2 := a.Direction, b.Direction
	dotD := d1.Dot(d2)
	denom := 1 - dotD*dotD

	if math.Abs(denom) < EQThreshold {
		// Parallel. Collinear iff the offset between bases has no
		// component perpendicular to the shared direction.
		perp := w0.Sub(d1.Scale(w0.Dot(d1)))
		if perp.Norm() < EQThreshold {
			return LineLineResult{Kind: LineLineLine, Line: a}
		}
		return LineLineResult{Kind: LineLineNone}
	}

	dd1 := d1.Dot(w0)
	dd2 := d2.Dot(w0)
	s := (dotD*dd2 - dd1) / denom
	t := (dd2 - dotD*dd1) / denom
	p1 := a.PointAt(s)
	p2 := b.PointAt(t)
	if p1.Distance(p2) < EQThreshold {
		return LineLineResult{Kind: LineLinePoint, Point: p1}
	}
	return LineLineResult{Kind: LineLineNone}
}

// ---------------------------------------------------------------------------
// Circle / Line
// ---------------------------------------------------------------------------

// CircleLineKind discriminates the result of intersecting a circle and a
// line.
type CircleLineKind int

const (
	CircleLineNone CircleLineKind = iota
	CircleLineOnePoint
	CircleLineTwoPoint
)

// CircleLineResult is the tagged result of IntersectCircleLine.
type CircleLineResult struct {
	Kind   CircleLineKind
	Points []Point
}

// IntersectCircleLine intersects the line with the circle's supporting
// plane, then solves the resulting 1D quadratic within that plane. A
// discriminant within EQThreshold of zero collapses TwoPoint to
// OnePoint.
func IntersectCircleLine(c *Circle, l *Line) CircleLineResult {
	plane := c.SupportPlane()
	switch pl := IntersectLinePlane(l, plane); pl.Kind {
	case LinePlaneNone:
		return CircleLineResult{Kind: CircleLineNone}
	case LinePlanePoint:
		if c.OnManifold(pl.Point) {
			return CircleLineResult{Kind: CircleLineOnePoint, Points: []Point{pl.Point}}
		}
		return CircleLineResult{Kind: CircleLineNone}
	case LinePlaneLine:
		return intersectCircleInPlaneLine(c, l)
	default:
		panic(fmt.Sprintf("brep: unhandled LinePlaneKind %v", pl.Kind))
	}
}

// intersectCircleInPlaneLine solves |l.PointAt(t) - c.Basis| = c.Radius for
// t, given that l lies entirely within c's supporting plane.
func intersectCircleInPlaneLine(c *Circle, l *Line) CircleLineResult {
	ts := solveDistanceAlongLine(l, c.Basis, c.Radius)
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = l.PointAt(t)
	}
	switch len(pts) {
	case 0:
		return CircleLineResult{Kind: CircleLineNone}
	case 1:
		return CircleLineResult{Kind: CircleLineOnePoint, Points: pts}
	default:
		sort.Slice(pts, func(i, j int) bool {
			ui, _ := l.Project(pts[i])
			uj, _ := l.Project(pts[j])
			return ui < uj
		})
		return CircleLineResult{Kind: CircleLineTwoPoint, Points: pts}
	}
}

// solveDistanceAlongLine returns the line parameters t where
// |l.PointAt(t) - center| == r, i.e. the roots of the corresponding 1D
// quadratic. A discriminant within EQThreshold of zero collapses the two
// roots to one.
func solveDistanceAlongLine(l *Line, center Point, r float64) []float64 {
	w := l.Basis.Sub(center)
	b := 2 * w.Dot(l.Direction)
	c := w.Dot(w) - r*r
	disc := b*b - 4*c
	if disc < -EQThreshold {
		return nil
	}
	if disc < EQThreshold {
		return []float64{-b / 2}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / 2, (-b + sq) / 2}
}

// ---------------------------------------------------------------------------
// Circle / Circle
// ---------------------------------------------------------------------------

// CircleCircleKind discriminates the result of intersecting two circles.
type CircleCircleKind int

const (
	CircleCircleNone CircleCircleKind = iota
	CircleCircleOnePoint
	CircleCircleTwoPoint
	CircleCircleCircle
)

// CircleCircleResult is the tagged result of IntersectCircleCircle.
type CircleCircleResult struct {
	Kind   CircleCircleKind
	Points []Point
	Circle *Circle
}

// IntersectCircleCircle intersects two circles. Coplanar,
// concentric, equal-radius circles return the whole-submanifold Circle
// variant.
func IntersectCircleCircle(a, b *Circle) CircleCircleResult {
	if a.Equal(b) {
		return CircleCircleResult{Kind: CircleCircleCircle, Circle: a}
	}

	coplanar := a.Normal.Cross(b.Normal).Norm() < EQThreshold &&
		math.Abs(b.Basis.Sub(a.Basis).Dot(a.Normal)) < EQThreshold

	if coplanar {
		return intersectCoplanarCircles(a, b)
	}

	switch pp := IntersectPlanePlane(a.SupportPlane(), b.SupportPlane()); pp.Kind {
	case PlanePlaneNone:
		return CircleCircleResult{Kind: CircleCircleNone}
	case PlanePlanePlane:
		// Unreachable: coplanar case handled above, but kept for safety.
		return intersectCoplanarCircles(a, b)
	case PlanePlaneLine:
		return intersectCirclesViaLine(a, b, pp.Line)
	default:
		panic(fmt.Sprintf("brep: unhandled PlanePlaneKind %v", pp.Kind))
	}
}

// intersectCirclesViaLine finds points on line that are simultaneously at
// distance a.Radius from a.Basis and b.Radius from b.Basis.
func intersectCirclesViaLine(a, b *Circle, line *Line) CircleCircleResult {
	tsA := solveDistanceAlongLine(line, a.Basis, a.Radius)
	tsB := solveDistanceAlongLine(line, b.Basis, b.Radius)

	var pts []Point
	for _, ta := range tsA {
		for _, tb := range tsB {
			if math.Abs(ta-tb) < EQThreshold {
				pts = append(pts, line.PointAt((ta+tb)/2))
			}
		}
	}
	return finishCircleCircle(a, pts)
}

// intersectCoplanarCircles handles the classical 2D circle/circle case,
// expressed in the shared plane's in-plane basis.
func intersectCoplanarCircles(a, b *Circle) CircleCircleResult {
	d := b.Basis.Sub(a.Basis).Norm()
	if d < EQThreshold {
		// Concentric, different radius (equal-radius already handled by
		// a.Equal(b) above).
		return CircleCircleResult{Kind: CircleCircleNone}
	}
	if d > a.Radius+b.Radius+EQThreshold || d < math.Abs(a.Radius-b.Radius)-EQThreshold {
		return CircleCircleResult{Kind: CircleCircleNone}
	}

	// Standard 2-circle formula along the axis between centers.
	axis := b.Basis.Sub(a.Basis).Scale(1 / d)
	perp := a.Normal.Cross(axis)

	x := (d*d + a.Radius*a.Radius - b.Radius*b.Radius) / (2 * d)
	h2 := a.Radius*a.Radius - x*x
	base := a.Basis.Add(axis.Scale(x))

	if h2 < -EQThreshold {
		return CircleCircleResult{Kind: CircleCircleNone}
	}
	if h2 < EQThreshold {
		return CircleCircleResult{Kind: CircleCircleOnePoint, Points: []Point{base}}
	}
	h := math.Sqrt(h2)
	p1 := base.Add(perp.Scale(h))
	p2 := base.Sub(perp.Scale(h))
	return finishCircleCircle(a, []Point{p1, p2})
}

// finishCircleCircle sorts found points by ascending parameter on the
// first circle and wraps them in the appropriate result kind.
func finishCircleCircle(first *Circle, pts []Point) CircleCircleResult {
	switch len(pts) {
	case 0:
		return CircleCircleResult{Kind: CircleCircleNone}
	case 1:
		return CircleCircleResult{Kind: CircleCircleOnePoint, Points: pts}
	default:
		sort.Slice(pts, func(i, j int) bool {
			ui, _ := first.Project(pts[i])
			uj, _ := first.Project(pts[j])
			return ui < uj
		})
		// De-duplicate near-identical roots collapsed by floating point.
		if pts[0].Distance(pts[len(pts)-1]) < EQThreshold {
			return CircleCircleResult{Kind: CircleCircleOnePoint, Points: pts[:1]}
		}
		return CircleCircleResult{Kind: CircleCircleTwoPoint, Points: pts}
	}
}

// ---------------------------------------------------------------------------
// Generic curve/curve dispatch (used by edge/edge intersection and by face
// containment's boundary ray-cast).
// ---------------------------------------------------------------------------

// unimplementedCurvePair panics: ellipse/* curve-curve intersection is a known gap, not a runtime error.
func unimplementedCurvePair(a, b Curve) {
	panic(fmt.Sprintf("brep: curve-curve intersection not implemented for %T / %T", a, b))
}
