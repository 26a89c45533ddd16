package brep

import (
	"fmt"
	"math"
	"sort"
)

// EdgeIntersection is one element of the result of IntersectEdges: either a
// single point or a sub-edge (for overlapping collinear/concentric pieces).
type EdgeIntersection struct {
	Point *Point
	Edge  *Edge
}

// IntersectEdges returns every point or sub-edge where a crosses b, sorted
// ascending along a's parameter. A crossing point is kept only when
// Edge.Contains reports it Inside both edges, so a crossing that falls on
// an endpoint of either edge is not returned.
func IntersectEdges(a, b *Edge) []EdgeIntersection {
	switch ac := a.Curve.(type) {
	case *Circle:
		switch bc := b.Curve.(type) {
		case *Circle:
			return intersectCircleCircleEdges(a, ac, b, bc)
		case *Line:
			pts := append([]Point(nil), IntersectCircleLine(ac, bc).pointsOf()...)
			sort.Slice(pts, func(i, j int) bool {
				ui, _ := ac.Project(pts[i])
				uj, _ := ac.Project(pts[j])
				return ui < uj
			})
			return intersectDiscretePoints(a, b, pts)
		}
	case *Line:
		switch bc := b.Curve.(type) {
		case *Line:
			return intersectLineLineEdges(a, ac, b, bc)
		case *Circle:
			return intersectDiscretePoints(a, b, IntersectCircleLine(bc, ac).pointsOf())
		}
	}
	panic(fmt.Sprintf("brep: edge-edge intersection not implemented for %T / %T", a.Curve, b.Curve))
}

// pointsOf adapts a CircleLineResult to a plain point slice.
func (r CircleLineResult) pointsOf() []Point {
	if r.Kind == CircleLineNone {
		return nil
	}
	return r.Points
}

// intersectDiscretePoints filters a set of candidate curve/curve
// intersection points down to those lying strictly inside both edges.
func intersectDiscretePoints(a, b *Edge, candidates []Point) []EdgeIntersection {
	var out []EdgeIntersection
	for _, p := range candidates {
		if a.Contains(p) == Inside && b.Contains(p) == Inside {
			pp := p
			out = append(out, EdgeIntersection{Point: &pp})
		}
	}
	return out
}

// intersectLineLineEdges handles Line/Line edges: a discrete crossing
// point, or — when the underlying lines are collinear — the overlap of
// the two bounded intervals.
func intersectLineLineEdges(a *Edge, aLine *Line, b *Edge, bLine *Line) []EdgeIntersection {
	switch r := IntersectLineLine(aLine, bLine); r.Kind {
	case LineLineNone:
		return nil
	case LineLinePoint:
		return intersectDiscretePoints(a, b, []Point{r.Point})
	case LineLineLine:
		return overlapLineEdges(a, b)
	default:
		panic(fmt.Sprintf("brep: unhandled LineLineKind %v", r.Kind))
	}
}

// overlapLineEdges clips two collinear edges' bounded intervals against
// each other, grounded on the reference kernel's line/line overlap logic.
func overlapLineEdges(a, b *Edge) []EdgeIntersection {
	line := a.Curve
	startUOther, _ := line.Project(b.Start)
	endUOther, _ := line.Project(b.End)

	otherStart, otherEnd := b.Start, b.End
	if endUOther < startUOther {
		otherStart, otherEnd = otherEnd, otherStart
		startUOther, endUOther = endUOther, startUOther
	}

	selfStartU, _ := line.Project(a.Start)
	selfEndU, _ := line.Project(a.End)

	if startUOther > selfEndU+EQThreshold || endUOther < selfStartU-EQThreshold {
		return nil
	}

	start, startU := a.Start, selfStartU
	if startUOther > selfStartU {
		start, startU = otherStart, startUOther
	}
	end, endU := a.End, selfEndU
	if selfEndU > endUOther {
		end, endU = otherEnd, endUOther
	}
	_ = startU
	_ = endU

	if start.Equal(end) {
		return []EdgeIntersection{{Point: &start}}
	}
	return []EdgeIntersection{{Edge: NewEdge(start, end, a.Curve)}}
}

// intersectCircleCircleEdges handles Circle/Circle edges: discrete
// crossing points, or — when the underlying circles coincide — the
// overlap of the two bounded arcs.
func intersectCircleCircleEdges(a *Edge, aCircle *Circle, b *Edge, bCircle *Circle) []EdgeIntersection {
	switch r := IntersectCircleCircle(aCircle, bCircle); r.Kind {
	case CircleCircleNone:
		return nil
	case CircleCircleOnePoint, CircleCircleTwoPoint:
		pts := append([]Point(nil), r.Points...)
		sort.Slice(pts, func(i, j int) bool {
			ui, _ := aCircle.Project(pts[i])
			uj, _ := aCircle.Project(pts[j])
			return ui < uj
		})
		return intersectDiscretePoints(a, b, pts)
	case CircleCircleCircle:
		return overlapArcEdges(a, b, aCircle)
	default:
		panic(fmt.Sprintf("brep: unhandled CircleCircleKind %v", r.Kind))
	}
}

// overlapArcEdges clips two concentric, coincident-circle arc edges
// against each other, treating each arc as an oriented interval in
// R/2*Pi*Z: an arc whose end parameter is below its start parameter is
// unwrapped by 2*Pi, then both are shifted upward by multiples of 2*Pi
// into a common non-wrapping window before clipping. A single overlap
// piece is returned; when two arcs overlap in two disjoint pieces, only
// one of them is reported.
func overlapArcEdges(a, b *Edge, circle *Circle) []EdgeIntersection {
	selfStartU, _ := circle.Project(a.Start)
	selfEndU, _ := circle.Project(a.End)
	otherStartU, _ := circle.Project(b.Start)
	otherEndU, _ := circle.Project(b.End)

	if a.isFullLoop() {
		selfEndU = selfStartU + 2*math.Pi
	}
	if b.isFullLoop() {
		otherEndU = otherStartU + 2*math.Pi
	}
	if selfEndU < selfStartU {
		selfEndU += 2 * math.Pi
	}
	if otherEndU < otherStartU {
		otherEndU += 2 * math.Pi
	}

	// Ensure both spans are non-wrapping relative to a common reference
	// floor: the larger of the two start parameters.
	floor := math.Max(selfStartU, otherStartU)
	for selfEndU < floor {
		selfStartU += 2 * math.Pi
		selfEndU += 2 * math.Pi
	}
	for otherEndU < floor {
		otherStartU += 2 * math.Pi
		otherEndU += 2 * math.Pi
	}
	for selfStartU < floor-2*math.Pi+EQThreshold && selfStartU < otherStartU-2*math.Pi {
		selfStartU += 2 * math.Pi
		selfEndU += 2 * math.Pi
	}

	startU := math.Max(selfStartU, otherStartU)
	endU := math.Min(selfEndU, otherEndU)

	if a.Start.Equal(b.Start) && a.End.Equal(b.End) {
		return []EdgeIntersection{{Edge: NewEdge(a.Start, a.End, a.Curve)}}
	}
	if endU < startU-EQThreshold {
		return nil
	}
	start := pointOrShared(a.Start, b.Start, b.End, circle, startU)
	end := pointOrShared(a.End, b.Start, b.End, circle, endU)

	if start.Equal(end) {
		return []EdgeIntersection{{Point: &start}}
	}
	return []EdgeIntersection{{Edge: NewEdge(start, end, a.Curve)}}
}

// pointOrShared prefers an exact shared endpoint over a freshly evaluated
// point_at, to avoid introducing a near-duplicate vertex at a shared
// boundary.
func pointOrShared(selfCandidate, otherStart, otherEnd Point, circle *Circle, u float64) Point {
	evaluated := circle.PointAt(u)
	if selfCandidate.Equal(evaluated) {
		return selfCandidate
	}
	if otherStart.Equal(evaluated) {
		return otherStart
	}
	if otherEnd.Equal(evaluated) {
		return otherEnd
	}
	return evaluated
}
