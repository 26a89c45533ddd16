package brep

import "math"

// EdgeContainment is the result of testing a point against a bounded edge.
type EdgeContainment int

const (
	Outside EdgeContainment = iota
	Inside
	OnStart
	OnEnd
)

func (k EdgeContainment) String() string {
	switch k {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case OnStart:
		return "OnStart"
	case OnEnd:
		return "OnEnd"
	default:
		return "EdgeContainment(?)"
	}
}

// Edge is a bounded, oriented piece of a curve: start and end points plus
// a shared reference to the underlying curve. Immutable after
// construction.
type Edge struct {
	Start, End Point
	Curve      Curve
}

// NewEdge constructs an Edge. Panics (a precondition violation) if
// either endpoint is not on the curve, or if start == end on a curve that
// is not closed (circle/ellipse full-loop edges are the only case where
// start == end is legal).
func NewEdge(start, end Point, curve Curve) *Edge {
	if !curve.OnManifold(start) {
		panic("brep: edge start point is not on its curve")
	}
	if !curve.OnManifold(end) {
		panic("brep: edge end point is not on its curve")
	}
	if start.Equal(end) {
		switch curve.(type) {
		case *Circle, *Ellipse:
			// Full-loop edge: legal.
		default:
			panic("brep: edge start and end coincide on a non-closed curve")
		}
	}
	return &Edge{Start: start, End: end, Curve: curve}
}

// isFullLoop reports whether this edge represents an entire closed curve
// (start and end coincide on a periodic manifold).
func (e *Edge) isFullLoop() bool {
	switch e.Curve.(type) {
	case *Circle, *Ellipse:
		return e.Start.Equal(e.End)
	default:
		return false
	}
}

// Contains classifies p against the bounded edge.
func (e *Edge) Contains(p Point) EdgeContainment {
	if !e.Curve.OnManifold(p) {
		return Outside
	}
	if p.Equal(e.Start) {
		return OnStart
	}
	if p.Equal(e.End) {
		return OnEnd
	}
	if e.isFullLoop() {
		return Inside
	}
	if e.Curve.Between(p, e.Start, e.End) {
		return Inside
	}
	return Outside
}

// SplitIfNecessary returns [e] if p does not lie strictly inside e,
// otherwise the two edges [start->p, p->end], in order.
func (e *Edge) SplitIfNecessary(p Point) []*Edge {
	if e.Contains(p) != Inside {
		return []*Edge{e}
	}
	return []*Edge{
		NewEdge(e.Start, p, e.Curve),
		NewEdge(p, e.End, e.Curve),
	}
}

// Neg returns the edge with start/end swapped and the curve reversed.
func (e *Edge) Neg() *Edge {
	return &Edge{Start: e.End, End: e.Start, Curve: e.Curve.Neg()}
}

// Transform returns the edge mapped through t.
func (e *Edge) Transform(t Transform) *Edge {
	return &Edge{Start: t.Apply(e.Start), End: t.Apply(e.End), Curve: e.Curve.Transform(t)}
}

// span returns the curve parameters of start and end, adjusted for
// periodic curves so that end's parameter is continuous and >= start's
// (handling wraparound past 0).
func (e *Edge) span() (uStart, uEnd float64) {
	uStart, _ = e.Curve.Project(e.Start)
	uEnd, _ = e.Curve.Project(e.End)
	switch e.Curve.(type) {
	case *Circle, *Ellipse:
		if e.isFullLoop() {
			return uStart, uStart + 2*math.Pi
		}
		for uEnd < uStart {
			uEnd += 2 * math.Pi
		}
	}
	return uStart, uEnd
}

// PointAt reparameterizes the edge to the unit interval, evaluated
// monotonically from start to end.
func (e *Edge) PointAt(t float64) Point {
	uStart, uEnd := e.span()
	return e.Curve.PointAt(uStart + t*(uEnd-uStart))
}

// Tangent returns the curve's tangent direction at p.
func (e *Edge) Tangent(p Point) Point {
	return e.Curve.Tangent(p)
}
