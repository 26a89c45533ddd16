package brep

import "sort"

// FaceSplitCategory classifies one boundary-edge fragment produced
// while splitting two volumes against each other.
type FaceSplitCategory int

const (
	AinB FaceSplitCategory = iota
	AonBSameSide
	AonBOpSide
	AoutB
	BinA
	BonASameSide
	BonAOpSide
	BoutA
)

func (c FaceSplitCategory) String() string {
	switch c {
	case AinB:
		return "AinB"
	case AonBSameSide:
		return "AonBSameSide"
	case AonBOpSide:
		return "AonBOpSide"
	case AoutB:
		return "AoutB"
	case BinA:
		return "BinA"
	case BonASameSide:
		return "BonASameSide"
	case BonAOpSide:
		return "BonAOpSide"
	case BoutA:
		return "BoutA"
	default:
		return "FaceSplitCategory(?)"
	}
}

// surfaceSurfaceCurve returns the (infinite/whole-periodic) curve along
// which sa and sb intersect, reducing through the surface/surface
// intersection primitives. Returns ok=false for the
// tangent-point and no-intersection cases — those contribute no shell
// crossing.
func surfaceSurfaceCurve(sa, sb Surface) (Curve, bool) {
	switch a := sa.(type) {
	case *Plane:
		switch b := sb.(type) {
		case *Plane:
			if r := IntersectPlanePlane(a, b); r.Kind == PlanePlaneLine {
				return r.Line, true
			}
		case *Sphere:
			if r := IntersectPlaneSphere(a, b); r.Kind == PlaneSphereCircle {
				return r.Circle, true
			}
		}
	case *Sphere:
		switch b := sb.(type) {
		case *Plane:
			if r := IntersectPlaneSphere(b, a); r.Kind == PlaneSphereCircle {
				return r.Circle, true
			}
		case *Sphere:
			if r := IntersectSphereSphere(a, b); r.Kind == SphereSphereCircle {
				return r.Circle, true
			}
		}
	}
	return nil, false
}

// curveCurvePoints returns the discrete intersection points of c1 and c2,
// reusing the curve/curve primitives. Curve pairs not reduced to
// a finite point set (whole-submanifold overlap, or a pair this kernel
// does not yet cover) contribute no points — shell intersection along a
// coincident boundary is out of scope (see DESIGN.md).
func curveCurvePoints(c1, c2 Curve) []Point {
	switch a := c1.(type) {
	case *Line:
		switch b := c2.(type) {
		case *Line:
			if r := IntersectLineLine(a, b); r.Kind == LineLinePoint {
				return []Point{r.Point}
			}
		case *Circle:
			if r := IntersectCircleLine(b, a); r.Kind != CircleLineNone {
				return r.Points
			}
		}
	case *Circle:
		switch b := c2.(type) {
		case *Line:
			if r := IntersectCircleLine(a, b); r.Kind != CircleLineNone {
				return r.Points
			}
		case *Circle:
			if r := IntersectCircleCircle(a, b); r.Kind == CircleCircleOnePoint || r.Kind == CircleCircleTwoPoint {
				return r.Points
			}
		}
	}
	return nil
}

// clipCurveToFaces bounds the infinite/periodic curve to the sub-arcs
// that lie inside both a and b, by gathering every crossing with either
// face's boundary and keeping the spans whose midpoint classifies as
// not-Outside against both faces.
func clipCurveToFaces(curve Curve, a, b *Face) []*Edge {
	var ts []float64
	collect := func(e *Edge) {
		for _, p := range curveCurvePoints(curve, e.Curve) {
			if e.Contains(p) == Outside {
				continue
			}
			u, _ := curve.Project(p)
			ts = append(ts, u)
		}
	}
	for _, e := range a.boundaryEdges() {
		collect(e)
	}
	for _, e := range b.boundaryEdges() {
		collect(e)
	}
	if len(ts) < 2 {
		return nil
	}
	sort.Float64s(ts)
	ts = dedupeSorted(ts)
	if len(ts) < 2 {
		return nil
	}

	_, periodic := curve.(*Circle)

	var edges []*Edge
	n := len(ts)
	limit := n - 1
	if periodic {
		limit = n
	}
	for i := 0; i < limit; i++ {
		t0 := ts[i]
		var t1 float64
		if i+1 < n {
			t1 = ts[i+1]
		} else {
			t1 = ts[0] + 2*3.141592653589793
		}
		mid := curve.PointAt((t0 + t1) / 2)
		if a.Contains(mid) == FaceOutside || b.Contains(mid) == FaceOutside {
			continue
		}
		edges = append(edges, NewEdge(curve.PointAt(t0), curve.PointAt(t1), curve))
	}
	return edges
}

// dedupeSorted removes near-duplicate adjacent values from a sorted
// slice.
func dedupeSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x-out[len(out)-1] > EQThreshold {
			out = append(out, x)
		}
	}
	return out
}

// ShellIntersect computes the crossing curve segments between v's shell
// and other's shell: every pair of faces on distinct, transversally
// intersecting surfaces contributes the sub-arcs of their surface/surface
// intersection curve lying inside both faces. Coincident
// (same-surface) face pairs are not modeled here — see DESIGN.md.
//
// Candidate face pairs are pruned with a FaceIndex (rtreego) over
// other's faces before the exact surface/surface test runs, since this
// is the O(faces_a * faces_b) hot path behind every boolean operation.
func (v *Volume) ShellIntersect(other *Volume) []*Edge {
	var segments []*Edge
	check := func(fa, fb *Face) {
		if sameSurface(fa.Surface, fb.Surface) {
			return
		}
		curve, ok := surfaceSurfaceCurve(fa.Surface, fb.Surface)
		if !ok {
			return
		}
		segments = append(segments, clipCurveToFaces(curve, fa, fb)...)
	}

	idx, unboundedOther := NewFaceIndex(other.Faces)
	for _, fa := range v.Faces {
		for _, fb := range idx.Query(fa) {
			check(fa, fb)
		}
		for _, fb := range unboundedOther {
			check(fa, fb)
		}
	}
	return segments
}

// classify assigns e (a fragment of home's boundary) its split category
// relative to other.
func classify(e *Edge, home *Face, other *Volume, selfIsA bool) FaceSplitCategory {
	mid := e.PointAt(0.5)
	res := other.ContainsPoint(mid)
	switch res.Kind {
	case VolumeInside:
		if selfIsA {
			return AinB
		}
		return BinA
	case VolumeOutside:
		if selfIsA {
			return AoutB
		}
		return BoutA
	default:
		otherNormal := home.Normal(mid)
		if res.Face != nil {
			otherNormal = res.Face.Normal(mid)
		}
		sameSide := home.Normal(mid).Dot(otherNormal) > 0
		if selfIsA {
			if sameSide {
				return AonBSameSide
			}
			return AonBOpSide
		}
		if sameSide {
			return BonASameSide
		}
		return BonAOpSide
	}
}

// SplitParts computes the shell-shell intersection of v and other,
// splits every boundary edge of both shells at the crossing vertices,
// classifies each fragment via the taxonomy, keeps the fragments
// filter accepts, and re-stitches the survivors into contours and faces
// on their original surfaces. The filter is the sole difference between
// union and intersection; difference additionally needs
// negateOtherFaces, since a−b's boundary keeps other's BinA faces but
// with their outward sense reversed (they now bound the cavity cut into
// v, not other's own interior) — see VolumeUnion, VolumeIntersection,
// VolumeDifference.
func (v *Volume) SplitParts(other *Volume, filter func(FaceSplitCategory) bool, negateOtherFaces bool) []*Volume {
	crossing := v.ShellIntersect(other)
	var crossingPoints []Point
	for _, e := range crossing {
		crossingPoints = append(crossingPoints, e.Start, e.End)
	}

	var resultFaces []*Face
	process := func(faces []*Face, other *Volume, selfIsA, negate bool) {
		for _, f := range faces {
			var fragments []*Edge
			for _, c := range f.boundaryContours() {
				frs := append([]*Edge(nil), c.Edges...)
				for _, p := range crossingPoints {
					frs = splitAllAt(frs, p)
				}
				fragments = append(fragments, frs...)
			}
			var kept []*Edge
			for _, e := range fragments {
				if filter(classify(e, f, other, selfIsA)) {
					kept = append(kept, e)
				}
			}
			if len(kept) == 0 {
				continue
			}
			contours := stitchContours(kept)
			if len(contours) == 0 {
				continue
			}
			built := nestContours(f.Surface, contours)
			if negate {
				for i, nf := range built {
					built[i] = nf.Neg()
				}
			}
			resultFaces = append(resultFaces, built...)
		}
	}
	process(v.Faces, other, true, false)
	process(other.Faces, v, false, negateOtherFaces)

	if len(resultFaces) == 0 {
		return nil
	}
	return []*Volume{NewVolume(resultFaces)}
}

// VolumeUnion computes a ∪ b.
func VolumeUnion(a, b *Volume) []*Volume {
	return a.SplitParts(b, func(c FaceSplitCategory) bool {
		switch c {
		case AoutB, BoutA, AonBSameSide:
			return true
		default:
			return false
		}
	}, false)
}

// VolumeIntersection computes a ∩ b.
func VolumeIntersection(a, b *Volume) []*Volume {
	return a.SplitParts(b, func(c FaceSplitCategory) bool {
		switch c {
		case AinB, BinA, AonBSameSide:
			return true
		default:
			return false
		}
	}, false)
}

// VolumeDifference computes a − b. The BinA fragments kept here are b's
// faces lying inside a; SplitParts negates them so the cavity they bound
// points into the removed region, keeping the result's outward-normal
// invariant intact.
func VolumeDifference(a, b *Volume) []*Volume {
	return a.SplitParts(b, func(c FaceSplitCategory) bool {
		switch c {
		case AoutB, BinA, AonBOpSide:
			return true
		default:
			return false
		}
	}, true)
}
