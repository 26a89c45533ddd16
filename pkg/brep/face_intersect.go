package brep

import "fmt"

// IntersectFaceEdge computes the intersection of e's curve with f's
// surface, then clips the result to e's own bounds and to the face's
// interior (boundary-inclusive).
//
// When the whole curve lies on the surface (a coincident line or
// circle), the overlap is approximated by testing the edge's midpoint:
// a fully general clip against the face boundary would require the
// same edge/edge overlap machinery as face-face intersection, which is
// out of scope for the edge/surface case (see DESIGN.md).
func IntersectFaceEdge(f *Face, e *Edge) []EdgeIntersection {
	r := IntersectCurveSurface(e.Curve, f.Surface)
	if r.Curve != nil {
		mid := e.PointAt(0.5)
		if f.Contains(mid) != FaceOutside {
			return []EdgeIntersection{{Edge: e}}
		}
		return nil
	}
	var out []EdgeIntersection
	for _, p := range r.Points {
		if e.Contains(p) == Outside {
			continue
		}
		if f.Contains(p) == FaceOutside {
			continue
		}
		pp := p
		out = append(out, EdgeIntersection{Point: &pp})
	}
	return out
}

// sameSurface reports whether a and b are the same oriented surface,
// using the "same (epsilon-equal, same-orientation) surface" requirement.
// Panics for any surface pair the kernel cannot compare (there are
// none today, since Surface is the closed Plane/Sphere union).
func sameSurface(a, b Surface) bool {
	switch sa := a.(type) {
	case *Plane:
		sb, ok := b.(*Plane)
		return ok && sa.Equal(sb)
	case *Sphere:
		sb, ok := b.(*Sphere)
		return ok && sa.Equal(sb)
	default:
		panic(fmt.Sprintf("brep: unhandled Surface type %T", a))
	}
}

func (f *Face) boundaryEdges() []*Edge {
	var edges []*Edge
	for _, c := range f.boundaryContours() {
		edges = append(edges, c.Edges...)
	}
	return edges
}

// splitAgainst splits every edge in edges at every point where it
// crosses an edge in others, returning the resulting fragments.
// Collinear/concentric overlaps with an `others` edge are left
// unsplit — they already coincide with the other face's boundary and
// are handled as an Edge-kind EdgeIntersection being dropped; a fully
// general treatment is scoped out (see DESIGN.md).
func splitAgainst(edges, others []*Edge) []*Edge {
	index := NewEdgeIndex(others)
	var out []*Edge
	for _, e := range edges {
		var points []Point
		for _, o := range index.Query(e) {
			for _, ix := range IntersectEdges(e, o) {
				if ix.Point != nil {
					points = append(points, *ix.Point)
				}
			}
		}
		frags := []*Edge{e}
		for _, p := range points {
			frags = splitAllAt(frags, p)
		}
		out = append(out, frags...)
	}
	return out
}

// splitAllAt splits every fragment containing p strictly inside it.
func splitAllAt(frags []*Edge, p Point) []*Edge {
	var out []*Edge
	for _, e := range frags {
		out = append(out, e.SplitIfNecessary(p)...)
	}
	return out
}

// stitchContours chains edges into closed loops by matching End to
// Start within EQThreshold, preferring the unique continuation.
// Edges that cannot be chained into a closed loop are dropped.
func stitchContours(edges []*Edge) []*Contour {
	remaining := append([]*Edge(nil), edges...)
	var contours []*Contour

	for len(remaining) > 0 {
		chain := []*Edge{remaining[0]}
		remaining = remaining[1:]
		start := chain[0].Start

		for !chain[len(chain)-1].End.Equal(start) {
			cur := chain[len(chain)-1]
			idx := -1
			for i, cand := range remaining {
				if cand.Start.Equal(cur.End) {
					idx = i
					break
				}
			}
			if idx < 0 {
				break
			}
			chain = append(chain, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}

		if chain[len(chain)-1].End.Equal(start) {
			contours = append(contours, NewContour(chain))
		}
	}
	return contours
}

// nestContours groups contours into faces by containment: a contour
// not contained in any other becomes an outer contour; contours
// directly contained in it become its holes. Nested holes-within-holes
// are not modeled.
func nestContours(surf Surface, contours []*Contour) []*Face {
	parent := make([]int, len(contours))
	for i := range parent {
		parent[i] = -1
	}
	for i, ci := range contours {
		for j, cj := range contours {
			if i == j {
				continue
			}
			probe := NewFace(surf, cj, nil)
			if probe.windingInside(cj, ci.Vertices()[0]) {
				parent[i] = j
			}
		}
	}

	var result []*Face
	for i, ci := range contours {
		if parent[i] != -1 {
			continue
		}
		var holes []*Contour
		for j, cj := range contours {
			if parent[j] == i {
				holes = append(holes, cj)
			}
		}
		result = append(result, NewFace(surf, ci, holes))
	}
	return result
}

// FaceFaceIntersection computes the same-surface intersection of a and
// b: the union of boundary edges, split at every crossing,
// classified against the other face, and re-stitched into one face per
// connected outer contour.
func FaceFaceIntersection(a, b *Face) []*Face {
	if !sameSurface(a.Surface, b.Surface) {
		panic("brep: face-face intersection requires the same surface")
	}

	aFrags := splitAgainst(a.boundaryEdges(), b.boundaryEdges())
	bFrags := splitAgainst(b.boundaryEdges(), a.boundaryEdges())

	var kept []*Edge
	for _, e := range aFrags {
		if b.Contains(e.PointAt(0.5)) != FaceOutside {
			kept = append(kept, e)
		}
	}
	for _, e := range bFrags {
		if a.Contains(e.PointAt(0.5)) != FaceOutside {
			kept = append(kept, e)
		}
	}

	contours := stitchContours(kept)
	if len(contours) == 0 {
		return nil
	}
	return nestContours(a.Surface, contours)
}

// FaceFaceDifference computes a minus b on the same surface, defined as
// a intersected with b's negation.
func FaceFaceDifference(a, b *Face) []*Face {
	return FaceFaceIntersection(a, b.Neg())
}
