package brep

// FaceContainment is the result of testing a point against a face's
// surface region.
type FaceContainment int

const (
	FaceOutside FaceContainment = iota
	FaceInside
	FaceOnEdge
	FaceOnPoint
)

func (k FaceContainment) String() string {
	switch k {
	case FaceOutside:
		return "Outside"
	case FaceInside:
		return "Inside"
	case FaceOnEdge:
		return "OnEdge"
	case FaceOnPoint:
		return "OnPoint"
	default:
		return "FaceContainment(?)"
	}
}

// Face is an oriented region of a surface bounded by an outer contour and
// zero or more hole contours. When Outer is nil, the face is the whole
// surface (used for spheres without boundary).
type Face struct {
	Surface Surface
	Outer   *Contour
	Holes   []*Contour

	flipped bool // orientation flag toggled by Neg; see Normal.
}

// NewFace constructs a Face. Holes are expected to already be oriented
// opposite to the outer contour by the caller; the core does not
// re-derive orientation.
func NewFace(surface Surface, outer *Contour, holes []*Contour) *Face {
	return &Face{Surface: surface, Outer: outer, Holes: holes}
}

// Normal returns the face's oriented normal at p: the surface normal,
// flipped if the face has been negated.
func (f *Face) Normal(p Point) Point {
	n := f.Surface.Normal(p)
	if f.flipped {
		return n.Neg()
	}
	return n
}

// Neg returns the face with every contour reversed and its orientation
// flag flipped, so that Normal() reports the opposite sense.
func (f *Face) Neg() *Face {
	var outer *Contour
	if f.Outer != nil {
		outer = f.Outer.Neg()
	}
	holes := make([]*Contour, len(f.Holes))
	for i, h := range f.Holes {
		holes[i] = h.Neg()
	}
	return &Face{Surface: f.Surface, Outer: outer, Holes: holes, flipped: !f.flipped}
}

// Transform returns the face mapped through t.
func (f *Face) Transform(t Transform) *Face {
	var outer *Contour
	if f.Outer != nil {
		outer = f.Outer.Transform(t)
	}
	holes := make([]*Contour, len(f.Holes))
	for i, h := range f.Holes {
		holes[i] = h.Transform(t)
	}
	return &Face{Surface: f.Surface.Transform(t), Outer: outer, Holes: holes, flipped: f.flipped}
}

// BoundingBox returns the axis-aligned bounding box of the face's
// boundary, sampled the same way the rtreego accelerator samples edges.
// Panics for a boundless face (Outer == nil, i.e. a whole sphere).
func (f *Face) BoundingBox() (min, max Point) {
	if f.Outer == nil {
		panic("brep: boundless face has no finite bounding box")
	}
	edges := f.boundaryEdges()
	min, max = edgeBounds(edges[0])
	for _, e := range edges[1:] {
		emin, emax := edgeBounds(e)
		min = min.Min(emin)
		max = max.Max(emax)
	}
	return min, max
}

// boundaryContours returns every contour bounding the face: the outer
// contour (if any) followed by the holes.
func (f *Face) boundaryContours() []*Contour {
	var cs []*Contour
	if f.Outer != nil {
		cs = append(cs, f.Outer)
	}
	cs = append(cs, f.Holes...)
	return cs
}

// Contains classifies p against the face: project onto the
// surface, reject if the off-surface component exceeds
// ProjectionThreshold, then test against every boundary edge before
// falling back to a parameter-space winding test.
func (f *Face) Contains(p Point) FaceContainment {
	u, v := f.Surface.Project(p)
	onSurface := f.Surface.PointAt(u, v)
	if p.Distance(onSurface) > ProjectionThreshold {
		return FaceOutside
	}

	for _, c := range f.boundaryContours() {
		for _, e := range c.Edges {
			switch e.Contains(p) {
			case OnStart, OnEnd:
				return FaceOnPoint
			case Inside:
				return FaceOnEdge
			}
		}
	}

	if f.Outer == nil {
		return f.insideHoles(p)
	}
	if !f.windingInside(f.Outer, p) {
		return FaceOutside
	}
	return f.insideHoles(p)
}

// insideHoles returns FaceOutside if p falls inside any hole, else
// FaceInside.
func (f *Face) insideHoles(p Point) FaceContainment {
	for _, h := range f.Holes {
		if f.windingInside(h, p) {
			return FaceOutside
		}
	}
	return FaceInside
}

// windingInside reports whether p lies inside contour c using a
// parameter-space ray-casting (even-odd) rule, sampling each edge into a
// polyline of surface (u,v) coordinates.
func (f *Face) windingInside(c *Contour, p Point) bool {
	const samplesPerEdge = 48
	poly := make([][2]float64, 0, samplesPerEdge*len(c.Edges))
	for _, e := range c.Edges {
		for i := 0; i < samplesPerEdge; i++ {
			t := float64(i) / float64(samplesPerEdge)
			su, sv := f.Surface.Project(e.PointAt(t))
			poly = append(poly, [2]float64{su, sv})
		}
	}
	u, v := f.Surface.Project(p)
	return pointInPolygon(poly, [2]float64{u, v})
}

// InnerPoint returns a point strictly inside the face, used as the
// auxiliary ray target by Volume.ContainsPoint. Tries the
// outer contour's centroid first, then midpoints between the centroid
// and each vertex.
func (f *Face) InnerPoint() Point {
	if f.Outer == nil {
		u, v := f.Surface.Project(f.Surface.PointAt(0, 0))
		p := f.Surface.PointAt(u, v)
		if f.Contains(p) == FaceInside {
			return p
		}
		panic("brep: could not find an inner point for face")
	}

	verts := f.Outer.Vertices()
	var centroid Point
	for _, p := range verts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(verts)))

	if p := f.projectAndTest(centroid); p != nil {
		return *p
	}
	for _, vtx := range verts {
		candidate := vtx.Lerp(centroid, 0.5)
		if p := f.projectAndTest(candidate); p != nil {
			return *p
		}
	}
	panic("brep: could not find an inner point for face")
}

// projectAndTest projects candidate onto the surface and returns it if
// it classifies as strictly inside the face, else nil.
func (f *Face) projectAndTest(candidate Point) *Point {
	u, v := f.Surface.Project(candidate)
	p := f.Surface.PointAt(u, v)
	if f.Contains(p) == FaceInside {
		return &p
	}
	return nil
}

// pointInPolygon implements the standard even-odd ray-casting test
// against a closed polyline, casting the ray in the direction of
// increasing u.
func pointInPolygon(poly [][2]float64, q [2]float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi[1] > q[1]) != (pj[1] > q[1]) {
			uCross := (pj[0]-pi[0])*(q[1]-pi[1])/(pj[1]-pi[1]) + pi[0]
			if q[0] < uCross {
				inside = !inside
			}
		}
	}
	return inside
}
