package brep

// VolumeContainment is the result of testing a point against a volume's
// shell.
type VolumeContainment int

const (
	VolumeInside VolumeContainment = iota
	VolumeOnFace
	VolumeOnEdge
	VolumeOnPoint
	VolumeOutside
)

func (k VolumeContainment) String() string {
	switch k {
	case VolumeInside:
		return "Inside"
	case VolumeOnFace:
		return "OnFace"
	case VolumeOnEdge:
		return "OnEdge"
	case VolumeOnPoint:
		return "OnPoint"
	case VolumeOutside:
		return "Outside"
	default:
		return "VolumeContainment(?)"
	}
}

// VolumeContainsResult carries the boundary entity associated with a
// non-Inside/Outside classification.
type VolumeContainsResult struct {
	Kind  VolumeContainment
	Face  *Face
	Edge  *Edge
	Point *Point
}

// Volume is a closed shell: a non-empty set of faces whose boundary
// encloses a region of space.
type Volume struct {
	Faces []*Face
}

// NewVolume constructs a Volume. Panics if faces is empty (a
// precondition violation).
func NewVolume(faces []*Face) *Volume {
	if len(faces) == 0 {
		panic("brep: volume must have at least one face")
	}
	return &Volume{Faces: faces}
}

// BoundingBox returns the axis-aligned bounding box enclosing every
// bounded face of the volume.
func (v *Volume) BoundingBox() (min, max Point) {
	first := true
	for _, f := range v.Faces {
		if f.Outer == nil {
			continue
		}
		fmin, fmax := f.BoundingBox()
		if first {
			min, max = fmin, fmax
			first = false
			continue
		}
		min = min.Min(fmin)
		max = max.Max(fmax)
	}
	if first {
		panic("brep: volume has no bounded faces")
	}
	return min, max
}

// Transform returns the volume mapped through t.
func (v *Volume) Transform(t Transform) *Volume {
	faces := make([]*Face, len(v.Faces))
	for i, f := range v.Faces {
		faces[i] = f.Transform(t)
	}
	return &Volume{Faces: faces}
}

// normalsAt returns the normals of every face reporting p on its
// boundary (Inside/OnEdge/OnPoint in the face-containment sense), used
// to classify a shell point as OnFace/OnEdge/OnPoint.
func (v *Volume) normalsAt(p Point) []Point {
	var normals []Point
	for _, f := range v.Faces {
		switch f.Contains(p) {
		case FaceInside, FaceOnEdge, FaceOnPoint:
			normals = append(normals, f.Normal(p))
		}
	}
	if len(normals) == 0 {
		panic("brep: point is not on the volume's boundary")
	}
	return normals
}

// isFromInside reports whether dir points strictly into every
// half-space defined by normals (a positive dot product with each one):
// the "from inside" test of ContainsPoint.
func isFromInside(normals []Point, dir Point) bool {
	for _, n := range normals {
		if n.Dot(dir) <= 0 {
			return false
		}
	}
	return true
}

// containingEdge returns the specific boundary edge of f that reports p
// as Inside/OnStart/OnEnd, used to populate VolumeContainsResult.Edge.
func containingEdge(f *Face, p Point) *Edge {
	for _, c := range f.boundaryContours() {
		for _, e := range c.Edges {
			if e.Contains(p) != Outside {
				return e
			}
		}
	}
	return nil
}

// ContainsPoint classifies q against the volume:
//  1. scan all faces; report the first boundary classification found.
//  2. otherwise cast a segment from q to an auxiliary point known to
//     lie strictly inside some face of the shell, and track the
//     closest crossing.
//  3. classify q as Inside iff the segment direction at the closest
//     crossing points along the shell's outward normal there (positive
//     dot product with every face normal at that point), i.e. the
//     segment leaves the shell there.
func (v *Volume) ContainsPoint(q Point) VolumeContainsResult {
	for _, f := range v.Faces {
		switch f.Contains(q) {
		case FaceInside:
			return VolumeContainsResult{Kind: VolumeOnFace, Face: f}
		case FaceOnEdge:
			return VolumeContainsResult{Kind: VolumeOnEdge, Edge: containingEdge(f, q)}
		case FaceOnPoint:
			pp := q
			return VolumeContainsResult{Kind: VolumeOnPoint, Point: &pp}
		}
	}

	r := v.Faces[0].InnerPoint()
	dir := r.Sub(q)
	rayLine := NewLine(q, dir)
	ray := NewEdge(q, r, rayLine)

	closestDistance := q.Distance(r)
	closestFromInside := isFromInside(v.normalsAt(r), dir)

	for _, f := range v.Faces {
		for _, hit := range IntersectFaceEdge(f, ray) {
			var candidates []Point
			if hit.Point != nil {
				candidates = append(candidates, *hit.Point)
			}
			if hit.Edge != nil {
				candidates = append(candidates, hit.Edge.Start, hit.Edge.End)
			}
			for _, p := range candidates {
				d := q.Distance(p)
				if d < closestDistance {
					closestDistance = d
					closestFromInside = isFromInside(v.normalsAt(p), dir)
				}
			}
		}
	}

	if closestFromInside {
		return VolumeContainsResult{Kind: VolumeInside}
	}
	return VolumeContainsResult{Kind: VolumeOutside}
}
