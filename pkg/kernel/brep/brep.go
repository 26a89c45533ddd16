// Package brep implements the kernel.Kernel interface directly atop
// pkg/brep's boundary-representation solids, rather than an implicit
// signed-distance or CGo representation. It is the default backend: an
// exact B-Rep Kernel, as opposed to pkg/kernel/sdfx's SDF approximation
// or pkg/kernel/manifold's CGo binding.
package brep

import (
	"fmt"
	"math"

	core "github.com/chazu/brep/pkg/brep"
	"github.com/chazu/brep/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)
var _ kernel.Solid = (*solid)(nil)

// defaultCylinderSegments is used when the caller passes segments <= 0.
const defaultCylinderSegments = 32

// solid wraps zero or more B-Rep volumes. Boolean operations on this
// kernel can legitimately produce more than one disjoint volume (e.g.
// a union of non-touching shapes, or a difference that splits a solid
// in two); pkg/brep models that as []*Volume rather than forcing a
// single result, so the wrapper does too.
type solid struct {
	vols []*core.Volume
}

// BoundingBox returns the box enclosing every wrapped volume.
func (s *solid) BoundingBox() (min, max [3]float64) {
	if len(s.vols) == 0 {
		panic("brep: solid has no volumes")
	}
	lo, hi := s.vols[0].BoundingBox()
	for _, v := range s.vols[1:] {
		vlo, vhi := v.BoundingBox()
		lo = lo.Min(vlo)
		hi = hi.Max(vhi)
	}
	return [3]float64{lo.X, lo.Y, lo.Z}, [3]float64{hi.X, hi.Y, hi.Z}
}

// Kernel implements kernel.Kernel using pkg/brep's exact topological
// representation.
type Kernel struct{}

// New returns a new Kernel.
func New() *Kernel {
	return &Kernel{}
}

func wrap(vols []*core.Volume) kernel.Solid {
	return &solid{vols: vols}
}

func unwrap(s kernel.Solid) *solid {
	return s.(*solid)
}

// planarFace builds a single-contour face on the plane through basis
// with the given (u,v) slope vectors (their cross product is the face's
// outward normal), bounded by straight edges through corners in order.
func planarFace(basis, uSlope, vSlope core.Point, corners []core.Point) *core.Face {
	plane := core.NewPlane(basis, uSlope, vSlope)
	edges := make([]*core.Edge, len(corners))
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		edges[i] = core.NewEdge(c, next, core.NewLine(c, next.Sub(c)))
	}
	return core.NewFace(plane, core.NewContour(edges), nil)
}

// Box creates an axis-aligned box with its minimum corner at the
// origin, matching the sibling sdfx backend's placement convention.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	faces := []*core.Face{
		planarFace(core.Point{}, core.Point{Y: 1}, core.Point{X: 1}, []core.Point{
			{}, {X: x}, {X: x, Y: y}, {Y: y},
		}),
		planarFace(core.Point{Z: z}, core.Point{X: 1}, core.Point{Y: 1}, []core.Point{
			{Z: z}, {X: x, Z: z}, {X: x, Y: y, Z: z}, {Y: y, Z: z},
		}),
		planarFace(core.Point{}, core.Point{X: 1}, core.Point{Z: 1}, []core.Point{
			{}, {X: x}, {X: x, Z: z}, {Z: z},
		}),
		planarFace(core.Point{Y: y}, core.Point{Z: 1}, core.Point{X: 1}, []core.Point{
			{Y: y}, {Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y},
		}),
		planarFace(core.Point{}, core.Point{Z: 1}, core.Point{Y: 1}, []core.Point{
			{}, {Z: z}, {Y: y, Z: z}, {Y: y},
		}),
		planarFace(core.Point{X: x}, core.Point{Y: 1}, core.Point{Z: 1}, []core.Point{
			{X: x}, {X: x, Y: y}, {X: x, Y: y, Z: z}, {X: x, Z: z},
		}),
	}
	return wrap([]*core.Volume{core.NewVolume(faces)})
}

// Cylinder approximates a cylinder as a regular prism of the requested
// segment count, standing on the origin along Z: pkg/brep's surface
// set is limited to Plane and Sphere (no cylindrical manifold), so an
// exact cylindrical side face cannot be represented here and the prism
// faceting is the deliberate substitute (see DESIGN.md).
func (k *Kernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments <= 0 {
		segments = defaultCylinderSegments
	}

	ring := func(z float64) []core.Point {
		pts := make([]core.Point, segments)
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			pts[i] = core.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a), Z: z}
		}
		return pts
	}
	bottom := ring(0)
	top := ring(height)

	var faces []*core.Face
	faces = append(faces, planarFace(core.Point{}, core.Point{Y: 1}, core.Point{X: 1}, bottom))
	faces = append(faces, planarFace(core.Point{Z: height}, core.Point{X: 1}, core.Point{Y: 1}, top))

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		corners := []core.Point{bottom[i], bottom[j], top[j], top[i]}
		uSlope := bottom[j].Sub(bottom[i])
		vSlope := core.Point{Z: 1}
		faces = append(faces, planarFace(bottom[i], uSlope, vSlope, corners))
	}

	return wrap([]*core.Volume{core.NewVolume(faces)})
}

// combine runs the boolean op over every pair of volumes across the two
// solids and collects every resulting volume.
func combine(a, b kernel.Solid, op func(x, y *core.Volume) []*core.Volume) kernel.Solid {
	sa, sb := unwrap(a), unwrap(b)
	var out []*core.Volume
	for _, x := range sa.vols {
		for _, y := range sb.vols {
			out = append(out, op(x, y)...)
		}
	}
	return wrap(out)
}

func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return combine(a, b, core.VolumeUnion)
}

func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return combine(a, b, core.VolumeDifference)
}

func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return combine(a, b, core.VolumeIntersection)
}

func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	t := core.Translation(core.Point{X: x, Y: y, Z: z})
	return transformAll(s, t)
}

// Rotate rotates s by Euler angles in degrees around X, Y, Z, applied in
// that order, matching the sibling sdfx backend's RotateZ∘RotateY∘RotateX
// composition.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	toRad := math.Pi / 180.0
	t := core.RotationX(x * toRad).
		Compose(core.RotationY(y * toRad)).
		Compose(core.RotationZ(z * toRad))
	return transformAll(s, t)
}

func transformAll(s kernel.Solid, t core.Transform) kernel.Solid {
	src := unwrap(s)
	vols := make([]*core.Volume, len(src.vols))
	for i, v := range src.vols {
		vols[i] = v.Transform(t)
	}
	return wrap(vols)
}

// ToMesh triangulates every bounded, outer-contoured face of every
// volume in s. Faces produced by this backend's own primitives (box
// sides, cylinder caps and facets) are always convex, so a triangle
// fan from the first vertex is exact; a general concave result from
// repeated booleans would need proper ear-clipping, which is out of
// scope for this derived query (see DESIGN.md).
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	src := unwrap(s)

	var vertices, normals []float32
	var indices []uint32

	for _, vol := range src.vols {
		for _, f := range vol.Faces {
			if f.Outer == nil {
				return nil, fmt.Errorf("brep kernel: cannot tessellate a boundless face")
			}
			verts := f.Outer.Vertices()
			if len(verts) < 3 {
				continue
			}
			n := f.Normal(verts[0])
			base := uint32(len(vertices) / 3)
			for _, v := range verts {
				vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
				normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
			}
			for i := 1; i+1 < len(verts); i++ {
				indices = append(indices, base, base+uint32(i), base+uint32(i+1))
			}
		}
	}

	return &kernel.Mesh{Vertices: vertices, Normals: normals, Indices: indices}, nil
}
