package brep_test

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	kernelbrep "github.com/chazu/brep/pkg/kernel/brep"
)

// size returns the componentwise extent of an axis-aligned box, which is
// independent of where either representation chooses to place its origin
// — the only thing a faceted B-Rep primitive and an SDF primitive for the
// "same" shape are guaranteed to agree on without also agreeing on a
// placement convention.
func size(min, max [3]float64) [3]float64 {
	return [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}
}

func closeEnough(a, b [3]float64) bool {
	const tol = 1e-9
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol && math.Abs(a[2]-b[2]) < tol
}

// TestBoxBoundingBoxMatchesSdfxBox3D cross-checks pkg/kernel/brep's exact
// faceted Box primitive against sdfx's own sdf.Box3D signed-distance
// bounding box: both represent the same box two different ways (explicit
// B-Rep faces here, a signed-distance field there), but their extents must
// agree.
func TestBoxBoundingBoxMatchesSdfxBox3D(t *testing.T) {
	x, y, z := 3.0, 5.0, 7.0

	k := kernelbrep.New()
	min, max := k.Box(x, y, z).BoundingBox()
	got := size(min, max)

	ref, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		t.Fatalf("sdf.Box3D: %v", err)
	}
	bb := ref.BoundingBox()
	want := size([3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}, [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z})

	if !closeEnough(got, want) {
		t.Errorf("brep Box(%v,%v,%v) extent = %v, want %v (sdf.Box3D)", x, y, z, got, want)
	}
}

// TestCylinderBoundingBoxMatchesSdfxCylinder3D cross-checks this backend's
// faceted-prism Cylinder primitive (see Kernel.Cylinder's doc comment on
// why a true cylindrical surface isn't representable here) against
// sdf.Cylinder3D's exact bounding box. The prism's vertices sit exactly on
// the radius, and with a segment count divisible by four (64 here) there
// are vertices on the +X, -X, +Y and -Y axes, so its bounding box matches
// the true cylinder's to within the same tolerance as Box.
func TestCylinderBoundingBoxMatchesSdfxCylinder3D(t *testing.T) {
	height, radius := 4.0, 2.5

	k := kernelbrep.New()
	min, max := k.Cylinder(height, radius, 64).BoundingBox()
	got := size(min, max)

	ref, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		t.Fatalf("sdf.Cylinder3D: %v", err)
	}
	bb := ref.BoundingBox()
	want := size([3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}, [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z})

	if !closeEnough(got, want) {
		t.Errorf("brep Cylinder(%v,%v) extent = %v, want %v (sdf.Cylinder3D)", height, radius, got, want)
	}
}
