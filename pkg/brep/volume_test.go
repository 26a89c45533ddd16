package brep_test

import (
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

// unitCube builds an axis-aligned cube volume spanning [lo, hi]^3 with
// outward-facing normals on all six faces.
func unitCube(t *testing.T, lo, hi float64) *brep.Volume {
	t.Helper()
	mkFace := func(basis, uSlope, vSlope brep.Point, corners []brep.Point) *brep.Face {
		plane := brep.NewPlane(basis, uSlope, vSlope)
		return brep.NewFace(plane, rectContour(corners), nil)
	}

	faces := []*brep.Face{
		// -Z
		mkFace(brep.Point{X: lo, Y: lo, Z: lo}, brep.Point{X: 0, Y: 1, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0}, []brep.Point{
			{X: lo, Y: lo, Z: lo}, {X: hi, Y: lo, Z: lo}, {X: hi, Y: hi, Z: lo}, {X: lo, Y: hi, Z: lo},
		}),
		// +Z
		mkFace(brep.Point{X: lo, Y: lo, Z: hi}, brep.Point{X: 1, Y: 0, Z: 0}, brep.Point{X: 0, Y: 1, Z: 0}, []brep.Point{
			{X: lo, Y: lo, Z: hi}, {X: hi, Y: lo, Z: hi}, {X: hi, Y: hi, Z: hi}, {X: lo, Y: hi, Z: hi},
		}),
		// -Y
		mkFace(brep.Point{X: lo, Y: lo, Z: lo}, brep.Point{X: 1, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, []brep.Point{
			{X: lo, Y: lo, Z: lo}, {X: hi, Y: lo, Z: lo}, {X: hi, Y: lo, Z: hi}, {X: lo, Y: lo, Z: hi},
		}),
		// +Y
		mkFace(brep.Point{X: lo, Y: hi, Z: lo}, brep.Point{X: 0, Y: 0, Z: 1}, brep.Point{X: 1, Y: 0, Z: 0}, []brep.Point{
			{X: lo, Y: hi, Z: lo}, {X: lo, Y: hi, Z: hi}, {X: hi, Y: hi, Z: hi}, {X: hi, Y: hi, Z: lo},
		}),
		// -X
		mkFace(brep.Point{X: lo, Y: lo, Z: lo}, brep.Point{X: 0, Y: 0, Z: 1}, brep.Point{X: 0, Y: 1, Z: 0}, []brep.Point{
			{X: lo, Y: lo, Z: lo}, {X: lo, Y: lo, Z: hi}, {X: lo, Y: hi, Z: hi}, {X: lo, Y: hi, Z: lo},
		}),
		// +X
		mkFace(brep.Point{X: hi, Y: lo, Z: lo}, brep.Point{X: 0, Y: 1, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, []brep.Point{
			{X: hi, Y: lo, Z: lo}, {X: hi, Y: hi, Z: lo}, {X: hi, Y: hi, Z: hi}, {X: hi, Y: lo, Z: hi},
		}),
	}
	return brep.NewVolume(faces)
}

// Concrete scenario 5: a unit cube classifies its center as Inside, the
// midpoint of a face as OnFace, and a far point as Outside.
func TestVolumeContainsPointCubeScenario(t *testing.T) {
	cube := unitCube(t, 0, 1)

	inside := cube.ContainsPoint(brep.Point{X: 0.5, Y: 0.5, Z: 0.5})
	if inside.Kind != brep.VolumeInside {
		t.Errorf("center classified as %v, want Inside", inside.Kind)
	}

	onFace := cube.ContainsPoint(brep.Point{X: 0.5, Y: 0.5, Z: 0})
	if onFace.Kind != brep.VolumeOnFace {
		t.Errorf("face midpoint classified as %v, want OnFace", onFace.Kind)
	}

	outside := cube.ContainsPoint(brep.Point{X: 2, Y: 0, Z: 0})
	if outside.Kind != brep.VolumeOutside {
		t.Errorf("far point classified as %v, want Outside", outside.Kind)
	}
}

func TestVolumeContainsPointOnEdgeAndVertex(t *testing.T) {
	cube := unitCube(t, 0, 1)

	onEdge := cube.ContainsPoint(brep.Point{X: 0.5, Y: 0, Z: 0})
	if onEdge.Kind != brep.VolumeOnEdge {
		t.Errorf("cube edge midpoint classified as %v, want OnEdge", onEdge.Kind)
	}

	onVertex := cube.ContainsPoint(brep.Point{X: 0, Y: 0, Z: 0})
	if onVertex.Kind != brep.VolumeOnPoint {
		t.Errorf("cube vertex classified as %v, want OnPoint", onVertex.Kind)
	}
}

func TestVolumeTransformTranslatesShell(t *testing.T) {
	cube := unitCube(t, 0, 1)
	moved := cube.Transform(brep.Translation(brep.Point{X: 5, Y: 0, Z: 0}))

	inside := moved.ContainsPoint(brep.Point{X: 5.5, Y: 0.5, Z: 0.5})
	if inside.Kind != brep.VolumeInside {
		t.Errorf("translated center classified as %v, want Inside", inside.Kind)
	}
	outside := moved.ContainsPoint(brep.Point{X: 0.5, Y: 0.5, Z: 0.5})
	if outside.Kind != brep.VolumeOutside {
		t.Errorf("original center after translation classified as %v, want Outside", outside.Kind)
	}
}
