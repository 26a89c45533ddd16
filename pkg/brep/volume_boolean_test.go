package brep_test

import (
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

func TestVolumeShellIntersectOverlappingCubes(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 0.5, 1.5)

	segments := a.ShellIntersect(b)
	if len(segments) == 0 {
		t.Fatal("expected non-empty shell crossing for overlapping cubes")
	}
	for _, e := range segments {
		if e.Curve == nil {
			t.Errorf("segment missing curve: %v", e)
		}
	}
}

func TestVolumeShellIntersectDisjointCubesEmpty(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 10, 11)

	if segments := a.ShellIntersect(b); len(segments) != 0 {
		t.Errorf("expected no shell crossing for disjoint cubes, got %d segments", len(segments))
	}
}

func TestVolumeIntersectionOfOverlappingCubes(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 0.5, 1.5)

	result := brep.VolumeIntersection(a, b)
	if len(result) == 0 {
		t.Fatal("expected a non-empty intersection volume")
	}

	inBoth := result[0].ContainsPoint(brep.Point{X: 0.75, Y: 0.75, Z: 0.75})
	if inBoth.Kind != brep.VolumeInside {
		t.Errorf("point shared by both cubes classified as %v, want Inside", inBoth.Kind)
	}
}

func TestVolumeDifferenceOfOverlappingCubes(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 0.5, 1.5)

	result := brep.VolumeDifference(a, b)
	if len(result) == 0 {
		t.Fatal("expected a non-empty difference volume")
	}

	onlyInA := result[0].ContainsPoint(brep.Point{X: 0.25, Y: 0.25, Z: 0.25})
	if onlyInA.Kind != brep.VolumeInside {
		t.Errorf("point only inside a classified as %v, want Inside", onlyInA.Kind)
	}
}

// TestVolumeDifferenceCavityWallNormalPointsOutward checks a point on the
// cavity wall carved out by b (the b-derived face at x=0.5), rather than
// deep in the a-only interior: the wall's outward normal must point away
// from the remaining a-minus-b solid (+X here), not retain b's own
// outward sense (which would point -X, back into the removed region).
func TestVolumeDifferenceCavityWallNormalPointsOutward(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 0.5, 1.5)

	result := brep.VolumeDifference(a, b)
	if len(result) == 0 {
		t.Fatal("expected a non-empty difference volume")
	}

	wall := brep.Point{X: 0.5, Y: 0.75, Z: 0.75}
	onWall := result[0].ContainsPoint(wall)
	if onWall.Kind != brep.VolumeOnFace {
		t.Fatalf("cavity wall point classified as %v, want OnFace", onWall.Kind)
	}

	normal := onWall.Face.Normal(wall)
	if normal.X <= 0 {
		t.Errorf("cavity wall normal = %+v, want outward (+X) sense, got inward/b's own sense", normal)
	}
}

func TestVolumeUnionOfOverlappingCubes(t *testing.T) {
	a := unitCube(t, 0, 1)
	b := unitCube(t, 0.5, 1.5)

	result := brep.VolumeUnion(a, b)
	if len(result) == 0 {
		t.Fatal("expected a non-empty union volume")
	}

	farCorner := result[0].ContainsPoint(brep.Point{X: 1.25, Y: 1.25, Z: 1.25})
	if farCorner.Kind != brep.VolumeInside {
		t.Errorf("point only inside b classified as %v, want Inside", farCorner.Kind)
	}
}
