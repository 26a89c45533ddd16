package brep_test

import (
	"math"
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

// Scenario 4: overlapping collinear lines.
func TestIntersectLineLineOverlap(t *testing.T) {
	a := brep.NewLine(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0})
	b := brep.NewLine(brep.Point{X: 0.5, Y: 0, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0})

	r := brep.IntersectLineLine(a, b)
	if r.Kind != brep.LineLineLine {
		t.Fatalf("expected Line result, got %v", r.Kind)
	}
	if math.Abs(math.Abs(r.Line.Direction.X)-1) > brep.EQThreshold {
		t.Errorf("expected direction (1,0,0)-like, got %v", r.Line.Direction)
	}
}

func TestIntersectLineLinePoint(t *testing.T) {
	a := brep.NewLine(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0})
	b := brep.NewLine(brep.Point{X: 0, Y: -1, Z: 0}, brep.Point{X: 0, Y: 1, Z: 0})

	r := brep.IntersectLineLine(a, b)
	if r.Kind != brep.LineLinePoint {
		t.Fatalf("expected Point result, got %v", r.Kind)
	}
	if !r.Point.Equal(brep.Point{}) {
		t.Errorf("expected intersection at origin, got %v", r.Point)
	}
}

func TestIntersectLineLineSkewNone(t *testing.T) {
	a := brep.NewLine(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0})
	b := brep.NewLine(brep.Point{X: 0, Y: 0, Z: 1}, brep.Point{X: 0, Y: 1, Z: 0})

	if r := brep.IntersectLineLine(a, b); r.Kind != brep.LineLineNone {
		t.Errorf("expected no intersection for skew lines, got %v", r.Kind)
	}
}

// Scenario 3: two unit circles sharing a chord.
func TestIntersectCircleCircleChord(t *testing.T) {
	a := brep.NewCircle(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)
	b := brep.NewCircle(brep.Point{X: 1, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)

	r := brep.IntersectCircleCircle(a, b)
	if r.Kind != brep.CircleCircleTwoPoint {
		t.Fatalf("expected TwoPoint, got %v", r.Kind)
	}
	h := math.Sqrt(3) / 2
	want1 := brep.Point{X: 0.5, Y: h, Z: 0}
	want2 := brep.Point{X: 0.5, Y: -h, Z: 0}
	if !r.Points[0].Equal(want1) {
		t.Errorf("first point (ascending u on a) = %v, want %v", r.Points[0], want1)
	}
	if !r.Points[1].Equal(want2) {
		t.Errorf("second point = %v, want %v", r.Points[1], want2)
	}
}

func TestIntersectCircleCircleCoincident(t *testing.T) {
	a := brep.NewCircle(brep.Point{}, brep.Point{X: 0, Y: 0, Z: 1}, 2)
	b := brep.NewCircle(brep.Point{}, brep.Point{X: 0, Y: 0, Z: 1}, 2)

	r := brep.IntersectCircleCircle(a, b)
	if r.Kind != brep.CircleCircleCircle {
		t.Fatalf("expected whole-circle result for coincident circles, got %v", r.Kind)
	}
}

func TestIntersectCircleLineTangent(t *testing.T) {
	c := brep.NewCircle(brep.Point{}, brep.Point{X: 0, Y: 0, Z: 1}, 1)
	l := brep.NewLine(brep.Point{X: 0, Y: 1, Z: 0}, brep.Point{X: 1, Y: 0, Z: 0})

	r := brep.IntersectCircleLine(c, l)
	if r.Kind != brep.CircleLineOnePoint {
		t.Fatalf("expected tangent OnePoint, got %v", r.Kind)
	}
	if !r.Points[0].Equal(brep.Point{X: 0, Y: 1, Z: 0}) {
		t.Errorf("tangent point = %v, want (0,1,0)", r.Points[0])
	}
}

// Invariant 2: every point of an intersection lies on both manifolds.
func TestIntersectionPointsOnBothManifolds(t *testing.T) {
	a := brep.NewCircle(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)
	b := brep.NewCircle(brep.Point{X: 1, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)
	r := brep.IntersectCircleCircle(a, b)
	for _, p := range r.Points {
		if !a.OnManifold(p) || !b.OnManifold(p) {
			t.Errorf("intersection point %v not on both circles", p)
		}
	}
}
