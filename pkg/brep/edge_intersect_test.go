package brep_test

import (
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

func TestIntersectEdgesLineLinePoint(t *testing.T) {
	lx := brep.NewLine(brep.Point{}, brep.Point{X: 1, Y: 0, Z: 0})
	ly := brep.NewLine(brep.Point{}, brep.Point{X: 0, Y: 1, Z: 0})
	a := brep.NewEdge(brep.Point{X: -5, Y: 0, Z: 0}, brep.Point{X: 5, Y: 0, Z: 0}, lx)
	b := brep.NewEdge(brep.Point{X: 0, Y: -5, Z: 0}, brep.Point{X: 0, Y: 5, Z: 0}, ly)

	hits := brep.IntersectEdges(a, b)
	if len(hits) != 1 || hits[0].Point == nil {
		t.Fatalf("expected exactly one point intersection, got %v", hits)
	}
	if !hits[0].Point.Equal(brep.Point{}) {
		t.Errorf("intersection point = %v, want origin", *hits[0].Point)
	}
}

func TestIntersectEdgesLineLineNoCrossingOutsideBounds(t *testing.T) {
	lx := brep.NewLine(brep.Point{}, brep.Point{X: 1, Y: 0, Z: 0})
	ly := brep.NewLine(brep.Point{X: 20, Y: 0, Z: 0}, brep.Point{X: 0, Y: 1, Z: 0})
	a := brep.NewEdge(brep.Point{X: -5, Y: 0, Z: 0}, brep.Point{X: 5, Y: 0, Z: 0}, lx)
	b := brep.NewEdge(brep.Point{X: 20, Y: -5, Z: 0}, brep.Point{X: 20, Y: 5, Z: 0}, ly)

	hits := brep.IntersectEdges(a, b)
	if len(hits) != 0 {
		t.Errorf("expected no intersection within bounds, got %v", hits)
	}
}

func TestIntersectEdgesLineLineOverlap(t *testing.T) {
	l := brep.NewLine(brep.Point{}, brep.Point{X: 1, Y: 0, Z: 0})
	a := brep.NewEdge(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 10, Y: 0, Z: 0}, l)
	b := brep.NewEdge(brep.Point{X: 5, Y: 0, Z: 0}, brep.Point{X: 15, Y: 0, Z: 0}, l)

	hits := brep.IntersectEdges(a, b)
	if len(hits) != 1 || hits[0].Edge == nil {
		t.Fatalf("expected one overlapping Edge fragment, got %v", hits)
	}
	if !hits[0].Edge.Start.Equal(brep.Point{X: 5, Y: 0, Z: 0}) || !hits[0].Edge.End.Equal(brep.Point{X: 10, Y: 0, Z: 0}) {
		t.Errorf("overlap = [%v,%v], want [5,10]", hits[0].Edge.Start, hits[0].Edge.End)
	}
}

func TestIntersectEdgesCircleCircleFiltered(t *testing.T) {
	a := brep.NewCircle(brep.Point{X: 0, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)
	b := brep.NewCircle(brep.Point{X: 1, Y: 0, Z: 0}, brep.Point{X: 0, Y: 0, Z: 1}, 1)

	// Only the upper half of each circle, so only the upper chord point
	// should survive the edge-bound filter.
	ea := brep.NewEdge(a.PointAt(0), a.PointAt(3.14159265/2+0.2), a)
	eb := brep.NewEdge(b.PointAt(3.14159265/2), b.PointAt(3.14159265+0.2), b)

	hits := brep.IntersectEdges(ea, eb)
	for _, h := range hits {
		if h.Point == nil {
			t.Fatalf("expected point intersections only, got %v", h)
		}
		if !ea.Curve.OnManifold(*h.Point) {
			t.Errorf("hit %v not on edge a's curve", *h.Point)
		}
	}
}
