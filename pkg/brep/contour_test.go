package brep_test

import (
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

func squareContour(t *testing.T) *brep.Contour {
	t.Helper()
	corners := []brep.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	edges := make([]*brep.Edge, len(corners))
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		edges[i] = brep.NewEdge(c, next, brep.NewLine(c, next.Sub(c)))
	}
	return brep.NewContour(edges)
}

func TestNewContourClosureValidation(t *testing.T) {
	c := squareContour(t)
	if len(c.Edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(c.Edges))
	}
}

func TestNewContourRejectsOpenChain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-closing edge chain")
		}
	}()
	a := brep.Point{X: 0, Y: 0, Z: 0}
	b := brep.Point{X: 1, Y: 0, Z: 0}
	c := brep.Point{X: 2, Y: 2, Z: 0}
	d := brep.Point{X: 3, Y: 3, Z: 0}
	e1 := brep.NewEdge(a, b, brep.NewLine(a, b.Sub(a)))
	e2 := brep.NewEdge(c, d, brep.NewLine(c, d.Sub(c)))
	brep.NewContour([]*brep.Edge{e1, e2})
}

func TestContourPointAtReparametrization(t *testing.T) {
	c := squareContour(t)

	// t=0 should land exactly on the first edge's start.
	if got := c.PointAt(0); !got.Equal(c.Edges[0].Start) {
		t.Errorf("PointAt(0) = %v, want %v", got, c.Edges[0].Start)
	}
	// t=1/8 is half of the first edge's quarter, so it lands at 1/2 within it.
	if got := c.PointAt(0.125); !got.Equal(c.Edges[0].PointAt(0.5)) {
		t.Errorf("PointAt(0.125) = %v, want midpoint of edge 0 %v", got, c.Edges[0].PointAt(0.5))
	}
	// t=0.5 should fall exactly at the start of the third edge.
	if got := c.PointAt(0.5); !got.Equal(c.Edges[2].Start) {
		t.Errorf("PointAt(0.5) = %v, want %v", got, c.Edges[2].Start)
	}
}

func TestContourTangentMatchesOccupyingEdge(t *testing.T) {
	c := squareContour(t)
	p := c.PointAt(0.125)
	got := c.Tangent(0.125)
	want := c.Edges[0].Tangent(p)
	if !got.Equal(want) {
		t.Errorf("Tangent(0.125) = %v, want %v", got, want)
	}
}

func TestContourContainsBoundaryPoints(t *testing.T) {
	c := squareContour(t)
	if !c.Contains(brep.Point{X: 0.5, Y: 0, Z: 0}) {
		t.Error("midpoint of bottom edge should be contained")
	}
	if !c.Contains(brep.Point{X: 0, Y: 0, Z: 0}) {
		t.Error("corner vertex should be contained")
	}
	if c.Contains(brep.Point{X: 0.5, Y: 0.5, Z: 0}) {
		t.Error("interior point is not on the boundary chain itself")
	}
}

func TestContourNegReversesAndInvolutes(t *testing.T) {
	c := squareContour(t)
	back := c.Neg().Neg()
	if len(back.Edges) != len(c.Edges) {
		t.Fatalf("neg().neg() changed edge count: %d vs %d", len(back.Edges), len(c.Edges))
	}
	for i := range c.Edges {
		if !back.Edges[i].Start.Equal(c.Edges[i].Start) || !back.Edges[i].End.Equal(c.Edges[i].End) {
			t.Errorf("edge %d mismatch after double negation: got [%v,%v], want [%v,%v]",
				i, back.Edges[i].Start, back.Edges[i].End, c.Edges[i].Start, c.Edges[i].End)
		}
	}
}

func TestContourTransformTranslatesVertices(t *testing.T) {
	c := squareContour(t)
	tr := brep.Translation(brep.Point{X: 10, Y: 0, Z: 0})
	moved := c.Transform(tr)
	for i, v := range moved.Vertices() {
		want := c.Vertices()[i].Add(brep.Point{X: 10, Y: 0, Z: 0})
		if !v.Equal(want) {
			t.Errorf("vertex %d = %v, want %v", i, v, want)
		}
	}
}
