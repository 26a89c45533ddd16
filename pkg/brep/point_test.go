package brep_test

import (
	"math"
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

func TestPointArithmetic(t *testing.T) {
	p := brep.Point{X: 1, Y: 2, Z: 3}
	q := brep.Point{X: 4, Y: -1, Z: 2}

	if got := p.Add(q); got != (brep.Point{X: 5, Y: 1, Z: 5}) {
		t.Errorf("Add: got %v", got)
	}
	if got := p.Sub(q); got != (brep.Point{X: -3, Y: 3, Z: 1}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := p.Dot(q); got != 4-2+6 {
		t.Errorf("Dot: got %v, want %v", got, 4-2+6)
	}
}

func TestPointCrossOrthogonal(t *testing.T) {
	x := brep.Point{X: 1, Y: 0, Z: 0}
	y := brep.Point{X: 0, Y: 1, Z: 0}
	z := x.Cross(y)
	if !z.Equal(brep.Point{X: 0, Y: 0, Z: 1}) {
		t.Errorf("x cross y = %v, want (0,0,1)", z)
	}
}

func TestPointNormalize(t *testing.T) {
	p := brep.Point{X: 3, Y: 4, Z: 0}
	n := p.Normalize()
	if math.Abs(n.Norm()-1) > brep.EQThreshold {
		t.Errorf("normalized vector has norm %v, want 1", n.Norm())
	}
}

func TestPointNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic normalizing a zero vector")
		}
	}()
	brep.Point{}.Normalize()
}

func TestPointEqualWithinThreshold(t *testing.T) {
	p := brep.Point{X: 1, Y: 1, Z: 1}
	q := brep.Point{X: 1 + brep.EQThreshold/10, Y: 1, Z: 1}
	if !p.Equal(q) {
		t.Errorf("points within threshold should be equal: %v vs %v", p, q)
	}
}
