package brep_test

import (
	"math"
	"testing"

	"github.com/chazu/brep/pkg/brep"
)

func TestTransformIdentity(t *testing.T) {
	p := brep.Point{X: 1, Y: 2, Z: 3}
	if got := brep.Identity().Apply(p); !got.Equal(p) {
		t.Errorf("identity transform changed point: got %v", got)
	}
}

func TestTransformTranslation(t *testing.T) {
	v := brep.Point{X: 1, Y: -1, Z: 5}
	p := brep.Point{X: 0, Y: 0, Z: 0}
	got := brep.Translation(v).Apply(p)
	if !got.Equal(v) {
		t.Errorf("translation of origin by %v: got %v", v, got)
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	p := brep.Point{X: 1, Y: 0, Z: 0}
	got := brep.RotationZ(math.Pi / 2).Apply(p)
	want := brep.Point{X: 0, Y: 1, Z: 0}
	if !got.Equal(want) {
		t.Errorf("rotate (1,0,0) by 90deg about Z: got %v, want %v", got, want)
	}
}

func TestRotationPreservesNorm(t *testing.T) {
	p := brep.Point{X: 3, Y: -2, Z: 1}
	r := brep.RotationX(0.7).Compose(brep.RotationY(1.1)).Compose(brep.RotationZ(-0.4))
	got := r.Apply(p)
	if math.Abs(got.Norm()-p.Norm()) > brep.EQThreshold {
		t.Errorf("rotation changed vector norm: got %v, want %v", got.Norm(), p.Norm())
	}
}

func TestTransformComposeOrder(t *testing.T) {
	a := brep.Translation(brep.Point{X: 1, Y: 0, Z: 0})
	b := brep.Translation(brep.Point{X: 0, Y: 1, Z: 0})
	composed := a.Compose(b)

	p := brep.Point{X: 0, Y: 0, Z: 0}
	want := b.Apply(a.Apply(p))
	got := composed.Apply(p)
	if !got.Equal(want) {
		t.Errorf("compose order: got %v, want %v", got, want)
	}
}
