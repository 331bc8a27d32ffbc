package physics

import (
	"errors"
	"math"
	"testing"
)

func TestLayouts_Deterministic(t *testing.T) {
	for _, name := range LayoutNames() {
		layout, err := LayoutByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		a, b := layout(40), layout(40)
		if len(a) != 40 {
			t.Errorf("%s: expected 40 bodies, got %d", name, len(a))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: body %d differs between calls", name, i)
			}
		}
	}
}

func TestHelix(t *testing.T) {
	bodies := Helix(4)

	first := bodies[0]
	if first.Position != (Vec3{8, 0, -8}) {
		t.Errorf("expected first body at (8, 0, -8), got %v", first.Position)
	}
	if first.Mass != 1 {
		t.Errorf("expected mass 1, got %v", first.Mass)
	}

	last := bodies[3]
	if math.Abs(last.Mass-1.75) > 1e-12 {
		t.Errorf("expected mass 1.75, got %v", last.Mass)
	}
	if math.Abs(last.Position.Z-4) > 1e-12 {
		t.Errorf("expected z 4, got %v", last.Position.Z)
	}
	for i, b := range bodies {
		r := math.Hypot(b.Position.X, b.Position.Y)
		if math.Abs(r-helixRadius) > 1e-9 {
			t.Errorf("body %d: expected radius %v, got %v", i, helixRadius, r)
		}
	}
}

func TestLayoutByName_Unknown(t *testing.T) {
	if _, err := LayoutByName("spiral"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestLine(t *testing.T) {
	bodies := Line(2)
	if bodies[0].Position != (Vec3{-1, 0, 0}) || bodies[1].Position != (Vec3{1, 0, 0}) {
		t.Errorf("unexpected positions %v, %v", bodies[0].Position, bodies[1].Position)
	}
	if bodies[0].Mass != 1 || bodies[1].Mass != 1 {
		t.Errorf("expected unit masses, got %v, %v", bodies[0].Mass, bodies[1].Mass)
	}

	if one := Line(1); one[0].Position != (Vec3{}) {
		t.Errorf("expected single body at origin, got %v", one[0].Position)
	}
}
