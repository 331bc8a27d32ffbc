package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/physics"
)

func pair(t *testing.T) *physics.Engine {
	t.Helper()
	e, err := physics.New(2, physics.WithLayout(physics.Line))
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	return e
}

func TestEnergyDrift(t *testing.T) {
	e := pair(t)
	m := NewEnergyDrift()

	m.Observe(e)
	if m.Value() != 0 {
		t.Errorf("expected zero drift on first sample, got %v", m.Value())
	}

	for i := 0; i < 10; i++ {
		e.Step()
		m.Observe(e)
	}
	if m.Value() <= 0 {
		t.Error("expected semi-implicit Euler to show some drift")
	}
	if m.Value() > 1e-2 {
		t.Errorf("drift unexpectedly large: %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMomentumDrift(t *testing.T) {
	e := pair(t)
	m := NewMomentumDrift()

	for i := 0; i < 20; i++ {
		m.Observe(e)
		e.Step()
	}
	if m.Value() > 1e-12 {
		t.Errorf("expected momentum conserved, drift %v", m.Value())
	}
}

func TestMomentumDrift_VectorChange(t *testing.T) {
	moving := func(vx float64) *physics.Engine {
		a := physics.NewBody(physics.Vec3{X: -1}, 1)
		a.Velocity = physics.Vec3{X: vx}
		e, err := physics.NewFromBodies([]physics.Body{a, physics.NewBody(physics.Vec3{X: 1}, 1)})
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		return e
	}

	m := NewMomentumDrift()
	m.Observe(moving(1))
	m.Observe(moving(-1))

	// Same magnitude, reversed direction.
	if math.Abs(m.Value()-2) > 1e-12 {
		t.Errorf("expected drift 2, got %v", m.Value())
	}
}

func TestMinSeparation(t *testing.T) {
	e := pair(t)
	m := NewMinSeparation()

	if m.Value() != 0 {
		t.Errorf("expected 0 before samples, got %v", m.Value())
	}

	m.Observe(e)
	if math.Abs(m.Value()-2) > 1e-12 {
		t.Errorf("expected separation 2, got %v", m.Value())
	}

	e.Step()
	m.Observe(e)
	if m.Value() >= 2 {
		t.Errorf("expected bodies to approach, got %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestDefaults(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 metrics, got %d", len(seen))
	}
}
