package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/physics"
)

type Metric interface {
	Name() string
	Observe(e *physics.Engine)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []Metric {
	return []Metric{
		NewEnergyDrift(),
		NewMomentumDrift(),
		NewMinSeparation(),
	}
}

// EnergyDrift tracks the largest relative change in total energy since the
// first observation.
type EnergyDrift struct {
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(eng *physics.Engine) {
	energy := eng.Energy()

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the largest |p - p0| seen, the length of the vector
// change in total momentum since the first observation.
type MomentumDrift struct {
	initial  physics.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(eng *physics.Engine) {
	p := eng.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Length())
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = physics.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}

// MinSeparation records the closest approach between any two bodies.
// Close encounters are where a small epsilon destabilizes the integrator.
type MinSeparation struct {
	min     float64
	samples int
}

func NewMinSeparation() *MinSeparation {
	return &MinSeparation{min: math.Inf(1)}
}

func (m *MinSeparation) Name() string { return "min_separation" }

func (m *MinSeparation) Observe(eng *physics.Engine) {
	m.samples++
	n := eng.Len()
	for i := 0; i < n; i++ {
		pi := eng.Position(i)
		for j := i + 1; j < n; j++ {
			if d := physics.Distance(pi, eng.Position(j)); d < m.min {
				m.min = d
			}
		}
	}
}

// Value is 0 until two bodies have been observed.
func (m *MinSeparation) Value() float64 {
	if m.samples == 0 || math.IsInf(m.min, 1) {
		return 0
	}
	return m.min
}

func (m *MinSeparation) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}
