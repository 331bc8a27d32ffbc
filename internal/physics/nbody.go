package physics

import (
	"fmt"
	"math"
)

const (
	DefaultG       = 1.0
	DefaultDt      = 0.016
	DefaultEpsilon = 1e-6
)

// Engine integrates n point masses under exact pairwise gravity.
// The body count is fixed for the life of the engine.
type Engine struct {
	bodies     []Body
	forces     []Vec3
	g          float64
	dt         float64
	epsilon    float64
	integrator Integrator
	workers    int
	steps      int
	t          float64
}

type settings struct {
	g          float64
	dt         float64
	epsilon    float64
	layout     Layout
	integrator Integrator
	workers    int
}

type Option func(*settings)

func WithG(g float64) Option             { return func(s *settings) { s.g = g } }
func WithDt(dt float64) Option           { return func(s *settings) { s.dt = dt } }
func WithEpsilon(eps float64) Option     { return func(s *settings) { s.epsilon = eps } }
func WithLayout(l Layout) Option         { return func(s *settings) { s.layout = l } }
func WithIntegrator(i Integrator) Option { return func(s *settings) { s.integrator = i } }

// WithWorkers splits the force pass across up to n goroutines. Each body's
// force is still summed in index order, so results do not depend on n.
func WithWorkers(n int) Option { return func(s *settings) { s.workers = n } }

func newSettings(opts []Option) settings {
	s := settings{
		g:          DefaultG,
		dt:         DefaultDt,
		epsilon:    DefaultEpsilon,
		layout:     Helix,
		integrator: SemiImplicitEuler{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// New creates an engine with n bodies placed by the configured layout
// (Helix unless WithLayout is given).
func New(n int, opts ...Option) (*Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodyCount, n)
	}
	s := newSettings(opts)
	if s.layout == nil {
		s.layout = Helix
	}
	return build(s.layout(n), s)
}

// NewFromBodies creates an engine that owns a copy of bodies.
func NewFromBodies(bodies []Body, opts ...Option) (*Engine, error) {
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodyCount, len(bodies))
	}
	own := make([]Body, len(bodies))
	copy(own, bodies)
	return build(own, newSettings(opts))
}

func build(bodies []Body, s settings) (*Engine, error) {
	if err := validateParams(s); err != nil {
		return nil, err
	}
	for i, b := range bodies {
		if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
			return nil, &BodyError{Index: i, Mass: b.Mass, Wrapped: ErrInvalidMass}
		}
	}
	if s.integrator == nil {
		s.integrator = SemiImplicitEuler{}
	}
	return &Engine{
		bodies:     bodies,
		forces:     make([]Vec3, len(bodies)),
		g:          s.g,
		dt:         s.dt,
		epsilon:    s.epsilon,
		integrator: s.integrator,
		workers:    s.workers,
	}, nil
}

func validateParams(s settings) error {
	if !(s.g > 0) || math.IsInf(s.g, 0) {
		return fmt.Errorf("%w: g must be positive, got %g", ErrParameterBounds, s.g)
	}
	if !(s.dt > 0) || math.IsInf(s.dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrParameterBounds, s.dt)
	}
	if !(s.epsilon > 0) || math.IsInf(s.epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrParameterBounds, s.epsilon)
	}
	if s.workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrParameterBounds, s.workers)
	}
	return nil
}

func (e *Engine) Len() int               { return len(e.bodies) }
func (e *Engine) G() float64             { return e.g }
func (e *Engine) Dt() float64            { return e.dt }
func (e *Engine) Epsilon() float64       { return e.epsilon }
func (e *Engine) Steps() int             { return e.steps }
func (e *Engine) Time() float64          { return e.t }
func (e *Engine) Integrator() Integrator { return e.integrator }
func (e *Engine) Workers() int           { return e.workers }
func (e *Engine) Body(i int) Body        { return e.bodies[i] }
func (e *Engine) Position(i int) Vec3    { return e.bodies[i].Position }

// Bodies copies the current bodies into dst, reusing its capacity.
func (e *Engine) Bodies(dst []Body) []Body {
	return append(dst[:0], e.bodies...)
}

// Step advances the simulation by dt.
func (e *Engine) Step() {
	e.integrator.Integrate(e)
	e.steps++
	e.t += e.dt
}

// AccumulateForces computes the net gravitational force on every body from
// the current positions. The returned slice is reused by the next call.
func (e *Engine) AccumulateForces() []Vec3 {
	parallelFor(len(e.bodies), e.workers, e.accumulateRange)
	return e.forces
}

func (e *Engine) accumulateRange(start, end int) {
	bodies := e.bodies
	g, eps := e.g, e.epsilon

	for i := start; i < end; i++ {
		pi, mi := bodies[i].Position, bodies[i].Mass
		var f Vec3

		for j := range bodies {
			if i == j {
				continue
			}
			pj := bodies[j].Position

			dir := GuardedDirection(pi, pj, eps)
			distSq := DistanceSquared(pi, pj) + eps
			f = f.Add(dir.Scale(g * mi * bodies[j].Mass / distSq))
		}

		e.forces[i] = f
	}
}

// Kick applies v += (F/m) * h to every body.
func (e *Engine) Kick(forces []Vec3, h float64) {
	for i := range e.bodies {
		b := &e.bodies[i]
		b.Velocity = b.Velocity.Add(forces[i].Scale(h / b.Mass))
	}
}

// Drift applies p += v * h to every body.
func (e *Engine) Drift(h float64) {
	for i := range e.bodies {
		b := &e.bodies[i]
		b.Position = b.Position.Add(b.Velocity.Scale(h))
	}
}

func (e *Engine) KineticEnergy() float64 {
	ke := 0.0
	for _, b := range e.bodies {
		ke += 0.5 * b.Mass * b.Velocity.LengthSquared()
	}
	return ke
}

// PotentialEnergy uses the same softened separation as the force pass.
func (e *Engine) PotentialEnergy() float64 {
	pe := 0.0
	n := len(e.bodies)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := math.Sqrt(DistanceSquared(e.bodies[i].Position, e.bodies[j].Position) + e.epsilon)
			pe -= e.g * e.bodies[i].Mass * e.bodies[j].Mass / r
		}
	}
	return pe
}

func (e *Engine) Energy() float64 {
	return e.KineticEnergy() + e.PotentialEnergy()
}

func (e *Engine) Momentum() Vec3 {
	var p Vec3
	for _, b := range e.bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

func (e *Engine) CenterOfMass() Vec3 {
	var c Vec3
	total := 0.0
	for _, b := range e.bodies {
		c = c.Add(b.Position.Scale(b.Mass))
		total += b.Mass
	}
	return c.Scale(1 / total)
}
