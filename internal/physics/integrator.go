package physics

// Integrator advances an engine by one timestep. An implementation must finish
// a full force pass (AccumulateForces) before it moves any body.
type Integrator interface {
	Name() string
	Integrate(e *Engine)
}

// SemiImplicitEuler updates velocity from the accumulated force, then moves
// each body with its new velocity.
type SemiImplicitEuler struct{}

func (SemiImplicitEuler) Name() string { return "euler" }

func (SemiImplicitEuler) Integrate(e *Engine) {
	forces := e.AccumulateForces()
	e.Kick(forces, e.dt)
	e.Drift(e.dt)
}
