package integrators

import "github.com/san-kum/gravsim/internal/physics"

// Leapfrog is the kick-drift-kick scheme. It costs two force passes per step
// but keeps long-run energy error bounded.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Integrate(e *physics.Engine) {
	halfDt := e.Dt() * 0.5

	e.Kick(e.AccumulateForces(), halfDt)
	e.Drift(e.Dt())
	e.Kick(e.AccumulateForces(), halfDt)
}
