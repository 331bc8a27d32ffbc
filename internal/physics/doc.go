// Package physics implements the gravitational N-body engine.
//
// An [Engine] owns a fixed set of [Body] values and advances them with exact
// pairwise force summation (O(n^2) per step). Each step runs two strictly
// sequential phases: every force is accumulated from the pre-step positions,
// then the [Integrator] moves the bodies. The default integrator is
// [SemiImplicitEuler].
//
// Coincident bodies are handled by two epsilon guards, one inside the
// squared-distance denominator and one inside [Direction], so a step never
// produces NaN or Inf from a zero separation.
//
//	e, _ := physics.New(200)
//	for i := 0; i < 60; i++ {
//	    e.Step()
//	}
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. [WithWorkers] parallelizes the force
// pass inside a single Step; the engine still must not be shared.
package physics
