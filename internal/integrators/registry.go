package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/gravsim/internal/physics"
)

var ErrUnknownIntegrator = errors.New("integrators: unknown integrator")

var registry = map[string]func() physics.Integrator{
	"euler":    func() physics.Integrator { return physics.SemiImplicitEuler{} },
	"leapfrog": func() physics.Integrator { return NewLeapfrog() },
}

// Get returns a fresh integrator by name.
func Get(name string) (physics.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownIntegrator, name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
