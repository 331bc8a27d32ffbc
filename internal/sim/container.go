package sim

import (
	"fmt"

	"github.com/san-kum/gravsim/internal/physics"
)

// Policy decides what Initialize does when an engine already exists.
type Policy int

const (
	// PolicyKeep leaves a running engine untouched, so a repeated "start"
	// does not reset an in-progress run.
	PolicyKeep Policy = iota
	// PolicyReplace discards the running engine and starts over.
	PolicyReplace
)

func (p Policy) String() string {
	switch p {
	case PolicyKeep:
		return "keep"
	case PolicyReplace:
		return "replace"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "keep", "":
		return PolicyKeep, nil
	case "replace":
		return PolicyReplace, nil
	default:
		return 0, fmt.Errorf("unknown reinit policy: %s (available: keep, replace)", s)
	}
}

// Container holds at most one engine and mediates all access to it.
// When empty, Step is a no-op and Extract returns an empty buffer.
//
// A Container is NOT safe for concurrent use; the driver loop is expected to
// be its only caller.
type Container struct {
	policy Policy
	opts   []physics.Option
	engine *physics.Engine
}

// NewContainer returns an empty container. opts are applied to every engine it
// creates.
func NewContainer(policy Policy, opts ...physics.Option) *Container {
	return &Container{policy: policy, opts: opts}
}

func (c *Container) Policy() Policy { return c.policy }

// Initialize establishes an engine with n bodies according to the policy.
// An invalid n is rejected even when PolicyKeep would keep the current engine.
func (c *Container) Initialize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", physics.ErrInvalidBodyCount, n)
	}
	if c.engine != nil && c.policy == PolicyKeep {
		return nil
	}

	e, err := physics.New(n, c.opts...)
	if err != nil {
		return err
	}
	c.engine = e
	return nil
}

// Step advances the current engine by one timestep.
func (c *Container) Step() {
	if c.engine == nil {
		return
	}
	c.engine.Step()
}

// Reset discards the current engine.
func (c *Container) Reset() {
	c.engine = nil
}

func (c *Container) Initialized() bool {
	return c.engine != nil
}

// Len returns the current body count, 0 when empty.
func (c *Container) Len() int {
	if c.engine == nil {
		return 0
	}
	return c.engine.Len()
}

// Engine exposes the current engine for read-only diagnostics such as
// metrics. Callers must not step or retain it.
func (c *Container) Engine() (*physics.Engine, bool) {
	return c.engine, c.engine != nil
}
