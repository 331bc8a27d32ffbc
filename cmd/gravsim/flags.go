package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
)

// simFlags holds the simulation flags shared by run and live.
type simFlags struct {
	configFile string
	preset     string
	bodies     int
	steps      int
	sample     int
	dt         float64
	g          float64
	epsilon    float64
	layout     string
	integrator string
	reinit     string
	format     string
	scale      float64
	fps        int
	workers    int
}

func (f *simFlags) register(cmd *cobra.Command) {
	d := config.DefaultConfig()
	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "config file path (yaml)")
	fl.StringVar(&f.preset, "preset", "", "use preset configuration")
	fl.IntVar(&f.bodies, "bodies", d.Bodies, "number of bodies")
	fl.IntVar(&f.steps, "steps", d.Steps, "number of steps (0 runs until interrupted)")
	fl.IntVar(&f.sample, "sample", d.Sample, "record every n-th frame")
	fl.Float64Var(&f.dt, "dt", d.Dt, "timestep")
	fl.Float64Var(&f.g, "g", d.G, "gravitational constant")
	fl.Float64Var(&f.epsilon, "epsilon", d.Epsilon, "softening added to squared distances")
	fl.StringVar(&f.layout, "layout", d.Layout, "initial layout")
	fl.StringVar(&f.integrator, "integrator", d.Integrator, "integrator (euler, leapfrog)")
	fl.StringVar(&f.reinit, "reinit", d.Reinit, "reinitialization policy (keep, replace)")
	fl.StringVar(&f.format, "format", d.Format, "frame format (xy, xyz)")
	fl.Float64Var(&f.scale, "scale", d.Scale, "scale applied to extracted coordinates")
	fl.IntVar(&f.fps, "fps", d.FPS, "frames per second for the live view")
	fl.IntVar(&f.workers, "workers", d.Workers, "goroutines for the force pass (0 or 1 runs serially)")
}

// resolve builds the effective config. Precedence, lowest first: defaults,
// preset, config file, explicitly set flags.
func (f *simFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		p := config.GetPreset(f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
		cfg = p
	}

	if f.configFile != "" {
		loaded, err := config.LoadWith(f.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("bodies") {
		cfg.Bodies = f.bodies
	}
	if changed("steps") {
		cfg.Steps = f.steps
	}
	if changed("sample") {
		cfg.Sample = f.sample
	}
	if changed("dt") {
		cfg.Dt = f.dt
	}
	if changed("g") {
		cfg.G = f.g
	}
	if changed("epsilon") {
		cfg.Epsilon = f.epsilon
	}
	if changed("layout") {
		cfg.Layout = f.layout
	}
	if changed("integrator") {
		cfg.Integrator = f.integrator
	}
	if changed("reinit") {
		cfg.Reinit = f.reinit
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("scale") {
		cfg.Scale = f.scale
	}
	if changed("fps") {
		cfg.FPS = f.fps
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
