package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	DefaultBodies     = 200
	DefaultSteps      = 600
	DefaultSample     = 10
	DefaultLayout     = "helix"
	DefaultIntegrator = "euler"
	DefaultReinit     = "keep"
	DefaultFormat     = "xy"
	DefaultScale      = 0.01
	DefaultFPS        = 60
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Bodies     int     `yaml:"bodies"`
	Steps      int     `yaml:"steps"`
	Sample     int     `yaml:"sample"`
	Dt         float64 `yaml:"dt"`
	G          float64 `yaml:"g"`
	Epsilon    float64 `yaml:"epsilon"`
	Layout     string  `yaml:"layout"`
	Integrator string  `yaml:"integrator"`
	Reinit     string  `yaml:"reinit"`
	Format     string  `yaml:"format"`
	Scale      float64 `yaml:"scale"`
	FPS        int     `yaml:"fps"`
	Workers    int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Bodies:     DefaultBodies,
		Steps:      DefaultSteps,
		Sample:     DefaultSample,
		Dt:         physics.DefaultDt,
		G:          physics.DefaultG,
		Epsilon:    physics.DefaultEpsilon,
		Layout:     DefaultLayout,
		Integrator: DefaultIntegrator,
		Reinit:     DefaultReinit,
		Format:     DefaultFormat,
		Scale:      DefaultScale,
		FPS:        DefaultFPS,
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads a YAML file on top of a copy of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field and resolves every name.
func (c *Config) Validate() error {
	if c.Bodies <= 0 {
		return fmt.Errorf("%w: bodies must be positive, got %d", ErrInvalidConfig, c.Bodies)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalidConfig, c.Steps)
	}
	if c.Sample <= 0 {
		return fmt.Errorf("%w: sample must be positive, got %d", ErrInvalidConfig, c.Sample)
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, c.Dt)
	}
	if !(c.G > 0) || math.IsInf(c.G, 0) {
		return fmt.Errorf("%w: g must be positive, got %g", ErrInvalidConfig, c.G)
	}
	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidConfig, c.Epsilon)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.EngineOptions(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ExtractFormat(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EngineOptions resolves the physics settings into engine options.
func (c *Config) EngineOptions() ([]physics.Option, error) {
	layout, err := physics.LayoutByName(c.Layout)
	if err != nil {
		return nil, err
	}
	integ, err := integrators.Get(c.Integrator)
	if err != nil {
		return nil, err
	}
	return []physics.Option{
		physics.WithG(c.G),
		physics.WithDt(c.Dt),
		physics.WithEpsilon(c.Epsilon),
		physics.WithLayout(layout),
		physics.WithIntegrator(integ),
		physics.WithWorkers(c.Workers),
	}, nil
}

func (c *Config) Policy() (sim.Policy, error) {
	return sim.ParsePolicy(c.Reinit)
}

func (c *Config) ExtractFormat() (sim.Format, error) {
	return sim.ParseFormat(c.Format)
}

// Interval is the wall-clock time between frames at the configured FPS.
func (c *Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

// NewContainer validates the config and returns an empty container wired with
// its engine options and reinit policy.
func (c *Config) NewContainer() (*sim.Container, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}
	return sim.NewContainer(policy, opts...), nil
}
