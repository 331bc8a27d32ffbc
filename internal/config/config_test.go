package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/gravsim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bodies != 200 {
		t.Errorf("expected 200 bodies, got %d", cfg.Bodies)
	}
	if cfg.Dt != 0.016 {
		t.Errorf("expected dt 0.016, got %f", cfg.Dt)
	}
	if cfg.Scale != 0.01 {
		t.Errorf("expected scale 0.01, got %f", cfg.Scale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero bodies", func(c *Config) { c.Bodies = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"zero sample", func(c *Config) { c.Sample = 0 }},
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative g", func(c *Config) { c.G = -1 }},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }},
		{"NaN dt", func(c *Config) { c.Dt = math.NaN() }},
		{"NaN g", func(c *Config) { c.G = math.NaN() }},
		{"NaN epsilon", func(c *Config) { c.Epsilon = math.NaN() }},
		{"infinite dt", func(c *Config) { c.Dt = math.Inf(1) }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"unknown layout", func(c *Config) { c.Layout = "cube" }},
		{"unknown integrator", func(c *Config) { c.Integrator = "rk4" }},
		{"unknown reinit", func(c *Config) { c.Reinit = "maybe" }},
		{"unknown format", func(c *Config) { c.Format = "rgb" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravsim.yaml")
	data := "bodies: 32\nlayout: ring\nreinit: replace\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Bodies != 32 || cfg.Layout != "ring" || cfg.Reinit != "replace" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Dt != 0.016 || cfg.Integrator != "euler" {
		t.Errorf("defaults not kept for omitted keys: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bodies: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("ring")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestNewContainer(t *testing.T) {
	cfg := GetPreset("binary")
	c, err := cfg.NewContainer()
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	if c.Policy() != sim.PolicyReplace {
		t.Errorf("expected replace policy, got %v", c.Policy())
	}
	if err := c.Initialize(cfg.Bodies); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	got := c.Extract(nil, sim.FormatXYZ, 1)
	want := []float32{-1, 0, 0, 1, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	bad := DefaultConfig()
	bad.Integrator = "rk4"
	if _, err := bad.NewContainer(); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 50
	if got := cfg.Interval(); got != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %v", got)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg := GetPreset("helix")
	cfg.Bodies = 1
	if Presets["helix"].Bodies != 200 {
		t.Error("GetPreset returned a shared pointer")
	}
}

func TestLoadWith_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("steps: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("ring")
	cfg, err := LoadWith(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Steps != 42 {
		t.Errorf("expected steps 42, got %d", cfg.Steps)
	}
	if cfg.Layout != "ring" || cfg.Integrator != "leapfrog" {
		t.Errorf("expected preset values kept, got %+v", cfg)
	}
	if base.Steps != 1000 {
		t.Error("LoadWith modified its base")
	}
}
